package repository

import (
	"context"
	"errors"

	"clinic-prescription-api/internal/domain/entity"
	domainRepo "clinic-prescription-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicineRepository struct {
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) domainRepo.MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

func (r *medicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) FindByNameAndDosage(ctx context.Context, name, dosage string) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := r.db.WithContext(ctx).Where("name = ? AND dosage = ?", name, dosage).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) FindAll(ctx context.Context) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	err := r.db.WithContext(ctx).Order("name ASC").Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

// Search matches the query case-insensitively against name, dosage and type.
func (r *medicineRepository) Search(ctx context.Context, query string, limit int) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR dosage ILIKE ? OR type ILIKE ?", pattern, pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}
