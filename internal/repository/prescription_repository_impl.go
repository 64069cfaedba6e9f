package repository

import (
	"context"
	"errors"

	"clinic-prescription-api/internal/domain/entity"
	domainRepo "clinic-prescription-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

// Create inserts the prescription and its timings. GORM wraps the row and
// its associations in a single transaction, so a prescription missing part
// of its timing list is never visible.
func (r *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	return r.db.WithContext(ctx).Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Medicine").
		Preload("Timings").
		Where("id = ?", id).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByIDAndDoctorID(ctx context.Context, id, doctorID uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Medicine").
		Preload("Timings").
		Where("id = ? AND doctor_id = ?", id, doctorID).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Medicine").
		Preload("Timings").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByPatientCode(ctx context.Context, patientCode string) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Medicine").
		Preload("Timings").
		Joins("JOIN patients ON patients.id = prescriptions.patient_id").
		Where("patients.patient_code = ?", patientCode).
		Order("prescriptions.created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

// DeleteByIDAndDoctorID deletes atomically with the ownership check in the
// predicate. Timings go with it via ON DELETE CASCADE.
func (r *prescriptionRepository) DeleteByIDAndDoctorID(ctx context.Context, id, doctorID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", id, doctorID).
		Delete(&entity.Prescription{})
	return result.RowsAffected, result.Error
}
