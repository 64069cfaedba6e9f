package repository

import (
	"context"

	"clinic-prescription-api/internal/domain/entity"

	"github.com/google/uuid"
)

type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)
	FindByNameAndDosage(ctx context.Context, name, dosage string) (*entity.Medicine, error)
	FindAll(ctx context.Context) ([]entity.Medicine, error)
	Search(ctx context.Context, query string, limit int) ([]entity.Medicine, error)
}
