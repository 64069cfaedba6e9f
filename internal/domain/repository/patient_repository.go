package repository

import (
	"context"

	"clinic-prescription-api/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByCode(ctx context.Context, patientCode string) (*entity.Patient, error)
}
