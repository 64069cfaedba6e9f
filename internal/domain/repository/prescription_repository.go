package repository

import (
	"context"

	"clinic-prescription-api/internal/domain/entity"

	"github.com/google/uuid"
)

type PrescriptionRepository interface {
	// Create persists the prescription together with all of its timings in
	// one transaction.
	Create(ctx context.Context, prescription *entity.Prescription) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	FindByIDAndDoctorID(ctx context.Context, id, doctorID uuid.UUID) (*entity.Prescription, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Prescription, error)
	FindByPatientCode(ctx context.Context, patientCode string) ([]entity.Prescription, error)
	// DeleteByIDAndDoctorID deletes only if the prescription is owned by the
	// doctor. Returns affected rows: 1 = deleted, 0 = absent or not owned.
	DeleteByIDAndDoctorID(ctx context.Context, id, doctorID uuid.UUID) (int64, error)
}
