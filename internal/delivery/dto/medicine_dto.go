package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// SearchMedicineRequest wraps the ?query= parameter so it runs through the
// same typed validation as body payloads.
type SearchMedicineRequest struct {
	Query string `json:"query" validate:"required,min=1,max=100"`
}

type CreateMedicineRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=200"`
	Dosage       string `json:"dosage" validate:"required,min=1,max=50"`
	Type         string `json:"type" validate:"required,min=2,max=50"`
	Manufacturer string `json:"manufacturer" validate:"omitempty,max=100"`
}

// Response DTOs

type MedicineResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage"`
	Type         string    `json:"type"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
