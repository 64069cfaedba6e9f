package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type TimingRequest struct {
	TimingType string `json:"timingType" validate:"required,oneof=MORNING AFTERNOON EVENING CUSTOM"`
	CustomTime string `json:"customTime" validate:"required_if=TimingType CUSTOM,omitempty,hhmm"`
}

type CreatePrescriptionRequest struct {
	PatientID           string          `json:"patientId" validate:"required,min=1,max=50"`
	PatientName         string          `json:"patientName" validate:"required,min=2,max=100"`
	PatientMobileNumber int64           `json:"patientMobileNumber" validate:"required,mobile"`
	PatientProblem      string          `json:"patientProblem" validate:"required,min=1,max=500"`
	MedicineID          string          `json:"medicineId" validate:"required"`
	Timings             []TimingRequest `json:"timings" validate:"required,min=1,max=10,dive"`
	Notes               string          `json:"notes" validate:"omitempty,max=500"`
}

// Response DTOs

type TimingResponse struct {
	ID         uuid.UUID `json:"id"`
	TimingType string    `json:"timingType"`
	CustomTime *string   `json:"customTime,omitempty"`
}

type PatientResponse struct {
	ID           uuid.UUID `json:"id"`
	PatientID    string    `json:"patientId"`
	Name         string    `json:"name"`
	MobileNumber int64     `json:"mobileNumber,omitempty"`
	Problem      string    `json:"problem,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PrescriptionResponse struct {
	ID        uuid.UUID        `json:"id"`
	DoctorID  uuid.UUID        `json:"doctorId"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	Patient   PatientResponse  `json:"patient"`
	Medicine  MedicineResponse `json:"medicine"`
	Timings   []TimingResponse `json:"timings"`
}

// Limited projections for the cross-doctor lookup by external patient id

type PatientSummary struct {
	ID        uuid.UUID `json:"id"`
	PatientID string    `json:"patientId"`
	Name      string    `json:"name"`
}

type MedicineSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage"`
	Type         string    `json:"type"`
	Manufacturer string    `json:"manufacturer,omitempty"`
}

type PatientPrescriptionResponse struct {
	ID        uuid.UUID        `json:"id"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	Patient   PatientSummary   `json:"patient"`
	Medicine  MedicineSummary  `json:"medicine"`
	Timings   []TimingResponse `json:"timings"`
}
