package converter

import (
	"clinic-prescription-api/internal/delivery/dto"
	"clinic-prescription-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:           patient.ID,
		PatientID:    patient.PatientCode,
		Name:         patient.Name,
		MobileNumber: patient.MobileNumber,
		Problem:      patient.Problem,
		CreatedAt:    patient.CreatedAt,
	}
}

// PatientToSummary converts a Patient entity to the limited projection used
// by the cross-doctor lookup
func PatientToSummary(patient *entity.Patient) dto.PatientSummary {
	if patient == nil {
		return dto.PatientSummary{}
	}

	return dto.PatientSummary{
		ID:        patient.ID,
		PatientID: patient.PatientCode,
		Name:      patient.Name,
	}
}
