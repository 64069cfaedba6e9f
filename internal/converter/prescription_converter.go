package converter

import (
	"clinic-prescription-api/internal/delivery/dto"
	"clinic-prescription-api/internal/domain/entity"
)

// TimingsToResponses converts Timing entities to response DTOs
func TimingsToResponses(timings []entity.Timing) []dto.TimingResponse {
	responses := make([]dto.TimingResponse, len(timings))
	for i, timing := range timings {
		responses[i] = dto.TimingResponse{
			ID:         timing.ID,
			TimingType: string(timing.TimingType),
			CustomTime: timing.CustomTime,
		}
	}
	return responses
}

// PrescriptionToResponse converts a Prescription entity joined with its
// patient, medicine and timings to a PrescriptionResponse DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:        prescription.ID,
		DoctorID:  prescription.DoctorID,
		Notes:     prescription.Notes,
		CreatedAt: prescription.CreatedAt,
		Patient:   *PatientToResponse(&prescription.Patient),
		Medicine:  *MedicineToResponse(&prescription.Medicine),
		Timings:   TimingsToResponses(prescription.Timings),
	}
}

// PrescriptionsToResponses converts a slice of Prescription entities to
// response DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescription)
	}
	return responses
}

// PrescriptionToPatientResponse converts a Prescription to the limited
// projection returned by the lookup by external patient id
func PrescriptionToPatientResponse(prescription *entity.Prescription) *dto.PatientPrescriptionResponse {
	if prescription == nil {
		return nil
	}

	medicine := prescription.Medicine
	return &dto.PatientPrescriptionResponse{
		ID:        prescription.ID,
		Notes:     prescription.Notes,
		CreatedAt: prescription.CreatedAt,
		Patient:   PatientToSummary(&prescription.Patient),
		Medicine: dto.MedicineSummary{
			ID:           medicine.ID,
			Name:         medicine.Name,
			Dosage:       medicine.Dosage,
			Type:         medicine.Type,
			Manufacturer: medicine.Manufacturer,
		},
		Timings: TimingsToResponses(prescription.Timings),
	}
}

// PrescriptionsToPatientResponses converts a slice of Prescription entities
// to limited projections
func PrescriptionsToPatientResponses(prescriptions []entity.Prescription) []dto.PatientPrescriptionResponse {
	responses := make([]dto.PatientPrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		responses[i] = *PrescriptionToPatientResponse(&prescription)
	}
	return responses
}
