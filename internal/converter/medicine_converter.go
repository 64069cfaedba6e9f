package converter

import (
	"clinic-prescription-api/internal/delivery/dto"
	"clinic-prescription-api/internal/domain/entity"
)

// MedicineToResponse converts a Medicine entity to MedicineResponse DTO
func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:           medicine.ID,
		Name:         medicine.Name,
		Dosage:       medicine.Dosage,
		Type:         medicine.Type,
		Manufacturer: medicine.Manufacturer,
		CreatedAt:    medicine.CreatedAt,
	}
}

// MedicinesToResponses converts a slice of Medicine entities to response DTOs
func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i, medicine := range medicines {
		responses[i] = *MedicineToResponse(&medicine)
	}
	return responses
}
