package converter

import (
	"clinic-prescription-api/internal/delivery/dto"
	"clinic-prescription-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Email:        doctor.Email,
		Name:         doctor.Name,
		Type:         doctor.Type,
		MobileNumber: doctor.MobileNumber,
	}
}
