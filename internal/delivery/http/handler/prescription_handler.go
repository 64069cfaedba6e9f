package handler

import (
	"encoding/json"
	"net/http"

	"clinic-prescription-api/internal/delivery/dto"
	"clinic-prescription-api/internal/delivery/http/middleware"
	"clinic-prescription-api/internal/usecase"
	"clinic-prescription-api/pkg/response"
	"clinic-prescription-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

// CreatePrescription issues a prescription for the authenticated doctor
func (h *PrescriptionHandler) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.CreatePrescription(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	response.JSON(w, http.StatusCreated, prescription)
}

// ListPrescriptions returns the doctor's prescriptions, newest first
func (h *PrescriptionHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	prescriptions, err := h.prescriptionUsecase.ListPrescriptions(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, prescriptions)
}

// GetPrescription returns one prescription owned by the doctor
func (h *PrescriptionHandler) GetPrescription(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "Prescription not found")
		return
	}

	prescription, err := h.prescriptionUsecase.GetPrescription(r.Context(), doctorID, id)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	response.JSON(w, http.StatusOK, prescription)
}

// DeletePrescription removes a prescription and its timings
func (h *PrescriptionHandler) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "Prescription not found")
		return
	}

	if err := h.prescriptionUsecase.DeletePrescription(r.Context(), doctorID, id); err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Prescription deleted successfully"})
}

// ListPrescriptionsByPatient returns all prescriptions for an external
// patient id, across doctors
func (h *PrescriptionHandler) ListPrescriptionsByPatient(w http.ResponseWriter, r *http.Request) {
	patientCode := mux.Vars(r)["patientId"]

	prescriptions, err := h.prescriptionUsecase.ListPrescriptionsByPatient(r.Context(), patientCode)
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, prescriptions)
}
