package handler

import (
	"encoding/json"
	"net/http"

	"clinic-prescription-api/internal/delivery/dto"
	"clinic-prescription-api/internal/delivery/http/middleware"
	"clinic-prescription-api/internal/usecase"
	"clinic-prescription-api/pkg/response"
	"clinic-prescription-api/pkg/validator"
)

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

// SearchMedicines serves the autocomplete search over name, dosage and type
func (h *MedicineHandler) SearchMedicines(w http.ResponseWriter, r *http.Request) {
	req := dto.SearchMedicineRequest{Query: r.URL.Query().Get("query")}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicines, err := h.medicineUsecase.SearchMedicines(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, medicines)
}

// ListMedicines returns the whole catalog ordered by name
func (h *MedicineHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.medicineUsecase.ListMedicines(r.Context())
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, medicines)
}

// CreateMedicine adds a catalog entry; (name, dosage) must be unique
func (h *MedicineHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.CreateMedicine(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicineAlreadyExists:
			response.BadRequest(w, "Medicine with this name and dosage already exists")
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	response.JSON(w, http.StatusCreated, medicine)
}
