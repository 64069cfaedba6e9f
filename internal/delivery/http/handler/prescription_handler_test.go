package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-prescription-api/internal/delivery/dto"
	"clinic-prescription-api/internal/delivery/http/middleware"
	"clinic-prescription-api/internal/usecase"
	"clinic-prescription-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// stubPrescriptionUsecase lets each test script the usecase outcome
type stubPrescriptionUsecase struct {
	createResp *dto.PrescriptionResponse
	createErr  error
	getResp    *dto.PrescriptionResponse
	getErr     error
	deleteErr  error

	lastDoctorID uuid.UUID
	lastID       uuid.UUID
	lastReq      *dto.CreatePrescriptionRequest
}

func (s *stubPrescriptionUsecase) CreatePrescription(ctx context.Context, doctorID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	s.lastDoctorID = doctorID
	s.lastReq = req
	return s.createResp, s.createErr
}

func (s *stubPrescriptionUsecase) ListPrescriptions(ctx context.Context, doctorID uuid.UUID) ([]dto.PrescriptionResponse, error) {
	s.lastDoctorID = doctorID
	return []dto.PrescriptionResponse{}, nil
}

func (s *stubPrescriptionUsecase) GetPrescription(ctx context.Context, doctorID, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	s.lastDoctorID = doctorID
	s.lastID = id
	return s.getResp, s.getErr
}

func (s *stubPrescriptionUsecase) DeletePrescription(ctx context.Context, doctorID, id uuid.UUID) error {
	s.lastDoctorID = doctorID
	s.lastID = id
	return s.deleteErr
}

func (s *stubPrescriptionUsecase) ListPrescriptionsByPatient(ctx context.Context, patientCode string) ([]dto.PatientPrescriptionResponse, error) {
	return []dto.PatientPrescriptionResponse{}, nil
}

func newPrescriptionTestRouter(stub *stubPrescriptionUsecase, doctorID uuid.UUID) http.Handler {
	h := NewPrescriptionHandler(stub, validator.NewValidator())

	r := mux.NewRouter()
	r.HandleFunc("/prescriptions", h.CreatePrescription).Methods(http.MethodPost)
	r.HandleFunc("/prescriptions/{id}", h.GetPrescription).Methods(http.MethodGet)
	r.HandleFunc("/prescriptions/{id}", h.DeletePrescription).Methods(http.MethodDelete)

	// Stand-in for the auth middleware
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := context.WithValue(req.Context(), middleware.DoctorIDKey, doctorID)
		r.ServeHTTP(w, req.WithContext(ctx))
	})
}

func createBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"patientId":           "PAT-001",
		"patientName":         "Jane Smith",
		"patientMobileNumber": 9876543210,
		"patientProblem":      "Fever",
		"medicineId":          uuid.NewString(),
		"timings":             []map[string]string{{"timingType": "MORNING"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewBuffer(body)
}

func TestCreatePrescriptionHandler(t *testing.T) {
	doctorID := uuid.New()
	stub := &stubPrescriptionUsecase{
		createResp: &dto.PrescriptionResponse{ID: uuid.New(), DoctorID: doctorID},
	}
	router := newPrescriptionTestRouter(stub, doctorID)

	req := httptest.NewRequest(http.MethodPost, "/prescriptions", createBody(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.lastDoctorID != doctorID {
		t.Errorf("expected doctor %s passed to usecase, got %s", doctorID, stub.lastDoctorID)
	}
	if stub.lastReq.PatientID != "PAT-001" {
		t.Errorf("unexpected request forwarded to usecase: %+v", stub.lastReq)
	}
}

func TestCreatePrescriptionHandlerValidation(t *testing.T) {
	stub := &stubPrescriptionUsecase{}
	router := newPrescriptionTestRouter(stub, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/prescriptions", bytes.NewBufferString(`{"patientId":"PAT-001"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if stub.lastReq != nil {
		t.Error("usecase must not be called on validation failure")
	}

	var body struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body.Error != "Validation failed" {
		t.Errorf("expected Validation failed, got %q", body.Error)
	}
	if len(body.Details) == 0 {
		t.Error("expected field-level details")
	}
}

func TestCreatePrescriptionHandlerMedicineNotFound(t *testing.T) {
	stub := &stubPrescriptionUsecase{createErr: usecase.ErrMedicineNotFound}
	router := newPrescriptionTestRouter(stub, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/prescriptions", createBody(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetPrescriptionHandlerNotFound(t *testing.T) {
	stub := &stubPrescriptionUsecase{getErr: usecase.ErrPrescriptionNotFound}
	router := newPrescriptionTestRouter(stub, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/prescriptions/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetPrescriptionHandlerMalformedID(t *testing.T) {
	stub := &stubPrescriptionUsecase{}
	router := newPrescriptionTestRouter(stub, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/prescriptions/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed id, got %d", rec.Code)
	}
	if stub.lastID != uuid.Nil {
		t.Error("usecase must not be called for a malformed id")
	}
}

func TestDeletePrescriptionHandler(t *testing.T) {
	doctorID := uuid.New()
	stub := &stubPrescriptionUsecase{}
	router := newPrescriptionTestRouter(stub, doctorID)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/prescriptions/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastID != id || stub.lastDoctorID != doctorID {
		t.Errorf("unexpected delete args: id=%s doctor=%s", stub.lastID, stub.lastDoctorID)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["message"] != "Prescription deleted successfully" {
		t.Errorf("unexpected message: %q", body["message"])
	}
}
