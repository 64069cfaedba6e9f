package http

import (
	"net/http"

	"clinic-prescription-api/internal/delivery/http/handler"
	"clinic-prescription-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	medicineHandler     *handler.MedicineHandler
	prescriptionHandler *handler.PrescriptionHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	medicineHandler *handler.MedicineHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		medicineHandler:     medicineHandler,
		prescriptionHandler: prescriptionHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentDoctor).Methods(http.MethodGet)

	// Medicine catalog (search and listing are public for autocomplete)
	api.HandleFunc("/medicines/search", r.medicineHandler.SearchMedicines).Methods(http.MethodGet)
	api.HandleFunc("/medicines", r.medicineHandler.ListMedicines).Methods(http.MethodGet)

	medicinesProtected := api.PathPrefix("/medicines").Subrouter()
	medicinesProtected.Use(r.authMiddleware.Authenticate)
	medicinesProtected.HandleFunc("", r.medicineHandler.CreateMedicine).Methods(http.MethodPost)

	// Prescriptions (all doctor-scoped)
	prescriptions := api.PathPrefix("/prescriptions").Subrouter()
	prescriptions.Use(r.authMiddleware.Authenticate)
	prescriptions.HandleFunc("", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	prescriptions.HandleFunc("", r.prescriptionHandler.ListPrescriptions).Methods(http.MethodGet)
	prescriptions.HandleFunc("/patient/{patientId}", r.prescriptionHandler.ListPrescriptionsByPatient).Methods(http.MethodGet)
	prescriptions.HandleFunc("/{id}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)
	prescriptions.HandleFunc("/{id}", r.prescriptionHandler.DeletePrescription).Methods(http.MethodDelete)

	// Audit trail
	auditLogs := api.PathPrefix("/audit-logs").Subrouter()
	auditLogs.Use(r.authMiddleware.Authenticate)
	auditLogs.HandleFunc("", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	auditLogs.HandleFunc("/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
