package usecase

import (
	"context"
	"sync"
	"time"

	"clinic-prescription-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func duplicateKeyError(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

type mockDoctorRepo struct {
	mu      sync.Mutex
	doctors map[string]*entity.Doctor

	createErr error
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: map[string]*entity.Doctor{}}
}

func (m *mockDoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.doctors[doctor.Email]; exists {
		return duplicateKeyError("idx_doctors_email")
	}
	doctor.ID = uuid.New()
	m.doctors[doctor.Email] = doctor
	return nil
}

func (m *mockDoctorRepo) FindByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doctors[email], nil
}

func (m *mockDoctorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

type mockPatientRepo struct {
	mu       sync.Mutex
	patients map[string]*entity.Patient

	createErr   error
	createCalls int
	findMisses  int
	lastCreated *entity.Patient
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: map[string]*entity.Patient{}}
}

func (m *mockPatientRepo) Create(ctx context.Context, patient *entity.Patient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.patients[patient.PatientCode]; exists {
		return duplicateKeyError("idx_patients_patient_code")
	}
	patient.ID = uuid.New()
	m.patients[patient.PatientCode] = patient
	m.lastCreated = patient
	return nil
}

func (m *mockPatientRepo) FindByCode(ctx context.Context, patientCode string) (*entity.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findMisses > 0 {
		m.findMisses--
		return nil, nil
	}
	return m.patients[patientCode], nil
}

type mockMedicineRepo struct {
	mu        sync.Mutex
	medicines []*entity.Medicine

	createErr     error
	searchQuery   string
	searchLimit   int
	searchResults []entity.Medicine
}

func newMockMedicineRepo() *mockMedicineRepo {
	return &mockMedicineRepo{}
}

func (m *mockMedicineRepo) add(medicine *entity.Medicine) *entity.Medicine {
	if medicine.ID == uuid.Nil {
		medicine.ID = uuid.New()
	}
	m.medicines = append(m.medicines, medicine)
	return medicine
}

func (m *mockMedicineRepo) Create(ctx context.Context, medicine *entity.Medicine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.medicines {
		if existing.Name == medicine.Name && existing.Dosage == medicine.Dosage {
			return duplicateKeyError("idx_medicines_name_dosage")
		}
	}
	m.add(medicine)
	return nil
}

func (m *mockMedicineRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, medicine := range m.medicines {
		if medicine.ID == id {
			return medicine, nil
		}
	}
	return nil, nil
}

func (m *mockMedicineRepo) FindByNameAndDosage(ctx context.Context, name, dosage string) (*entity.Medicine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, medicine := range m.medicines {
		if medicine.Name == name && medicine.Dosage == dosage {
			return medicine, nil
		}
	}
	return nil, nil
}

func (m *mockMedicineRepo) FindAll(ctx context.Context) ([]entity.Medicine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]entity.Medicine, len(m.medicines))
	for i, medicine := range m.medicines {
		all[i] = *medicine
	}
	return all, nil
}

func (m *mockMedicineRepo) Search(ctx context.Context, query string, limit int) ([]entity.Medicine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchQuery = query
	m.searchLimit = limit
	return m.searchResults, nil
}

type mockPrescriptionRepo struct {
	mu            sync.Mutex
	prescriptions []*entity.Prescription

	createErr error
}

func newMockPrescriptionRepo() *mockPrescriptionRepo {
	return &mockPrescriptionRepo{}
}

func (m *mockPrescriptionRepo) Create(ctx context.Context, prescription *entity.Prescription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	prescription.ID = uuid.New()
	prescription.CreatedAt = time.Now()
	for i := range prescription.Timings {
		prescription.Timings[i].ID = uuid.New()
		prescription.Timings[i].PrescriptionID = prescription.ID
	}
	m.prescriptions = append(m.prescriptions, prescription)
	return nil
}

func (m *mockPrescriptionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.prescriptions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockPrescriptionRepo) FindByIDAndDoctorID(ctx context.Context, id, doctorID uuid.UUID) (*entity.Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.prescriptions {
		if p.ID == id && p.DoctorID == doctorID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockPrescriptionRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []entity.Prescription
	for _, p := range m.prescriptions {
		if p.DoctorID == doctorID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPrescriptionRepo) FindByPatientCode(ctx context.Context, patientCode string) ([]entity.Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []entity.Prescription
	for _, p := range m.prescriptions {
		if p.Patient.PatientCode == patientCode {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPrescriptionRepo) DeleteByIDAndDoctorID(ctx context.Context, id, doctorID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.prescriptions {
		if p.ID == id && p.DoctorID == doctorID {
			m.prescriptions = append(m.prescriptions[:i], m.prescriptions[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type mockTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func newMockTokenRepo() *mockTokenRepo {
	return &mockTokenRepo{tokens: map[string]bool{}}
}

func (m *mockTokenRepo) key(doctorID uuid.UUID, tokenID string) string {
	return doctorID.String() + ":" + tokenID
}

func (m *mockTokenRepo) Save(ctx context.Context, doctorID uuid.UUID, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[m.key(doctorID, tokenID)] = true
	return nil
}

func (m *mockTokenRepo) Exists(ctx context.Context, doctorID uuid.UUID, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[m.key(doctorID, tokenID)], nil
}

func (m *mockTokenRepo) Delete(ctx context.Context, doctorID uuid.UUID, tokenID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, m.key(doctorID, tokenID))
	return nil
}

type auditCall struct {
	action   string
	entityID string
}

// mockAuditService records calls so tests can assert on the audit trail
type mockAuditService struct {
	mu    sync.Mutex
	calls []auditCall
}

func newMockAuditService() *mockAuditService {
	return &mockAuditService{}
}

func (m *mockAuditService) LogCreate(ctx context.Context, doctorID *uuid.UUID, action, entityName, entityID string, newValue interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, auditCall{action: action, entityID: entityID})
}

func (m *mockAuditService) LogDelete(ctx context.Context, doctorID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, auditCall{action: action, entityID: entityID})
}

func (m *mockAuditService) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	actions := make([]string, len(m.calls))
	for i, c := range m.calls {
		actions[i] = c.action
	}
	return actions
}
