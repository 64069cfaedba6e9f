package usecase

import (
	"context"
	"errors"

	"clinic-prescription-api/internal/converter"
	"clinic-prescription-api/internal/delivery/dto"
	"clinic-prescription-api/internal/domain/entity"
	"clinic-prescription-api/internal/domain/repository"
	"clinic-prescription-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
)

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, doctorID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	ListPrescriptions(ctx context.Context, doctorID uuid.UUID) ([]dto.PrescriptionResponse, error)
	GetPrescription(ctx context.Context, doctorID, id uuid.UUID) (*dto.PrescriptionResponse, error)
	DeletePrescription(ctx context.Context, doctorID, id uuid.UUID) error
	ListPrescriptionsByPatient(ctx context.Context, patientCode string) ([]dto.PatientPrescriptionResponse, error)
}

type prescriptionUsecase struct {
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	medicineRepo     repository.MedicineRepository
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	medicineRepo repository.MedicineRepository,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		log:              log,
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		medicineRepo:     medicineRepo,
		auditService:     auditService,
	}
}

// CreatePrescription issues a new prescription for the doctor.
//
// Flow:
// 1. Find or create the patient by the externally-supplied patient id.
//    An existing patient is reused as-is; the request's name/mobile/problem
//    are not written back (at-most-once creation, not a sync).
// 2. Verify the medicine exists.
// 3. Insert the prescription together with all timings in one transaction.
func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, doctorID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	patient, err := u.findOrCreatePatient(ctx, req)
	if err != nil {
		return nil, err
	}

	medicineID, err := uuid.Parse(req.MedicineID)
	if err != nil {
		return nil, ErrMedicineNotFound
	}

	medicine, err := u.medicineRepo.FindByID(ctx, medicineID)
	if err != nil {
		u.log.Warnf("Failed to find medicine %s: %+v", medicineID, err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	timings := make([]entity.Timing, len(req.Timings))
	for i, t := range req.Timings {
		timing := entity.Timing{TimingType: entity.TimingType(t.TimingType)}
		// A custom time supplied for a fixed slot is permitted but ignored
		if timing.TimingType == entity.TimingCustom {
			customTime := t.CustomTime
			timing.CustomTime = &customTime
		}
		timings[i] = timing
	}

	prescription := &entity.Prescription{
		DoctorID:   doctorID,
		PatientID:  patient.ID,
		MedicineID: medicine.ID,
		Notes:      req.Notes,
		Timings:    timings,
	}

	if err := u.prescriptionRepo.Create(ctx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	prescription.Patient = *patient
	prescription.Medicine = *medicine

	u.auditService.LogCreate(ctx, &doctorID, entity.AuditActionPrescriptionCreate, "prescription", prescription.ID.String(), map[string]interface{}{
		"patient_id":  patient.ID.String(),
		"medicine_id": medicine.ID.String(),
		"timings":     len(prescription.Timings),
	})

	u.log.Infof("Prescription created: id=%s, doctor=%s, patient=%s, medicine=%s", prescription.ID, doctorID, patient.PatientCode, medicine.ID)
	return converter.PrescriptionToResponse(prescription), nil
}

// ListPrescriptions returns all prescriptions owned by the doctor, newest
// first, joined with patient, medicine and timings.
func (u *prescriptionUsecase) ListPrescriptions(ctx context.Context, doctorID uuid.UUID) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return converter.PrescriptionsToResponses(prescriptions), nil
}

// GetPrescription returns the prescription only if it is owned by the
// doctor. A prescription owned by someone else is indistinguishable from a
// missing one.
func (u *prescriptionUsecase) GetPrescription(ctx context.Context, doctorID, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByIDAndDoctorID(ctx, id, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(prescription), nil
}

// DeletePrescription deletes the prescription and cascades its timings.
// Ownership is re-checked inside the delete predicate, not assumed from a
// prior read.
func (u *prescriptionUsecase) DeletePrescription(ctx context.Context, doctorID, id uuid.UUID) error {
	affected, err := u.prescriptionRepo.DeleteByIDAndDoctorID(ctx, id, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete prescription %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPrescriptionNotFound
	}

	u.auditService.LogDelete(ctx, &doctorID, entity.AuditActionPrescriptionDelete, "prescription", id.String(), nil)

	u.log.Infof("Prescription deleted: id=%s, doctor=%s", id, doctorID)
	return nil
}

// ListPrescriptionsByPatient returns all prescriptions for the external
// patient id, across doctors, newest first, as limited projections.
func (u *prescriptionUsecase) ListPrescriptionsByPatient(ctx context.Context, patientCode string) ([]dto.PatientPrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByPatientCode(ctx, patientCode)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions for patient %s: %+v", patientCode, err)
		return nil, err
	}

	return converter.PrescriptionsToPatientResponses(prescriptions), nil
}

// findOrCreatePatient resolves the externally-supplied patient id to a
// patient record, creating it on first use. Two concurrent requests with
// the same new id may both attempt the insert; the loser hits the unique
// index on patient_code and re-fetches the winner's row instead of
// surfacing an error.
func (u *prescriptionUsecase) findOrCreatePatient(ctx context.Context, req *dto.CreatePrescriptionRequest) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByCode(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient != nil {
		return patient, nil
	}

	patient = &entity.Patient{
		PatientCode:  req.PatientID,
		Name:         req.PatientName,
		MobileNumber: req.PatientMobileNumber,
		Problem:      req.PatientProblem,
	}

	err = u.patientRepo.Create(ctx, patient)
	if err == nil {
		u.log.Infof("Patient created: id=%s, code=%s", patient.ID, patient.PatientCode)
		return patient, nil
	}

	if !isDuplicateKeyError(err, "patient_code") {
		u.log.Warnf("Failed to create patient %s: %+v", req.PatientID, err)
		return nil, err
	}

	// Lost the race: another request created this patient first
	patient, err = u.patientRepo.FindByCode(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to re-fetch patient %s after conflict: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, errors.New("patient conflict but record not found")
	}
	return patient, nil
}
