package usecase

import (
	"context"
	"testing"

	"clinic-prescription-api/internal/delivery/dto"
	"clinic-prescription-api/internal/domain/entity"

	"github.com/google/uuid"
)

func newMedicineFixture() (*mockMedicineRepo, *mockAuditService, MedicineUsecase) {
	medicineRepo := newMockMedicineRepo()
	audit := newMockAuditService()
	uc := NewMedicineUsecase(testLogger(), medicineRepo, audit)
	return medicineRepo, audit, uc
}

func TestSearchMedicinesAppliesLimit(t *testing.T) {
	medicineRepo, _, uc := newMedicineFixture()
	medicineRepo.searchResults = []entity.Medicine{
		{ID: uuid.New(), Name: "Paracetamol", Dosage: "500mg", Type: "Tablet"},
		{ID: uuid.New(), Name: "Paracetamol", Dosage: "650mg", Type: "Tablet"},
	}

	result, err := uc.SearchMedicines(context.Background(), &dto.SearchMedicineRequest{Query: "para"})
	if err != nil {
		t.Fatalf("SearchMedicines returned error: %v", err)
	}

	if medicineRepo.searchQuery != "para" {
		t.Errorf("expected query para to be passed through, got %q", medicineRepo.searchQuery)
	}
	if medicineRepo.searchLimit != searchResultLimit {
		t.Errorf("expected limit %d, got %d", searchResultLimit, medicineRepo.searchLimit)
	}
	if len(result) != 2 {
		t.Errorf("expected 2 results, got %d", len(result))
	}
}

func TestCreateMedicine(t *testing.T) {
	_, audit, uc := newMedicineFixture()

	resp, err := uc.CreateMedicine(context.Background(), uuid.New(), &dto.CreateMedicineRequest{
		Name:         "Aspirin",
		Dosage:       "75mg",
		Type:         "Tablet",
		Manufacturer: "Bayer",
	})
	if err != nil {
		t.Fatalf("CreateMedicine returned error: %v", err)
	}

	if resp.ID == uuid.Nil {
		t.Error("expected a generated medicine id")
	}
	if resp.Name != "Aspirin" || resp.Dosage != "75mg" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if actions := audit.actions(); len(actions) != 1 || actions[0] != entity.AuditActionMedicineCreate {
		t.Errorf("expected one medicine.create audit entry, got %v", actions)
	}
}

func TestCreateMedicineDuplicateNameAndDosage(t *testing.T) {
	medicineRepo, _, uc := newMedicineFixture()
	medicineRepo.add(&entity.Medicine{Name: "Aspirin", Dosage: "75mg", Type: "Tablet"})

	_, err := uc.CreateMedicine(context.Background(), uuid.New(), &dto.CreateMedicineRequest{
		Name:   "Aspirin",
		Dosage: "75mg",
		Type:   "Tablet",
	})
	if err != ErrMedicineAlreadyExists {
		t.Fatalf("expected ErrMedicineAlreadyExists, got %v", err)
	}
}

func TestCreateMedicineSameNameDifferentDosage(t *testing.T) {
	medicineRepo, _, uc := newMedicineFixture()
	medicineRepo.add(&entity.Medicine{Name: "Aspirin", Dosage: "75mg", Type: "Tablet"})

	resp, err := uc.CreateMedicine(context.Background(), uuid.New(), &dto.CreateMedicineRequest{
		Name:   "Aspirin",
		Dosage: "150mg",
		Type:   "Tablet",
	})
	if err != nil {
		t.Fatalf("same name with a new dosage must be allowed, got %v", err)
	}
	if resp.Dosage != "150mg" {
		t.Errorf("expected dosage 150mg, got %s", resp.Dosage)
	}
}

func TestCreateMedicineConcurrentInsertConflict(t *testing.T) {
	medicineRepo, _, uc := newMedicineFixture()
	medicineRepo.createErr = duplicateKeyError("idx_medicines_name_dosage")

	// The pre-check found nothing but the insert still hit the unique index
	_, err := uc.CreateMedicine(context.Background(), uuid.New(), &dto.CreateMedicineRequest{
		Name:   "Aspirin",
		Dosage: "75mg",
		Type:   "Tablet",
	})
	if err != ErrMedicineAlreadyExists {
		t.Fatalf("expected ErrMedicineAlreadyExists on insert conflict, got %v", err)
	}
}

func TestListMedicines(t *testing.T) {
	medicineRepo, _, uc := newMedicineFixture()
	medicineRepo.add(&entity.Medicine{Name: "Aspirin", Dosage: "75mg", Type: "Tablet"})
	medicineRepo.add(&entity.Medicine{Name: "Cetirizine", Dosage: "10mg", Type: "Tablet"})

	result, err := uc.ListMedicines(context.Background())
	if err != nil {
		t.Fatalf("ListMedicines returned error: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("expected 2 medicines, got %d", len(result))
	}
}
