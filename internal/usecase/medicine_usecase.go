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
	ErrMedicineNotFound      = errors.New("medicine not found")
	ErrMedicineAlreadyExists = errors.New("medicine with this name and dosage already exists")
)

// searchResultLimit caps autocomplete results
const searchResultLimit = 20

type MedicineUsecase interface {
	SearchMedicines(ctx context.Context, req *dto.SearchMedicineRequest) ([]dto.MedicineResponse, error)
	ListMedicines(ctx context.Context) ([]dto.MedicineResponse, error)
	CreateMedicine(ctx context.Context, doctorID uuid.UUID, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
}

type medicineUsecase struct {
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
	auditService service.AuditService
}

func NewMedicineUsecase(
	log *logrus.Logger,
	medicineRepo repository.MedicineRepository,
	auditService service.AuditService,
) MedicineUsecase {
	return &medicineUsecase{
		log:          log,
		medicineRepo: medicineRepo,
		auditService: auditService,
	}
}

func (u *medicineUsecase) SearchMedicines(ctx context.Context, req *dto.SearchMedicineRequest) ([]dto.MedicineResponse, error) {
	medicines, err := u.medicineRepo.Search(ctx, req.Query, searchResultLimit)
	if err != nil {
		u.log.Warnf("Failed to search medicines for %q: %+v", req.Query, err)
		return nil, err
	}

	return converter.MedicinesToResponses(medicines), nil
}

func (u *medicineUsecase) ListMedicines(ctx context.Context) ([]dto.MedicineResponse, error) {
	medicines, err := u.medicineRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list medicines: %+v", err)
		return nil, err
	}

	return converter.MedicinesToResponses(medicines), nil
}

func (u *medicineUsecase) CreateMedicine(ctx context.Context, doctorID uuid.UUID, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	existing, err := u.medicineRepo.FindByNameAndDosage(ctx, req.Name, req.Dosage)
	if err != nil {
		u.log.Warnf("Failed to check existing medicine: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrMedicineAlreadyExists
	}

	medicine := &entity.Medicine{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Type:         req.Type,
		Manufacturer: req.Manufacturer,
	}

	if err := u.medicineRepo.Create(ctx, medicine); err != nil {
		// Concurrent create of the same (name, dosage) pair loses to the
		// unique index
		if isDuplicateKeyError(err, "name_dosage") {
			return nil, ErrMedicineAlreadyExists
		}
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, &doctorID, entity.AuditActionMedicineCreate, "medicine", medicine.ID.String(), map[string]interface{}{
		"name":   medicine.Name,
		"dosage": medicine.Dosage,
		"type":   medicine.Type,
	})

	u.log.Infof("Medicine created: id=%s, name=%s, dosage=%s", medicine.ID, medicine.Name, medicine.Dosage)
	return converter.MedicineToResponse(medicine), nil
}
