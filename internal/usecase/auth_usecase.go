package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-prescription-api/internal/converter"
	"clinic-prescription-api/internal/delivery/dto"
	"clinic-prescription-api/internal/domain/entity"
	"clinic-prescription-api/internal/domain/repository"
	"clinic-prescription-api/internal/service"
	"clinic-prescription-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDoctorNotFound     = errors.New("doctor not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, doctorID uuid.UUID, tokenID string) error
	GetCurrentDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	tokenRepo    repository.TokenRepository
	jwtService   *jwt.JWTService
	auditService service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	tokenRepo repository.TokenRepository,
	jwtService *jwt.JWTService,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		auditService: auditService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	doctor := &entity.Doctor{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Name:         req.Name,
		Type:         req.Type,
		MobileNumber: req.MobileNumber,
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	token, tokenID, err := u.issueToken(ctx, doctor)
	if err != nil {
		return nil, err
	}

	u.auditService.LogCreate(ctx, &doctor.ID, entity.AuditActionDoctorRegister, "doctor", doctor.ID.String(), map[string]interface{}{
		"email": doctor.Email,
		"name":  doctor.Name,
	})

	u.log.Infof("Doctor registered: id=%s, email=%s, token=%s", doctor.ID, doctor.Email, tokenID)
	return &dto.AuthResponse{
		Token:  token,
		Doctor: *converter.DoctorToResponse(doctor),
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	doctor, err := u.doctorRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find doctor by email: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenID, err := u.issueToken(ctx, doctor)
	if err != nil {
		return nil, err
	}

	u.auditService.LogCreate(ctx, &doctor.ID, entity.AuditActionDoctorLogin, "token", tokenID, nil)

	u.log.Infof("Doctor logged in: id=%s, token=%s", doctor.ID, tokenID)
	return &dto.AuthResponse{
		Token:  token,
		Doctor: *converter.DoctorToResponse(doctor),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, doctorID uuid.UUID, tokenID string) error {
	if err := u.tokenRepo.Delete(ctx, doctorID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke token: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, &doctorID, entity.AuditActionDoctorLogout, "token", tokenID, nil)
	return nil
}

func (u *authUsecase) GetCurrentDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

// issueToken signs a fresh access token and registers it in the token store
// so it can be revoked on logout.
func (u *authUsecase) issueToken(ctx context.Context, doctor *entity.Doctor) (string, string, error) {
	token, tokenID, err := u.jwtService.GenerateToken(doctor.ID, doctor.Email)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return "", "", err
	}

	if err := u.tokenRepo.Save(ctx, doctor.ID, tokenID, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to store token: %+v", err)
		return "", "", err
	}

	return token, tokenID, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
