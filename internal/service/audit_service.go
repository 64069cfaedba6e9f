package service

import (
	"context"

	"clinic-prescription-api/internal/domain/entity"
	"clinic-prescription-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuditService records an audit trail row for state-changing operations.
// Failures are logged and swallowed: the audit trail must never fail the
// clinical operation it describes.
type AuditService interface {
	LogCreate(ctx context.Context, doctorID *uuid.UUID, action, entityName, entityID string, newValue interface{})
	LogDelete(ctx context.Context, doctorID *uuid.UUID, action, entityName, entityID string, oldValue interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(ctx context.Context, doctorID *uuid.UUID, action, entityName, entityID string, newValue interface{}) {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	}

	auditLog := &entity.AuditLog{
		DoctorID: doctorID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}

func (s *auditService) LogDelete(ctx context.Context, doctorID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	}

	auditLog := &entity.AuditLog{
		DoctorID: doctorID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}
