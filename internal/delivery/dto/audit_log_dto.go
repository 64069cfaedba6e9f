package dto

import (
	"time"

	"clinic-prescription-api/internal/domain/entity"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64           `json:"id"`
	Doctor    *DoctorResponse `json:"doctor,omitempty"`
	Action    string          `json:"action"`
	Metadata  entity.JSON     `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
