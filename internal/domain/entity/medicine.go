package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medicine represents a catalog entry. The (name, dosage) pair is unique:
// "Paracetamol 500mg" and "Paracetamol 650mg" are distinct rows.
type Medicine struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_medicines_name_dosage" json:"name"`
	Dosage       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_medicines_name_dosage" json:"dosage"`
	Type         string    `gorm:"type:varchar(50);not null" json:"type"`
	Manufacturer string    `gorm:"type:varchar(100)" json:"manufacturer,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}
