package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a prescriber account
type Doctor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Type         string    `gorm:"type:varchar(100)" json:"type,omitempty"`
	MobileNumber int64     `gorm:"type:bigint" json:"mobile_number,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Prescriptions []Prescription `gorm:"foreignKey:DoctorID" json:"prescriptions,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
