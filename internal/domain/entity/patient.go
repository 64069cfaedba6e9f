package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a person receiving prescriptions. PatientCode is the
// human-assigned identifier supplied by the doctor, distinct from the
// internal primary key. Patients are created lazily by the first
// prescription that references an unknown code.
type Patient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientCode  string    `gorm:"column:patient_code;type:varchar(50);uniqueIndex;not null" json:"patient_code"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	MobileNumber int64     `gorm:"type:bigint" json:"mobile_number,omitempty"`
	Problem      string    `gorm:"type:varchar(500)" json:"problem,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Prescriptions []Prescription `gorm:"foreignKey:PatientID" json:"prescriptions,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
