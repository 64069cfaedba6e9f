package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimingType represents a dosing slot for a prescription timing
type TimingType string

const (
	TimingMorning   TimingType = "MORNING"
	TimingAfternoon TimingType = "AFTERNOON"
	TimingEvening   TimingType = "EVENING"
	TimingCustom    TimingType = "CUSTOM"
)

// IsValid reports whether the timing type is one of the known slots
func (t TimingType) IsValid() bool {
	switch t {
	case TimingMorning, TimingAfternoon, TimingEvening, TimingCustom:
		return true
	}
	return false
}

// Prescription represents a clinical order issued by one doctor for one
// patient and one medicine. Timings are created and deleted together with
// the prescription; a prescription without its full timing list must never
// be observable.
type Prescription struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	MedicineID uuid.UUID `gorm:"type:uuid;not null;index" json:"medicine_id"`
	Notes      string    `gorm:"type:varchar(500)" json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Doctor   Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient  Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Medicine Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
	Timings  []Timing `gorm:"foreignKey:PrescriptionID;constraint:OnDelete:CASCADE" json:"timings,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// Timing represents one dosing instruction attached to a prescription.
// CustomTime is set only when TimingType is CUSTOM (24-hour HH:MM).
type Timing struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PrescriptionID uuid.UUID  `gorm:"type:uuid;not null;index" json:"prescription_id"`
	TimingType     TimingType `gorm:"type:varchar(20);not null" json:"timing_type"`
	CustomTime     *string    `gorm:"type:varchar(5)" json:"custom_time,omitempty"`
}

func (Timing) TableName() string {
	return "timings"
}
