package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,min=5,max=255"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email,min=5,max=255"`
	Password     string `json:"password" validate:"required,min=6,max=100"`
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Type         string `json:"type" validate:"omitempty,max=100"`
	MobileNumber int64  `json:"mobileNumber" validate:"required,mobile"`
}

// Response DTOs

type DoctorResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Type         string    `json:"type,omitempty"`
	MobileNumber int64     `json:"mobileNumber,omitempty"`
}

// AuthResponse is returned by both register and login
type AuthResponse struct {
	Token  string         `json:"token"`
	Doctor DoctorResponse `json:"doctor"`
}
