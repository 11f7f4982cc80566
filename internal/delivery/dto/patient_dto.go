package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	NationalID string `json:"national_id" validate:"required,max=20,number"`
	BirthDate  string `json:"birth_date" validate:"required"` // Format: DD-MM-YYYY
	Email      string `json:"email" validate:"omitempty,email,max=100"`
}

// UpdatePatientRequest replaces every field of the patient
type UpdatePatientRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	NationalID string `json:"national_id" validate:"required,max=20,number"`
	BirthDate  string `json:"birth_date" validate:"required"` // Format: DD-MM-YYYY
	Email      string `json:"email" validate:"omitempty,email,max=100"`
}

// Response DTOs

type PatientResponse struct {
	ID         int       `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	NationalID string    `json:"national_id"`
	BirthDate  string    `json:"birth_date"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
