package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	FullName  string `json:"full_name" validate:"required,max=100"`
	Specialty string `json:"specialty" validate:"required,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
}

type UpdateDoctorRequest struct {
	FullName  string `json:"full_name" validate:"required,max=100"`
	Specialty string `json:"specialty" validate:"required,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
}

// Response DTOs

type DoctorResponse struct {
	ID        int       `json:"id"`
	FullName  string    `json:"full_name"`
	Specialty string    `json:"specialty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
