package dto

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID   int    `json:"patient_id" validate:"required,min=1"`
	DoctorID    int    `json:"doctor_id" validate:"required,min=1"`
	ScheduledAt string `json:"scheduled_at" validate:"required"` // Format: DD-MM-YYYY HH:MM
	Reason      string `json:"reason" validate:"omitempty,max=255"`
}

// UpdateAppointmentRequest replaces patient, doctor, date-time and reason
type UpdateAppointmentRequest struct {
	PatientID   int    `json:"patient_id" validate:"required,min=1"`
	DoctorID    int    `json:"doctor_id" validate:"required,min=1"`
	ScheduledAt string `json:"scheduled_at" validate:"required"` // Format: DD-MM-YYYY HH:MM
	Reason      string `json:"reason" validate:"omitempty,max=255"`
}

type AppointmentDateRangeRequest struct {
	Start string `json:"start" validate:"required"` // Format: DD-MM-YYYY
	End   string `json:"end"`                       // Format: DD-MM-YYYY, optional
}

// Response DTOs

// PatientSummary and DoctorSummary are display-only copies attached to
// appointment responses.
type PatientSummary struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type DoctorSummary struct {
	ID        int    `json:"id"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
}

type AppointmentResponse struct {
	ID          int             `json:"id"`
	PatientID   int             `json:"patient_id"`
	DoctorID    int             `json:"doctor_id"`
	ScheduledAt string          `json:"scheduled_at"`
	Reason      string          `json:"reason,omitempty"`
	Patient     *PatientSummary `json:"patient,omitempty"`
	Doctor      *DoctorSummary  `json:"doctor,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
