package entity

import "time"

// AppointmentFilter is a domain-level filter for querying appointments.
// Nil fields are not applied. From and To are inclusive bounds on ScheduledAt.
type AppointmentFilter struct {
	PatientID *int
	DoctorID  *int
	From      *time.Time
	To        *time.Time
}
