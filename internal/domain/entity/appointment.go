package entity

import "time"

// Appointment links a patient and a doctor at a given date and time.
// It holds the references by ID only; see AppointmentDetail for the
// read-side view that carries patient and doctor display fields.
type Appointment struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int       `gorm:"not null;index" json:"patient_id"`
	DoctorID    int       `gorm:"not null;index" json:"doctor_id"`
	ScheduledAt time.Time `gorm:"not null;index" json:"scheduled_at"`
	Reason      string    `gorm:"type:varchar(255)" json:"reason,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentDetail is a read-only projection of an appointment joined with
// the display fields of its patient and doctor. It is only ever produced by
// query methods and is never written back.
type AppointmentDetail struct {
	ID               int
	PatientID        int
	DoctorID         int
	ScheduledAt      time.Time
	Reason           string
	PatientFirstName string
	PatientLastName  string
	DoctorName       string
	DoctorSpecialty  string
}
