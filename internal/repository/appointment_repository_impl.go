package repository

import (
	"context"
	"errors"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"gorm.io/gorm"
)

const appointmentDetailColumns = `
	appointments.id,
	appointments.patient_id,
	appointments.doctor_id,
	appointments.scheduled_at,
	appointments.reason,
	patients.first_name AS patient_first_name,
	patients.last_name AS patient_last_name,
	doctors.full_name AS doctor_name,
	doctors.specialty AS doctor_specialty`

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindDetailByID(ctx context.Context, db *gorm.DB, id int) (*entity.AppointmentDetail, error) {
	var details []entity.AppointmentDetail
	err := r.detailQuery(ctx, db).
		Where("appointments.id = ?", id).
		Limit(1).
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

// FindDetails returns appointments joined with patient and doctor display
// fields, ordered by date-time. Supports optional filters: patient, doctor
// and an inclusive date-time window.
func (r *appointmentRepository) FindDetails(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.AppointmentDetail, error) {
	query := r.detailQuery(ctx, db)

	if filter != nil {
		if filter.PatientID != nil {
			query = query.Where("appointments.patient_id = ?", *filter.PatientID)
		}
		if filter.DoctorID != nil {
			query = query.Where("appointments.doctor_id = ?", *filter.DoctorID)
		}
		if filter.From != nil {
			query = query.Where("appointments.scheduled_at >= ?", *filter.From)
		}
		if filter.To != nil {
			query = query.Where("appointments.scheduled_at <= ?", *filter.To)
		}
	}

	details := []entity.AppointmentDetail{}
	err := query.
		Order("appointments.scheduled_at ASC, appointments.id ASC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

// Update replaces patient, doctor, date-time and reason of the row.
func (r *appointmentRepository) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByPatientID(ctx context.Context, db *gorm.DB, patientID int) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).Where("patient_id = ?", patientID).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByDoctorID(ctx context.Context, db *gorm.DB, doctorID int) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).Where("doctor_id = ?", doctorID).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) detailQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("appointments").
		Select(appointmentDetailColumns).
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id")
}
