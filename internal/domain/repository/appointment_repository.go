package repository

import (
	"context"

	"clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error)
	FindDetailByID(ctx context.Context, db *gorm.DB, id int) (*entity.AppointmentDetail, error)
	FindDetails(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.AppointmentDetail, error)
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	CountByPatientID(ctx context.Context, db *gorm.DB, patientID int) (int64, error)
	CountByDoctorID(ctx context.Context, db *gorm.DB, doctorID int) (int64, error)
}
