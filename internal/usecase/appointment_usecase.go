package usecase

import (
	"context"
	"strings"
	"time"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"
	"clinic-management/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID int) error
	GetAppointment(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error)
	GetAppointmentsByDoctor(ctx context.Context, doctorID int) (*dto.AppointmentListResponse, error)
	GetAppointmentsByDateRange(ctx context.Context, start, end string) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	listCache       service.ListCache
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	listCache service.ListCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		listCache:       listCache,
	}
}

// CreateAppointment books an appointment. Checks run in a fixed order:
// patient, doctor, then the date-time text. Overlapping slots are allowed.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, doctor, scheduledAt, err := u.resolveReferences(ctx, tx, "create appointment", req.PatientID, req.DoctorID, req.ScheduledAt)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		ScheduledAt: scheduledAt,
		Reason:      strings.TrimSpace(req.Reason),
	}
	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		if mapped := u.referenceViolation(err, req.PatientID, req.DoctorID); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, storageFailure("create appointment", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, storageFailure("create appointment", err)
	}

	u.listCache.Invalidate(ctx, service.ListCacheKeyAppointments)
	u.log.Infof("Appointment created: id=%d patient=%d doctor=%d", appointment.ID, appointment.PatientID, appointment.DoctorID)
	return converter.AppointmentToResponse(appointment, patient, doctor), nil
}

// UpdateAppointment replaces patient, doctor, date-time and reason.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, storageFailure("update appointment", err)
	}
	if appointment == nil {
		return nil, notFound("appointment", appointmentID)
	}

	patient, doctor, scheduledAt, err := u.resolveReferences(ctx, tx, "update appointment", req.PatientID, req.DoctorID, req.ScheduledAt)
	if err != nil {
		return nil, err
	}

	appointment.PatientID = patient.ID
	appointment.DoctorID = doctor.ID
	appointment.ScheduledAt = scheduledAt
	appointment.Reason = strings.TrimSpace(req.Reason)

	if err := u.appointmentRepo.Update(ctx, tx, appointment); err != nil {
		if mapped := u.referenceViolation(err, req.PatientID, req.DoctorID); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, storageFailure("update appointment", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, storageFailure("update appointment", err)
	}

	u.listCache.Invalidate(ctx, service.ListCacheKeyAppointments)
	return converter.AppointmentToResponse(appointment, patient, doctor), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.appointmentRepo.Delete(ctx, tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed delete appointment: %+v", err)
		return storageFailure("delete appointment", err)
	}
	if affectedRows == 0 {
		return notFound("appointment", appointmentID)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return storageFailure("delete appointment", err)
	}

	u.listCache.Invalidate(ctx, service.ListCacheKeyAppointments)
	u.log.Infof("Appointment deleted: id=%d", appointmentID)
	return nil
}

// GetAppointment returns nil without error when the appointment does not exist.
func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error) {
	detail, err := u.appointmentRepo.FindDetailByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, storageFailure("get appointment", err)
	}

	return converter.AppointmentDetailToResponse(detail), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	var cached dto.AppointmentListResponse
	generation, hit := u.listCache.Load(ctx, service.ListCacheKeyAppointments, &cached)
	if hit {
		return &cached, nil
	}

	response, err := u.findDetails(ctx, nil, "list appointments")
	if err != nil {
		return nil, err
	}
	u.listCache.Store(ctx, service.ListCacheKeyAppointments, generation, response)

	return response, nil
}

// GetAppointmentsByPatient reports ErrUnknownPatient when the patient does not exist.
func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, storageFailure("list appointments of patient", err)
	}
	if patient == nil {
		return nil, unknownPatient(patientID)
	}

	return u.findDetails(ctx, &entity.AppointmentFilter{PatientID: &patientID}, "list appointments of patient")
}

// GetAppointmentsByDoctor reports ErrUnknownDoctor when the doctor does not exist.
func (u *appointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID int) (*dto.AppointmentListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, storageFailure("list appointments of doctor", err)
	}
	if doctor == nil {
		return nil, unknownDoctor(doctorID)
	}

	return u.findDetails(ctx, &entity.AppointmentFilter{DoctorID: &doctorID}, "list appointments of doctor")
}

// GetAppointmentsByDateRange lists appointments between start 00:00:00 and
// end 23:59:59, both DD-MM-YYYY. An empty end means the start day only.
func (u *appointmentUsecase) GetAppointmentsByDateRange(ctx context.Context, start, end string) (*dto.AppointmentListResponse, error) {
	startDate, err := entity.ParseDate(start)
	if err != nil {
		return nil, invalidDate(err)
	}

	endDate := startDate
	if strings.TrimSpace(end) != "" {
		endDate, err = entity.ParseDate(end)
		if err != nil {
			return nil, invalidDate(err)
		}
	}

	if endDate.Before(startDate) {
		return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
	}

	from, to := entity.DayBounds(startDate, endDate)
	return u.findDetails(ctx, &entity.AppointmentFilter{From: &from, To: &to}, "list appointments by date")
}

func (u *appointmentUsecase) findDetails(ctx context.Context, filter *entity.AppointmentFilter, op string) (*dto.AppointmentListResponse, error) {
	details, err := u.appointmentRepo.FindDetails(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, storageFailure(op, err)
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentDetailsToResponses(details),
		Total:        len(details),
	}, nil
}

// resolveReferences loads the patient and doctor through tx and parses the
// date-time text, returning the first failing check.
func (u *appointmentUsecase) resolveReferences(
	ctx context.Context,
	tx *gorm.DB,
	op string,
	patientID, doctorID int,
	scheduledAt string,
) (*entity.Patient, *entity.Doctor, time.Time, error) {
	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, nil, time.Time{}, storageFailure(op, err)
	}
	if patient == nil {
		return nil, nil, time.Time{}, unknownPatient(patientID)
	}

	doctor, err := u.doctorRepo.FindByID(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, nil, time.Time{}, storageFailure(op, err)
	}
	if doctor == nil {
		return nil, nil, time.Time{}, unknownDoctor(doctorID)
	}

	at, err := entity.ParseDateTime(scheduledAt)
	if err != nil {
		return nil, nil, time.Time{}, invalidDateTime(err)
	}

	return patient, doctor, at, nil
}

// referenceViolation maps a foreign key rejection raised by the database
// after the existence checks passed.
func (u *appointmentUsecase) referenceViolation(err error, patientID, doctorID int) error {
	switch {
	case isForeignKeyError(err, "patient_id"):
		return unknownPatient(patientID)
	case isForeignKeyError(err, "doctor_id"):
		return unknownDoctor(doctorID)
	}
	return nil
}
