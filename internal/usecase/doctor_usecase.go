package usecase

import (
	"context"
	"strings"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"
	"clinic-management/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, doctorID int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID int) error
	GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error)
	SearchDoctorsBySpecialty(ctx context.Context, specialty string) (*dto.DoctorListResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	listCache       service.ListCache
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	listCache service.ListCache,
) DoctorUsecase {
	return &doctorUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		listCache:       listCache,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		FullName:  req.FullName,
		Specialty: req.Specialty,
		Email:     req.Email,
	}
	if err := u.doctorRepo.Create(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, storageFailure("create doctor", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, storageFailure("create doctor", err)
	}

	u.listCache.Invalidate(ctx, service.ListCacheKeyDoctors)
	u.log.Infof("Doctor created: id=%d", doctor.ID)
	return converter.DoctorToResponse(doctor), nil
}

// UpdateDoctor replaces every field of an existing doctor.
func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, storageFailure("update doctor", err)
	}
	if doctor == nil {
		return nil, notFound("doctor", doctorID)
	}

	doctor.FullName = req.FullName
	doctor.Specialty = req.Specialty
	doctor.Email = req.Email

	if err := u.doctorRepo.Update(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, storageFailure("update doctor", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, storageFailure("update doctor", err)
	}

	// Appointment listings carry the doctor name and specialty
	u.listCache.Invalidate(ctx, service.ListCacheKeyDoctors, service.ListCacheKeyAppointments)
	return converter.DoctorToResponse(doctor), nil
}

// DeleteDoctor removes a doctor that has no appointments.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return storageFailure("delete doctor", err)
	}
	if doctor == nil {
		return notFound("doctor", doctorID)
	}

	count, err := u.appointmentRepo.CountByDoctorID(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to count appointments of doctor %d: %+v", doctorID, err)
		return storageFailure("delete doctor", err)
	}
	if count > 0 {
		return hasDependents("doctor", doctorID, count)
	}

	affectedRows, err := u.doctorRepo.Delete(ctx, tx, doctorID)
	if err != nil {
		if isForeignKeyError(err, "doctor_id") {
			return hasDependents("doctor", doctorID, 1)
		}
		u.log.Warnf("Failed delete doctor: %+v", err)
		return storageFailure("delete doctor", err)
	}
	if affectedRows == 0 {
		return notFound("doctor", doctorID)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return storageFailure("delete doctor", err)
	}

	u.listCache.Invalidate(ctx, service.ListCacheKeyDoctors)
	u.log.Infof("Doctor deleted: id=%d", doctorID)
	return nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, storageFailure("get doctor", err)
	}

	return converter.DoctorToResponse(doctor), nil
}

// SearchDoctorsBySpecialty matches specialty as a case-insensitive substring.
func (u *doctorUsecase) SearchDoctorsBySpecialty(ctx context.Context, specialty string) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindBySpecialty(ctx, u.db, strings.TrimSpace(specialty))
	if err != nil {
		u.log.Warnf("Failed to find doctors by specialty: %+v", err)
		return nil, storageFailure("search doctors", err)
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	var cached dto.DoctorListResponse
	generation, hit := u.listCache.Load(ctx, service.ListCacheKeyDoctors, &cached)
	if hit {
		return &cached, nil
	}

	doctors, err := u.doctorRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, storageFailure("list doctors", err)
	}

	response := &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}
	u.listCache.Store(ctx, service.ListCacheKeyDoctors, generation, response)

	return response, nil
}
