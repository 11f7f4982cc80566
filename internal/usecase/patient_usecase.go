package usecase

import (
	"context"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"
	"clinic-management/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, patientID int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, patientID int) error
	GetPatient(ctx context.Context, patientID int) (*dto.PatientResponse, error)
	GetPatientByNationalID(ctx context.Context, nationalID string) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	listCache       service.ListCache
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	listCache service.ListCache,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		listCache:       listCache,
	}
}

// CreatePatient registers a patient after checking that the national ID is
// free and the birth date parses as DD-MM-YYYY.
func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.patientRepo.FindByNationalID(ctx, tx, req.NationalID)
	if err != nil {
		u.log.Warnf("Failed to find patient by national id: %+v", err)
		return nil, storageFailure("create patient", err)
	}
	if existing != nil {
		return nil, duplicateNationalID(req.NationalID)
	}

	birthDate, err := entity.ParseDate(req.BirthDate)
	if err != nil {
		return nil, invalidDate(err)
	}

	patient := &entity.Patient{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
		BirthDate:  birthDate,
		Email:      req.Email,
	}
	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "national_id") {
			return nil, duplicateNationalID(req.NationalID)
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, storageFailure("create patient", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, storageFailure("create patient", err)
	}

	u.listCache.Invalidate(ctx, service.ListCacheKeyPatients)
	u.log.Infof("Patient created: id=%d", patient.ID)
	return converter.PatientToResponse(patient), nil
}

// UpdatePatient replaces every field of an existing patient.
func (u *patientUsecase) UpdatePatient(ctx context.Context, patientID int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, storageFailure("update patient", err)
	}
	if patient == nil {
		return nil, notFound("patient", patientID)
	}

	if patient.NationalID != req.NationalID {
		holder, err := u.patientRepo.FindByNationalID(ctx, tx, req.NationalID)
		if err != nil {
			u.log.Warnf("Failed to find patient by national id: %+v", err)
			return nil, storageFailure("update patient", err)
		}
		if holder != nil && holder.ID != patientID {
			return nil, duplicateNationalID(req.NationalID)
		}
	}

	birthDate, err := entity.ParseDate(req.BirthDate)
	if err != nil {
		return nil, invalidDate(err)
	}

	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.NationalID = req.NationalID
	patient.BirthDate = birthDate
	patient.Email = req.Email

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "national_id") {
			return nil, duplicateNationalID(req.NationalID)
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, storageFailure("update patient", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, storageFailure("update patient", err)
	}

	// Appointment listings carry patient names
	u.listCache.Invalidate(ctx, service.ListCacheKeyPatients, service.ListCacheKeyAppointments)
	return converter.PatientToResponse(patient), nil
}

// DeletePatient removes a patient that has no appointments.
func (u *patientUsecase) DeletePatient(ctx context.Context, patientID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return storageFailure("delete patient", err)
	}
	if patient == nil {
		return notFound("patient", patientID)
	}

	count, err := u.appointmentRepo.CountByPatientID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to count appointments of patient %d: %+v", patientID, err)
		return storageFailure("delete patient", err)
	}
	if count > 0 {
		return hasDependents("patient", patientID, count)
	}

	affectedRows, err := u.patientRepo.Delete(ctx, tx, patientID)
	if err != nil {
		if isForeignKeyError(err, "patient_id") {
			return hasDependents("patient", patientID, 1)
		}
		u.log.Warnf("Failed delete patient: %+v", err)
		return storageFailure("delete patient", err)
	}
	if affectedRows == 0 {
		return notFound("patient", patientID)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return storageFailure("delete patient", err)
	}

	u.listCache.Invalidate(ctx, service.ListCacheKeyPatients)
	u.log.Infof("Patient deleted: id=%d", patientID)
	return nil
}

// GetPatient returns nil without error when the patient does not exist.
func (u *patientUsecase) GetPatient(ctx context.Context, patientID int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, storageFailure("get patient", err)
	}

	return converter.PatientToResponse(patient), nil
}

// GetPatientByNationalID returns nil without error when no patient holds nationalID.
func (u *patientUsecase) GetPatientByNationalID(ctx context.Context, nationalID string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByNationalID(ctx, u.db, nationalID)
	if err != nil {
		u.log.Warnf("Failed to find patient by national id: %+v", err)
		return nil, storageFailure("get patient", err)
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	var cached dto.PatientListResponse
	generation, hit := u.listCache.Load(ctx, service.ListCacheKeyPatients, &cached)
	if hit {
		return &cached, nil
	}

	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, storageFailure("list patients", err)
	}

	response := &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}
	u.listCache.Store(ctx, service.ListCacheKeyPatients, generation, response)

	return response, nil
}
