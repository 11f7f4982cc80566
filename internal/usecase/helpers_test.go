package usecase_test

import (
	"context"
	"io"
	"sync"
	"testing"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/repository"
	"clinic-management/internal/service"
	"clinic-management/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testClinic struct {
	db           *gorm.DB
	cache        *recordingCache
	patients     usecase.PatientUsecase
	doctors      usecase.DoctorUsecase
	appointments usecase.AppointmentUsecase
}

// newTestClinic wires the usecases against a private in-memory SQLite database.
func newTestClinic(t *testing.T) *testClinic {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every session on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.Patient{}, &entity.Doctor{}, &entity.Appointment{}))

	log := logrus.New()
	log.SetOutput(io.Discard)

	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	cache := &recordingCache{}

	return &testClinic{
		db:           db,
		cache:        cache,
		patients:     usecase.NewPatientUsecase(db, log, patientRepo, appointmentRepo, cache),
		doctors:      usecase.NewDoctorUsecase(db, log, doctorRepo, appointmentRepo, cache),
		appointments: usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, cache),
	}
}

func (c *testClinic) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, c.db.Model(model).Count(&n).Error)
	return n
}

func (c *testClinic) mustCreatePatient(t *testing.T, firstName, lastName, nationalID string) *dto.PatientResponse {
	t.Helper()
	patient, err := c.patients.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		FirstName:  firstName,
		LastName:   lastName,
		NationalID: nationalID,
		BirthDate:  "15-08-1990",
	})
	require.NoError(t, err)
	return patient
}

func (c *testClinic) mustCreateDoctor(t *testing.T, fullName, specialty string) *dto.DoctorResponse {
	t.Helper()
	doctor, err := c.doctors.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		FullName:  fullName,
		Specialty: specialty,
	})
	require.NoError(t, err)
	return doctor
}

func (c *testClinic) mustCreateAppointment(t *testing.T, patientID, doctorID int, scheduledAt string) *dto.AppointmentResponse {
	t.Helper()
	appointment, err := c.appointments.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   patientID,
		DoctorID:    doctorID,
		ScheduledAt: scheduledAt,
	})
	require.NoError(t, err)
	return appointment
}

// recordingCache never hits and remembers which keys were invalidated.
type recordingCache struct {
	mu          sync.Mutex
	invalidated []string
}

var _ service.ListCache = (*recordingCache)(nil)

func (c *recordingCache) Load(ctx context.Context, key string, dest interface{}) (int64, bool) {
	return 0, false
}

func (c *recordingCache) Store(ctx context.Context, key string, generation int64, value interface{}) {}

func (c *recordingCache) Invalidate(ctx context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, keys...)
}

func (c *recordingCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.invalidated...)
}

func (c *recordingCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = nil
}
