package repository

import (
	"context"
	"testing"
	"time"

	"clinic-management/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.Patient{}, &entity.Doctor{}, &entity.Appointment{}))
	return db
}

func at(value string) time.Time {
	t, err := time.Parse(entity.DateTimeLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPatientRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewPatientRepository()

	for _, p := range []*entity.Patient{
		{FirstName: "Zoe", LastName: "Alvarez", NationalID: "111", BirthDate: at("01-01-1990 00:00")},
		{FirstName: "Ana", LastName: "Alvarez", NationalID: "222", BirthDate: at("01-01-1991 00:00")},
		{FirstName: "Bob", LastName: "Brown", NationalID: "333", BirthDate: at("01-01-1992 00:00")},
	} {
		require.NoError(t, repo.Create(ctx, db, p))
		assert.NotZero(t, p.ID)
	}

	all, err := repo.FindAll(ctx, db)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"222", "111", "333"}, []string{all[0].NationalID, all[1].NationalID, all[2].NationalID})

	found, err := repo.FindByNationalID(ctx, db, "333")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Bob", found.FirstName)

	missing, err := repo.FindByNationalID(ctx, db, "999")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = repo.FindByID(ctx, db, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	found.Email = "bob@example.com"
	require.NoError(t, repo.Update(ctx, db, found))
	reloaded, err := repo.FindByID(ctx, db, found.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", reloaded.Email)

	affected, err := repo.Delete(ctx, db, found.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.Delete(ctx, db, found.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestDoctorRepository_FindBySpecialty(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewDoctorRepository()

	require.NoError(t, repo.Create(ctx, db, &entity.Doctor{FullName: "Zoe Carter", Specialty: "Cardiology"}))
	require.NoError(t, repo.Create(ctx, db, &entity.Doctor{FullName: "Adam Reed", Specialty: "Pediatric Cardiology"}))
	require.NoError(t, repo.Create(ctx, db, &entity.Doctor{FullName: "Eve Stone", Specialty: "Dermatology"}))

	doctors, err := repo.FindBySpecialty(ctx, db, "CARDIO")
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "Adam Reed", doctors[0].FullName)
	assert.Equal(t, "Zoe Carter", doctors[1].FullName)

	doctors, err = repo.FindBySpecialty(ctx, db, "neuro")
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestDoctorRepository_FindBySpecialty_WildcardsAreLiteral(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewDoctorRepository()

	require.NoError(t, repo.Create(ctx, db, &entity.Doctor{FullName: "Zoe Carter", Specialty: "Cardiology"}))
	require.NoError(t, repo.Create(ctx, db, &entity.Doctor{FullName: "Max Power", Specialty: "100% Wellness"}))
	require.NoError(t, repo.Create(ctx, db, &entity.Doctor{FullName: "Ivy Lane", Specialty: "Sports_Medicine"}))

	doctors, err := repo.FindBySpecialty(ctx, db, "%")
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Max Power", doctors[0].FullName)

	doctors, err = repo.FindBySpecialty(ctx, db, "_ardio")
	require.NoError(t, err)
	assert.Empty(t, doctors)

	doctors, err = repo.FindBySpecialty(ctx, db, "s_m")
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Ivy Lane", doctors[0].FullName)
}

func TestAppointmentRepository_FindDetails(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	patients := NewPatientRepository()
	doctors := NewDoctorRepository()
	repo := NewAppointmentRepository()

	ana := &entity.Patient{FirstName: "Ana", LastName: "Perez", NationalID: "111", BirthDate: at("15-08-1990 00:00")}
	luis := &entity.Patient{FirstName: "Luis", LastName: "Gomez", NationalID: "222", BirthDate: at("01-01-1980 00:00")}
	require.NoError(t, patients.Create(ctx, db, ana))
	require.NoError(t, patients.Create(ctx, db, luis))
	house := &entity.Doctor{FullName: "Gregory House", Specialty: "Diagnostics"}
	require.NoError(t, doctors.Create(ctx, db, house))

	late := &entity.Appointment{PatientID: ana.ID, DoctorID: house.ID, ScheduledAt: at("11-03-2024 16:00"), Reason: "Follow-up"}
	early := &entity.Appointment{PatientID: luis.ID, DoctorID: house.ID, ScheduledAt: at("10-03-2024 09:30")}
	require.NoError(t, repo.Create(ctx, db, late))
	require.NoError(t, repo.Create(ctx, db, early))

	all, err := repo.FindDetails(ctx, db, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, early.ID, all[0].ID)
	assert.Equal(t, "Luis", all[0].PatientFirstName)
	assert.Equal(t, "Gregory House", all[1].DoctorName)
	assert.Equal(t, "Diagnostics", all[1].DoctorSpecialty)

	byPatient, err := repo.FindDetails(ctx, db, &entity.AppointmentFilter{PatientID: &ana.ID})
	require.NoError(t, err)
	require.Len(t, byPatient, 1)
	assert.Equal(t, "Follow-up", byPatient[0].Reason)

	from, to := at("10-03-2024 00:00"), at("10-03-2024 23:59")
	window, err := repo.FindDetails(ctx, db, &entity.AppointmentFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, early.ID, window[0].ID)

	detail, err := repo.FindDetailByID(ctx, db, late.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Perez", detail.PatientLastName)

	detail, err = repo.FindDetailByID(ctx, db, 99)
	require.NoError(t, err)
	assert.Nil(t, detail)

	count, err := repo.CountByDoctorID(ctx, db, house.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = repo.CountByPatientID(ctx, db, luis.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
