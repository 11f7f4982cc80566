package handler

import (
	"context"

	"clinic-management/internal/delivery/dto"
)

type mockPatientUsecase struct {
	createFn     func(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	updateFn     func(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	deleteFn     func(ctx context.Context, id int) error
	getFn        func(ctx context.Context, id int) (*dto.PatientResponse, error)
	byNationalFn func(ctx context.Context, nationalID string) (*dto.PatientResponse, error)
	getAllFn     func(ctx context.Context) (*dto.PatientListResponse, error)
}

func (m *mockPatientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockPatientUsecase) UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockPatientUsecase) DeletePatient(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

func (m *mockPatientUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	return m.getFn(ctx, id)
}

func (m *mockPatientUsecase) GetPatientByNationalID(ctx context.Context, nationalID string) (*dto.PatientResponse, error) {
	return m.byNationalFn(ctx, nationalID)
}

func (m *mockPatientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	return m.getAllFn(ctx)
}

type mockDoctorUsecase struct {
	createFn func(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	updateFn func(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	deleteFn func(ctx context.Context, id int) error
	getFn    func(ctx context.Context, id int) (*dto.DoctorResponse, error)
	searchFn func(ctx context.Context, specialty string) (*dto.DoctorListResponse, error)
	getAllFn func(ctx context.Context) (*dto.DoctorListResponse, error)
}

func (m *mockDoctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockDoctorUsecase) UpdateDoctor(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockDoctorUsecase) DeleteDoctor(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

func (m *mockDoctorUsecase) GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	return m.getFn(ctx, id)
}

func (m *mockDoctorUsecase) SearchDoctorsBySpecialty(ctx context.Context, specialty string) (*dto.DoctorListResponse, error) {
	return m.searchFn(ctx, specialty)
}

func (m *mockDoctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	return m.getAllFn(ctx)
}

type mockAppointmentUsecase struct {
	createFn      func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	updateFn      func(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	deleteFn      func(ctx context.Context, id int) error
	getFn         func(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	getAllFn      func(ctx context.Context) (*dto.AppointmentListResponse, error)
	byPatientFn   func(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error)
	byDoctorFn    func(ctx context.Context, doctorID int) (*dto.AppointmentListResponse, error)
	byDateRangeFn func(ctx context.Context, start, end string) (*dto.AppointmentListResponse, error)
}

func (m *mockAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockAppointmentUsecase) UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockAppointmentUsecase) DeleteAppointment(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

func (m *mockAppointmentUsecase) GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	return m.getFn(ctx, id)
}

func (m *mockAppointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return m.getAllFn(ctx)
}

func (m *mockAppointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error) {
	return m.byPatientFn(ctx, patientID)
}

func (m *mockAppointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID int) (*dto.AppointmentListResponse, error) {
	return m.byDoctorFn(ctx, doctorID)
}

func (m *mockAppointmentUsecase) GetAppointmentsByDateRange(ctx context.Context, start, end string) (*dto.AppointmentListResponse, error) {
	return m.byDateRangeFn(ctx, start, end)
}
