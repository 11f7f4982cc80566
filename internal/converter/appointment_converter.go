package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

// AppointmentToResponse converts a freshly written Appointment together with
// the patient and doctor it was validated against.
func AppointmentToResponse(appointment *entity.Appointment, patient *entity.Patient, doctor *entity.Doctor) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		DoctorID:    appointment.DoctorID,
		ScheduledAt: appointment.ScheduledAt.Format(entity.DateTimeLayout),
		Reason:      appointment.Reason,
	}

	if patient != nil {
		response.Patient = &dto.PatientSummary{
			ID:        patient.ID,
			FirstName: patient.FirstName,
			LastName:  patient.LastName,
		}
	}
	if doctor != nil {
		response.Doctor = &dto.DoctorSummary{
			ID:        doctor.ID,
			FullName:  doctor.FullName,
			Specialty: doctor.Specialty,
		}
	}

	return response
}

// AppointmentDetailToResponse converts the joined read projection
func AppointmentDetailToResponse(detail *entity.AppointmentDetail) *dto.AppointmentResponse {
	if detail == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          detail.ID,
		PatientID:   detail.PatientID,
		DoctorID:    detail.DoctorID,
		ScheduledAt: detail.ScheduledAt.Format(entity.DateTimeLayout),
		Reason:      detail.Reason,
		Patient: &dto.PatientSummary{
			ID:        detail.PatientID,
			FirstName: detail.PatientFirstName,
			LastName:  detail.PatientLastName,
		},
		Doctor: &dto.DoctorSummary{
			ID:        detail.DoctorID,
			FullName:  detail.DoctorName,
			Specialty: detail.DoctorSpecialty,
		},
	}
}

// AppointmentDetailsToResponses converts a slice of AppointmentDetail projections
func AppointmentDetailsToResponses(details []entity.AppointmentDetail) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(details))
	for i := range details {
		responses[i] = *AppointmentDetailToResponse(&details[i])
	}
	return responses
}
