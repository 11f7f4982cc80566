package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"clinic-management/internal/delivery/dto"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printPatients(w io.Writer, patients []dto.PatientResponse) {
	if len(patients) == 0 {
		fmt.Fprintln(w, "No patients registered.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tLAST NAME\tFIRST NAME\tNATIONAL ID\tBIRTH DATE\tEMAIL")
	for _, p := range patients {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.LastName, p.FirstName, p.NationalID, p.BirthDate, orDash(p.Email))
	}
	tw.Flush()
}

func printPatient(w io.Writer, p *dto.PatientResponse) {
	printPatients(w, []dto.PatientResponse{*p})
}

func printDoctors(w io.Writer, doctors []dto.DoctorResponse) {
	if len(doctors) == 0 {
		fmt.Fprintln(w, "No doctors found.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSPECIALTY\tEMAIL")
	for _, d := range doctors {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", d.ID, d.FullName, d.Specialty, orDash(d.Email))
	}
	tw.Flush()
}

func printDoctor(w io.Writer, d *dto.DoctorResponse) {
	printDoctors(w, []dto.DoctorResponse{*d})
}

func printAppointments(w io.Writer, appointments []dto.AppointmentResponse) {
	if len(appointments) == 0 {
		fmt.Fprintln(w, "No appointments found.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE-TIME\tPATIENT\tDOCTOR\tSPECIALTY\tREASON")
	for _, a := range appointments {
		patient, doctor, specialty := fmt.Sprintf("#%d", a.PatientID), fmt.Sprintf("#%d", a.DoctorID), "-"
		if a.Patient != nil {
			patient = a.Patient.FirstName + " " + a.Patient.LastName
		}
		if a.Doctor != nil {
			doctor = a.Doctor.FullName
			specialty = a.Doctor.Specialty
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.ScheduledAt, patient, doctor, specialty, orDash(a.Reason))
	}
	tw.Flush()
}

func printAppointment(w io.Writer, a *dto.AppointmentResponse) {
	printAppointments(w, []dto.AppointmentResponse{*a})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
