package cli

import (
	"errors"
	"fmt"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/usecase"

	"github.com/spf13/cobra"
)

type appointmentFlags struct {
	patientID   int
	doctorID    int
	scheduledAt string
	reason      string
}

func (f *appointmentFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.patientID, "patient", 0, "patient id")
	cmd.Flags().IntVar(&f.doctorID, "doctor", 0, "doctor id")
	cmd.Flags().StringVar(&f.scheduledAt, "at", "", "date and time as DD-MM-YYYY HH:MM")
	cmd.Flags().StringVar(&f.reason, "reason", "", "reason for the visit (optional)")
}

func (cc *commandContext) appointmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointment",
		Aliases: []string{"appointments"},
		Short:   "Manage appointments",
	}

	cmd.AddCommand(cc.appointmentCreateCmd())
	cmd.AddCommand(cc.appointmentUpdateCmd())
	cmd.AddCommand(cc.appointmentDeleteCmd())
	cmd.AddCommand(cc.appointmentGetCmd())
	cmd.AddCommand(cc.appointmentListCmd())
	cmd.AddCommand(cc.appointmentByPatientCmd())
	cmd.AddCommand(cc.appointmentByDoctorCmd())
	cmd.AddCommand(cc.appointmentRangeCmd())

	return cmd
}

func (cc *commandContext) appointmentCreateCmd() *cobra.Command {
	var flags appointmentFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book an appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &dto.CreateAppointmentRequest{
				PatientID:   flags.patientID,
				DoctorID:    flags.doctorID,
				ScheduledAt: flags.scheduledAt,
				Reason:      flags.reason,
			}
			if err := cc.validate(req); err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				appointment, err := rt.Usecases().Appointments.CreateAppointment(commandContextOf(cmd), req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Appointment booked with id %d\n", appointment.ID)
				return nil
			})
		},
	}
	flags.bind(cmd)
	return cmd
}

func (cc *commandContext) appointmentUpdateCmd() *cobra.Command {
	var flags appointmentFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace patient, doctor, date-time and reason of an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := &dto.UpdateAppointmentRequest{
				PatientID:   flags.patientID,
				DoctorID:    flags.doctorID,
				ScheduledAt: flags.scheduledAt,
				Reason:      flags.reason,
			}
			if err := cc.validate(req); err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				if _, err := rt.Usecases().Appointments.UpdateAppointment(commandContextOf(cmd), id, req); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Appointment %d updated\n", id)
				return nil
			})
		},
	}
	flags.bind(cmd)
	return cmd
}

func (cc *commandContext) appointmentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				if err := rt.Usecases().Appointments.DeleteAppointment(commandContextOf(cmd), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Appointment %d deleted\n", id)
				return nil
			})
		},
	}
}

func (cc *commandContext) appointmentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				appointment, err := rt.Usecases().Appointments.GetAppointment(commandContextOf(cmd), id)
				if err != nil {
					return err
				}
				if appointment == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "No appointment found with id %d\n", id)
					return nil
				}
				printAppointment(cmd.OutOrStdout(), appointment)
				return nil
			})
		},
	}
}

func (cc *commandContext) appointmentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every appointment by date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cc.withRuntime(func(rt Runtime) error {
				list, err := rt.Usecases().Appointments.GetAllAppointments(commandContextOf(cmd))
				if err != nil {
					return err
				}
				printAppointments(cmd.OutOrStdout(), list.Appointments)
				return nil
			})
		},
	}
}

func (cc *commandContext) appointmentByPatientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-patient <patient-id>",
		Short: "List the appointments of a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				list, err := rt.Usecases().Appointments.GetAppointmentsByPatient(commandContextOf(cmd), id)
				return printReferencedList(cmd, list, err)
			})
		},
	}
}

func (cc *commandContext) appointmentByDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-doctor <doctor-id>",
		Short: "List the appointments of a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				list, err := rt.Usecases().Appointments.GetAppointmentsByDoctor(commandContextOf(cmd), id)
				return printReferencedList(cmd, list, err)
			})
		},
	}
}

func (cc *commandContext) appointmentRangeCmd() *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "range",
		Short: "List appointments between two days, inclusive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &dto.AppointmentDateRangeRequest{Start: start, End: end}
			if err := cc.validate(req); err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				list, err := rt.Usecases().Appointments.GetAppointmentsByDateRange(commandContextOf(cmd), req.Start, req.End)
				if err != nil {
					return err
				}
				printAppointments(cmd.OutOrStdout(), list.Appointments)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first day as DD-MM-YYYY")
	cmd.Flags().StringVar(&end, "end", "", "last day as DD-MM-YYYY (defaults to the start day)")
	return cmd
}

// printReferencedList shows an empty listing followed by the condition when
// the referenced patient or doctor does not exist.
func printReferencedList(cmd *cobra.Command, list *dto.AppointmentListResponse, err error) error {
	if errors.Is(err, usecase.ErrUnknownPatient) || errors.Is(err, usecase.ErrUnknownDoctor) {
		printAppointments(cmd.OutOrStdout(), nil)
		fmt.Fprintln(cmd.OutOrStdout(), err.Error())
		return nil
	}
	if err != nil {
		return err
	}

	printAppointments(cmd.OutOrStdout(), list.Appointments)
	return nil
}
