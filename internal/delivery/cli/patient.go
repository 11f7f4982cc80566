package cli

import (
	"fmt"

	"clinic-management/internal/delivery/dto"

	"github.com/spf13/cobra"
)

type patientFlags struct {
	firstName  string
	lastName   string
	nationalID string
	birthDate  string
	email      string
}

func (f *patientFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&f.nationalID, "national-id", "", "national identity number, digits only")
	cmd.Flags().StringVar(&f.birthDate, "birth-date", "", "birth date as DD-MM-YYYY")
	cmd.Flags().StringVar(&f.email, "email", "", "email address (optional)")
}

func (cc *commandContext) patientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patient",
		Aliases: []string{"patients"},
		Short:   "Manage patients",
	}

	cmd.AddCommand(cc.patientCreateCmd())
	cmd.AddCommand(cc.patientUpdateCmd())
	cmd.AddCommand(cc.patientDeleteCmd())
	cmd.AddCommand(cc.patientGetCmd())
	cmd.AddCommand(cc.patientFindCmd())
	cmd.AddCommand(cc.patientListCmd())

	return cmd
}

func (cc *commandContext) patientCreateCmd() *cobra.Command {
	var flags patientFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &dto.CreatePatientRequest{
				FirstName:  flags.firstName,
				LastName:   flags.lastName,
				NationalID: flags.nationalID,
				BirthDate:  flags.birthDate,
				Email:      flags.email,
			}
			if err := cc.validate(req); err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				patient, err := rt.Usecases().Patients.CreatePatient(commandContextOf(cmd), req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Patient registered with id %d\n", patient.ID)
				return nil
			})
		},
	}
	flags.bind(cmd)
	return cmd
}

func (cc *commandContext) patientUpdateCmd() *cobra.Command {
	var flags patientFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace every field of a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := &dto.UpdatePatientRequest{
				FirstName:  flags.firstName,
				LastName:   flags.lastName,
				NationalID: flags.nationalID,
				BirthDate:  flags.birthDate,
				Email:      flags.email,
			}
			if err := cc.validate(req); err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				if _, err := rt.Usecases().Patients.UpdatePatient(commandContextOf(cmd), id, req); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Patient %d updated\n", id)
				return nil
			})
		},
	}
	flags.bind(cmd)
	return cmd
}

func (cc *commandContext) patientDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a patient without appointments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				if err := rt.Usecases().Patients.DeletePatient(commandContextOf(cmd), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Patient %d deleted\n", id)
				return nil
			})
		},
	}
}

func (cc *commandContext) patientGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				patient, err := rt.Usecases().Patients.GetPatient(commandContextOf(cmd), id)
				if err != nil {
					return err
				}
				if patient == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "No patient found with id %d\n", id)
					return nil
				}
				printPatient(cmd.OutOrStdout(), patient)
				return nil
			})
		},
	}
}

func (cc *commandContext) patientFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <national-id>",
		Short: "Find a patient by national identity number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cc.withRuntime(func(rt Runtime) error {
				patient, err := rt.Usecases().Patients.GetPatientByNationalID(commandContextOf(cmd), args[0])
				if err != nil {
					return err
				}
				if patient == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "No patient found with national id %s\n", args[0])
					return nil
				}
				printPatient(cmd.OutOrStdout(), patient)
				return nil
			})
		},
	}
}

func (cc *commandContext) patientListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List patients by last name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cc.withRuntime(func(rt Runtime) error {
				list, err := rt.Usecases().Patients.GetAllPatients(commandContextOf(cmd))
				if err != nil {
					return err
				}
				printPatients(cmd.OutOrStdout(), list.Patients)
				return nil
			})
		},
	}
}
