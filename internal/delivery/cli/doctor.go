package cli

import (
	"fmt"

	"clinic-management/internal/delivery/dto"

	"github.com/spf13/cobra"
)

type doctorFlags struct {
	fullName  string
	specialty string
	email     string
}

func (f *doctorFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.fullName, "name", "", "full name")
	cmd.Flags().StringVar(&f.specialty, "specialty", "", "medical specialty")
	cmd.Flags().StringVar(&f.email, "email", "", "email address (optional)")
}

func (cc *commandContext) doctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"doctors"},
		Short:   "Manage doctors",
	}

	cmd.AddCommand(cc.doctorCreateCmd())
	cmd.AddCommand(cc.doctorUpdateCmd())
	cmd.AddCommand(cc.doctorDeleteCmd())
	cmd.AddCommand(cc.doctorGetCmd())
	cmd.AddCommand(cc.doctorSearchCmd())
	cmd.AddCommand(cc.doctorListCmd())

	return cmd
}

func (cc *commandContext) doctorCreateCmd() *cobra.Command {
	var flags doctorFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a doctor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &dto.CreateDoctorRequest{
				FullName:  flags.fullName,
				Specialty: flags.specialty,
				Email:     flags.email,
			}
			if err := cc.validate(req); err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				doctor, err := rt.Usecases().Doctors.CreateDoctor(commandContextOf(cmd), req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Doctor registered with id %d\n", doctor.ID)
				return nil
			})
		},
	}
	flags.bind(cmd)
	return cmd
}

func (cc *commandContext) doctorUpdateCmd() *cobra.Command {
	var flags doctorFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace every field of a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := &dto.UpdateDoctorRequest{
				FullName:  flags.fullName,
				Specialty: flags.specialty,
				Email:     flags.email,
			}
			if err := cc.validate(req); err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				if _, err := rt.Usecases().Doctors.UpdateDoctor(commandContextOf(cmd), id, req); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Doctor %d updated\n", id)
				return nil
			})
		},
	}
	flags.bind(cmd)
	return cmd
}

func (cc *commandContext) doctorDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a doctor without appointments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				if err := rt.Usecases().Doctors.DeleteDoctor(commandContextOf(cmd), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Doctor %d deleted\n", id)
				return nil
			})
		},
	}
}

func (cc *commandContext) doctorGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return cc.withRuntime(func(rt Runtime) error {
				doctor, err := rt.Usecases().Doctors.GetDoctor(commandContextOf(cmd), id)
				if err != nil {
					return err
				}
				if doctor == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "No doctor found with id %d\n", id)
					return nil
				}
				printDoctor(cmd.OutOrStdout(), doctor)
				return nil
			})
		},
	}
}

func (cc *commandContext) doctorSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <specialty>",
		Short: "Find doctors whose specialty contains the text, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cc.withRuntime(func(rt Runtime) error {
				list, err := rt.Usecases().Doctors.SearchDoctorsBySpecialty(commandContextOf(cmd), args[0])
				if err != nil {
					return err
				}
				printDoctors(cmd.OutOrStdout(), list.Doctors)
				return nil
			})
		},
	}
}

func (cc *commandContext) doctorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List doctors by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cc.withRuntime(func(rt Runtime) error {
				list, err := rt.Usecases().Doctors.GetAllDoctors(commandContextOf(cmd))
				if err != nil {
					return err
				}
				printDoctors(cmd.OutOrStdout(), list.Doctors)
				return nil
			})
		},
	}
}
