package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"clinic-management/internal/usecase"
	"clinic-management/pkg/validator"

	"github.com/spf13/cobra"
)

// Usecases groups the operations the console exposes.
type Usecases struct {
	Patients     usecase.PatientUsecase
	Doctors      usecase.DoctorUsecase
	Appointments usecase.AppointmentUsecase
}

// Runtime is a fully wired application. Commands obtain one per invocation
// and close it when done.
type Runtime interface {
	Usecases() Usecases
	Serve(ctx context.Context) error
	Migrate(direction string) (uint, error)
	Ping(ctx context.Context) error
	Close()
}

type RuntimeFactory func() (Runtime, error)

type commandContext struct {
	newRuntime RuntimeFactory
	validator  *validator.CustomValidator
}

func NewRootCommand(newRuntime RuntimeFactory) *cobra.Command {
	cc := &commandContext{
		newRuntime: newRuntime,
		validator:  validator.NewValidator(),
	}

	rootCmd := &cobra.Command{
		Use:           "clinic",
		Short:         "Clinic management: patients, doctors and appointments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cc.serveCmd())
	rootCmd.AddCommand(cc.migrateCmd())
	rootCmd.AddCommand(cc.pingCmd())
	rootCmd.AddCommand(cc.patientCmd())
	rootCmd.AddCommand(cc.doctorCmd())
	rootCmd.AddCommand(cc.appointmentCmd())

	return rootCmd
}

// Execute runs the root command and prints the failure, if any, to stderr.
func Execute(newRuntime RuntimeFactory) int {
	rootCmd := NewRootCommand(newRuntime)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

func (cc *commandContext) withRuntime(fn func(rt Runtime) error) error {
	rt, err := cc.newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	return fn(rt)
}

// validate joins the field messages reported for req in field order.
func (cc *commandContext) validate(req interface{}) error {
	err := cc.validator.Validate(req)
	if err == nil {
		return nil
	}

	messages := cc.validator.FormatValidationErrors(err)
	if len(messages) == 0 {
		return err
	}
	fields := make([]string, 0, len(messages))
	for field := range messages {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	lines := make([]string, len(fields))
	for i, field := range fields {
		lines[i] = messages[field]
	}
	return errors.New(strings.Join(lines, "; "))
}

func (cc *commandContext) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(commandContextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return cc.withRuntime(func(rt Runtime) error {
				return rt.Serve(ctx)
			})
		},
	}
}

func (cc *commandContext) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	for _, direction := range []struct {
		use   string
		short string
	}{
		{"up", "Apply pending migrations"},
		{"down", "Revert the latest migration"},
	} {
		direction := direction
		cmd.AddCommand(&cobra.Command{
			Use:   direction.use,
			Short: direction.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return cc.withRuntime(func(rt Runtime) error {
					version, err := rt.Migrate(direction.use)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Migration %s complete, schema version %d\n", direction.use, version)
					return nil
				})
			},
		})
	}

	return cmd
}

func (cc *commandContext) pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the database connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cc.withRuntime(func(rt Runtime) error {
				if err := rt.Ping(commandContextOf(cmd)); err != nil {
					return fmt.Errorf("database unreachable: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Database connection OK")
				return nil
			})
		},
	}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func commandContextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
