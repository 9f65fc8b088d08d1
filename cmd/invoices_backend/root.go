package main

import (
	"log/slog"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/platform/config"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root has loaded configuration.
type app struct {
	logger *slog.Logger
	cfg    *config.Config
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	a := &app{logger: logger}

	cmd := &cobra.Command{
		Use:           "invoices_backend",
		Short:         "Invoices dashboard backend",
		Long:          "Serves the invoices dashboard: invoice form actions, the invoices listing and customers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newMigrateCmd(a))
	cmd.AddCommand(newSeedCmd(a))
	return cmd
}
