package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mooh-ads/internal/config"
)

// app carries what every subcommand needs once the root command has
// loaded configuration.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// main is the entry point of the mooh-ads service. Subcommands serve the
// HTTP API, apply migrations, seed demo data and print route ledgers.
func main() {
	a := &app{}
	root := &cobra.Command{
		Use:           "mooh-ads",
		Short:         "Geofenced campaign dispatch for vehicle-mounted displays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.AddCommand(
		a.serveCommand(),
		a.migrateCommand(),
		a.seedCommand(),
		a.ledgerCommand(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		logger := a.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func (a *app) load() error {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = cfg.Log.NewLogger(os.Stdout, cfg.Env)
	return nil
}
