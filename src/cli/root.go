// Package cli holds the command-line entry points of the catalog server.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ARQAP/ARQAP-Catalog/src/config"
	"github.com/ARQAP/ARQAP-Catalog/src/db"
	"github.com/ARQAP/ARQAP-Catalog/src/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// RootOptions holds the configuration shared by every command.
type RootOptions struct {
	Config   *config.Config
	LogLevel string
}

// NewRootCommand creates the root command. Without a subcommand it serves.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "arqap-catalog",
		Short:         "Archaeology artifact catalog server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.LogLevel != "" {
				cfg.LogLevel = opts.LogLevel
			}
			logging.Setup(cfg.LogLevel, cfg.LogFormat)
			opts.Config = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDatabase connects, waits for the backend and migrates the schema.
func openDatabase(ctx context.Context, cfg *config.Config) (*db.Conn, error) {
	conn, err := db.Connect(db.Options{
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
		Logger:      logging.NewGormLogger(),
	})
	if err != nil {
		return nil, err
	}
	if err := db.WaitReady(ctx, conn, 5, 500*time.Millisecond); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("database not reachable: %w", err)
	}
	if err := db.Migrate(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return conn, nil
}
