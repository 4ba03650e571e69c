package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dsemenov/userbase/internal/config"
	"github.com/dsemenov/userbase/internal/logger"
	"github.com/dsemenov/userbase/internal/repository/sqlite"
	"github.com/dsemenov/userbase/internal/service"
)

// rootCmd runs the demonstration flow: one hard-coded registration
// followed by one authentication against the configured store.
var rootCmd = &cobra.Command{
	Use:   "userbase",
	Short: "Minimal user registration and authentication over a local SQLite store",
	Long: `userbase demonstrates user registration and credential verification
backed by a local SQLite database. Running it without a subcommand
registers a demo user and authenticates them.

The store location is taken from DATABASE_PATH (default: users.db).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

// Execute runs the CLI. Any unhandled failure exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error occurred: %v\n", err)
		os.Exit(1)
	}
}

// newAccountService wires config, logger, store and service. The
// returned connection is owned by the caller and must be closed.
func newAccountService(ctx context.Context) (*service.Account, *sqlite.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log := logger.New(cfg.LogLevel)

	conn, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	return service.NewAccount(sqlite.NewUserRepository(conn), log), conn, nil
}
