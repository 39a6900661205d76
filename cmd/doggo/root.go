package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"doggo/internal/adapters/storage"
	"doggo/internal/adapters/storage/memory"
	"doggo/internal/adapters/storage/sqldb"
	"doggo/internal/config"
	"doggo/internal/platform/logger"
	"doggo/internal/router"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "doggo",
		Short: "Owners, dogs, walkers and walks",
		Long: `doggo serves the dog-walking HTTP API and queries a running server.

Configuration comes from DOGGO_* environment variables (a .env file is
loaded if present), e.g. DOGGO_DATABASE_DRIVER=sqlite DOGGO_DATABASE_DSN=file:doggo.db`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newOwnersCmd())
	root.AddCommand(newWalkersCmd())
	root.AddCommand(newNeighborhoodsCmd())
	return root
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
}

// backend es el storage elegido por config más lo necesario para cerrarlo.
type backend struct {
	repos  storage.Repositories
	health router.Pinger
	store  *sqldb.Store
}

func (b *backend) Close() error {
	if b.store == nil {
		return nil
	}
	return b.store.Close()
}

func openBackend(ctx context.Context, cfg config.DatabaseConfig, log logger.Logger) (*backend, error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn("using in-memory storage; data is lost on exit", nil)
		return &backend{repos: memory.NewRepositories()}, nil
	}

	s, err := sqldb.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return &backend{repos: sqldb.NewRepositories(s), health: s, store: s}, nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema for the configured SQL driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Database.Driver == config.DriverMemory {
				return fmt.Errorf("migrate: driver %q has no schema", cfg.Database.Driver)
			}

			log := newLogger(cfg)
			b, err := openBackend(cmd.Context(), cfg.Database, log)
			if err != nil {
				return err
			}
			defer b.Close()

			return b.store.Migrate(cmd.Context())
		},
	}
}
