package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"doggo/internal/config"
	"doggo/internal/router"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			b, err := openBackend(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			defer b.Close()

			if migrate && b.store != nil {
				if err := b.store.Migrate(ctx); err != nil {
					return err
				}
			}

			srv := &http.Server{
				Addr: net.JoinHostPort("", cfg.Server.Port),
				Handler: router.NewRouter(router.Options{
					Repos:  &b.repos,
					Health: b.health,
					Logger: log,
				}),
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
				IdleTimeout:  cfg.Server.IdleTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting server", map[string]any{"addr": srv.Addr, "driver": cfg.Database.Driver})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down", nil)
			sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(sctx)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the schema before serving (SQL drivers only)")
	return cmd
}
