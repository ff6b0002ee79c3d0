package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"license-management/internal/adapters/hoststore"
	pg "license-management/internal/adapters/storage/postgres"
	"license-management/internal/platform/logger"
	"license-management/internal/router"
)

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := router.Options{
				Logger:       log,
				WindowDays:   cfg.Dashboard.ExpiringWindowDays,
				FixturesPath: cfg.Fixtures.Path,
			}

			if cfg.UsePostgres() {
				pool, err := pg.Open(ctx, cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer pool.Close()

				if err := pg.Migrate(ctx, cfg.Database.DSN); err != nil {
					return err
				}
				opts.DB = pool
				log.Info("using postgres storage", nil)
			} else {
				log.Info("using in-memory storage", logger.Fields{"fixtures": cfg.Fixtures.Path})
			}

			if cfg.UseHostStore() {
				hs, err := hoststore.New(hoststore.Config{
					BaseURL: cfg.HostStore.BaseURL,
					Timeout: cfg.HostStore.Timeout,
				})
				if err != nil {
					return err
				}
				opts.SharedStore = hs
				log.Info("using host shared store", logger.Fields{"url": cfg.HostStore.BaseURL})
			}

			h, err := router.NewRouter(opts)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:         ":" + strconv.Itoa(cfg.Server.Port),
				Handler:      h,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting server", logger.Fields{"addr": srv.Addr})
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
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return <-errCh
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override server.port")
	return cmd
}
