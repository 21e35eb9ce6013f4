package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"bikepacking-api/cmd/bootstrap"
	"bikepacking-api/internal/pkg/config"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var skipSchemaCheck bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []fx.Option{
				bootstrap.Module,
				fx.Provide(func() *gin.Engine { return gin.New() }),
				fx.Invoke(startServer),
			}
			if !skipSchemaCheck {
				opts = append(opts, fx.Invoke(bootstrap.CheckSchema))
			}

			app := fx.New(opts...)
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}

			<-app.Done()

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := app.Stop(ctx); err != nil {
				slog.Error("failed to stop application", "error", err)
			}
			slog.Info("application stopped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipSchemaCheck, "skip-schema-check", false, "start even when the database schema is behind")
	return cmd
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}
