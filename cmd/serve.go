package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitconv/internal/api"
	"unitconv/internal/api/handler/v1handler"
	"unitconv/internal/calculator"
	"unitconv/internal/config"
	"unitconv/pkg/logger"
)

const serveCommandName = "serve"

func setupServer(ctx context.Context, cfg *config.Config, svc calculator.Service) (func(ctx context.Context), error) {
	server, err := api.NewServer(ctx, api.Deps{Deps: v1handler.Deps{Calculator: svc}}, api.NewOptions(cfg))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}, nil
}

// serveCommand constructs the 'serve' subcommand that runs the HTTP API until
// SIGINT or SIGTERM, then drains in-flight requests.
func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   serveCommandName,
		Short: "Starts the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopWebserver, err := setupServer(ctx, a.cfg, a.svc)
			if err != nil {
				return err
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			return nil
		},
	}

	return cmd
}
