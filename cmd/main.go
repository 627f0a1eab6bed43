// Package main provides the CLI entrypoint for the unit conversion service.
// It wires subcommands (convert, calc, units, operations, temp, serve), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"unitconv/internal/calculator"
	"unitconv/internal/config"
	"unitconv/pkg/logger"
	"unitconv/pkg/metrics"
	"unitconv/pkg/serrors"
)

// Exit codes reported for failed commands.
const (
	exitFailure    = 1
	exitBadRequest = 2
	exitNotFound   = 3
)

// app carries what the subcommands share once the root command has run its
// pre-run hook.
type app struct {
	cfg *config.Config
	svc calculator.Service

	// registerer receives the service metrics of long-running commands.
	registerer prometheus.Registerer
}

// newService builds the calculator service for command. Only serve records
// metrics; one-shot commands have no scrape endpoint.
func (a *app) newService(command string) calculator.Service {
	var m *metrics.Metrics
	if command == serveCommandName {
		m = metrics.New(a.registerer)
	}

	return calculator.NewService(calculator.New(nil), m)
}

// newRootCommand sets up the root Cobra command and registers subcommands.
// Configuration and logging are initialized before any subcommand runs.
func newRootCommand() *cobra.Command {
	a := &app{registerer: prometheus.DefaultRegisterer}

	rootCmd := &cobra.Command{
		Use:           "unitconv",
		Short:         "Unit-aware quantity parsing and physics calculations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			verbose, _ := cmd.Flags().GetBool("verbose")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err //nolint: wrapcheck
			}

			opts, err := logLevelOptions(cfg, cmd.Name(), verbose)
			if err != nil {
				return err
			}
			logger.Setup(cfg.Environment, opts...)

			a.cfg = cfg
			a.svc = a.newService(cmd.Name())

			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		convertCommand(a),
		calcCommand(a),
		unitsCommand(a),
		operationsCommand(a),
		tempCommand(),
		serveCommand(a),
	)

	return rootCmd
}

// logLevelOptions picks the log level: --verbose wins, then LOG_LEVEL. One-shot
// commands default to warnings so their output stays readable.
func logLevelOptions(cfg *config.Config, command string, verbose bool) ([]logger.Option, error) {
	switch {
	case verbose:
		return []logger.Option{logger.WithLevel(zapcore.DebugLevel)}, nil
	case cfg.LogLevel != "":
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid log level %q", cfg.LogLevel)
		}

		return []logger.Option{logger.WithLevel(level)}, nil
	case command != serveCommandName:
		return []logger.Option{logger.WithLevel(zapcore.WarnLevel)}, nil
	default:
		return nil, nil
	}
}

// exitCode maps semantic error kinds to process exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return exitBadRequest
	case errors.Is(err, serrors.ErrNotFound):
		return exitNotFound
	default:
		return exitFailure
	}
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd := newRootCommand()
	err := rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(exitCode(err)) //nolint: gocritic
	}
}
