package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/randbits/internal/platform/config"
	apperrors "github.com/louisbranch/randbits/internal/platform/errors"
	"github.com/louisbranch/randbits/internal/platform/otel"
	"github.com/louisbranch/randbits/internal/platform/timeouts"
)

// Service identifiers for command telemetry and CLI naming consistency.
const (
	ServiceRandBits = "randbits"
)

// RunOptions controls shared entrypoint behavior for commands.
type RunOptions struct {
	// ShutdownTimeout sets the timeout used when stopping telemetry.
	ShutdownTimeout time.Duration
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags. Positional arguments are rejected
// because no command accepts them.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return apperrors.Wrap(apperrors.CodeUsage, "parse flags", err)
	}
	if fs.NArg() > 0 {
		return apperrors.New(apperrors.CodeUsage, fmt.Sprintf("unexpected arguments: %s", strings.Join(fs.Args(), " ")))
	}
	return nil
}

// ParseConfigFromArgs loads defaults from env and then parses flags.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}

// RunWithTelemetry configures observability and executes a command run.
func RunWithTelemetry(ctx context.Context, service string, settings otel.Settings, run func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, service, settings, RunOptions{}, run)
}

// RunWithTelemetryAndOptions configures observability and executes a command run.
func RunWithTelemetryAndOptions(ctx context.Context, service string, settings otel.Settings, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service, settings)
	if err != nil {
		return err
	}
	defer func() {
		shutdownTimeout := options.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = timeouts.TelemetryShutdown
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
