// Package main provides a one-shot utility that prints a 128-bit secure
// random value as a binary string.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	platformcmd "github.com/louisbranch/randbits/internal/platform/cmd"
	"github.com/louisbranch/randbits/internal/platform/config"
	apperrors "github.com/louisbranch/randbits/internal/platform/errors"
	"github.com/louisbranch/randbits/internal/tools/randbits"
)

func main() {
	if err := run(context.Background(), flag.CommandLine, os.Args[1:], os.Stdout); err != nil {
		config.ExitCodef(apperrors.ExitCode(err), "%v", err)
	}
}

func run(ctx context.Context, fs *flag.FlagSet, args []string, out io.Writer) error {
	cfg, err := randbits.ParseConfig(fs, args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceRandBits, cfg.Telemetry, func(ctx context.Context) error {
		return randbits.Run(ctx, out, nil)
	})
	if err != nil {
		return fmt.Errorf("generate bits: %w", err)
	}
	return nil
}
