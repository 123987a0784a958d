// Package randbits generates 128-bit secure random values rendered as
// fixed-width binary strings.
package randbits

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"io"
	"math/big"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	platformcmd "github.com/louisbranch/randbits/internal/platform/cmd"
	apperrors "github.com/louisbranch/randbits/internal/platform/errors"
	platformotel "github.com/louisbranch/randbits/internal/platform/otel"
)

const (
	// ByteLen is the number of random bytes consumed per value.
	ByteLen = 16
	// Width is the length of every generated binary string.
	Width = ByteLen * 8
)

const tracerName = "github.com/louisbranch/randbits/internal/tools/randbits"

// Config holds ambient configuration for the command. Nothing here affects
// the generated value.
type Config struct {
	Telemetry platformotel.Settings
}

// ParseConfig loads env defaults and parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Format renders bits as an unsigned big-endian integer in base 2, left-padded
// with '0' to Width characters.
func Format(bits [ByteLen]byte) string {
	digits := new(big.Int).SetBytes(bits[:]).Text(2)
	return strings.Repeat("0", Width-len(digits)) + digits
}

// Generate reads ByteLen bytes from reader and returns their Width-character
// binary form. A nil reader uses crypto/rand.
func Generate(reader io.Reader) (string, error) {
	if reader == nil {
		reader = rand.Reader
	}
	var bits [ByteLen]byte
	if _, err := io.ReadFull(reader, bits[:]); err != nil {
		return "", apperrors.Wrap(apperrors.CodeEntropySourceUnavailable, "read secure random bytes", err)
	}
	return Format(bits), nil
}

// Run generates one value and writes it to out followed by a newline.
// Nothing is written when generation fails.
func Run(ctx context.Context, out io.Writer, reader io.Reader) error {
	if out == nil {
		return apperrors.New(apperrors.CodeOutputRequired, "output is required")
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "randbits.generate",
		trace.WithAttributes(attribute.Int("randbits.width", Width)),
	)
	defer span.End()

	value, err := Generate(reader)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
		return err
	}
	if _, err := fmt.Fprintln(out, value); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write output")
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
