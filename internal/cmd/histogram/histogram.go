// Package histogram parses histogram command flags and prints the character
// histogram of the example input.
package histogram

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	entrypoint "github.com/EsmerlynG/part05-16-histogram/internal/platform/cmd"
	"github.com/EsmerlynG/part05-16-histogram/internal/tally"
)

// ExampleInput is the word whose histogram the command prints.
const ExampleInput = "statistically"

const tracerName = "github.com/EsmerlynG/part05-16-histogram/internal/cmd/histogram"

// Config holds histogram command configuration.
type Config struct {
	OTelShutdownTimeout time.Duration `env:"HISTOGRAM_OTEL_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.DurationVar(&cfg.OTelShutdownTimeout, "otel-shutdown-timeout", cfg.OTelShutdownTimeout, "How long to wait for pending spans on exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run writes the histogram of ExampleInput to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	options := entrypoint.RunOptions{ShutdownTimeout: cfg.OTelShutdownTimeout}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceHistogram, options, func(ctx context.Context) error {
		return render(ctx, otel.Tracer(tracerName), ExampleInput, out)
	})
}

func render(ctx context.Context, tracer trace.Tracer, input string, out io.Writer) error {
	ctx, span := tracer.Start(ctx, "histogram")
	defer span.End()

	_, buildSpan := tracer.Start(ctx, "histogram.build")
	t := tally.Build(input)
	buildSpan.SetAttributes(
		attribute.Int("histogram.input_runes", t.Total()),
		attribute.Int("histogram.distinct", t.Len()),
	)
	buildSpan.End()

	_, printSpan := tracer.Start(ctx, "histogram.print")
	defer printSpan.End()
	if err := tally.Fprint(out, t); err != nil {
		printSpan.RecordError(err)
		printSpan.SetStatus(codes.Error, err.Error())
		span.SetStatus(codes.Error, "print failed")
		return fmt.Errorf("print histogram: %w", err)
	}
	return nil
}
