package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Sentry struct {
	dsn         types.SentryDSN
	environment string
	sampleRate  float64
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: (*string)(&x.dsn),
			Sources:     cli.EnvVars("GHBOX_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("GHBOX_SENTRY_ENV"),
		},
		&cli.FloatFlag{
			Name:        "sentry-sample-rate",
			Usage:       "Sample rate of error events [0.0-1.0]",
			Category:    "Sentry",
			Value:       1.0,
			Destination: &x.sampleRate,
			Sources:     cli.EnvVars("GHBOX_SENTRY_SAMPLE_RATE"),
		},
	}
}

func (x *Sentry) Configure(ctx context.Context) error {
	if x.dsn == "" {
		logging.From(ctx).Warn("sentry is not configured")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         string(x.dsn),
		Environment: x.environment,
		Release:     "ghbox@" + types.Version,
		SampleRate:  x.sampleRate,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}

	return nil
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("DSN", x.dsn),
		slog.Any("Environment", x.environment),
		slog.Float64("SampleRate", x.sampleRate),
	)
}

// Flush waits for buffered events to be sent before shutdown.
func (x *Sentry) Flush() {
	if x.dsn != "" {
		sentry.Flush(2 * time.Second)
	}
}
