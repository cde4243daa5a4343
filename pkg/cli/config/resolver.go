package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/ghbox/pkg/resolver"
	"github.com/m-mizutani/ghbox/pkg/session"
	"github.com/m-mizutani/ghbox/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Resolver holds tuning of branch lookups and file fetching.
type Resolver struct {
	quietPeriod      time.Duration
	fetchConcurrency int64
}

func (x *Resolver) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "quiet-period",
			Usage:       "Period without repository edits before branches are looked up",
			Category:    "Resolver",
			Sources:     cli.EnvVars("GHBOX_QUIET_PERIOD"),
			Value:       resolver.DefaultQuietPeriod,
			Destination: &x.quietPeriod,
		},
		&cli.Int64Flag{
			Name:        "fetch-concurrency",
			Usage:       "Number of files fetched in parallel during a deploy",
			Category:    "Resolver",
			Sources:     cli.EnvVars("GHBOX_FETCH_CONCURRENCY"),
			Value:       1,
			Destination: &x.fetchConcurrency,
		},
	}
}

func (x *Resolver) SessionOptions() []session.Option {
	return []session.Option{
		session.WithQuietPeriod(x.quietPeriod),
	}
}

func (x *Resolver) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithFetchConcurrency(int(x.fetchConcurrency)),
	}
}

func (x *Resolver) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("QuietPeriod", x.quietPeriod),
		slog.Int64("FetchConcurrency", x.fetchConcurrency),
	)
}
