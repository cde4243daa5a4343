package config

import (
	"log/slog"

	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logging holds the global log flags shared by every subcommand.
type Logging struct {
	level  string
	format string
	output string
}

func (x *Logging) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug|info|warn|error]",
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("GHBOX_LOG_LEVEL"),
			Destination: &x.level,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Sources:     cli.EnvVars("GHBOX_LOG_FORMAT"),
			Destination: &x.format,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>]",
			Aliases:     []string{"o"},
			Sources:     cli.EnvVars("GHBOX_LOG_OUTPUT"),
			Destination: &x.output,
			Value:       "-",
		},
	}
}

// Configure replaces the default logger.
func (x *Logging) Configure() error {
	return logging.Configure(x.format, x.level, x.output)
}

func (x *Logging) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
	)
}
