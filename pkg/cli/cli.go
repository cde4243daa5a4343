package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/ghbox/pkg/cli/config"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type CLI struct {
	out io.Writer
}

type Option func(*CLI)

// WithOutput replaces where command results are printed. Logs are not affected.
func WithOutput(w io.Writer) Option {
	return func(x *CLI) {
		x.out = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{out: os.Stdout}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var logCfg config.Logging

	app := &cli.Command{
		Name:    "ghbox",
		Usage:   "Deploy a branch of a public GitHub repository into CodeSandbox",
		Version: types.Version,
		Writer:  x.out,
		Flags:   logCfg.Flags(),
		Commands: []*cli.Command{
			serveCommand(),
			deployCommand(),
			branchesCommand(),
			batchCommand(),
			historyCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, logCfg.Configure()
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
