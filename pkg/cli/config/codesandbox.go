package config

import (
	"log/slog"

	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/infra/codesandbox"
	"github.com/urfave/cli/v3"
)

type CodeSandbox struct {
	baseURL string
}

func (x *CodeSandbox) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "codesandbox-url",
			Usage:       "CodeSandbox host to define and embed sandboxes",
			Category:    "CodeSandbox",
			Sources:     cli.EnvVars("GHBOX_CODESANDBOX_URL"),
			Value:       types.DefaultCodeSandboxURL,
			Destination: &x.baseURL,
		},
	}
}

func (x *CodeSandbox) NewClient() *codesandbox.Client {
	return codesandbox.New(codesandbox.WithBaseURL(x.baseURL))
}

func (x *CodeSandbox) BaseURL() string {
	return x.baseURL
}

func (x *CodeSandbox) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("BaseURL", x.baseURL),
	)
}
