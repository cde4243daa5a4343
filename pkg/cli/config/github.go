package config

import (
	"log/slog"

	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	apiURL        string
	rawContentURL string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API endpoint",
			Category:    "GitHub",
			Sources:     cli.EnvVars("GHBOX_GITHUB_API_URL"),
			Value:       types.DefaultGitHubAPIURL,
			Destination: &x.apiURL,
		},
		&cli.StringFlag{
			Name:        "github-raw-url",
			Usage:       "Host serving raw file contents as {host}/{owner}/{repo}/{branch}/{path}",
			Category:    "GitHub",
			Sources:     cli.EnvVars("GHBOX_GITHUB_RAW_URL"),
			Value:       types.DefaultRawContentURL,
			Destination: &x.rawContentURL,
		},
	}
}

func (x *GitHub) NewClient() (*github.Client, error) {
	return github.New(github.WithBaseURL(x.apiURL))
}

func (x *GitHub) RawContentURL() string {
	return x.rawContentURL
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("APIURL", x.apiURL),
		slog.String("RawContentURL", x.rawContentURL),
	)
}
