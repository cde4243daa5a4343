package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/ghbox/pkg/cli/config"
	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/infra"
	"github.com/m-mizutani/ghbox/pkg/infra/github"
	"github.com/m-mizutani/ghbox/pkg/repository/memory"
	"github.com/m-mizutani/ghbox/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// backend is a set of configurations shared by commands that talk to GitHub
// and CodeSandbox.
type backend struct {
	github      config.GitHub
	codeSandbox config.CodeSandbox
	resolver    config.Resolver
	firestore   config.Firestore
	postgres    config.Postgres
	bigQuery    config.BigQuery
}

func (x *backend) Flags() []cli.Flag {
	return slice.Flatten(
		x.github.Flags(),
		x.codeSandbox.Flags(),
		x.resolver.Flags(),
		x.firestore.Flags(),
		x.postgres.Flags(),
		x.bigQuery.Flags(),
	)
}

func (x *backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("GitHub", &x.github),
		slog.Any("CodeSandbox", &x.codeSandbox),
		slog.Any("Resolver", &x.resolver),
		slog.Any("Firestore", &x.firestore),
		slog.Any("Postgres", &x.postgres),
		slog.Any("BigQuery", &x.bigQuery),
	)
}

func (x *backend) newDeploymentRepository(ctx context.Context) (interfaces.DeploymentRepository, error) {
	switch {
	case x.firestore.Enabled() && x.postgres.Enabled():
		return nil, goerr.Wrap(types.ErrInvalidOption, "firestore and postgres can not be enabled at once")
	case x.firestore.Enabled():
		return x.firestore.NewRepository(ctx)
	case x.postgres.Enabled():
		return x.postgres.NewRepository(ctx)
	default:
		return memory.New(), nil
	}
}

// newUseCase returns the use case and the GitHub client it uses. The client
// also serves branch lookups of sessions.
func (x *backend) newUseCase(ctx context.Context) (*usecase.UseCase, *github.Client, error) {
	ghClient, err := x.github.NewClient()
	if err != nil {
		return nil, nil, err
	}

	repo, err := x.newDeploymentRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	infraOptions := []infra.Option{
		infra.WithGitHub(ghClient),
		infra.WithSandbox(x.codeSandbox.NewClient()),
		infra.WithDeploymentRepository(repo),
	}

	if bqClient, err := x.bigQuery.NewClient(ctx); err != nil {
		return nil, nil, err
	} else if bqClient != nil {
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	options := append([]usecase.Option{
		usecase.WithRawContentURL(x.github.RawContentURL()),
	}, x.resolver.UseCaseOptions()...)

	clients := infra.New(infraOptions...)
	if err := clients.Validate(); err != nil {
		return nil, nil, err
	}

	return usecase.New(clients, options...), ghClient, nil
}

func repositoryFlags(owner, repo *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner (user or organization)",
			Sources:     cli.EnvVars("GHBOX_OWNER"),
			Destination: owner,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name",
			Sources:     cli.EnvVars("GHBOX_REPO"),
			Destination: repo,
			Required:    true,
		},
	}
}

func printEmbed(w io.Writer, embed *model.Embed) error {
	if _, err := io.WriteString(w, "Sandbox: "+string(embed.SandboxID)+"\nURL: "+embed.URL+"\n\n"+embed.IFrame+"\n"); err != nil {
		return goerr.Wrap(err, "failed to print embed")
	}
	return nil
}
