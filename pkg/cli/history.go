package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func historyCommand() *cli.Command {
	var (
		owner   string
		repo    string
		limit   int64
		backend backend
	)

	return &cli.Command{
		Name:    "history",
		Aliases: []string{"h"},
		Usage:   "Show recent deployments of a repository, newest first",
		Flags: slice.Flatten(repositoryFlags(&owner, &repo), []cli.Flag{
			&cli.Int64Flag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "Max number of deployments",
				Value:       20,
				Destination: &limit,
			},
		}, backend.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, _, err := backend.newUseCase(ctx)
			if err != nil {
				return err
			}

			deployments, err := uc.ListDeployments(ctx, model.NewRepositoryRef(owner, repo), int(limit))
			if err != nil {
				return err
			}

			w := c.Root().Writer
			for _, d := range deployments {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\ttext=%d binary=%d\n",
					d.CreatedAt.Format(time.RFC3339), d.Branch, d.SandboxID, d.ID, d.TextFiles, d.BinaryFiles,
				); err != nil {
					return goerr.Wrap(err, "failed to print deployment")
				}
			}

			return nil
		},
	}
}
