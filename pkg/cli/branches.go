package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func branchesCommand() *cli.Command {
	var (
		owner   string
		repo    string
		backend backend
	)

	return &cli.Command{
		Name:    "branches",
		Aliases: []string{"b"},
		Usage:   "List branches of a repository. The branch selected by default is marked with '*'",
		Flags:   slice.Flatten(repositoryFlags(&owner, &repo), backend.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, _, err := backend.newUseCase(ctx)
			if err != nil {
				return err
			}

			selection, err := uc.ListBranches(ctx, model.NewRepositoryRef(owner, repo))
			if err != nil {
				return err
			}

			w := c.Root().Writer
			for _, branch := range selection.Branches {
				mark := " "
				if branch == selection.Selected {
					mark = "*"
				}
				if _, err := fmt.Fprintf(w, "%s %s\n", mark, branch); err != nil {
					return goerr.Wrap(err, "failed to print branch")
				}
			}

			return nil
		},
	}
}
