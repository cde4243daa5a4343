package cli

import (
	"context"

	"github.com/cheggaaa/pb/v3"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/usecase"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func deployCommand() *cli.Command {
	var (
		input      model.DeployInput
		branch     string
		noProgress bool
		backend    backend
	)

	return &cli.Command{
		Name:    "deploy",
		Aliases: []string{"d"},
		Usage:   "Deploy a branch of a repository to CodeSandbox and print the embed snippet",
		Flags: slice.Flatten(repositoryFlags(&input.Owner, &input.Repo), []cli.Flag{
			&cli.StringFlag{
				Name:        "branch",
				Usage:       "Branch to deploy. 'master' is used if empty and the repository has it",
				Sources:     cli.EnvVars("GHBOX_BRANCH"),
				Destination: &branch,
			},
			&cli.StringFlag{
				Name:        "binary-base-url",
				Usage:       "Host binary files are served from instead of the raw content host",
				Sources:     cli.EnvVars("GHBOX_BINARY_BASE_URL"),
				Destination: &input.BinaryBaseURL,
			},
			&cli.BoolFlag{
				Name:        "no-progress",
				Usage:       "Disable progress bar",
				Destination: &noProgress,
			},
		}, backend.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, _, err := backend.newUseCase(ctx)
			if err != nil {
				return err
			}

			input.RepositoryRef = model.NewRepositoryRef(input.Owner, input.Repo)
			input.Branch = types.BranchName(branch)

			if !noProgress {
				bar := pb.Full.Start(0)
				defer bar.Finish()
				input.Progress = func(done, total int, entry model.FileEntry) {
					bar.SetTotal(int64(total))
					bar.SetCurrent(int64(done))
					bar.Set("suffix", " "+entry.Path)
				}
			}

			embed, err := deployTarget(ctx, uc, &input, backend.codeSandbox.BaseURL())
			if err != nil {
				return err
			}

			return printEmbed(c.Root().Writer, embed)
		},
	}
}

// resolveBranch fills the branch of input with the default selection when it is empty.
func resolveBranch(ctx context.Context, uc *usecase.UseCase, input *model.DeployInput) error {
	if input.Branch != "" {
		return nil
	}

	selection, err := uc.ListBranches(ctx, input.RepositoryRef)
	if err != nil {
		return err
	}
	if selection.Selected == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch is not specified and repository has no default branch",
			goerr.V("repo", input.RepositoryRef),
			goerr.V("branches", selection.Branches),
		)
	}

	logging.From(ctx).Info("branch is selected by default", "repo", input.RepositoryRef, "branch", selection.Selected)
	input.Branch = selection.Selected
	return nil
}

func deployTarget(ctx context.Context, uc *usecase.UseCase, input *model.DeployInput, sandboxHost string) (*model.Embed, error) {
	if err := resolveBranch(ctx, uc, input); err != nil {
		return nil, err
	}

	result, err := uc.Deploy(ctx, input)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "nothing to deploy", goerr.V("repo", input.RepositoryRef))
	}

	return model.NewEmbed(sandboxHost, result.ID), nil
}
