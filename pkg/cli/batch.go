package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// batchFile is a TOML list of deploy targets:
//
//	[[target]]
//	owner = "octocat"
//	repo = "hello-world"
//	branch = "master"
type batchFile struct {
	Targets []batchTarget `toml:"target"`
}

type batchTarget struct {
	Owner         string `toml:"owner"`
	Repo          string `toml:"repo"`
	Branch        string `toml:"branch"`
	BinaryBaseURL string `toml:"binary_base_url"`
}

func loadBatchTargets(path string) ([]*model.DeployInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read batch file", goerr.V("path", path))
	}

	var file batchFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse batch file", goerr.V("path", path), goerr.V("cause", err.Error()))
	}

	inputs := make([]*model.DeployInput, 0, len(file.Targets))
	for i, target := range file.Targets {
		input := &model.DeployInput{
			RepositoryRef: model.NewRepositoryRef(target.Owner, target.Repo),
			Branch:        types.BranchName(target.Branch),
			BinaryBaseURL: target.BinaryBaseURL,
		}
		if err := input.RepositoryRef.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid target in batch file", goerr.V("path", path), goerr.V("index", i))
		}
		inputs = append(inputs, input)
	}

	return inputs, nil
}

func batchCommand() *cli.Command {
	var (
		file       string
		failFast   bool
		noProgress bool
		backend    backend
	)

	return &cli.Command{
		Name:  "batch",
		Usage: "Deploy all targets listed in a TOML file",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"i"},
				Usage:       "Path to TOML file with [[target]] tables",
				Sources:     cli.EnvVars("GHBOX_BATCH_FILE"),
				Destination: &file,
				Required:    true,
			},
			&cli.BoolFlag{
				Name:        "fail-fast",
				Usage:       "Stop at the first failed target",
				Destination: &failFast,
			},
			&cli.BoolFlag{
				Name:        "no-progress",
				Usage:       "Disable progress bar",
				Destination: &noProgress,
			},
		}, backend.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			inputs, err := loadBatchTargets(file)
			if err != nil {
				return err
			}

			uc, _, err := backend.newUseCase(ctx)
			if err != nil {
				return err
			}

			var bar *pb.ProgressBar
			if !noProgress {
				bar = pb.StartNew(len(inputs))
				defer bar.Finish()
			}

			w := c.Root().Writer
			var failed int
			for _, input := range inputs {
				embed, err := deployTarget(ctx, uc, input, backend.codeSandbox.BaseURL())
				if bar != nil {
					bar.Increment()
				}

				if err != nil {
					failed++
					logging.From(ctx).Error("failed to deploy target",
						"repo", input.RepositoryRef,
						"branch", input.Branch,
						"error", err,
					)
					if _, werr := fmt.Fprintf(w, "%s\t%s\tERROR\t%s\n", input.RepositoryRef, input.Branch, err); werr != nil {
						return goerr.Wrap(werr, "failed to print result")
					}
					if failFast {
						return err
					}
					continue
				}

				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", input.RepositoryRef, input.Branch, embed.SandboxID, embed.URL); err != nil {
					return goerr.Wrap(err, "failed to print result")
				}
			}

			if failed > 0 {
				return goerr.New("some targets failed to deploy", goerr.V("failed", failed), goerr.V("total", len(inputs)))
			}
			return nil
		},
	}
}
