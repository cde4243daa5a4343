package usecase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/ghbox/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// Deploy materializes all files of a branch into one manifest and submits it
// to the sandbox host. It does nothing and returns nil result for an input
// without owner, repo or branch. Any failure discards the whole manifest and
// nothing is submitted.
func (x *UseCase) Deploy(ctx context.Context, input *model.DeployInput) (*model.SandboxResult, error) {
	if input == nil || !input.IsResolved() {
		logging.From(ctx).Debug("skip deploy of unresolved input")
		return nil, nil
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := logging.From(ctx).With("repo", input.RepositoryRef, "branch", input.Branch)

	result, manifest, err := x.deploy(ctx, input)
	if err != nil {
		logger.Warn("deploy failed", "error", err)
		return nil, err
	}

	text, binary := manifest.Count()
	logger.Info("sandbox created", "sandbox_id", result.ID, "text_files", text, "binary_files", binary)

	x.recordDeployment(ctx, input, result, manifest)

	return result, nil
}

func (x *UseCase) deploy(ctx context.Context, input *model.DeployInput) (*model.SandboxResult, model.Manifest, error) {
	paths, err := x.clients.GitHub().ListBlobPaths(ctx, input.RepositoryRef, input.Branch)
	if err != nil {
		return nil, nil, goerr.Wrap(types.ErrEnumeration, "failed to enumerate files",
			goerr.V("repo", input.RepositoryRef),
			goerr.V("branch", input.Branch),
			goerr.V("cause", err),
		)
	}
	logging.From(ctx).Debug("files enumerated", "repo", input.RepositoryRef, "branch", input.Branch, "count", len(paths))

	var manifest model.Manifest
	if x.fetchConcurrency > 1 {
		manifest, err = x.buildManifestConcurrently(ctx, input, paths)
	} else {
		manifest, err = x.buildManifest(ctx, input, paths)
	}
	if err != nil {
		return nil, nil, err
	}

	id, err := x.clients.Sandbox().Define(ctx, manifest.ToDefineRequest())
	if err != nil {
		if errors.Is(err, types.ErrSubmission) {
			return nil, nil, goerr.Wrap(err, "failed to submit manifest", goerr.V("repo", input.RepositoryRef))
		}
		return nil, nil, goerr.Wrap(types.ErrSubmission, "failed to submit manifest",
			goerr.V("repo", input.RepositoryRef),
			goerr.V("cause", err),
		)
	}

	return &model.SandboxResult{ID: id}, manifest, nil
}

func (x *UseCase) buildManifest(ctx context.Context, input *model.DeployInput, paths []string) (model.Manifest, error) {
	manifest := model.NewManifest()

	for i, p := range paths {
		entry, err := x.fetchEntry(ctx, input, p)
		if err != nil {
			return nil, err
		}
		manifest.Add(*entry)

		if input.Progress != nil {
			input.Progress(i+1, len(paths), *entry)
		}
	}

	return manifest, nil
}

func (x *UseCase) buildManifestConcurrently(ctx context.Context, input *model.DeployInput, paths []string) (model.Manifest, error) {
	entries := make([]*model.FileEntry, len(paths))

	var mu sync.Mutex
	done := 0

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(x.fetchConcurrency)

	for i, p := range paths {
		eg.Go(func() error {
			entry, err := x.fetchEntry(egCtx, input, p)
			if err != nil {
				return err
			}
			entries[i] = entry

			if input.Progress != nil {
				mu.Lock()
				done++
				input.Progress(done, len(paths), *entry)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	manifest := model.NewManifest()
	for _, entry := range entries {
		manifest.Add(*entry)
	}
	return manifest, nil
}

func (x *UseCase) fetchEntry(ctx context.Context, input *model.DeployInput, path string) (*model.FileEntry, error) {
	rawURL := model.FileURL(x.rawContentURL, input.RepositoryRef, input.Branch, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, goerr.Wrap(types.ErrFileFetch, "failed to create request of file",
			goerr.V("path", path),
			goerr.V("url", rawURL),
			goerr.V("cause", err),
		)
	}

	resp, err := x.clients.HTTPClient().Do(req)
	if err != nil {
		return nil, goerr.Wrap(types.ErrFileFetch, "failed to fetch file",
			goerr.V("path", path),
			goerr.V("url", rawURL),
			goerr.V("cause", err),
		)
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.Wrap(types.ErrFileFetch, "unexpected status of file",
			goerr.V("path", path),
			goerr.V("url", rawURL),
			goerr.V("status", resp.StatusCode),
		)
	}

	entry := &model.FileEntry{
		Path: path,
		Kind: model.ClassifyContentType(resp.Header.Get("Content-Type")),
	}

	switch entry.Kind {
	case model.FileKindText:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, goerr.Wrap(types.ErrFileFetch, "failed to read file",
				goerr.V("path", path),
				goerr.V("url", rawURL),
				goerr.V("cause", err),
			)
		}
		entry.Content = string(body)

	default:
		binaryHost := input.BinaryBaseURL
		if binaryHost == "" {
			binaryHost = x.rawContentURL
		}
		entry.Content = model.FileURL(binaryHost, input.RepositoryRef, input.Branch, path)
	}

	return entry, nil
}
