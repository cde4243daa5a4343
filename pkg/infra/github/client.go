package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const branchesPerPage = 100

// Client is an unauthenticated GitHub REST API client.
type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*config)

// WithBaseURL replaces the API endpoint, e.g. for GitHub Enterprise or a test server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = httpClient
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{
		baseURL:    types.DefaultGitHubAPIURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(cfg)
	}

	baseURL := cfg.baseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", cfg.baseURL), goerr.V("cause", err))
	}

	client := github.NewClient(cfg.httpClient)
	client.BaseURL = parsed

	return &Client{client: client}, nil
}

// ListBranches implements interfaces.GitHub.
func (x *Client) ListBranches(ctx context.Context, ref model.RepositoryRef) ([]types.BranchName, error) {
	opt := &github.BranchListOptions{
		ListOptions: github.ListOptions{PerPage: branchesPerPage},
	}

	names := []types.BranchName{}
	for {
		branches, resp, err := x.client.Repositories.ListBranches(ctx, ref.Owner, ref.Repo, opt)
		if err != nil {
			return nil, wrapAPIError(err, "failed to list branches", goerr.V("repo", ref.String()), goerr.V("page", opt.Page))
		}

		for _, branch := range branches {
			names = append(names, types.BranchName(branch.GetName()))
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return names, nil
}

// ListBlobPaths implements interfaces.GitHub.
func (x *Client) ListBlobPaths(ctx context.Context, ref model.RepositoryRef, branch types.BranchName) ([]string, error) {
	tree, _, err := x.client.Git.GetTree(ctx, ref.Owner, ref.Repo, branch.String(), true)
	if err != nil {
		return nil, wrapAPIError(err, "failed to get tree", goerr.V("repo", ref.String()), goerr.V("branch", branch))
	}

	if tree.GetTruncated() {
		logging.From(ctx).Warn("tree is truncated by GitHub API, some files are not deployed",
			"repo", ref,
			"branch", branch,
			"entries", len(tree.Entries),
		)
	}

	paths := []string{}
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		paths = append(paths, entry.GetPath())
	}

	return paths, nil
}

func wrapAPIError(err error, msg string, options ...goerr.Option) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var respErr *github.ErrorResponse

	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return goerr.Wrap(types.ErrRateLimited, msg, append(options, goerr.V("cause", err.Error()))...)

	case errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode == http.StatusNotFound:
		return goerr.Wrap(types.ErrNotFound, msg, append(options, goerr.V("cause", err.Error()))...)

	default:
		return goerr.Wrap(err, msg, options...)
	}
}
