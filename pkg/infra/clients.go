package infra

import (
	"net/http"

	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Clients bundles the external services a deploy talks to. GitHub and
// Sandbox are required; history backends are optional.
type Clients struct {
	github  interfaces.GitHub
	sandbox interfaces.Sandbox
	raw     HTTPClient

	history  interfaces.DeploymentRepository
	exporter interfaces.BigQuery
}

// HTTPClient fetches raw file contents from the source host.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	x := &Clients{raw: http.DefaultClient}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// Validate reports which required client is missing.
func (x *Clients) Validate() error {
	switch {
	case x.github == nil:
		return goerr.Wrap(types.ErrInvalidOption, "GitHub client is not set")
	case x.sandbox == nil:
		return goerr.Wrap(types.ErrInvalidOption, "sandbox client is not set")
	case x.raw == nil:
		return goerr.Wrap(types.ErrInvalidOption, "raw content client is not set")
	}
	return nil
}

func (x *Clients) GitHub() interfaces.GitHub   { return x.github }
func (x *Clients) Sandbox() interfaces.Sandbox { return x.sandbox }
func (x *Clients) HTTPClient() HTTPClient      { return x.raw }

// DeploymentRepository returns nil when history is not kept.
func (x *Clients) DeploymentRepository() interfaces.DeploymentRepository { return x.history }

// BigQuery returns nil when deployments are not exported.
func (x *Clients) BigQuery() interfaces.BigQuery { return x.exporter }

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) { x.github = client }
}

func WithSandbox(client interfaces.Sandbox) Option {
	return func(x *Clients) { x.sandbox = client }
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) { x.raw = client }
}

func WithDeploymentRepository(repo interfaces.DeploymentRepository) Option {
	return func(x *Clients) { x.history = repo }
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) { x.exporter = client }
}
