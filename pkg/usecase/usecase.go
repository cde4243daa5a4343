package usecase

import (
	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/infra"
)

type UseCase struct {
	clients          *infra.Clients
	rawContentURL    string
	fetchConcurrency int
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithRawContentURL replaces the host raw file contents are fetched from.
func WithRawContentURL(rawContentURL string) Option {
	return func(x *UseCase) {
		x.rawContentURL = rawContentURL
	}
}

// WithFetchConcurrency sets the number of files fetched in parallel. Files are
// fetched one by one in tree order when n <= 1.
func WithFetchConcurrency(n int) Option {
	return func(x *UseCase) {
		x.fetchConcurrency = n
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:          clients,
		rawContentURL:    types.DefaultRawContentURL,
		fetchConcurrency: 1,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
