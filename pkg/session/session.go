package session

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/resolver"
	"github.com/m-mizutani/ghbox/pkg/utils/async"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Deployer runs the materialization pipeline. usecase.UseCase satisfies it.
type Deployer interface {
	Deploy(ctx context.Context, input *model.DeployInput) (*model.SandboxResult, error)
}

// Snapshot is the state of a session at a point of time.
type Snapshot struct {
	ID            types.SessionID    `json:"id"`
	Owner         string             `json:"owner"`
	Repo          string             `json:"repo"`
	Branches      []types.BranchName `json:"branches"`
	Branch        types.BranchName   `json:"branch"`
	BinaryBaseURL string             `json:"binary_base_url"`
	SandboxID     types.SandboxID    `json:"sandbox_id,omitempty"`
	Busy          bool               `json:"busy"`
	LastError     string             `json:"last_error,omitempty"`
}

// Session holds what a user has entered and the outcome of the last deploy.
// Editing the repository or the branch discards the sandbox of the last deploy.
type Session struct {
	id       types.SessionID
	deployer Deployer
	resolver *resolver.Resolver

	// mu is never held while calling the resolver.
	mu            sync.Mutex
	ref           model.RepositoryRef
	branches      []types.BranchName
	branch        types.BranchName
	binaryBaseURL string
	result        *model.SandboxResult
	busy          bool
	lastErr       string
}

type config struct {
	quietPeriod time.Duration
}

type Option func(*config)

// WithQuietPeriod sets the debounce period of branch lookups.
func WithQuietPeriod(d time.Duration) Option {
	return func(cfg *config) {
		cfg.quietPeriod = d
	}
}

func New(lister resolver.BranchLister, deployer Deployer, options ...Option) *Session {
	cfg := &config{
		quietPeriod: resolver.DefaultQuietPeriod,
	}
	for _, opt := range options {
		opt(cfg)
	}

	x := &Session{
		id:       types.NewSessionID(),
		deployer: deployer,
		branches: []types.BranchName{},
	}
	x.resolver = resolver.New(lister,
		resolver.WithQuietPeriod(cfg.quietPeriod),
		resolver.WithOnUpdate(x.onResolved),
	)

	return x
}

func (x *Session) ID() types.SessionID {
	return x.id
}

// SetRepositoryRef stores owner and repo with surrounding spaces trimmed and
// schedules a branch lookup.
func (x *Session) SetRepositoryRef(ctx context.Context, owner, repo string) {
	ref := model.NewRepositoryRef(owner, repo)

	x.mu.Lock()
	x.ref = ref
	x.result = nil
	x.mu.Unlock()

	x.resolver.OnRepositoryRefChanged(ctx, ref)
}

// SetBranch overrides the selected branch.
func (x *Session) SetBranch(branch types.BranchName) {
	x.mu.Lock()
	x.branch = branch
	x.result = nil
	x.mu.Unlock()

	x.resolver.Select(branch)
}

func (x *Session) SetBinaryBaseURL(binaryBaseURL string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.binaryBaseURL = binaryBaseURL
}

func (x *Session) onResolved(state resolver.State) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if state.Ref != x.ref {
		logging.Default().Debug("drop branches of previous repository",
			"session", x.id,
			"resolved", state.Ref,
			"current", x.ref,
		)
		return
	}

	x.branches = state.Branches
	if x.branch != state.Selected {
		x.branch = state.Selected
		x.result = nil
	}
}

// LookupBranches looks up branches of the current repository immediately
// instead of waiting for the quiet period.
func (x *Session) LookupBranches(ctx context.Context) {
	x.mu.Lock()
	ref := x.ref
	x.mu.Unlock()

	x.resolver.PerformLookup(ctx, ref)
}

func (x *Session) begin() (*model.DeployInput, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.busy {
		return nil, goerr.Wrap(types.ErrBusy, "session is deploying", goerr.V("session", x.id))
	}
	x.busy = true
	x.lastErr = ""

	return &model.DeployInput{
		RepositoryRef: x.ref,
		Branch:        x.branch,
		BinaryBaseURL: x.binaryBaseURL,
	}, nil
}

func (x *Session) finish(input *model.DeployInput, result *model.SandboxResult, err error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.busy = false
	if err != nil {
		x.lastErr = err.Error()
		return
	}

	// A result for a repository or branch edited during the deploy is discarded.
	if result != nil && x.ref == input.RepositoryRef && x.branch == input.Branch {
		x.result = result
	}
}

// Deploy runs the pipeline with the current input. It returns types.ErrBusy
// while another deploy of the session is running. The sandbox is kept only
// when the deploy succeeds.
func (x *Session) Deploy(ctx context.Context) (*model.SandboxResult, error) {
	input, err := x.begin()
	if err != nil {
		return nil, err
	}

	return x.runDeploy(ctx, input)
}

// runDeploy always clears busy, also when the deployer panics. A panic is
// returned as an error and kept as the last error of the session.
func (x *Session) runDeploy(ctx context.Context, input *model.DeployInput) (result *model.SandboxResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.From(ctx).Error("panic in deploy",
				"session", x.id,
				"recover", r,
				"stack", string(debug.Stack()),
			)
			result, err = nil, goerr.New("deploy aborted by panic",
				goerr.V("session", x.id),
				goerr.V("recover", fmt.Sprint(r)),
			)
		}
		x.finish(input, result, err)
	}()

	return x.deployer.Deploy(ctx, input)
}

// StartDeploy marks the session busy and runs the deploy in background. It
// returns types.ErrBusy without starting when another deploy is running.
func (x *Session) StartDeploy(ctx context.Context) error {
	input, err := x.begin()
	if err != nil {
		return err
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		_, err := x.runDeploy(ctx, input)
		return err
	})

	return nil
}

func (x *Session) Snapshot() *Snapshot {
	x.mu.Lock()
	defer x.mu.Unlock()

	branches := make([]types.BranchName, len(x.branches))
	copy(branches, x.branches)

	snapshot := &Snapshot{
		ID:            x.id,
		Owner:         x.ref.Owner,
		Repo:          x.ref.Repo,
		Branches:      branches,
		Branch:        x.branch,
		BinaryBaseURL: x.binaryBaseURL,
		Busy:          x.busy,
		LastError:     x.lastErr,
	}
	if x.result != nil {
		snapshot.SandboxID = x.result.ID
	}
	return snapshot
}

// Close stops branch lookups of the session.
func (x *Session) Close() {
	x.resolver.Close()
}
