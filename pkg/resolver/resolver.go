package resolver

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
)

// DefaultQuietPeriod is the time without further edits before a scheduled lookup runs.
const DefaultQuietPeriod = 500 * time.Millisecond

// BranchLister enumerates branches of a repository. interfaces.GitHub satisfies it.
type BranchLister interface {
	ListBranches(ctx context.Context, ref model.RepositoryRef) ([]types.BranchName, error)
}

// State is a snapshot of the resolver. Branches and Selected are empty until a
// lookup succeeds and after a lookup fails.
type State struct {
	Ref      model.RepositoryRef
	Branches []types.BranchName
	Selected types.BranchName
}

func (x State) copy() State {
	branches := make([]types.BranchName, len(x.Branches))
	copy(branches, x.Branches)
	x.Branches = branches
	return x
}

// Resolver keeps a branch list in sync with a repository reference that is
// edited by a user. Edits are debounced and at most one lookup is in flight.
type Resolver struct {
	lister      BranchLister
	quietPeriod time.Duration
	onUpdate    func(State)

	mu sync.Mutex
	// notifyMu keeps onUpdate calls in the order lookups were applied.
	notifyMu sync.Mutex

	timer    *time.Timer
	schedule uint64
	seq      uint64
	cancel   context.CancelFunc
	state    State
	closed   bool
}

type Option func(*Resolver)

func WithQuietPeriod(d time.Duration) Option {
	return func(x *Resolver) {
		x.quietPeriod = d
	}
}

// WithOnUpdate sets a callback called after every applied lookup, including a
// failed one that cleared the state. It must not call Close.
func WithOnUpdate(fn func(State)) Option {
	return func(x *Resolver) {
		x.onUpdate = fn
	}
}

func New(lister BranchLister, options ...Option) *Resolver {
	x := &Resolver{
		lister:      lister,
		quietPeriod: DefaultQuietPeriod,
		state: State{
			Branches: []types.BranchName{},
		},
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// OnRepositoryRefChanged schedules a lookup of ref after the quiet period and
// discards a lookup scheduled before. An incomplete ref is ignored and the
// current state is kept. Values of ctx such as the logger are kept for the
// scheduled lookup but its cancellation is not.
func (x *Resolver) OnRepositoryRefChanged(ctx context.Context, ref model.RepositoryRef) {
	if !ref.IsComplete() {
		return
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.closed {
		return
	}

	if x.timer != nil {
		x.timer.Stop()
	}
	x.schedule++
	gen := x.schedule
	bgCtx := context.WithoutCancel(ctx)

	x.timer = time.AfterFunc(x.quietPeriod, func() {
		x.mu.Lock()
		if gen != x.schedule || x.closed {
			x.mu.Unlock()
			return
		}
		x.timer = nil
		x.mu.Unlock()

		x.PerformLookup(bgCtx, ref)
	})
}

// PerformLookup cancels the in-flight lookup and looks up branches of ref. It
// blocks until the lookup finishes. Errors are absorbed: a failed lookup
// clears the branch list and the selection. A lookup that has been superseded
// by a newer one is dropped whatever its outcome.
func (x *Resolver) PerformLookup(ctx context.Context, ref model.RepositoryRef) {
	if !ref.IsComplete() {
		return
	}

	x.mu.Lock()
	if x.closed {
		x.mu.Unlock()
		return
	}
	if x.cancel != nil {
		x.cancel()
	}
	lookupCtx, cancel := context.WithCancel(ctx)
	x.seq++
	seq := x.seq
	x.cancel = cancel
	x.mu.Unlock()
	defer cancel()

	logger := logging.From(ctx).With("repo", ref, "lookup", seq)
	logger.Debug("looking up branches")

	branches, err := x.lister.ListBranches(lookupCtx, ref)

	x.mu.Lock()
	if seq != x.seq {
		x.mu.Unlock()
		logger.Debug("drop superseded lookup", "error", err)
		return
	}
	x.cancel = nil

	if err != nil {
		logger.Warn("failed to look up branches", "error", err)
		x.state = State{
			Ref:      ref,
			Branches: []types.BranchName{},
		}
	} else {
		selection := model.NewBranchSelection(branches)
		x.state = State{
			Ref:      ref,
			Branches: selection.Branches,
			Selected: selection.Selected,
		}
		logger.Debug("branches updated", "count", len(selection.Branches), "selected", selection.Selected)
	}
	snapshot := x.state.copy()

	x.notifyMu.Lock()
	x.mu.Unlock()
	defer x.notifyMu.Unlock()

	if x.onUpdate != nil {
		x.onUpdate(snapshot)
	}
}

// State returns a snapshot of the current branch list and selection.
func (x *Resolver) State() State {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.state.copy()
}

// Select overrides the selected branch.
func (x *Resolver) Select(branch types.BranchName) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.state.Selected = branch
}

// Close discards a scheduled lookup and cancels the in-flight one. Results of
// lookups running at that time are dropped.
func (x *Resolver) Close() {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.closed = true
	if x.timer != nil {
		x.timer.Stop()
		x.timer = nil
	}
	if x.cancel != nil {
		x.cancel()
		x.cancel = nil
	}
	x.seq++
}
