package session

import (
	"sync"

	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/resolver"
)

// Store keeps sessions of the HTTP API in memory.
type Store struct {
	lister   resolver.BranchLister
	deployer Deployer
	options  []Option

	mu       sync.RWMutex
	sessions map[types.SessionID]*Session
}

func NewStore(lister resolver.BranchLister, deployer Deployer, options ...Option) *Store {
	return &Store{
		lister:   lister,
		deployer: deployer,
		options:  options,
		sessions: make(map[types.SessionID]*Session),
	}
}

func (x *Store) Create() *Session {
	s := New(x.lister, x.deployer, x.options...)

	x.mu.Lock()
	defer x.mu.Unlock()
	x.sessions[s.ID()] = s

	return s
}

func (x *Store) Get(id types.SessionID) (*Session, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	s, ok := x.sessions[id]
	return s, ok
}

// Delete closes and removes the session. It returns false if no such session exists.
func (x *Store) Delete(id types.SessionID) bool {
	x.mu.Lock()
	s, ok := x.sessions[id]
	delete(x.sessions, id)
	x.mu.Unlock()

	if ok {
		s.Close()
	}
	return ok
}

func (x *Store) Close() {
	x.mu.Lock()
	sessions := x.sessions
	x.sessions = make(map[types.SessionID]*Session)
	x.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
