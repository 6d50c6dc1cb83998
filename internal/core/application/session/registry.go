// Package session tracks who is currently signed in to the back office.
// The signed-in identity lives in an explicit Registry that interested
// components subscribe to, rather than in ambient global state: a role
// check is always traceable to the Session value that authorized it, and
// screens react to sign-in changes through their subscription instead of
// polling.
package session

import (
	"context"
	"sync"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/staff"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/ports"
)

// Listener is notified after every sign-in state change. current is nil
// after sign-out. Listeners run synchronously on the goroutine that
// changed the state and must not block.
type Listener func(current *staff.Session)

// Registry holds the current session and notifies subscribers on change.
// Safe for concurrent use.
type Registry struct {
	profiles ports.ProfileRepository

	mu        sync.RWMutex
	current   *staff.Session
	listeners []Listener
}

// NewRegistry creates a registry that resolves sign-ins through the given
// profile repository.
func NewRegistry(profiles ports.ProfileRepository) *Registry {
	return &Registry{profiles: profiles}
}

// Current returns the active session, or false when nobody is signed in.
func (r *Registry) Current() (staff.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return staff.Session{}, false
	}
	return *r.current, true
}

// Subscribe registers a listener for sign-in state changes. The listener
// is immediately invoked with the current state so subscribers never start
// from a stale view.
func (r *Registry) Subscribe(listener Listener) {
	r.mu.Lock()
	r.listeners = append(r.listeners, listener)
	current := r.current
	r.mu.Unlock()

	listener(current)
}

// SignIn resolves the account and makes its session current.
// Fails with ObjectNotFoundError for unknown accounts and ErrAccountInactive
// for deactivated ones; the previous session, if any, stays active on
// failure.
func (r *Registry) SignIn(ctx context.Context, accountID kernel.UUID) (staff.Session, error) {
	profile, err := r.profiles.Get(ctx, accountID)
	if err != nil {
		return staff.Session{}, err
	}

	session, err := staff.NewSession(profile)
	if err != nil {
		return staff.Session{}, err
	}

	r.set(&session)
	return session, nil
}

// SignOut clears the current session. Signing out while nobody is signed
// in is a no-op that still notifies subscribers.
func (r *Registry) SignOut() {
	r.set(nil)
}

func (r *Registry) set(session *staff.Session) {
	r.mu.Lock()
	r.current = session
	listeners := make([]Listener, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, listener := range listeners {
		listener(session)
	}
}
