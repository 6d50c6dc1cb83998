package staff

import (
	"errors"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not
	// created through the NewSession constructor.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrAccountInactive is returned when an inactive account attempts
	// to obtain a session.
	ErrAccountInactive = errors.New("account is inactive")
)

// Session is the explicit, passable snapshot of who is signed in.
// Handlers and commands receive a Session as an argument instead of
// consulting ambient global state, so every role check is traceable to
// the session that authorized it.
type Session struct {
	profile Profile

	isConstructed bool
}

// NewSession creates a session for an active staff profile.
// Inactive accounts cannot obtain a session.
func NewSession(profile Profile) (Session, error) {
	if err := profile.Validate(); err != nil {
		return Session{}, err
	}
	if profile.Status() != Active {
		return Session{}, ErrAccountInactive
	}

	return Session{profile: profile, isConstructed: true}, nil
}

// Validate ensures the Session was created via NewSession.
func (s Session) Validate() error {
	if !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// UserID returns the signed-in account's identifier.
func (s Session) UserID() kernel.UUID {
	return s.profile.ID()
}

// Username returns the signed-in account's display name.
func (s Session) Username() string {
	return s.profile.Username()
}

// Role returns the signed-in account's authorization role.
func (s Session) Role() Role {
	return s.profile.Role()
}
