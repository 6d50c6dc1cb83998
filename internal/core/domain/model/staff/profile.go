package staff

import (
	"errors"
	"fmt"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/guard"
)

// ErrProfileIsNotConstructed is returned when a Profile was not created
// through the NewProfile constructor.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

// AccountStatus tells whether a staff account may sign in.
type AccountStatus int

const (
	// UnknownAccountStatus represents an invalid or undefined status.
	UnknownAccountStatus AccountStatus = iota

	// Active accounts may sign in and operate the back office.
	Active

	// Inactive accounts are retained for history but denied sign-in.
	Inactive
)

func getAccountStatusStrings() map[AccountStatus]string {
	return map[AccountStatus]string{
		UnknownAccountStatus: "Unknown",
		Active:               "Active",
		Inactive:             "Inactive",
	}
}

// AccountStatusFromString parses a persisted account status value.
func AccountStatusFromString(s string) (AccountStatus, error) {
	switch s {
	case "Active":
		return Active, nil
	case "Inactive":
		return Inactive, nil
	default:
		return UnknownAccountStatus, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid account status", s))
	}
}

// Validate checks the AccountStatus is one of the valid values.
func (s AccountStatus) Validate() error {
	if s != Active && s != Inactive {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid account status", s))
	}
	return nil
}

// String returns the persisted name of the account status.
func (s AccountStatus) String() string {
	if str, ok := getAccountStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Profile is a staff account record: who a person is and what they are
// allowed to do. Credentials live with the external auth provider; this
// type only carries the identity attributes the back office needs.
type Profile struct {
	id       kernel.UUID
	username string
	email    string
	role     Role
	status   AccountStatus

	guard guard.ConstructorGuard
}

// NewProfile creates a staff profile with validation.
func NewProfile(id kernel.UUID, username, email string, role Role, status AccountStatus) (Profile, error) {
	profile := Profile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profile.setID(id),
		profile.setUsername(username),
		profile.setRole(role),
		profile.setStatus(status),
	); err != nil {
		return Profile{}, err
	}

	profile.email = email
	return profile, nil
}

// Validate ensures the Profile was created via NewProfile.
func (p Profile) Validate() error {
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// ID returns the account identifier.
func (p Profile) ID() kernel.UUID {
	return p.id
}

// Username returns the sign-in name, also used as the salesperson
// display name snapshotted onto orders.
func (p Profile) Username() string {
	return p.username
}

// Email returns the contact address; may be empty.
func (p Profile) Email() string {
	return p.email
}

// Role returns the account's authorization role.
func (p Profile) Role() Role {
	return p.role
}

// Status returns whether the account is active.
func (p Profile) Status() AccountStatus {
	return p.status
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	p.username = username
	return nil
}

func (p *Profile) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

func (p *Profile) setStatus(status AccountStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
