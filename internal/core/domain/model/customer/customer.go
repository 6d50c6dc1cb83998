// Package customer models the shop's customer records. The order workflow
// reads them to reference a customer and snapshot their display name;
// customer maintenance itself happens through separate forms.
package customer

import (
	"errors"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a buyer record referenced by orders.
type Customer struct {
	id    kernel.UUID
	name  string
	email string
	phone string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer record with validation.
func NewCustomer(id kernel.UUID, name, email, phone string) (Customer, error) {
	if err := id.Validate(); err != nil {
		return Customer{}, err
	}
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("name")
	}

	return Customer{
		id:    id,
		name:  name,
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customer was created via NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer identifier.
func (c Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the display name snapshotted onto orders at creation.
func (c Customer) Name() string {
	return c.name
}

// Email returns the contact address; may be empty.
func (c Customer) Email() string {
	return c.email
}

// Phone returns the contact number; may be empty.
func (c Customer) Phone() string {
	return c.phone
}
