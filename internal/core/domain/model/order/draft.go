package order

import (
	"errors"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrDraftIsNotConstructed is returned when a Draft did not come from
// Builder.Submit.
var ErrDraftIsNotConstructed = errors.New("Draft must be produced by Builder.Submit")

// Draft is the finalized, immutable snapshot of an order built with a
// Builder. It is the unit handed to order creation: once a Draft exists,
// its customer, lines, and total can no longer change.
type Draft struct {
	customerID kernel.UUID
	lines      []LineItem
	total      decimal.Decimal

	guard guard.ConstructorGuard
}

// newDraft is called by Builder.Submit after validation. The lines slice
// is owned by the draft; Submit passes a copy.
func newDraft(customerID kernel.UUID, lines []LineItem, total decimal.Decimal) Draft {
	return Draft{
		customerID: customerID,
		lines:      lines,
		total:      total,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the Draft came from Builder.Submit.
func (d Draft) Validate() error {
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

// CustomerID returns the customer the order is for.
func (d Draft) CustomerID() kernel.UUID {
	return d.customerID
}

// Lines returns a copy of the draft's lines in display order.
func (d Draft) Lines() []LineItem {
	lines := make([]LineItem, len(d.lines))
	copy(lines, d.lines)
	return lines
}

// Total returns the sum of line subtotals captured at submit time.
func (d Draft) Total() decimal.Decimal {
	return d.total
}
