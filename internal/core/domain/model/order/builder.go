package order

import (
	"errors"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/catalog"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	// ErrCustomerRequired is returned by Submit when no customer has been
	// selected for the draft order.
	ErrCustomerRequired = errors.New("a customer must be selected before submitting the order")

	// ErrNoLineItems is returned by Submit when the draft has no lines.
	ErrNoLineItems = errors.New("an order must contain at least one line item")
)

// Builder accumulates an in-progress order before it is persisted.
// It is the in-memory counterpart of the create-order form: a customer
// selection plus an ordered sequence of lines, where insertion order is
// display order.
//
// Builder is not safe for concurrent use; each order being assembled gets
// its own instance, created empty and discarded after Submit or abandon.
//
// Adding the same catalog item twice produces two separate lines.
// Quantities are deliberately not merged: each AddLine call is an
// independent entry, matching how the order form behaves.
type Builder struct {
	customerID *kernel.UUID
	lines      []LineItem
}

// NewBuilder creates an empty order builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SelectCustomer sets the customer the order is for. The selection is only
// checked for presence at Submit time, so it can be changed freely while
// lines are being added.
func (b *Builder) SelectCustomer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	b.customerID = &id
	return nil
}

// CustomerID returns the currently selected customer, or nil if none.
func (b *Builder) CustomerID() *kernel.UUID {
	return b.customerID
}

// AddLine appends a new line for the given catalog item and quantity.
// Rejects invalid items and quantities below 1, leaving the draft
// untouched. The line's unit price and subtotal are fixed at this moment.
func (b *Builder) AddLine(item catalog.Item, quantity int) error {
	line, err := NewLineItem(item, quantity)
	if err != nil {
		return err
	}

	b.lines = append(b.lines, line)
	return nil
}

// RemoveLine removes the line at the given position.
// Out-of-range indexes are ignored.
func (b *Builder) RemoveLine(index int) {
	if index < 0 || index >= len(b.lines) {
		return
	}

	b.lines = append(b.lines[:index], b.lines[index+1:]...)
}

// Lines returns a copy of the current lines in insertion order.
func (b *Builder) Lines() []LineItem {
	lines := make([]LineItem, len(b.lines))
	copy(lines, b.lines)
	return lines
}

// Total returns the sum of all line subtotals. It is recomputed on every
// call and never cached, so it cannot drift from the lines it is derived
// from.
func (b *Builder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range b.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Submit validates the draft and returns an immutable snapshot of it.
//
// Fails with ErrCustomerRequired when no customer is selected, regardless
// of line count, and with ErrNoLineItems when there are no lines,
// regardless of customer selection. The builder itself is left unchanged;
// the caller decides whether to discard it after a successful submit.
func (b *Builder) Submit() (Draft, error) {
	if b.customerID == nil {
		return Draft{}, ErrCustomerRequired
	}
	if len(b.lines) == 0 {
		return Draft{}, ErrNoLineItems
	}

	return newDraft(*b.customerID, b.Lines(), b.Total()), nil
}
