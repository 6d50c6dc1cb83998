package order

import (
	"errors"
	"time"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the persisted sales order aggregate. It manages the order
// lifecycle from creation through completion or cancellation.
//
// Order follows these invariants:
//   - created in Pending status; no other initial status is possible
//   - customer and salesperson display names are snapshots copied at
//     creation, so renaming a customer later does not rewrite old orders
//   - the total and the line items are immutable after creation; only the
//     status changes, and only through Complete and Cancel
//   - can only be created through NewOrder or RestoreOrder
//
// Private fields keep the aggregate encapsulated; all mutation goes
// through validated methods.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	customerName string
	salesmanID   kernel.UUID
	salesmanName string
	orderDate    time.Time
	status       Status
	total        decimal.Decimal
	lines        []LineItem

	isConstructed bool
}

// NewOrder creates a new Order from a submitted draft.
//
// The draft supplies the customer reference, the lines, and the total;
// the customer and salesperson names are denormalized here so receipts
// keep their historical wording. Status is always Pending and the order
// date is fixed to the given creation time.
//
// Example:
//
//	draft, _ := builder.Submit()
//	o, err := order.NewOrder(kernel.NewUUID(), draft, "John Smith",
//	    session.UserID(), session.Username(), time.Now())
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	draft Draft,
	customerName string,
	salesmanID kernel.UUID,
	salesmanName string,
	orderDate time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		draft.Validate(),
		salesmanID.Validate(),
	); err != nil {
		return nil, err
	}
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}
	if salesmanName == "" {
		return nil, errs.NewValueIsRequiredError("salesmanName")
	}

	return &Order{
		id:            id,
		customerID:    draft.CustomerID(),
		customerName:  customerName,
		salesmanID:    salesmanID,
		salesmanName:  salesmanName,
		orderDate:     orderDate,
		status:        Pending,
		total:         draft.Total(),
		lines:         draft.Lines(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status, since stored orders may already be terminal.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	salesmanID kernel.UUID,
	salesmanName string,
	orderDate time.Time,
	status Status,
	total decimal.Decimal,
	lines []LineItem,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		salesmanID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}
	if salesmanName == "" {
		return nil, errs.NewValueIsRequiredError("salesmanName")
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		customerName:  customerName,
		salesmanID:    salesmanID,
		salesmanName:  salesmanName,
		orderDate:     orderDate,
		status:        status,
		total:         total,
		lines:         lines,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was properly constructed.
// Call this when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the referenced customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerName returns the customer display name snapshotted at creation.
func (o *Order) CustomerName() string {
	return o.customerName
}

// SalesmanID returns the identifier of the staff member who created the order.
func (o *Order) SalesmanID() kernel.UUID {
	return o.salesmanID
}

// SalesmanName returns the creator display name snapshotted at creation.
func (o *Order) SalesmanName() string {
	return o.salesmanName
}

// OrderDate returns when the order was created.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total fixed at creation.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Lines returns a copy of the order's line items in display order.
func (o *Order) Lines() []LineItem {
	lines := make([]LineItem, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Complete marks the order as fulfilled.
//
// Allowed only from Pending; any other status yields an
// InvalidTransitionError. After success the order is terminal.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel calls the order off.
//
// Allowed only from Pending. Completed orders cannot be cancelled, and
// cancelling twice fails rather than succeeding silently.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
