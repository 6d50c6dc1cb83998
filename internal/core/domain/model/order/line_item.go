package order

import (
	"errors"
	"fmt"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/catalog"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one (item, quantity, subtotal) entry within an order.
// It is an immutable value object: the unit price is copied from the
// catalog item at add-time, not live-linked, so a later price change does
// not rewrite lines that were already added or persisted.
//
// Invariants:
//   - product identifier and kind are valid
//   - name is not empty
//   - unit price is non-negative
//   - quantity is a positive integer
//   - subtotal = unit price × quantity, fixed at construction
type LineItem struct {
	productID kernel.UUID
	kind      catalog.Kind
	name      string
	price     decimal.Decimal
	quantity  int
	subtotal  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLineItem creates a line for the given catalog item and quantity.
// The subtotal is computed here and never recomputed afterwards.
//
// Example:
//
//	item, _ := catalog.NewItem(id, catalog.Book, "Clean Code", price, 25)
//	line, err := order.NewLineItem(item, 2)
//	if err != nil {
//	    // quantity was below 1 or the item was invalid
//	}
func NewLineItem(item catalog.Item, quantity int) (LineItem, error) {
	if err := item.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return LineItem{
		productID: item.ID(),
		kind:      item.Kind(),
		name:      item.Name(),
		price:     item.Price(),
		quantity:  quantity,
		subtotal:  item.Price().Mul(decimal.NewFromInt(int64(quantity))),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreLineItem reconstructs a line from persistence without recomputing
// the subtotal, preserving exactly what was written at order creation.
func RestoreLineItem(
	productID kernel.UUID,
	kind catalog.Kind,
	name string,
	price decimal.Decimal,
	quantity int,
	subtotal decimal.Decimal,
) (LineItem, error) {
	if err := errors.Join(productID.Validate(), kind.Validate()); err != nil {
		return LineItem{}, err
	}
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return LineItem{
		productID: productID,
		kind:      kind,
		name:      name,
		price:     price,
		quantity:  quantity,
		subtotal:  subtotal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the LineItem was created via a constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the referenced catalog item's identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Kind returns which catalog the referenced item came from.
func (li LineItem) Kind() catalog.Kind {
	return li.kind
}

// Name returns the display name copied from the catalog item at add-time.
func (li LineItem) Name() string {
	return li.name
}

// Price returns the unit price copied from the catalog item at add-time.
func (li LineItem) Price() decimal.Decimal {
	return li.price
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns unit price × quantity as fixed at construction.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.subtotal
}
