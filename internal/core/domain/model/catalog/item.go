package catalog

import (
	"errors"
	"fmt"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a sellable unit from one of the two catalogs. The source of
// truth for items is the backing store; this type is a read-side value
// object, never mutated by the order workflow.
//
// Invariants:
//   - identifier and kind are valid
//   - display name is not empty
//   - unit price is non-negative
//   - available stock is non-negative
type Item struct {
	id    kernel.UUID
	kind  Kind
	name  string
	price decimal.Decimal
	stock int

	guard guard.ConstructorGuard
}

// NewItem creates a catalog item with validation. This is the only way to
// obtain a valid Item.
//
// Example:
//
//	price := decimal.RequireFromString("45.99")
//	item, err := catalog.NewItem(kernel.NewUUID(), catalog.Book, "Clean Code", price, 25)
//	if err != nil {
//	    // handle validation error
//	}
func NewItem(id kernel.UUID, kind Kind, name string, price decimal.Decimal, stock int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setKind(kind),
		item.setName(name),
		item.setPrice(price),
		item.setStock(stock),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's identifier, unique within its kind.
func (i Item) ID() kernel.UUID {
	return i.id
}

// Kind returns which catalog the item belongs to.
func (i Item) Kind() Kind {
	return i.kind
}

// Name returns the display name shown in item pickers and order lines.
func (i Item) Name() string {
	return i.name
}

// Price returns the current unit price. Order lines copy this value at
// add-time; a later price change does not rewrite existing lines.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Stock returns the available quantity on hand.
func (i Item) Stock() int {
	return i.stock
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	i.kind = kind
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock", fmt.Errorf("%d is negative", stock))
	}
	i.stock = stock
	return nil
}
