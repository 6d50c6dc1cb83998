package ports

import (
	"context"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items form one unit: Add writes both together,
// Get returns both together, and Delete removes both together.
type OrderRepository interface {
	// Add persists a new order aggregate with all its line items.
	// Within a unit of work the header and the items are written in the
	// same transaction, so a failed item write never leaves an orphaned
	// header behind.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes to an existing order. Line items
	// and the total are immutable after creation and are not touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete permanently removes the order and its line items.
	// Works from any status; authorization is the caller's concern.
	Delete(ctx context.Context, id kernel.UUID) error
}
