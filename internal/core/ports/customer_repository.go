package ports

import (
	"context"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/customer"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
)

// CustomerRepository provides read access to customer records.
// Order creation uses it to resolve the customer reference and snapshot
// the display name.
type CustomerRepository interface {
	// Get retrieves a customer by identifier.
	Get(ctx context.Context, id kernel.UUID) (customer.Customer, error)
}
