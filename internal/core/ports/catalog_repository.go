package ports

import (
	"context"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/catalog"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
)

// CatalogRepository provides read access to the sellable item catalogs.
// The order workflow never writes to the catalogs.
type CatalogRepository interface {
	// ListByKind returns the full current set of items of one kind.
	// No server-side pagination or filtering; searching happens in the
	// caller. Failures surface as FetchError so callers can keep any
	// previously loaded set untouched.
	ListByKind(ctx context.Context, kind catalog.Kind) ([]catalog.Item, error)

	// Get retrieves a single item by kind and identifier.
	Get(ctx context.Context, kind catalog.Kind, id kernel.UUID) (catalog.Item, error)
}
