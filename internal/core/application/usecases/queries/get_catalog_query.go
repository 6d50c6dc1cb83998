package queries

import (
	"errors"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/catalog"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery retrieves all items of one catalog kind for the item
// picker. The whole set is returned at once; searching and filtering
// happen on the loaded set, not in the database.
//
// Example:
//
//	query, _ := NewGetCatalogQuery(catalog.Book)
//	handler := NewGetCatalogQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrFetchFailed) {
//	    // keep showing the previously loaded set
//	}
type GetCatalogQuery struct { //nolint:recvcheck //using for validation
	kind catalog.Kind

	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a query for one catalog kind.
// Validates the kind.
func NewGetCatalogQuery(kind catalog.Kind) (GetCatalogQuery, error) {
	if err := kind.Validate(); err != nil {
		return GetCatalogQuery{}, err
	}

	return GetCatalogQuery{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// Kind returns which catalog the query targets.
func (q GetCatalogQuery) Kind() catalog.Kind {
	return q.kind
}

// GetCatalogQueryResponse is one sellable item as shown in the picker.
type GetCatalogQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Price decimal.Decimal
	Stock int
}
