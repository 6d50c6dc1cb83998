package queries

import (
	"context"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/catalog"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCatalogQueryHandler reads one catalog from the database. The two
// kinds live in separate tables with the same shape; the kind picks the
// table.
//
// Failures are wrapped in FetchError so a caller holding an already
// loaded set can distinguish "the reload failed" from "the catalog is
// empty" and keep the stale set on screen.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog queries.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

func catalogTable(kind catalog.Kind) string {
	if kind == catalog.Book {
		return "books"
	}
	return "stationary"
}

// Handle executes the query to retrieve all items of the requested kind,
// sorted by name for a stable picker order.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) ([]GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	table := catalogTable(query.Kind())
	items := make([]GetCatalogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			stock
		FROM ` + table + `
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, errs.NewFetchError(table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCatalogQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Price,
			&resp.Stock,
		)
		if err != nil {
			return nil, errs.NewFetchError(table, err)
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = itemID

		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewFetchError(table, err)
	}

	return items, nil
}
