package queries

import (
	"errors"
	"time"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersExportQueryIsNotConstructed = errors.New(
	"GetOrdersExportQuery must be created via NewGetOrdersExportQuery constructor",
)

// GetOrdersExportQuery retrieves the order list enriched with the
// salesperson's role, which the CSV export includes but the listing
// screen does not.
type GetOrdersExportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersExportQuery creates a query for the CSV export rows.
func NewGetOrdersExportQuery() GetOrdersExportQuery {
	return GetOrdersExportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersExportQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersExportQueryIsNotConstructed)
}

// GetOrdersExportQueryResponse is one CSV row before rendering. Role is
// resolved live from the salesperson's current profile; a deleted profile
// leaves it empty rather than failing the export.
type GetOrdersExportQueryResponse struct {
	ID           kernel.UUID
	OrderDate    time.Time
	CustomerName string
	SalesmanName string
	Role         string
	Total        decimal.Decimal
	Status       string
}
