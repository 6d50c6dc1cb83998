package queries

import (
	"context"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersExportQueryHandler reads the export rows: the order listing
// joined with the salesperson's profile for the role column.
type GetOrdersExportQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersExportQueryHandler creates a handler for export queries.
func NewGetOrdersExportQueryHandler(db *gorm.DB) GetOrdersExportQueryHandler {
	return GetOrdersExportQueryHandler{db: db}
}

// Handle executes the export query, newest orders first.
func (h GetOrdersExportQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersExportQuery,
) ([]GetOrdersExportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_date,
			o.customer_name,
			o.salesman_name,
			COALESCE(p.role, ''),
			o.total,
			o.status
		FROM orders o
		LEFT JOIN profiles p ON p.id = o.salesman_id
		ORDER BY o.order_date DESC, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]GetOrdersExportQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersExportQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.OrderDate,
			&resp.CustomerName,
			&resp.SalesmanName,
			&resp.Role,
			&resp.Total,
			&resp.Status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		result = append(result, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
