// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. This package implements the repository pattern for
// the order aggregate, handling the conversion between domain entities and
// database rows. An order maps to one row in "orders" plus one row per
// line in "order_items".
package orderrepo

import (
	"sort"
	"time"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/catalog"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order headers.
// Customer and salesperson names are stored denormalized, frozen at
// creation time, so the listing never needs a join and historical rows
// survive later renames.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	CustomerName string
	SalesmanID   uuid.UUID `gorm:"type:uuid;index"`
	SalesmanName string
	OrderDate    time.Time       `gorm:"index"`
	Status       string          `gorm:"type:varchar(16);index"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2)"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order headers.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. Position preserves the
// display order of lines; duplicate product references are legal rows, not
// merged. Deleting the parent order cascades to its items.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Position  int
	ProductID uuid.UUID `gorm:"type:uuid"`
	ItemType  string    `gorm:"type:varchar(16)"`
	Name      string
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity  int
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Line rows get fresh identifiers; their position is the index within the
// aggregate's line slice.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	items := make([]OrderItemDTO, 0, len(lines))
	for i, line := range lines {
		items = append(items, OrderItemDTO{
			ID:        uuid.New(),
			OrderID:   aggregate.ID().Bytes(),
			Position:  i,
			ProductID: line.ProductID().Bytes(),
			ItemType:  line.Kind().String(),
			Name:      line.Name(),
			Price:     line.Price(),
			Quantity:  line.Quantity(),
			Subtotal:  line.Subtotal(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		SalesmanID:   aggregate.SalesmanID().Bytes(),
		SalesmanName: aggregate.SalesmanName(),
		OrderDate:    aggregate.OrderDate(),
		Status:       aggregate.Status().String(),
		Total:        aggregate.Total(),
		Items:        items,
	}
}

// toDomain converts database rows back to an order aggregate.
// Line subtotals are restored exactly as written, not recomputed.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	salesmanID, err := kernel.UUIDFromBytes(dto.SalesmanID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]OrderItemDTO, len(dto.Items))
	copy(items, dto.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })

	lines := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		productID, itemErr := kernel.UUIDFromBytes(item.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		kind, itemErr := catalog.KindFromString(item.ItemType)
		if itemErr != nil {
			return nil, itemErr
		}

		line, itemErr := order.RestoreLineItem(
			productID, kind, item.Name, item.Price, item.Quantity, item.Subtotal)
		if itemErr != nil {
			return nil, itemErr
		}

		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.CustomerName,
		salesmanID,
		dto.SalesmanName,
		dto.OrderDate,
		status,
		dto.Total,
		lines,
	)
}
