// Package catalogrepo reads the sellable item catalogs. Books and
// stationery live in separate tables with the same shape; the repository
// picks the table from the requested kind. The order workflow never writes
// here.
package catalogrepo

import (
	"context"
	"errors"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/catalog"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookDTO represents the database structure for book catalog items.
type BookDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"index"`
	Author     string
	Price      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Stock      int
	SupplierID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for books.
func (BookDTO) TableName() string {
	return "books"
}

// StationeryDTO represents the database structure for stationery catalog
// items. The table keeps the original "stationary" spelling from the data
// it was migrated from.
type StationeryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"index"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Stock      int
	SupplierID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for stationery items.
func (StationeryDTO) TableName() string {
	return "stationary"
}

// SupplierDTO represents the database structure for supplier records
// referenced by catalog items.
type SupplierDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"index"`
	Email string
	Phone string
}

// TableName specifies the database table name for suppliers.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

type itemRow struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
	Stock int
}

func tableFor(kind catalog.Kind) string {
	if kind == catalog.Book {
		return BookDTO{}.TableName()
	}
	return StationeryDTO{}.TableName()
}

func toItem(kind catalog.Kind, row itemRow) (catalog.Item, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return catalog.Item{}, err
	}

	return catalog.NewItem(id, kind, row.Name, row.Price, row.Stock)
}

// ListByKind retrieves all items of one kind, sorted by name.
// Failures are wrapped in FetchError so callers can keep a previously
// loaded set on screen.
func (r *GormCatalogRepository) ListByKind(
	ctx context.Context,
	kind catalog.Kind,
) ([]catalog.Item, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	table := tableFor(kind)

	var rows []itemRow
	err := r.db.WithContext(ctx).
		Table(table).
		Select("id", "name", "price", "stock").
		Order("name").
		Find(&rows).Error
	if err != nil {
		return nil, errs.NewFetchError(table, err)
	}

	items := make([]catalog.Item, 0, len(rows))
	for _, row := range rows {
		item, itemErr := toItem(kind, row)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}

// Get retrieves a single item by kind and ID.
func (r *GormCatalogRepository) Get(
	ctx context.Context,
	kind catalog.Kind,
	id kernel.UUID,
) (catalog.Item, error) {
	if err := errors.Join(kind.Validate(), id.Validate()); err != nil {
		return catalog.Item{}, err
	}

	table := tableFor(kind)

	var row itemRow
	err := r.db.WithContext(ctx).
		Table(table).
		Select("id", "name", "price", "stock").
		Where("id = ?", id.Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Item{}, errs.NewObjectNotFoundError("item", id.String())
		}
		return catalog.Item{}, errs.NewFetchError(table, err)
	}

	return toItem(kind, row)
}
