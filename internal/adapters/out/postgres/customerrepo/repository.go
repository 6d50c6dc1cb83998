// Package customerrepo persists customer records. The order workflow only
// reads customers; maintenance forms use Add and Update.
package customerrepo

import (
	"context"
	"errors"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/customer"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerDTO represents the database structure for customer records.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"index"`
	Email string
	Phone string
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    c.ID().Bytes(),
		Name:  c.Name(),
		Email: c.Email(),
		Phone: c.Phone(),
	}
}

func toDomain(dto CustomerDTO) (customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return customer.Customer{}, err
	}

	return customer.NewCustomer(id, dto.Name, dto.Email, dto.Phone)
}

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer record.
func (r *GormCustomerRepository) Add(ctx context.Context, c customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return customer.Customer{}, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer.Customer{}, errs.NewObjectNotFoundError("customer", id.String())
		}
		return customer.Customer{}, err
	}

	return toDomain(dto)
}
