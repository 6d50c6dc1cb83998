// Package profilerepo persists staff account profiles. Sign-in maps an
// account identifier to the role and status stored here.
package profilerepo

import (
	"context"
	"errors"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/staff"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileDTO represents the database structure for staff accounts.
// Role and status are stored under their persisted names ("owner",
// "sales_man", "Active", "Inactive").
type ProfileDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"uniqueIndex"`
	Email    string
	Role     string `gorm:"type:varchar(16)"`
	Status   string `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for staff profiles.
func (ProfileDTO) TableName() string {
	return "profiles"
}

func fromDomain(p staff.Profile) ProfileDTO {
	return ProfileDTO{
		ID:       p.ID().Bytes(),
		Username: p.Username(),
		Email:    p.Email(),
		Role:     p.Role().String(),
		Status:   p.Status().String(),
	}
}

func toDomain(dto ProfileDTO) (staff.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return staff.Profile{}, err
	}

	role, err := staff.RoleFromString(dto.Role)
	if err != nil {
		return staff.Profile{}, err
	}

	status, err := staff.AccountStatusFromString(dto.Status)
	if err != nil {
		return staff.Profile{}, err
	}

	return staff.NewProfile(id, dto.Username, dto.Email, role, status)
}

// GormProfileRepository implements ProfileRepository using GORM.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// Add saves a new staff profile. Used by account administration, not the
// order workflow.
func (r *GormProfileRepository) Add(ctx context.Context, p staff.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a staff profile by account ID.
func (r *GormProfileRepository) Get(ctx context.Context, id kernel.UUID) (staff.Profile, error) {
	if err := id.Validate(); err != nil {
		return staff.Profile{}, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return staff.Profile{}, errs.NewObjectNotFoundError("profile", id.String())
		}
		return staff.Profile{}, err
	}

	return toDomain(dto)
}
