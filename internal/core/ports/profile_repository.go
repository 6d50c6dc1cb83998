package ports

import (
	"context"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/staff"
)

// ProfileRepository provides read access to staff account records.
// Identity itself is established by the external auth provider; this
// repository maps an authenticated user id to the role and status the
// back office needs.
type ProfileRepository interface {
	// Get retrieves a staff profile by account identifier.
	Get(ctx context.Context, id kernel.UUID) (staff.Profile, error)
}
