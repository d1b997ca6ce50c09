// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/entity"
)

// ErrPartnerNotFound is a domain-specific error returned when a partner is not found.
var ErrPartnerNotFound = errors.New("partner not found")

// PartnerRepository defines the standard operations for partner persistence.
// The application layer will depend on this interface, not the concrete implementation.
//
// Lookup methods return ErrPartnerNotFound when no row matches; callers use
// errors.Is to tell absence apart from infrastructure failures.
type PartnerRepository interface {
	// FindByID retrieves a single partner by id, regardless of status.
	FindByID(ctx context.Context, id int64) (*entity.Partner, error)

	// FindByEmailActive retrieves the partner holding the email among rows
	// with deleted = false and is_active = true. This is the filter used by
	// creation/update uniqueness checks and by login.
	FindByEmailActive(ctx context.Context, email string) (*entity.Partner, error)

	// FindByToken retrieves an active, non-deleted partner by token.
	FindByToken(ctx context.Context, token string) (*entity.Partner, error)

	// FindByTokenAnyStatus retrieves the partner holding the token regardless
	// of status. Token uniqueness spans the whole table, so collision checks
	// must not filter on the flags.
	FindByTokenAnyStatus(ctx context.Context, token string) (*entity.Partner, error)

	// FindByName retrieves a single partner by name, regardless of status.
	FindByName(ctx context.Context, name string) (*entity.Partner, error)

	// FindAll retrieves every partner row, including soft-deleted ones.
	FindAll(ctx context.Context) ([]*entity.Partner, error)

	// FindActive retrieves partners with is_active = true.
	FindActive(ctx context.Context) ([]*entity.Partner, error)

	// Create persists a new partner and fills in the store-assigned id and timestamps.
	Create(ctx context.Context, partner *entity.Partner) error

	// Update applies the given column/value pairs to the partner row and
	// returns the updated record.
	Update(ctx context.Context, id int64, fields map[string]any) (*entity.Partner, error)

	// UpdatePassword replaces the stored password hash and returns the updated record.
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) (*entity.Partner, error)

	// SoftDelete marks the partner as deleted without removing the row.
	SoftDelete(ctx context.Context, id int64) error

	// Restore clears the soft-delete flag.
	Restore(ctx context.Context, id int64) error

	// Activate sets is_active = true.
	Activate(ctx context.Context, id int64) error

	// Deactivate sets is_active = false.
	Deactivate(ctx context.Context, id int64) error

	// Delete removes the row permanently. Exposed as a raw store capability;
	// the lifecycle rules only ever soft-delete.
	Delete(ctx context.Context, id int64) error

	// Paginate returns non-deleted partners ordered by creation time
	// descending, plus the total count of non-deleted partners.
	Paginate(ctx context.Context, offset, limit int) ([]*entity.Partner, int64, error)
}
