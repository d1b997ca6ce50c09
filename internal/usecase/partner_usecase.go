// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/entity"
)

// --- Input DTOs ---

// CreatePartnerInput defines the data required to register a new partner.
// All fields are required and must be non-empty.
type CreatePartnerInput struct {
	Name     string `json:"name" validate:"required"`
	Lastname string `json:"lastname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePartnerInput defines a partial update: only non-nil fields are
// applied, everything else is left unchanged.
type UpdatePartnerInput struct {
	ID       int64   `json:"id" validate:"required"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Lastname *string `json:"lastname,omitempty" validate:"omitempty,min=1"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Token    *string `json:"token,omitempty" validate:"omitempty,min=1"`
}

// UpdatePasswordInput defines the data required to change a partner's password.
type UpdatePasswordInput struct {
	ID       int64  `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a partner to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// PaginatedPartnersOutput carries one page of non-deleted partners plus the
// total non-deleted count, for building pagination metadata client-side.
type PaginatedPartnersOutput struct {
	Partners []*entity.Partner `json:"partners"`
	Count    int64             `json:"count"`
}

// PartnerUsecase defines the interface for partner lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type PartnerUsecase interface {
	// Create registers a new partner with a hashed password and a freshly
	// generated unique token, active and not deleted.
	Create(ctx context.Context, input *CreatePartnerInput) (*entity.Partner, error)

	// Update applies a partial update after validating email/token uniqueness
	// against other partners.
	Update(ctx context.Context, input *UpdatePartnerInput) (*entity.Partner, error)

	// UpdatePassword replaces the password, rejecting a no-op change to the
	// current password.
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) (*entity.Partner, error)

	// Login authenticates an active, non-deleted partner by email and password.
	Login(ctx context.Context, input *LoginInput) (*entity.Partner, error)

	// SoftDelete marks the partner deleted and returns the pre-deletion snapshot.
	SoftDelete(ctx context.Context, id int64) (*entity.Partner, error)

	// Restore clears the soft-delete flag.
	Restore(ctx context.Context, id int64) error

	// Activate and Deactivate toggle the is_active flag.
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error

	// GetByID retrieves a partner by id regardless of status.
	GetByID(ctx context.Context, id int64) (*entity.Partner, error)

	// GetByToken retrieves an active, non-deleted partner by token. Absence is
	// a business outcome, not a failure: it returns (nil, nil) so callers can
	// render a 404 without tripping generic error handling.
	GetByToken(ctx context.Context, token string) (*entity.Partner, error)

	// GetByName retrieves a partner by name, (nil, nil) when absent.
	GetByName(ctx context.Context, name string) (*entity.Partner, error)

	// ListAll returns every partner, including soft-deleted ones.
	ListAll(ctx context.Context) ([]*entity.Partner, error)

	// ListActive returns partners with the active flag set.
	ListActive(ctx context.Context) ([]*entity.Partner, error)

	// GetPaginated returns the zero-based page of non-deleted partners ordered
	// by creation time descending, plus the total non-deleted count.
	GetPaginated(ctx context.Context, page, items int) (*PaginatedPartnersOutput, error)
}
