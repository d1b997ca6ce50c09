// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/entity"
	domainerrors "github.com/Sebastian609/SOA-PARTNERS/internal/domain/errors"
	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/repository"
	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/service"
	"github.com/Sebastian609/SOA-PARTNERS/internal/usecase"

	"github.com/pkg/errors"
)

// maxTokenAttempts bounds the token generation retry loop at creation time.
// Exhausting it means ten consecutive store collisions on 128-bit random
// tokens, which in practice signals a broken entropy source or stub.
const maxTokenAttempts = 10

// partnerService implements the PartnerUsecase interface.
type partnerService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokens    service.TokenGenerator
	logger    *slog.Logger
}

// NewPartnerService is the constructor for partnerService. It receives all dependencies as interfaces.
func NewPartnerService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokens service.TokenGenerator,
	logger *slog.Logger,
) usecase.PartnerUsecase {
	return &partnerService{
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Create orchestrates the complete partner registration process: email
// uniqueness among active partners, bounded token generation, password
// hashing, and persistence of an active, non-deleted row.
func (srv *partnerService) Create(ctx context.Context, input *usecase.CreatePartnerInput) (*entity.Partner, error) {
	srv.logger.Info("Starting partner creation", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during partner creation", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during partner creation")
	}

	var created *entity.Partner

	// The uniqueness pre-checks and the insert run in a single transaction;
	// the unique constraints on tbl_partners remain the authoritative guard.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		partnerRepo := repoFactory.PartnerRepo()

		// 1. Only active, non-deleted partners block email reuse.
		_, err := partnerRepo.FindByEmailActive(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrDuplicateEmail.WrapMessage("partner creation failed")
		}
		if !errors.Is(err, repository.ErrPartnerNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		// 2. Generate a token unused by any partner of any status.
		token, err := srv.generateUniqueToken(ctx, partnerRepo)
		if err != nil {
			return err
		}

		// 3. Persist with defaults isActive=true, deleted=false.
		newPartner := &entity.Partner{
			Name:     input.Name,
			Lastname: input.Lastname,
			Email:    input.Email,
			Password: hashedPassword,
			Token:    token,
			IsActive: true,
			Deleted:  false,
		}
		if err := partnerRepo.Create(ctx, newPartner); err != nil {
			return errors.WithStack(err)
		}
		created = newPartner

		return nil
	})

	if err != nil {
		srv.logger.Warn("Partner creation failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute partner creation transaction")
	}
	srv.logger.Debug("Partner created successfully", "partnerID", created.ID)

	return created, nil
}

// generateUniqueToken draws candidate tokens until one is unused by any
// partner of any status, giving up after maxTokenAttempts collisions.
func (srv *partnerService) generateUniqueToken(ctx context.Context, partnerRepo repository.PartnerRepository) (string, error) {
	for attempt := 1; attempt <= maxTokenAttempts; attempt++ {
		candidate, err := srv.tokens.Generate()
		if err != nil {
			return "", errors.Wrap(err, "failed to generate token candidate")
		}

		_, err = partnerRepo.FindByTokenAnyStatus(ctx, candidate)
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to check token uniqueness")
		}

		srv.logger.Debug("Token collision, retrying", "attempt", attempt)
	}

	return "", domainerrors.ErrTokenExhausted.WrapMessage("token generation retry budget exhausted")
}

// Update applies a partial update. Only fields present in the input are
// touched; email and token moves are validated against other partners first,
// excluding the target itself so re-submitting the current value succeeds.
func (srv *partnerService) Update(ctx context.Context, input *usecase.UpdatePartnerInput) (*entity.Partner, error) {
	srv.logger.Info("Updating partner", "partnerID", input.ID)

	var updated *entity.Partner

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		partnerRepo := repoFactory.PartnerRepo()

		current, err := partnerRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrPartnerNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("partner update failed")
			}

			return errors.Wrap(err, "failed to find partner")
		}

		if input.Email != nil {
			holder, err := partnerRepo.FindByEmailActive(ctx, *input.Email)
			if err == nil && holder.ID != current.ID {
				return domainerrors.ErrEmailConflict.WrapMessage("partner update failed")
			}
			if err != nil && !errors.Is(err, repository.ErrPartnerNotFound) {
				return errors.Wrap(err, "failed to check email conflict")
			}
		}

		if input.Token != nil {
			holder, err := partnerRepo.FindByTokenAnyStatus(ctx, *input.Token)
			if err == nil && holder.ID != current.ID {
				return domainerrors.ErrTokenConflict.WrapMessage("partner update failed")
			}
			if err != nil && !errors.Is(err, repository.ErrPartnerNotFound) {
				return errors.Wrap(err, "failed to check token conflict")
			}
		}

		fields := map[string]any{}
		if input.Name != nil {
			fields["name"] = *input.Name
		}
		if input.Lastname != nil {
			fields["lastname"] = *input.Lastname
		}
		if input.Email != nil {
			fields["email"] = *input.Email
		}
		if input.Token != nil {
			fields["token"] = *input.Token
		}

		// Nothing to change; return the current record untouched.
		if len(fields) == 0 {
			updated = current

			return nil
		}

		updated, err = partnerRepo.Update(ctx, input.ID, fields)
		if err != nil {
			return errors.Wrap(err, "failed to update partner")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute partner update transaction")
	}
	srv.logger.Debug("Partner updated successfully", "partnerID", updated.ID)

	return updated, nil
}

// UpdatePassword replaces the stored hash. A new password matching the
// current one is rejected; blocking the no-op change is an explicit business
// rule, not an optimization.
func (srv *partnerService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) (*entity.Partner, error) {
	srv.logger.Info("Updating partner password", "partnerID", input.ID)

	var updated *entity.Partner

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		partnerRepo := repoFactory.PartnerRepo()

		current, err := partnerRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrPartnerNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("password update failed")
			}

			return errors.Wrap(err, "failed to find partner")
		}

		if srv.hasher.Check(input.Password, current.Password) {
			return domainerrors.ErrSamePassword.WrapMessage("password update failed")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		updated, err = partnerRepo.UpdatePassword(ctx, input.ID, hashedPassword)
		if err != nil {
			return errors.Wrap(err, "failed to persist new password")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute password update transaction")
	}
	srv.logger.Debug("Partner password updated", "partnerID", input.ID)

	return updated, nil
}

// Login authenticates by email and password. A missing account and a wrong
// password surface as the same opaque error so the response does not leak
// which identifier was wrong.
func (srv *partnerService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Partner, error) {
	srv.logger.Debug("Starting partner login", "email", input.Email)

	var partner *entity.Partner

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		partnerRepo := repoFactory.PartnerRepo()

		found, err := partnerRepo.FindByEmailActive(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrPartnerNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(err, "failed to find partner by email")
		}

		if !srv.hasher.Check(input.Password, found.Password) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		partner = found

		return nil
	})

	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute partner login transaction")
	}
	srv.logger.Debug("Partner logged in successfully", "partnerID", partner.ID)

	return partner, nil
}

// SoftDelete marks the partner deleted and returns the record as it was
// before deletion.
func (srv *partnerService) SoftDelete(ctx context.Context, id int64) (*entity.Partner, error) {
	srv.logger.Info("Soft-deleting partner", "partnerID", id)

	var snapshot *entity.Partner

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		partnerRepo := repoFactory.PartnerRepo()

		current, err := partnerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPartnerNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("partner deletion failed")
			}

			return errors.Wrap(err, "failed to find partner")
		}

		if err := partnerRepo.SoftDelete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to soft-delete partner")
		}
		snapshot = current

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute partner deletion transaction")
	}

	return snapshot, nil
}

// Restore clears the soft-delete flag on a previously deleted partner.
func (srv *partnerService) Restore(ctx context.Context, id int64) error {
	srv.logger.Info("Restoring partner", "partnerID", id)

	return srv.setFlag(ctx, id, repository.PartnerRepository.Restore, "failed to restore partner")
}

// Activate sets the active flag.
func (srv *partnerService) Activate(ctx context.Context, id int64) error {
	srv.logger.Info("Activating partner", "partnerID", id)

	return srv.setFlag(ctx, id, repository.PartnerRepository.Activate, "failed to activate partner")
}

// Deactivate clears the active flag.
func (srv *partnerService) Deactivate(ctx context.Context, id int64) error {
	srv.logger.Info("Deactivating partner", "partnerID", id)

	return srv.setFlag(ctx, id, repository.PartnerRepository.Deactivate, "failed to deactivate partner")
}

// setFlag runs a status-flag mutation after verifying the partner exists.
func (srv *partnerService) setFlag(
	ctx context.Context,
	id int64,
	op func(repository.PartnerRepository, context.Context, int64) error,
	wrapMsg string,
) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		partnerRepo := repoFactory.PartnerRepo()

		if _, err := partnerRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrPartnerNotFound) {
				return domainerrors.ErrNotFound.WrapMessage(wrapMsg)
			}

			return errors.Wrap(err, "failed to find partner")
		}

		if err := op(partnerRepo, ctx, id); err != nil {
			return errors.Wrap(err, wrapMsg)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute partner status transaction")
	}

	return nil
}

// GetByID retrieves a partner by id. Soft-deleted partners remain reachable
// through direct id lookup.
func (srv *partnerService) GetByID(ctx context.Context, id int64) (*entity.Partner, error) {
	var partner *entity.Partner

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PartnerRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPartnerNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("partner lookup failed")
			}

			return errors.Wrap(err, "failed to find partner")
		}
		partner = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute partner lookup")
	}

	return partner, nil
}

// GetByToken retrieves an active, non-deleted partner by token. A missing or
// soft-deleted holder yields (nil, nil) rather than an error.
func (srv *partnerService) GetByToken(ctx context.Context, token string) (*entity.Partner, error) {
	var partner *entity.Partner

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PartnerRepo().FindByToken(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrPartnerNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find partner by token")
		}
		partner = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute token lookup")
	}

	return partner, nil
}

// GetByName retrieves a partner by name, (nil, nil) when absent.
func (srv *partnerService) GetByName(ctx context.Context, name string) (*entity.Partner, error) {
	var partner *entity.Partner

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PartnerRepo().FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, repository.ErrPartnerNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find partner by name")
		}
		partner = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute name lookup")
	}

	return partner, nil
}

// ListAll returns every partner row.
func (srv *partnerService) ListAll(ctx context.Context) ([]*entity.Partner, error) {
	var partners []*entity.Partner

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PartnerRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list partners")
		}
		partners = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute partner listing")
	}

	return partners, nil
}

// ListActive returns partners with the active flag set.
func (srv *partnerService) ListActive(ctx context.Context) ([]*entity.Partner, error) {
	var partners []*entity.Partner

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PartnerRepo().FindActive(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list active partners")
		}
		partners = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute active partner listing")
	}

	return partners, nil
}

// GetPaginated returns one zero-based page of non-deleted partners ordered by
// creation time descending.
func (srv *partnerService) GetPaginated(ctx context.Context, page, items int) (*usecase.PaginatedPartnersOutput, error) {
	if page < 0 || items < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid pagination parameters")
	}

	var output *usecase.PaginatedPartnersOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		partners, count, err := repoFactory.PartnerRepo().Paginate(ctx, page*items, items)
		if err != nil {
			return errors.Wrap(err, "failed to paginate partners")
		}
		output = &usecase.PaginatedPartnersOutput{
			Partners: partners,
			Count:    count,
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute partner pagination")
	}

	return output, nil
}
