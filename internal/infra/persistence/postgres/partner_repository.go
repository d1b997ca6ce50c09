// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/entity"
	domainerrors "github.com/Sebastian609/SOA-PARTNERS/internal/domain/errors"
	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/repository"
	"github.com/Sebastian609/SOA-PARTNERS/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// partnerRepository implements the repository.PartnerRepository interface.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
// It returns the repository as a repository.PartnerRepository interface, adhering to dependency inversion.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{
		db: db,
	}
}

// FindByID retrieves a single partner by id. Soft-deleted rows stay reachable
// through this lookup.
func (repo *partnerRepository) FindByID(ctx context.Context, id int64) (*entity.Partner, error) {
	var partnerM model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("partner_id = ?", id).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by id")
	}

	return toPartnerDomain(&partnerM), nil
}

// FindByEmailActive retrieves the partner holding the email among active,
// non-deleted rows. This is the filter uniqueness checks and login use.
func (repo *partnerRepository) FindByEmailActive(ctx context.Context, email string) (*entity.Partner, error) {
	var partnerM model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ? AND deleted = ? AND is_active = ?", email, false, true).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by email")
	}

	return toPartnerDomain(&partnerM), nil
}

// FindByToken retrieves an active, non-deleted partner by token.
func (repo *partnerRepository) FindByToken(ctx context.Context, token string) (*entity.Partner, error) {
	var partnerM model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("token = ? AND deleted = ? AND is_active = ?", token, false, true).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by token")
	}

	return toPartnerDomain(&partnerM), nil
}

// FindByTokenAnyStatus retrieves the token holder regardless of the status
// flags. Token collision checks must see deleted and inactive rows too.
func (repo *partnerRepository) FindByTokenAnyStatus(ctx context.Context, token string) (*entity.Partner, error) {
	var partnerM model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by token (any status)")
	}

	return toPartnerDomain(&partnerM), nil
}

// FindByName retrieves a single partner by name.
func (repo *partnerRepository) FindByName(ctx context.Context, name string) (*entity.Partner, error) {
	var partnerM model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by name")
	}

	return toPartnerDomain(&partnerM), nil
}

// FindAll retrieves every partner row, including soft-deleted ones.
func (repo *partnerRepository) FindAll(ctx context.Context) ([]*entity.Partner, error) {
	var partnerModels []*model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&partnerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	return toPartnerDomainSlice(partnerModels), nil
}

// FindActive retrieves partners with is_active = true.
func (repo *partnerRepository) FindActive(ctx context.Context) ([]*entity.Partner, error) {
	var partnerModels []*model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&partnerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active partners")
	}

	return toPartnerDomainSlice(partnerModels), nil
}

// Create persists a new partner and copies the store-assigned id and
// timestamps back onto the entity.
func (repo *partnerRepository) Create(ctx context.Context, partner *entity.Partner) error {
	partnerM := fromPartnerDomain(partner)

	if err := repo.db.WithContext(ctx).Create(partnerM).Error; err != nil {
		// The unique indexes are the authoritative uniqueness guard; a
		// violation here means a concurrent writer won the race past the
		// service-level pre-checks.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("partner uniqueness constraint violated")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required partner information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create partner")
	}

	partner.ID = partnerM.ID
	partner.CreatedAt = partnerM.CreatedAt
	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

// Update applies the given column/value pairs and returns the updated record.
func (repo *partnerRepository) Update(ctx context.Context, id int64, fields map[string]any) (*entity.Partner, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PartnerModel{}).
		Where("partner_id = ?", id).
		Updates(fields)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.ErrConflict.WrapMessage("partner uniqueness constraint violated")
		}
		if isNotNullConstraintViolation(result.Error) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required partner information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update partner")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPartnerNotFound
	}

	return repo.FindByID(ctx, id)
}

// UpdatePassword replaces the stored hash and returns the updated record.
func (repo *partnerRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) (*entity.Partner, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PartnerModel{}).
		Where("partner_id = ?", id).
		Update("password", hashedPassword)

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update partner password")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPartnerNotFound
	}

	return repo.FindByID(ctx, id)
}

// SoftDelete marks the partner as deleted. The row is retained.
func (repo *partnerRepository) SoftDelete(ctx context.Context, id int64) error {
	return repo.setFlag(ctx, id, "deleted", true)
}

// Restore clears the soft-delete flag.
func (repo *partnerRepository) Restore(ctx context.Context, id int64) error {
	return repo.setFlag(ctx, id, "deleted", false)
}

// Activate sets is_active = true.
func (repo *partnerRepository) Activate(ctx context.Context, id int64) error {
	return repo.setFlag(ctx, id, "is_active", true)
}

// Deactivate sets is_active = false.
func (repo *partnerRepository) Deactivate(ctx context.Context, id int64) error {
	return repo.setFlag(ctx, id, "is_active", false)
}

func (repo *partnerRepository) setFlag(ctx context.Context, id int64, column string, value bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PartnerModel{}).
		Where("partner_id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update partner status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPartnerNotFound
	}

	return nil
}

// Delete removes the row permanently. Raw store capability, unused by the
// lifecycle rules.
func (repo *partnerRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("partner_id = ?", id).
		Delete(&model.PartnerModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete partner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPartnerNotFound
	}

	return nil
}

// Paginate returns one page of non-deleted partners ordered by creation time
// descending, plus the total non-deleted count.
func (repo *partnerRepository) Paginate(ctx context.Context, offset, limit int) ([]*entity.Partner, int64, error) {
	if offset < 0 || limit < 1 {
		return nil, 0, errors.New("invalid pagination parameters")
	}

	var partnerModels []*model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("deleted = ?", false).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&partnerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to paginate partners")
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PartnerModel{}).
		Where("deleted = ?", false).
		Count(&count).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count partners")
	}

	return toPartnerDomainSlice(partnerModels), count, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toPartnerDomain converts a GORM PartnerModel to a domain Partner entity.
func toPartnerDomain(data *model.PartnerModel) *entity.Partner {
	if data == nil {
		return nil
	}

	return &entity.Partner{
		ID:        data.ID,
		Name:      data.Name,
		Lastname:  data.Lastname,
		Email:     data.Email,
		Password:  data.Password,
		Token:     data.Token,
		IsActive:  data.IsActive,
		Deleted:   data.Deleted,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPartnerDomainSlice(data []*model.PartnerModel) []*entity.Partner {
	partners := make([]*entity.Partner, 0, len(data))
	for _, partnerM := range data {
		partners = append(partners, toPartnerDomain(partnerM))
	}

	return partners
}

// fromPartnerDomain converts a domain Partner entity to a GORM PartnerModel for persistence.
func fromPartnerDomain(data *entity.Partner) *model.PartnerModel {
	if data == nil {
		return nil
	}

	return &model.PartnerModel{
		ID:       data.ID,
		Name:     data.Name,
		Lastname: data.Lastname,
		Email:    data.Email,
		Password: data.Password,
		Token:    data.Token,
		IsActive: data.IsActive,
		Deleted:  data.Deleted,
	}
}
