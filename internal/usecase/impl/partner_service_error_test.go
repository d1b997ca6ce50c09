package impl

import (
	"context"
	"testing"

	domainerrors "github.com/Sebastian609/SOA-PARTNERS/internal/domain/errors"
	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/repository"
	mockRepo "github.com/Sebastian609/SOA-PARTNERS/internal/mocks/repository"
	"github.com/Sebastian609/SOA-PARTNERS/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartnerService_Create_DuplicateEmail(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	input := &usecase.CreatePartnerInput{
		Name:     "Ada",
		Lastname: "Lovelace",
		Email:    "ada@example.com",
		Password: "plaintext-secret",
	}

	fx.hasher.EXPECT().Hash("plaintext-secret").Return("$2a$10$freshhash", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByEmailActive(ctx, "ada@example.com").
			Return(testPartner(7), nil)
	})

	created, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestPartnerService_Create_HashFailure(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	input := &usecase.CreatePartnerInput{
		Name:     "Ada",
		Lastname: "Lovelace",
		Email:    "ada@example.com",
		Password: "plaintext-secret",
	}

	fx.hasher.EXPECT().Hash("plaintext-secret").Return("", errors.New("bcrypt failure"))

	created, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), "failed to hash password")
}

func TestPartnerService_Create_TokenBudgetExhausted(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	input := &usecase.CreatePartnerInput{
		Name:     "Ada",
		Lastname: "Lovelace",
		Email:    "ada@example.com",
		Password: "plaintext-secret",
	}
	collided := "11111111111111111111111111111111"

	fx.hasher.EXPECT().Hash("plaintext-secret").Return("$2a$10$freshhash", nil)
	// Every draw collides until the retry budget runs out.
	fx.tokens.EXPECT().Generate().Return(collided, nil).Times(maxTokenAttempts)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByEmailActive(ctx, "ada@example.com").
			Return(nil, repository.ErrPartnerNotFound)
		partnerRepo.EXPECT().FindByTokenAnyStatus(ctx, collided).
			Return(testPartner(7), nil).Times(maxTokenAttempts)
	})

	created, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExhausted))
}

func TestPartnerService_Update_NotFound(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	input := &usecase.UpdatePartnerInput{ID: 99, Name: strPtr("Grace")}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByID(ctx, int64(99)).
			Return(nil, repository.ErrPartnerNotFound)
	})

	updated, err := fx.service.Update(ctx, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPartnerService_Update_EmailConflict(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	current := testPartner(5)
	input := &usecase.UpdatePartnerInput{ID: 5, Email: strPtr("taken@example.com")}

	holder := testPartner(8)
	holder.Email = "taken@example.com"

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByID(ctx, int64(5)).Return(current, nil)
		partnerRepo.EXPECT().FindByEmailActive(ctx, "taken@example.com").
			Return(holder, nil)
	})

	updated, err := fx.service.Update(ctx, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailConflict))
}

func TestPartnerService_Update_TokenConflict(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	current := testPartner(5)
	input := &usecase.UpdatePartnerInput{ID: 5, Token: strPtr("occupied-token")}

	// Token uniqueness spans soft-deleted partners too.
	holder := testPartner(8)
	holder.Token = "occupied-token"
	holder.Deleted = true

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByID(ctx, int64(5)).Return(current, nil)
		partnerRepo.EXPECT().FindByTokenAnyStatus(ctx, "occupied-token").
			Return(holder, nil)
	})

	updated, err := fx.service.Update(ctx, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenConflict))
}

func TestPartnerService_UpdatePassword_SamePassword(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	current := testPartner(5)
	input := &usecase.UpdatePasswordInput{ID: 5, Password: "same-secret"}

	fx.hasher.EXPECT().Check("same-secret", current.Password).Return(true)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByID(ctx, int64(5)).Return(current, nil)
	})

	updated, err := fx.service.UpdatePassword(ctx, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrSamePassword))
}

func TestPartnerService_Login_UnknownEmail(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByEmailActive(ctx, "ghost@example.com").
			Return(nil, repository.ErrPartnerNotFound)
	})

	partner, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, partner)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestPartnerService_Login_WrongPassword(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	stored := testPartner(5)
	input := &usecase.LoginInput{Email: stored.Email, Password: "wrong-secret"}

	fx.hasher.EXPECT().Check("wrong-secret", stored.Password).Return(false)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByEmailActive(ctx, stored.Email).Return(stored, nil)
	})

	partner, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, partner)
	// Same opaque error as an unknown email.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestPartnerService_SoftDelete_NotFound(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByID(ctx, int64(99)).
			Return(nil, repository.ErrPartnerNotFound)
	})

	snapshot, err := fx.service.SoftDelete(ctx, 99)

	require.Error(t, err)
	assert.Nil(t, snapshot)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPartnerService_GetPaginated_RejectsInvalidParameters(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()

	for _, tc := range []struct {
		name  string
		page  int
		items int
	}{
		{"negative page", -1, 10},
		{"zero items", 0, 0},
		{"negative items", 0, -5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			output, err := fx.service.GetPaginated(ctx, tc.page, tc.items)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}
