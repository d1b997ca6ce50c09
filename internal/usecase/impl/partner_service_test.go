package impl

import (
	"context"
	"testing"

	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/entity"
	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/repository"
	mockRepo "github.com/Sebastian609/SOA-PARTNERS/internal/mocks/repository"
	"github.com/Sebastian609/SOA-PARTNERS/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPartnerService_Create_Success(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	input := &usecase.CreatePartnerInput{
		Name:     "Ada",
		Lastname: "Lovelace",
		Email:    "ada@example.com",
		Password: "plaintext-secret",
	}
	hashed := "$2a$10$freshhash"
	token := "aaaabbbbccccddddeeeeffff00001111"

	fx.hasher.EXPECT().Hash("plaintext-secret").Return(hashed, nil)
	fx.tokens.EXPECT().Generate().Return(token, nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByEmailActive(ctx, "ada@example.com").
			Return(nil, repository.ErrPartnerNotFound)
		partnerRepo.EXPECT().FindByTokenAnyStatus(ctx, token).
			Return(nil, repository.ErrPartnerNotFound)
		partnerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Partner")).
			Run(func(ctx context.Context, partner *entity.Partner) {
				partner.ID = 42
			}).
			Return(nil)
	})

	created, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "Ada", created.Name)
	assert.Equal(t, "Lovelace", created.Lastname)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, hashed, created.Password)
	assert.Equal(t, token, created.Token)
	assert.True(t, created.IsActive)
	assert.False(t, created.Deleted)
}

func TestPartnerService_Create_RetriesAfterTokenCollision(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	input := &usecase.CreatePartnerInput{
		Name:     "Ada",
		Lastname: "Lovelace",
		Email:    "ada@example.com",
		Password: "plaintext-secret",
	}
	collided := "11111111111111111111111111111111"
	free := "22222222222222222222222222222222"

	fx.hasher.EXPECT().Hash("plaintext-secret").Return("$2a$10$freshhash", nil)
	fx.tokens.EXPECT().Generate().Return(collided, nil).Once()
	fx.tokens.EXPECT().Generate().Return(free, nil).Once()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByEmailActive(ctx, "ada@example.com").
			Return(nil, repository.ErrPartnerNotFound)
		// A soft-deleted partner still blocks token reuse.
		holder := testPartner(7)
		holder.Deleted = true
		holder.Token = collided
		partnerRepo.EXPECT().FindByTokenAnyStatus(ctx, collided).
			Return(holder, nil)
		partnerRepo.EXPECT().FindByTokenAnyStatus(ctx, free).
			Return(nil, repository.ErrPartnerNotFound)
		partnerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Partner")).
			Return(nil)
	})

	created, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, free, created.Token)
}

func TestPartnerService_Update_Success(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	current := testPartner(5)
	input := &usecase.UpdatePartnerInput{
		ID:    5,
		Name:  strPtr("Grace"),
		Email: strPtr("grace@example.com"),
	}

	updated := testPartner(5)
	updated.Name = "Grace"
	updated.Email = "grace@example.com"

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByID(ctx, int64(5)).Return(current, nil)
		partnerRepo.EXPECT().FindByEmailActive(ctx, "grace@example.com").
			Return(nil, repository.ErrPartnerNotFound)
		partnerRepo.EXPECT().Update(ctx, int64(5), map[string]any{
			"name":  "Grace",
			"email": "grace@example.com",
		}).Return(updated, nil)
	})

	result, err := fx.service.Update(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Grace", result.Name)
	assert.Equal(t, "grace@example.com", result.Email)
	// Untouched fields keep their values.
	assert.Equal(t, current.Lastname, result.Lastname)
	assert.Equal(t, current.Token, result.Token)
}

func TestPartnerService_Update_OwnEmailIsNotAConflict(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	current := testPartner(5)
	input := &usecase.UpdatePartnerInput{
		ID:    5,
		Email: strPtr(current.Email),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByID(ctx, int64(5)).Return(current, nil)
		// The email holder is the partner being updated.
		partnerRepo.EXPECT().FindByEmailActive(ctx, current.Email).Return(current, nil)
		partnerRepo.EXPECT().Update(ctx, int64(5), map[string]any{
			"email": current.Email,
		}).Return(current, nil)
	})

	result, err := fx.service.Update(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, current.Email, result.Email)
}

func TestPartnerService_Update_NoFieldsReturnsCurrent(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	current := testPartner(5)
	input := &usecase.UpdatePartnerInput{ID: 5}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByID(ctx, int64(5)).Return(current, nil)
	})

	result, err := fx.service.Update(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, current, result)
}

func TestPartnerService_UpdatePassword_Success(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	current := testPartner(5)
	input := &usecase.UpdatePasswordInput{ID: 5, Password: "new-secret"}

	updated := testPartner(5)
	updated.Password = "$2a$10$newhash"

	fx.hasher.EXPECT().Check("new-secret", current.Password).Return(false)
	fx.hasher.EXPECT().Hash("new-secret").Return("$2a$10$newhash", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByID(ctx, int64(5)).Return(current, nil)
		partnerRepo.EXPECT().UpdatePassword(ctx, int64(5), "$2a$10$newhash").
			Return(updated, nil)
	})

	result, err := fx.service.UpdatePassword(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "$2a$10$newhash", result.Password)
}

func TestPartnerService_Login_Success(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	partner := testPartner(5)
	input := &usecase.LoginInput{Email: partner.Email, Password: "plaintext-secret"}

	fx.hasher.EXPECT().Check("plaintext-secret", partner.Password).Return(true)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByEmailActive(ctx, partner.Email).Return(partner, nil)
	})

	result, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, partner, result)
}

func TestPartnerService_SoftDelete_ReturnsSnapshot(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	current := testPartner(5)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByID(ctx, int64(5)).Return(current, nil)
		partnerRepo.EXPECT().SoftDelete(ctx, int64(5)).Return(nil)
	})

	snapshot, err := fx.service.SoftDelete(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, current, snapshot)
	assert.False(t, snapshot.Deleted)
}

func TestPartnerService_Restore_Success(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	deleted := testPartner(5)
	deleted.Deleted = true

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByID(ctx, int64(5)).Return(deleted, nil)
		partnerRepo.EXPECT().Restore(ctx, int64(5)).Return(nil)
	})

	err := fx.service.Restore(ctx, 5)

	require.NoError(t, err)
}

func TestPartnerService_GetByID_Success(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	partner := testPartner(5)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByID(ctx, int64(5)).Return(partner, nil)
	})

	result, err := fx.service.GetByID(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, partner, result)
}

func TestPartnerService_GetByToken_Found(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	partner := testPartner(5)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByToken(ctx, partner.Token).Return(partner, nil)
	})

	result, err := fx.service.GetByToken(ctx, partner.Token)

	require.NoError(t, err)
	assert.Equal(t, partner, result)
}

func TestPartnerService_GetByToken_AbsentYieldsNilNil(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByToken(ctx, "unknown-token").
			Return(nil, repository.ErrPartnerNotFound)
	})

	result, err := fx.service.GetByToken(ctx, "unknown-token")

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestPartnerService_GetByName_AbsentYieldsNilNil(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindByName(ctx, "nobody").
			Return(nil, repository.ErrPartnerNotFound)
	})

	result, err := fx.service.GetByName(ctx, "nobody")

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestPartnerService_ListActive_Success(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	partners := []*entity.Partner{testPartner(1), testPartner(2)}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		partnerRepo.EXPECT().FindActive(ctx).Return(partners, nil)
	})

	result, err := fx.service.ListActive(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestPartnerService_GetPaginated_Success(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	pageOne := []*entity.Partner{testPartner(11), testPartner(12), testPartner(13)}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		partnerRepo := mockRepo.NewMockPartnerRepository(t)
		factory.EXPECT().PartnerRepo().Return(partnerRepo)

		// Page 1 with 10 items per page translates to offset 10.
		partnerRepo.EXPECT().Paginate(ctx, 10, 10).Return(pageOne, int64(13), nil)
	})

	output, err := fx.service.GetPaginated(ctx, 1, 10)

	require.NoError(t, err)
	assert.Len(t, output.Partners, 3)
	assert.Equal(t, int64(13), output.Count)
}
