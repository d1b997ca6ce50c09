package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/entity"
	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/repository"
	mockRepo "github.com/Sebastian609/SOA-PARTNERS/internal/mocks/repository"
	mockService "github.com/Sebastian609/SOA-PARTNERS/internal/mocks/service"
	"github.com/Sebastian609/SOA-PARTNERS/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// partnerServiceFixtures holds all test dependencies for partner service tests.
type partnerServiceFixtures struct {
	t         *testing.T
	service   usecase.PartnerUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockService.MockPasswordHasher
	tokens    *mockService.MockTokenGenerator
}

func createTestPartnerService(t *testing.T) partnerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenGenerator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewPartnerService(txManager, hasher, tokens, logger)

	return partnerServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
	}
}

// onExecute wires one Execute expectation that hands the transaction callback
// a factory prepared by setup and propagates the callback's return value, the
// same way the real transaction manager surfaces the business error that
// triggered a rollback.
func (fx partnerServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func testPartner(id int64) *entity.Partner {
	return &entity.Partner{
		ID:        id,
		Name:      "Ada",
		Lastname:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "$2a$10$hashedpasswordplaceholder",
		Token:     "0123456789abcdef0123456789abcdef",
		IsActive:  true,
		Deleted:   false,
		CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func strPtr(s string) *string {
	return &s
}
