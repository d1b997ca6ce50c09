package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sebastian609/SOA-PARTNERS/internal/delivery/http/validator"
	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/entity"
	"github.com/Sebastian609/SOA-PARTNERS/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPartnerUsecase implements usecase.PartnerUsecase through function
// fields so each test wires only the operations it exercises.
type stubPartnerUsecase struct {
	createFn       func(ctx context.Context, input *usecase.CreatePartnerInput) (*entity.Partner, error)
	getByTokenFn   func(ctx context.Context, token string) (*entity.Partner, error)
	getPaginatedFn func(ctx context.Context, page, items int) (*usecase.PaginatedPartnersOutput, error)
}

func (s *stubPartnerUsecase) Create(ctx context.Context, input *usecase.CreatePartnerInput) (*entity.Partner, error) {
	return s.createFn(ctx, input)
}

func (s *stubPartnerUsecase) Update(ctx context.Context, input *usecase.UpdatePartnerInput) (*entity.Partner, error) {
	panic("not wired")
}

func (s *stubPartnerUsecase) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) (*entity.Partner, error) {
	panic("not wired")
}

func (s *stubPartnerUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Partner, error) {
	panic("not wired")
}

func (s *stubPartnerUsecase) SoftDelete(ctx context.Context, id int64) (*entity.Partner, error) {
	panic("not wired")
}

func (s *stubPartnerUsecase) Restore(ctx context.Context, id int64) error    { panic("not wired") }
func (s *stubPartnerUsecase) Activate(ctx context.Context, id int64) error   { panic("not wired") }
func (s *stubPartnerUsecase) Deactivate(ctx context.Context, id int64) error { panic("not wired") }

func (s *stubPartnerUsecase) GetByID(ctx context.Context, id int64) (*entity.Partner, error) {
	panic("not wired")
}

func (s *stubPartnerUsecase) GetByToken(ctx context.Context, token string) (*entity.Partner, error) {
	return s.getByTokenFn(ctx, token)
}

func (s *stubPartnerUsecase) GetByName(ctx context.Context, name string) (*entity.Partner, error) {
	panic("not wired")
}

func (s *stubPartnerUsecase) ListAll(ctx context.Context) ([]*entity.Partner, error) {
	panic("not wired")
}

func (s *stubPartnerUsecase) ListActive(ctx context.Context) ([]*entity.Partner, error) {
	panic("not wired")
}

func (s *stubPartnerUsecase) GetPaginated(ctx context.Context, page, items int) (*usecase.PaginatedPartnersOutput, error) {
	return s.getPaginatedFn(ctx, page, items)
}

func newTestHandler(uc usecase.PartnerUsecase) (*PartnerHandler, *echo.Echo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()

	return NewPartnerHandler(uc, logger), e
}

func TestPartnerHandler_Create_Success(t *testing.T) {
	uc := &stubPartnerUsecase{
		createFn: func(ctx context.Context, input *usecase.CreatePartnerInput) (*entity.Partner, error) {
			return &entity.Partner{
				ID:       42,
				Name:     input.Name,
				Lastname: input.Lastname,
				Email:    input.Email,
				Token:    "0123456789abcdef0123456789abcdef",
				IsActive: true,
			}, nil
		},
	}
	h, e := newTestHandler(uc)

	body := `{"name":"Ada","lastname":"Lovelace","email":"ada@example.com","password":"plaintext-secret"}`
	req := httptest.NewRequest(http.MethodPost, "/partners", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    entity.Partner `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(42), resp.Data.ID)
	// The password hash never leaves the API.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestPartnerHandler_Create_MissingFields(t *testing.T) {
	h, e := newTestHandler(&stubPartnerUsecase{})

	body := `{"name":"Ada"}`
	req := httptest.NewRequest(http.MethodPost, "/partners", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Validation failures surface as errors for the central error handler.
	err := h.Create(c)
	require.Error(t, err)
}

func TestPartnerHandler_GetByToken_AbsentIsBusinessNotFound(t *testing.T) {
	uc := &stubPartnerUsecase{
		getByTokenFn: func(ctx context.Context, token string) (*entity.Partner, error) {
			return nil, nil
		},
	}
	h, e := newTestHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/partners/token/unknown", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("unknown")

	require.NoError(t, h.GetByToken(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PARTNER_NOT_FOUND")
}

func TestPartnerHandler_GetPaginated_ConvertsPageToZeroBased(t *testing.T) {
	var gotPage, gotItems int
	uc := &stubPartnerUsecase{
		getPaginatedFn: func(ctx context.Context, page, items int) (*usecase.PaginatedPartnersOutput, error) {
			gotPage, gotItems = page, items

			return &usecase.PaginatedPartnersOutput{Partners: []*entity.Partner{}, Count: 0}, nil
		},
	}
	h, e := newTestHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/partners?page=2&items=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetPaginated(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// Wire page 2 is the second page, zero-based page 1.
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 5, gotItems)
}

func TestPartnerHandler_GetPaginated_DefaultsItems(t *testing.T) {
	var gotItems int
	uc := &stubPartnerUsecase{
		getPaginatedFn: func(ctx context.Context, page, items int) (*usecase.PaginatedPartnersOutput, error) {
			gotItems = items

			return &usecase.PaginatedPartnersOutput{Partners: []*entity.Partner{}, Count: 0}, nil
		},
	}
	h, e := newTestHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/partners?page=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetPaginated(c))
	assert.Equal(t, defaultPageSize, gotItems)
}

func TestPartnerHandler_GetPaginated_NonNumericPage(t *testing.T) {
	h, e := newTestHandler(&stubPartnerUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/partners?page=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetPaginated(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestPartnerHandler_SoftDelete_InvalidID(t *testing.T) {
	h, e := newTestHandler(&stubPartnerUsecase{})

	req := httptest.NewRequest(http.MethodDelete, "/partners/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.SoftDelete(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
