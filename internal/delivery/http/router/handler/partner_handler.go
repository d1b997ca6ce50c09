// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Sebastian609/SOA-PARTNERS/internal/delivery/http/response"
	"github.com/Sebastian609/SOA-PARTNERS/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// defaultPageSize applies when the items query parameter is absent.
const defaultPageSize = 10

// PartnerHandler holds dependencies for partner-related handlers.
type PartnerHandler struct {
	uc     usecase.PartnerUsecase
	logger *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler, injected by Fx.
func NewPartnerHandler(uc usecase.PartnerUsecase, logger *slog.Logger) *PartnerHandler {
	return &PartnerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles partner registration.
func (h *PartnerHandler) Create(c echo.Context) error {
	var input usecase.CreatePartnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	partner, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, partner, "Partner created successfully")
}

// Update handles a partial partner update; the target id travels in the body.
func (h *PartnerHandler) Update(c echo.Context) error {
	var input usecase.UpdatePartnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	partner, err := h.uc.Update(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner, "Partner updated successfully")
}

// UpdatePassword handles a password change.
func (h *PartnerHandler) UpdatePassword(c echo.Context) error {
	var input usecase.UpdatePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	partner, err := h.uc.UpdatePassword(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner, "Password updated successfully")
}

// Login authenticates a partner and returns the record, token included.
func (h *PartnerHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	partner, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner, "Login successful")
}

// SoftDelete marks a partner deleted and returns the pre-deletion snapshot.
func (h *PartnerHandler) SoftDelete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid partner id")
	}

	partner, err := h.uc.SoftDelete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner, "Partner deleted successfully")
}

// Restore clears the soft-delete flag.
func (h *PartnerHandler) Restore(c echo.Context) error {
	return h.statusChange(c, h.uc.Restore, "Partner restored successfully")
}

// Activate sets the active flag.
func (h *PartnerHandler) Activate(c echo.Context) error {
	return h.statusChange(c, h.uc.Activate, "Partner activated successfully")
}

// Deactivate clears the active flag.
func (h *PartnerHandler) Deactivate(c echo.Context) error {
	return h.statusChange(c, h.uc.Deactivate, "Partner deactivated successfully")
}

// GetByID retrieves a partner by id; soft-deleted partners remain reachable here.
func (h *PartnerHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid partner id")
	}

	partner, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner, "Partner retrieved successfully")
}

// GetByToken retrieves an active partner by token. An absent holder is a
// business 404, not an error.
func (h *PartnerHandler) GetByToken(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Token is required")
	}

	partner, err := h.uc.GetByToken(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}
	if partner == nil {
		return response.NotFound(c, "PARTNER_NOT_FOUND", "Partner not found or inactive")
	}

	return response.Success(c, http.StatusOK, partner, "Partner retrieved successfully")
}

// GetByName retrieves a partner by name, 404 when absent.
func (h *PartnerHandler) GetByName(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Name is required")
	}

	partner, err := h.uc.GetByName(c.Request().Context(), name)
	if err != nil {
		return errors.WithStack(err)
	}
	if partner == nil {
		return response.NotFound(c, "PARTNER_NOT_FOUND", "Partner not found")
	}

	return response.Success(c, http.StatusOK, partner, "Partner retrieved successfully")
}

// ListAll returns every partner, soft-deleted ones included.
func (h *PartnerHandler) ListAll(c echo.Context) error {
	partners, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partners, "Partners retrieved successfully")
}

// ListActive returns partners with the active flag set.
func (h *PartnerHandler) ListActive(c echo.Context) error {
	partners, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partners, "Partners retrieved successfully")
}

// GetPaginated returns one page of non-deleted partners. The page query
// parameter is one-based on the wire and converted to the zero-based index
// the use case expects.
func (h *PartnerHandler) GetPaginated(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid page parameter")
	}

	items := defaultPageSize
	if raw := c.QueryParam("items"); raw != "" {
		items, err = strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid items parameter")
		}
	}

	output, err := h.uc.GetPaginated(c.Request().Context(), page-1, items)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Partners retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func (h *PartnerHandler) statusChange(c echo.Context, op func(ctx context.Context, id int64) error, message string) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid partner id")
	}

	if err := op(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"id": id}, message)
}

func parseIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
