// Package validator wraps go-playground/validator as an echo.Validator so
// request DTO tags yield field-level validation errors.
package validator

import (
	"fmt"
	"strings"

	domainerrors "github.com/Sebastian609/SOA-PARTNERS/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the echo.Validator used by the HTTP server.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate runs struct validation and converts tag failures into a
// ValidationFailed AppError listing the offending fields.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]string, 0, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			details = append(details, fmt.Sprintf("%s failed '%s' validation", fieldErr.Field(), fieldErr.Tag()))
		}

		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
	}

	return errors.Wrap(err, "request validation failed")
}
