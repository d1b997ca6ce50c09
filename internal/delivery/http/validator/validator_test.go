package validator

import (
	"testing"

	domainerrors "github.com/Sebastian609/SOA-PARTNERS/internal/domain/errors"
	"github.com/Sebastian609/SOA-PARTNERS/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidInput(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreatePartnerInput{
		Name:     "Ada",
		Lastname: "Lovelace",
		Email:    "ada@example.com",
		Password: "plaintext-secret",
	})

	assert.NoError(t, err)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreatePartnerInput{
		Name: "Ada",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "Lastname failed 'required' validation")
	assert.Contains(t, appErr.Details(), "Email failed 'required' validation")
	assert.Contains(t, appErr.Details(), "Password failed 'required' validation")
}

func TestValidate_MalformedEmail(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreatePartnerInput{
		Name:     "Ada",
		Lastname: "Lovelace",
		Email:    "not-an-email",
		Password: "plaintext-secret",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "Email failed 'email' validation")
}

func TestValidate_PartialUpdateSkipsAbsentFields(t *testing.T) {
	v := New()

	// Only the id is required; nil pointers are untouched fields.
	err := v.Validate(&usecase.UpdatePartnerInput{ID: 5})

	assert.NoError(t, err)
}
