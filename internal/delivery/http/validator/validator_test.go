package validator

import (
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Name     string `validate:"required,min=5"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

type patchPayload struct {
	Email *string `validate:"omitempty,email"`
	Phone *string `validate:"omitempty,min=10"`
}

func TestRequestValidator_Validate_Accepts(t *testing.T) {
	rv := New()

	err := rv.Validate(signupPayload{
		Name:     "Apex Outfitters",
		Email:    "owner@apex.test",
		Password: "Secr3t!pass",
	})

	require.NoError(t, err)
}

func TestRequestValidator_Validate_PasswordShape(t *testing.T) {
	rv := New()

	cases := map[string]string{
		"too short":         "ab1!",
		"too long":          "abcdefgh12345678X",
		"forbidden symbols": "abcd efg1",
	}

	for name, password := range cases {
		t.Run(name, func(t *testing.T) {
			err := rv.Validate(signupPayload{
				Name:     "Apex Outfitters",
				Email:    "owner@apex.test",
				Password: password,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Details(), "password must be 8-16 characters")
		})
	}
}

func TestRequestValidator_Validate_SurfacesFirstFailure(t *testing.T) {
	rv := New()

	err := rv.Validate(signupPayload{
		Name:     "Ab",
		Email:    "not-an-email",
		Password: "x",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "Name must be at least 5 characters long", appErr.Details())
}

func TestRequestValidator_Validate_SkipsEmptyOptionalFields(t *testing.T) {
	rv := New()

	require.NoError(t, rv.Validate(patchPayload{}))

	bad := "nope"
	err := rv.Validate(patchPayload{Email: &bad})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
