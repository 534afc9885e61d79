// Package validator wires go-playground/validator into echo.
package validator

import (
	"fmt"
	"regexp"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// passwordPattern is the accepted password shape: 8 to 16 characters drawn
// from letters, digits and a small set of symbols.
var passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*]{8,16}$`)

// RequestValidator adapts the go-playground validator to echo's Validator
// interface and translates the first failing field into a domain error.
type RequestValidator struct {
	validate *validator.Validate
}

// New constructs the request validator with the custom rules registered.
func New() *RequestValidator {
	v := validator.New()

	// Tag "password": the field must match the accepted password shape.
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return passwordPattern.MatchString(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Only the first failing field is
// surfaced, as a VALIDATION_FAILED domain error.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(messageFor(fieldErrs[0]))
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}

// messageFor renders a human-readable message for a failed field.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", fe.Field(), fe.Param())
	case "password":
		return "password must be 8-16 characters of letters, digits or !@#$%^&*"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
