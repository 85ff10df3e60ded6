// Package validator adapts go-playground/validator to echo.
package validator

import (
	"foodorder/internal/util"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator with the custom phone tag registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// phone: optional digits with spaces, dashes, parentheses and a leading plus.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return util.IsValidPhone(fl.Field().String())
	})

	return &CustomValidator{validate: v}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
