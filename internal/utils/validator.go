package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var couponCodePattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)

// NewValidator returns the shared validator with the storefront's custom tags registered.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails for an empty tag or nil func
	_ = validate.RegisterValidation("couponcode", func(fl validator.FieldLevel) bool {
		return couponCodePattern.MatchString(fl.Field().String())
	})

	return validate
}
