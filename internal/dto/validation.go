package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// currencyCode validates the shape of a currency code (three letters).
// Membership in the supported allow-list is a business rule enforced by the
// registration workflow, not by request binding.
func currencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(fl.Field().String())
}

// RegisterCustomValidations registers request-level validations on gin's
// binding engine. Call once at startup.
func RegisterCustomValidations() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("currencycode", currencyCode)
	}
	return nil
}
