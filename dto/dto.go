// Package dto holds one validation schema per resource/operation. Each
// schema normalizes its input (trimming, sanitizing, defaults) and checks
// every constraint, reporting all violations together rather than stopping
// at the first.
package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/duoblog/duoblog/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// check runs struct validation and folds every field error into a single
// typed validation error.
func check(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation(err.Error())
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, describe(fe))
	}
	return apperr.Validation(fields...)
}

// describe turns a field error into the human-readable message the API
// exposes.
func describe(fe validator.FieldError) string {
	if fe.Field() == "UserID" && fe.Tag() != "required" {
		return "invalid user ID format"
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be a positive number", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
