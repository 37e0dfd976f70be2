// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javajoker/shelflife/internal/expiry"
	"github.com/javajoker/shelflife/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("storage_date", validateStorageDate)
	validate.RegisterValidation("color_theme", validateColorTheme)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateStorageDate(fl validator.FieldLevel) bool {
	_, err := expiry.ParseStorage(fl.Field().String())
	return err == nil
}

func validateColorTheme(fl validator.FieldLevel) bool {
	return models.ColorTheme(fl.Field().String()).Valid()
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "required_without":
		return e.Field() + " is required when " + strings.ToLower(e.Param()) + " is missing"
	case "storage_date":
		return e.Field() + " must be a date in YYYY-MM-DD format"
	case "color_theme":
		return e.Field() + " must be one of white, green, blue, pink, purple, black"
	default:
		return e.Field() + " is invalid"
	}
}
