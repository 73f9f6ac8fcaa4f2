package exceptions

import (
	"sangha-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validationMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"gt":       "must be greater than %s",
	"min":      "must be at least %s characters",
	"max":      "must be at most %s characters",
}

var tagsWithParams = map[string]bool{
	"gt":  true,
	"min": true,
	"max": true,
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		tag := firstErr.Tag()
		message, ok := validationMessages[tag]
		if !ok {
			message = "is invalid"
		}
		if tagsWithParams[tag] {
			message = strings.Replace(message, "%s", firstErr.Param(), 1)
		}
		return fieldName + " " + message
	}
	return constvars.ErrClientCannotProcessRequest
}
