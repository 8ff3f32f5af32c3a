package utils

import (
	"github.com/go-playground/validator/v10"
)

// ProcessValidationErrors flattens validator errors into field:tag pairs
// suitable for logging or an error message.
func ProcessValidationErrors(err error) map[string]string {

	errorResponse := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errorResponse
	}

	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}

	return errorResponse
}
