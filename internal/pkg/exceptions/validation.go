package exceptions

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"finddoctor-service/internal/pkg/constvars"
)

// FormatFirstValidationError turns the first validator error into a message a
// user can act on. Anything that is not a validator error falls back to the
// generic client message.
func FormatFirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldError := validationErrors[0]
	field := strings.ToLower(fieldError.Field())

	// The booking form's select inputs submit zero for the placeholder option;
	// "doctorid must be greater than 0" would leak the wire shape.
	switch field {
	case "doctorid":
		return constvars.ErrClientDoctorRequired
	case "appointmenttypeid":
		return constvars.ErrClientAppointmentTypeRequired
	}

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf(constvars.ErrClientRequiredField, field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldError.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
