package exceptions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finddoctor-service/internal/pkg/constvars"
)

func TestFormatFirstValidationError(t *testing.T) {
	validate := validator.New()

	type detailsForm struct {
		DoctorID          int64  `validate:"required,gt=0"`
		AppointmentTypeID int64  `validate:"required,gt=0"`
		DateTime          string `validate:"required"`
	}

	t.Run("placeholder doctor option", func(t *testing.T) {
		err := validate.Struct(detailsForm{AppointmentTypeID: 2, DateTime: "2026-10-01T10:00:00Z"})

		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientDoctorRequired, FormatFirstValidationError(err))
	})

	t.Run("placeholder appointment type option", func(t *testing.T) {
		err := validate.Struct(detailsForm{DoctorID: 1, DateTime: "2026-10-01T10:00:00Z"})

		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientAppointmentTypeRequired, FormatFirstValidationError(err))
	})

	t.Run("plain required field", func(t *testing.T) {
		err := validate.Struct(detailsForm{DoctorID: 1, AppointmentTypeID: 2})

		require.Error(t, err)
		assert.Equal(t, fmt.Sprintf(constvars.ErrClientRequiredField, "datetime"), FormatFirstValidationError(err))
	})

	t.Run("non validator error falls back", func(t *testing.T) {
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(errors.New("boom")))
	})
}
