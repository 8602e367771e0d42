package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to AppointmentStatus }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCanceled},
		{StatusConfirmed, StatusCanceled},
		{StatusConfirmed, StatusCompleted},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to AppointmentStatus }{
		{StatusPending, StatusCompleted},
		{StatusCanceled, StatusConfirmed},
		{StatusCompleted, StatusCanceled},
		{StatusConfirmed, StatusPending},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestTransitionPath(t *testing.T) {
	path, ok := TransitionPath(StatusConfirmed)
	assert.True(t, ok)
	assert.Equal(t, "confirm", path)

	path, ok = TransitionPath(StatusCanceled)
	assert.True(t, ok)
	assert.Equal(t, "cancel", path)

	path, ok = TransitionPath(StatusCompleted)
	assert.True(t, ok)
	assert.Equal(t, "complete", path)

	_, ok = TransitionPath(StatusPending)
	assert.False(t, ok)
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, AppointmentStatus("UNKNOWN").Valid())
	assert.True(t, StatusCanceled.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.False(t, StatusPending.Terminal())
}
