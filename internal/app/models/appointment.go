package models

import "finddoctor-service/internal/pkg/constvars"

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCanceled  AppointmentStatus = "CANCELED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
	PaymentPending  PaymentStatus = "PENDING"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

// Terminal statuses have no outgoing transitions.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCanceled || s == StatusCompleted
}

var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusCanceled, StatusCompleted},
}

func CanTransition(from, to AppointmentStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionPath maps a target status to the PATCH sub-path the core API
// exposes for it.
func TransitionPath(to AppointmentStatus) (string, bool) {
	switch to {
	case StatusConfirmed:
		return constvars.TransitionConfirm, true
	case StatusCanceled:
		return constvars.TransitionCancel, true
	case StatusCompleted:
		return constvars.TransitionComplete, true
	}
	return "", false
}
