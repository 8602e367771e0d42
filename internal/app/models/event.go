package models

import (
	"time"
)

// BookingConfirmedEvent goes on the queue once a booking has been paid, so
// downstream consumers (mail, reminders) can react without polling.
type BookingConfirmedEvent struct {
	AppointmentID int64     `json:"appointment_id"`
	PaymentMethod string    `json:"payment_method"`
	AmountInCents int64     `json:"amount_in_cents"`
	PaidAt        time.Time `json:"paid_at"`
}
