package models

import (
	"finddoctor-service/internal/pkg/dto/requests"
)

type BookingStep int

const (
	BookingStepPatientInfo BookingStep = iota
	BookingStepDetails
	BookingStepPayment
)

// BookingSession holds the multi-step booking form state server side, keyed by
// a booking ID handed to the client. The payment step can only run once the
// details step has produced an appointment, so jumping ahead has nothing to
// act on.
type BookingSession struct {
	ID            string               `json:"id"`
	Step          BookingStep          `json:"step"`
	PatientInfo   requests.PatientInfo `json:"patient_info"`
	AppointmentID int64                `json:"appointment_id"`
	AmountInCents int64                `json:"amount_in_cents"`
	ClientSecret  string               `json:"client_secret,omitempty"`
	Completed     bool                 `json:"completed"`
}

func (b *BookingSession) ReadyForPayment() bool {
	return b.AppointmentID != 0 && b.AmountInCents != 0
}
