package requests

type CreatePaymentIntent struct {
	AppointmentID int64  `json:"appointmentId" validate:"required,gt=0"`
	AmountInCents int64  `json:"amountInCents" validate:"required,gt=0"`
	Currency      string `json:"currency" validate:"omitempty,len=3"`
}

type ConfirmCardPayment struct {
	PaymentMethodID string `json:"paymentMethodId" validate:"required"`
}

// ConfirmPayment confirms an intent created outside the booking flow, so the
// client supplies the secret itself.
type ConfirmPayment struct {
	ClientSecret    string `json:"clientSecret" validate:"required"`
	PaymentMethodID string `json:"paymentMethodId" validate:"required"`
}

type PayCash struct {
	AppointmentID int64   `json:"appointmentId" validate:"required,gt=0"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}
