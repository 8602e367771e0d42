package responses

type Payment struct {
	ID            int64   `json:"id"`
	AppointmentID int64   `json:"appointmentId"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod string  `json:"paymentMethod"`
	PaidAt        string  `json:"paidAt,omitempty"`
	PatientName   string  `json:"patientName,omitempty"`
}

type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentConfirmation is the processor's answer to a confirm call.
type PaymentConfirmation struct {
	IntentID string `json:"id"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
}

type CheckoutResult struct {
	AppointmentID int64  `json:"appointmentId"`
	PaymentMethod string `json:"paymentMethod"`
	Status        string `json:"status"`
}
