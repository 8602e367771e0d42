package responses

type Appointment struct {
	ID                  int64   `json:"id"`
	DoctorID            int64   `json:"doctorId"`
	DoctorName          string  `json:"doctorName,omitempty"`
	PatientID           int64   `json:"patientId"`
	PatientName         string  `json:"patientName,omitempty"`
	AppointmentTypeID   int64   `json:"appointmentTypeId"`
	AppointmentTypeName string  `json:"appointmentTypeName,omitempty"`
	DoctorHospitalName  string  `json:"doctorHospitalName,omitempty"`
	DateTime            string  `json:"dateTime"`
	Note                string  `json:"note,omitempty"`
	Status              string  `json:"status"`
	PaymentStatus       string  `json:"paymentStatus,omitempty"`
	FeedbackGiven       bool    `json:"feedbackGiven"`
	Amount              float64 `json:"amount,omitempty"`
}

type AppointmentList struct {
	Appointments []Appointment `json:"appointments"`
}

// CreatedAppointment is what the booking flow needs back from the core API
// after POST /api/appointments.
type CreatedAppointment struct {
	ID     int64   `json:"id"`
	Amount float64 `json:"amount"`
}

type BookingDetails struct {
	AppointmentID int64 `json:"appointmentId"`
	AmountInCents int64 `json:"amountInCents"`
}

type BookingSessionStarted struct {
	BookingID string `json:"bookingId"`
}

type DoctorOption struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	HospitalName string `json:"hospitalName,omitempty"`
}

type AppointmentTypeOption struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

type BookingFormData struct {
	Doctors          []DoctorOption          `json:"doctors"`
	AppointmentTypes []AppointmentTypeOption `json:"appointmentTypes"`
}

// AppointmentRow pairs an appointment with the transition actions the current
// role may take on it, so views render exactly the allowed buttons.
type AppointmentRow struct {
	Appointment
	Actions []string `json:"actions"`
}

type AppointmentPage struct {
	Content []Appointment `json:"content"`
	Page    CorePage      `json:"page"`
}

type AppointmentRowPage struct {
	Content []AppointmentRow `json:"content"`
	Page    CorePage         `json:"page"`
}
