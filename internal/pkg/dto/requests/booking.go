package requests

type PatientInfo struct {
	Firstname     string `json:"firstname" validate:"required,max=100"`
	Lastname      string `json:"lastname" validate:"required,max=100"`
	PreferredName string `json:"preferredName" validate:"omitempty,max=100"`
	Email         string `json:"email" validate:"omitempty,email"`
	DateOfBirth   string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender        string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	ContactNumber string `json:"contactNumber" validate:"omitempty,max=30"`
	Address       string `json:"address" validate:"omitempty,max=255"`
}

// AppointmentDetails is step two of the booking flow. The zero values of
// DoctorID and AppointmentTypeID are the placeholder options and never valid.
type AppointmentDetails struct {
	DoctorID          int64  `json:"doctorId" validate:"required,gt=0"`
	AppointmentTypeID int64  `json:"appointmentTypeId" validate:"required,gt=0"`
	DateTime          string `json:"dateTime" validate:"required"`
	Note              string `json:"note" validate:"omitempty,max=1000"`
}
