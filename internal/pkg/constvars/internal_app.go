package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_SESSION_KEY    ContextKey = "session"
)

const (
	RoleAdmin   = "ADMIN"
	RoleDoctor  = "DOCTOR"
	RolePatient = "PATIENT"
)

const (
	ResourceDoctors          = "doctors"
	ResourcePatients         = "patients"
	ResourceHospitals        = "hospitals"
	ResourceSpecializations  = "specializations"
	ResourceUsers            = "users"
	ResourceFeedbacks        = "feedbacks"
	ResourceAppointmentTypes = "appointment-types"
	ResourceRoles            = "roles"
	ResourcePayments         = "payments"
	ResourceAppointments     = "appointments"
)

const (
	SessionKeyPrefix = "session:"
	BookingKeyPrefix = "booking:"
)

const (
	DefaultPageSize    = 5
	BookingDoctorsSize = 1000
	DefaultCurrency    = "usd"
)
