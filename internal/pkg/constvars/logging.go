package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingResourceKey      = "resource"
	LoggingSessionIDKey     = "session_id"
	LoggingBookingIDKey     = "booking_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingPaymentIDKey     = "payment_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingRoleKey          = "role"
)
