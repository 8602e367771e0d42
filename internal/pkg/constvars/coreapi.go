package constvars

// Paths on the remote core API. The service never owns these resources, it
// only relays to them.
const (
	CoreAPIPathAuthLogin          = "/api/auth/login"
	CoreAPIPathAuthRegister       = "/api/auth/register"
	CoreAPIPathAuthMe             = "/api/auth/me"
	CoreAPIPathAuthUpdateProfile  = "/api/auth/update-profile"
	CoreAPIPathPatientsMy         = "/api/patients/my"
	CoreAPIPathPatients           = "/api/patients"
	CoreAPIPathAppointments       = "/api/appointments"
	CoreAPIPathAppointmentsMy     = "/api/appointments/my"
	CoreAPIPathAppointmentsDoctor = "/api/appointments/doctor"
	CoreAPIPathHistory            = "/api/appointments/my/history"
	CoreAPIPathCreateIntent       = "/api/payments/create-payment-intent"
	CoreAPIPathPayCash            = "/api/payments/pay-cash"
	CoreAPIPathUnpaid             = "/api/payments/unpaid-appointments"
	CoreAPIPathDashboards         = "/api/dashboards"
	CoreAPIPathDoctorDashboard    = "/api/doctor/dashboard"
)

const (
	TransitionConfirm  = "confirm"
	TransitionCancel   = "cancel"
	TransitionComplete = "complete"
)
