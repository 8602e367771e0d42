package constvars

const (
	LoginSuccess           = "successfully logged in"
	RegisterSuccess        = "successfully registered"
	LogoutSuccess          = "successfully logged out"
	ProfileGetSuccess      = "successfully fetched profile"
	ProfileUpdateSuccess   = "successfully updated profile"
	ProfilePhotoSuccess    = "successfully uploaded profile photo"
	ResourceListSuccess    = "successfully fetched %s"
	ResourceCreateSuccess  = "successfully created %s"
	ResourceUpdateSuccess  = "successfully updated %s"
	ResourceDeleteSuccess  = "successfully deleted %s"
	BookingStartSuccess    = "booking session started"
	BookingStepSuccess     = "booking step saved"
	BookingCreatedSuccess  = "appointment created"
	PaymentIntentSuccess   = "payment intent created"
	PaymentSuccess         = "payment successful, your appointment is confirmed"
	RefundSuccess          = "payment refunded"
	TransitionSuccess      = "appointment marked as %s"
	DashboardGetSuccess    = "successfully fetched dashboard data"
	UnpaidListSuccess      = "successfully fetched unpaid appointments"
	AppointmentListSuccess = "successfully fetched appointments"
	BookingFormDataSuccess = "successfully fetched booking form data"
)
