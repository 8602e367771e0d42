package constvars

// Messages safe to show to the end user.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientImageTooLarge                 = "the image you uploaded is too large"
	ErrClientResourceNotFound              = "the requested record could not be found"
	ErrClientDoctorRequired                = "please select a doctor"
	ErrClientAppointmentTypeRequired       = "please select an appointment type"
	ErrClientDateTimeInPast                = "the appointment date and time must be in the future"
	ErrClientInvalidStatus                 = "invalid status"
	ErrClientCompleteBeforeDateTime        = "cannot mark as completed before the appointment date/time"
	ErrClientTransitionNotAllowed          = "this action is not available for the appointment"
	ErrClientBookingNotFound               = "your booking session has expired, please start over"
	ErrClientBookingNotReady               = "please finish the appointment details step first"
	ErrClientPaymentNotInitialized         = "payment has not been initialized"
	ErrClientPaymentAlreadyRefunded        = "this payment has already been refunded"
	ErrClientPaymentFailed                 = "payment failed, please try again"
	ErrClientDuplicateFeedback             = "feedback has already been submitted for this appointment"
	ErrClientHospitalNameTaken             = "a hospital with this name already exists"
	ErrClientRequiredField                 = "%s is required"
)

// Developer-facing messages, logged and shown outside production only.
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime           = "cannot parse time into the given format"
	ErrDevCannotParseMultipartForm  = "cannot parse multipart form body"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevAuthGenerateToken         = "failed to generate session token"
	ErrDevCoreTokenExpired          = "core API token expired, session purged"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevRoleNotAllowed            = "request done by user with a role that is not allowed here"

	ErrDevCoreAPICreateResource   = "failed to create %s on core API"
	ErrDevCoreAPIUpdateResource   = "failed to update %s on core API"
	ErrDevCoreAPIGetResource      = "failed to get %s from core API"
	ErrDevCoreAPIDeleteResource   = "failed to delete %s on core API"
	ErrDevCoreAPIResourceNotFound = "%s not found on core API"
	ErrDevDecodeResponse          = "failed to decode %s response body"
	ErrDevRateLimiterWait         = "outbound rate limiter wait failed"

	ErrDevRedisSet       = "failed to set value on redis"
	ErrDevRedisGetNoData = "failed to get value from redis with key %s"
	ErrDevRedisDelete    = "failed to delete value on redis"

	ErrDevMinioUpload = "failed to upload object to minio"

	ErrDevPublishMessage = "failed to publish message to queue"

	ErrDevPaymentGatewayConfirm    = "failed to confirm payment intent with processor"
	ErrDevPaymentIntentBadSecret   = "client secret does not contain a payment intent id"
	ErrDevBookingStepNotCompleted  = "booking step prerequisites not satisfied"
	ErrDevAppointmentMissingAmount = "appointment creation response missing id or amount"
	ErrDevImageValidationFailed    = "image validation failed"
)
