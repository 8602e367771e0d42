package requests

// TransitionAppointment asks for a status change. The server decides whether
// the move is legal for the caller's role and the current status.
type TransitionAppointment struct {
	Status string `json:"status" validate:"required"`
}
