package responses

// CorePatient is the slice of the core API's patient record the workflows
// need. Full patient rows are relayed opaquely by the resource endpoints.
type CorePatient struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email,omitempty"`
}
