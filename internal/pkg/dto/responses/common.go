package responses

import (
	"github.com/goccy/go-json"
)

// CorePagedResponse is the core API's pagination envelope. Entity rows stay
// opaque, the service never interprets them beyond relaying.
type CorePagedResponse struct {
	Content []json.RawMessage `json:"content"`
	Page    CorePage          `json:"page"`
}

type CorePage struct {
	Size          int `json:"size"`
	Number        int `json:"number"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// CoreErrorEnvelope is the error body the core API returns on non-2xx.
type CoreErrorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
