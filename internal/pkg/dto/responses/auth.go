package responses

import (
	"github.com/goccy/go-json"
)

type Login struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type Register struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// CoreToken is the core API's auth response body.
type CoreToken struct {
	Token string `json:"token"`
}

// Profile is relayed as-is from GET /api/auth/me.
type Profile = json.RawMessage

type ProfilePhoto struct {
	PhotoURL string `json:"photoUrl"`
}
