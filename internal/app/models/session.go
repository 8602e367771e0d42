package models

import (
	"time"
)

// Session is the only durable state the service owns besides uploaded photos.
// It wraps the core API token so expiry is enforced at one boundary instead of
// per call site.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CoreToken string    `json:"core_token"`
	ExpiresAt time.Time `json:"expires_at"`
}
