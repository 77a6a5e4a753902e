package domain

import "time"

const (
	EventUserRegistered     = "user_registered"
	EventLoginSuccess       = "login_success"
	EventLoginFailed        = "login_failed"
	EventLoginLockedOut     = "login_locked_out"
	EventTokenRefreshed     = "token_refreshed"
	EventTokenReuseDetected = "token_reuse_detected"
	EventLogout             = "logout"
)

// SecurityEvent is an append-only audit record. The application never updates
// or deletes rows; retention is an ops concern.
type SecurityEvent struct {
	ID        string
	EventType string
	UserID    *string
	IPAddress string
	UserAgent string
	Metadata  map[string]any
	CreatedAt time.Time
}
