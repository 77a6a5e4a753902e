package domain

import "time"

// LoginAttempt is the lockout aggregate for one (email, ip) pair. It exists
// independently of any User row so that attempts against unregistered emails
// behave identically to attempts against real ones.
type LoginAttempt struct {
	Email         string
	IPAddress     string
	AttemptCount  int
	LastAttemptAt time.Time
	LockedUntil   *time.Time
}
