package service

import (
	"context"
	"time"

	"github.com/pgangayi/farmstead-auth/config"
	"github.com/pgangayi/farmstead-auth/internal/auth/domain"
)

// LoginLimiter throttles failed logins per (email, ip) pair. Scoping to the
// pair rather than the email alone keeps one attacker IP from locking a known
// victim out of their own account.
type LoginLimiter struct {
	store  domain.LoginAttemptStore
	policy config.LockoutPolicy
}

func NewLoginLimiter(store domain.LoginAttemptStore, policy config.LockoutPolicy) *LoginLimiter {
	return &LoginLimiter{store: store, policy: policy}
}

// IsLocked must be checked before any credential work so locked-out requests
// never reach the user table.
func (l *LoginLimiter) IsLocked(ctx context.Context, email, ip string) (bool, error) {
	attempt, err := l.store.Get(ctx, email, ip)
	if err != nil {
		return false, err
	}
	if attempt == nil || attempt.LockedUntil == nil {
		return false, nil
	}

	return time.Now().Before(*attempt.LockedUntil), nil
}

func (l *LoginLimiter) RecordFailure(ctx context.Context, email, ip string) error {
	attempt, err := l.store.Get(ctx, email, ip)
	if err != nil {
		return err
	}

	now := time.Now()
	if attempt == nil || now.Sub(attempt.LastAttemptAt) > l.policy.Window() {
		attempt = &domain.LoginAttempt{Email: email, IPAddress: ip}
	}

	attempt.AttemptCount++
	attempt.LastAttemptAt = now
	if attempt.AttemptCount >= l.policy.MaxFailures {
		lockedUntil := now.Add(l.policy.LockoutDuration())
		attempt.LockedUntil = &lockedUntil
	}

	return l.store.Upsert(ctx, attempt)
}

func (l *LoginLimiter) RecordSuccess(ctx context.Context, email, ip string) error {
	return l.store.Reset(ctx, email, ip)
}
