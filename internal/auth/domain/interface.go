package domain

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
}

type RefreshTokenStore interface {
	Store(ctx context.Context, rt *RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	// MarkRotated flips revoked and records the successor, conditional on the
	// row not already being revoked. A concurrent replay loses the race and
	// gets ErrRefreshTokenRevoked.
	MarkRotated(ctx context.Context, id, replacedBy string) error
	Revoke(ctx context.Context, id string) error
	RevokeChain(ctx context.Context, chainID string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

type RevocationLedger interface {
	Revoke(ctx context.Context, entry *RevokedToken) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type LoginAttemptStore interface {
	Get(ctx context.Context, email, ip string) (*LoginAttempt, error)
	Upsert(ctx context.Context, attempt *LoginAttempt) error
	Reset(ctx context.Context, email, ip string) error
}

type SecurityEventStore interface {
	Insert(ctx context.Context, event *SecurityEvent) error
}
