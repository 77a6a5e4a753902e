package domain

import "time"

// RefreshToken is one link in a rotation chain. The raw token value is never
// stored; TokenHash is its SHA-256 digest. ChainID ties every token issued by
// successive rotations back to the original login, so that a replayed token
// can take the whole lineage down with it.
type RefreshToken struct {
	ID         string // jti
	UserID     string
	TokenHash  string
	ChainID    string
	ReplacedBy *string
	CsrfToken  string
	IssuedAt   time.Time
	ExpiresAt  time.Time
	Revoked    bool
}

// RevokedToken is a ledger entry consulted on every protected request. Entries
// are safe to purge once ExpiresAt (the token's own expiry) has passed.
type RevokedToken struct {
	JTI       string
	TokenType string // constant.TokenTypeAccess or constant.TokenTypeRefresh
	UserID    string
	RevokedAt time.Time
	ExpiresAt time.Time
}
