package postgres

import (
	"context"
	"fmt"

	"github.com/pgangayi/farmstead-auth/internal/auth/domain"
)

// PostgresLedger is the relational revocation ledger. It is a separate type
// from PostgresRepository so callers that only reject jtis depend on nothing
// else.
type PostgresLedger struct {
	db PgxIface
}

func NewPostgresLedger(db PgxIface) *PostgresLedger {
	return &PostgresLedger{db: db}
}

// Revoke is idempotent; replaying the same jti is a no-op.
func (l *PostgresLedger) Revoke(ctx context.Context, entry *domain.RevokedToken) error {
	_, err := l.db.Exec(ctx, `
		INSERT INTO revoked_tokens (jti, token_type, user_id, revoked_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (jti) DO NOTHING
	`, entry.JTI, entry.TokenType, entry.UserID, entry.RevokedAt, entry.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to record revoked token: %w", err)
	}

	return nil
}

func (l *PostgresLedger) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	err := l.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE jti = $1)
	`, jti).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}

	return revoked, nil
}

// PurgeExpired drops entries whose token has expired on its own; an expired
// token needs no revocation record, so the ledger stays bounded.
func (l *PostgresLedger) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := l.db.Exec(ctx, `
		DELETE FROM revoked_tokens WHERE expires_at < now()
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge revoked tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}
