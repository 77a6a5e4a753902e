package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pgangayi/farmstead-auth/internal/auth/domain"
)

func (r *PostgresRepository) Get(ctx context.Context, email, ip string) (*domain.LoginAttempt, error) {
	query := `
		SELECT email, ip_address, attempt_count, last_attempt_at, locked_until
		FROM login_attempts
		WHERE email = $1 AND ip_address = $2
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email, ip)

	var attempt domain.LoginAttempt
	err := row.Scan(&attempt.Email, &attempt.IPAddress, &attempt.AttemptCount,
		&attempt.LastAttemptAt, &attempt.LockedUntil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get login attempts: %w", err)
	}

	return &attempt, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, attempt *domain.LoginAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (email, ip_address, attempt_count, last_attempt_at, locked_until)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email, ip_address)
		DO UPDATE SET
			attempt_count = EXCLUDED.attempt_count,
			last_attempt_at = EXCLUDED.last_attempt_at,
			locked_until = EXCLUDED.locked_until
	`, attempt.Email, attempt.IPAddress, attempt.AttemptCount, attempt.LastAttemptAt, attempt.LockedUntil)
	if err != nil {
		return fmt.Errorf("failed to upsert login attempt: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Reset(ctx context.Context, email, ip string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE login_attempts
		SET attempt_count = 0, locked_until = NULL
		WHERE email = $1 AND ip_address = $2
	`, email, ip)
	if err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}

	return nil
}
