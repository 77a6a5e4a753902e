package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pgangayi/farmstead-auth/internal/auth/domain"
	autherror "github.com/pgangayi/farmstead-auth/internal/errors"
)

func (r *PostgresRepository) Store(ctx context.Context, rt *domain.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (id, user_id, token_hash, chain_id, replaced_by, csrf_token, issued_at, expires_at, revoked)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		rt.ID, rt.UserID, rt.TokenHash, rt.ChainID, rt.ReplacedBy,
		rt.CsrfToken, rt.IssuedAt, rt.ExpiresAt, rt.Revoked)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_id, token_hash, chain_id, replaced_by, csrf_token, issued_at, expires_at, revoked
		FROM refresh_tokens
		WHERE token_hash = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, tokenHash)

	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.TokenHash, &rt.ChainID, &rt.ReplacedBy,
		&rt.CsrfToken, &rt.IssuedAt, &rt.ExpiresAt, &rt.Revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

// MarkRotated is the race arbiter for rotation: of two requests replaying the
// same token, exactly one flips the row and the other sees zero rows updated.
func (r *PostgresRepository) MarkRotated(ctx context.Context, id, replacedBy string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked = TRUE, replaced_by = $2
		WHERE id = $1 AND revoked = FALSE
	`, id, replacedBy)
	if err != nil {
		return fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrRefreshTokenRevoked
	}

	return nil
}

func (r *PostgresRepository) Revoke(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE WHERE id = $1 AND revoked = FALSE
	`, id)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func (r *PostgresRepository) RevokeChain(ctx context.Context, chainID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE WHERE chain_id = $1 AND revoked = FALSE
	`, chainID)
	if err != nil {
		return fmt.Errorf("failed to revoke token chain: %w", err)
	}

	return nil
}

func (r *PostgresRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE WHERE user_id = $1 AND revoked = FALSE
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke user tokens: %w", err)
	}

	return nil
}
