package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pgangayi/farmstead-auth/internal/auth/domain"
)

func (r *PostgresRepository) Insert(ctx context.Context, event *domain.SecurityEvent) error {
	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode event metadata: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO security_events (id, event_type, user_id, ip_address, user_agent, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, event.ID, event.EventType, event.UserID, event.IPAddress, event.UserAgent, metadata, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert security event: %w", err)
	}

	return nil
}
