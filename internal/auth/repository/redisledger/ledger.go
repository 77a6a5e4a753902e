// Package redisledger layers a Redis jti blacklist over another revocation
// ledger. Postgres stays the system of record; Redis keys carry the token's
// remaining natural lifetime so they evict themselves.
package redisledger

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pgangayi/farmstead-auth/internal/auth/domain"
)

const keyPrefix = "revoked:"

type Ledger struct {
	inner  domain.RevocationLedger
	client *redis.Client
}

func New(client *redis.Client, inner domain.RevocationLedger) *Ledger {
	return &Ledger{inner: inner, client: client}
}

func (l *Ledger) Revoke(ctx context.Context, entry *domain.RevokedToken) error {
	if err := l.inner.Revoke(ctx, entry); err != nil {
		return err
	}

	// Cache write is best-effort; a miss falls through to Postgres.
	if ttl := time.Until(entry.ExpiresAt); ttl > 0 {
		if err := l.client.Set(ctx, keyPrefix+entry.JTI, "1", ttl).Err(); err != nil {
			log.Printf("warn: failed to cache revoked jti %s: %v", entry.JTI, err)
		}
	}

	return nil
}

func (l *Ledger) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := l.client.Exists(ctx, keyPrefix+jti).Result()
	if err == nil && n > 0 {
		return true, nil
	}
	if err != nil {
		log.Printf("warn: redis ledger check failed for jti %s: %v", jti, err)
	}

	return l.inner.IsRevoked(ctx, jti)
}

func (l *Ledger) PurgeExpired(ctx context.Context) (int64, error) {
	// Redis entries expire on their own.
	return l.inner.PurgeExpired(ctx)
}
