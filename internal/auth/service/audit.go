package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pgangayi/farmstead-auth/internal/auth/domain"
)

type EventPublisher interface {
	Publish(ctx context.Context, body []byte) error
}

// SecurityRecorder appends audit events. The database insert is synchronous;
// an insert failure is logged but never fails the request that produced the
// event — the audit log must not become an availability dependency for login.
type SecurityRecorder struct {
	store domain.SecurityEventStore
	pub   EventPublisher // optional fan-out, nil when AMQP is not configured
}

func NewSecurityRecorder(store domain.SecurityEventStore, pub EventPublisher) *SecurityRecorder {
	return &SecurityRecorder{store: store, pub: pub}
}

func (r *SecurityRecorder) Record(ctx context.Context, eventType string, userID *string, ip, userAgent string, metadata map[string]any) {
	event := &domain.SecurityEvent{
		ID:        uuid.NewString(),
		EventType: eventType,
		UserID:    userID,
		IPAddress: ip,
		UserAgent: userAgent,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.store.Insert(ctx, event); err != nil {
		log.Printf("warn: failed to record security event %s: %v", eventType, err)
	}

	if r.pub == nil {
		return
	}

	body, err := json.Marshal(map[string]any{
		"id":         event.ID,
		"event_type": event.EventType,
		"user_id":    event.UserID,
		"ip_address": event.IPAddress,
		"user_agent": event.UserAgent,
		"metadata":   event.Metadata,
		"created_at": event.CreatedAt,
	})
	if err != nil {
		log.Printf("warn: failed to encode security event %s: %v", eventType, err)
		return
	}
	if err := r.pub.Publish(ctx, body); err != nil {
		log.Printf("warn: failed to publish security event %s: %v", eventType, err)
	}
}
