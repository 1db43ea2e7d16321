package ports

import (
	"context"
	"time"
)

// AuthEventInput is the DTO handed from the transport layer to the audit
// pipeline.
type AuthEventInput struct {
	UserID string
	Kind   string
	At     time.Time
}

// AuditService persists authentication events for the audit trail.
type AuditService interface {
	Process(ctx context.Context, event AuthEventInput) error
}

// AuditRepository handles audit-event persistence.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event AuthEventInput) error
}
