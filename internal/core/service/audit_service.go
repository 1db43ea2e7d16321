package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fortune-labs/task-tracker/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists auth events to
// the audit trail.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single auth event. Audit writes are off the request
// path, so a failure here is surfaced to the dispatcher for logging but
// never affects the originating request.
func (s *auditService) Process(ctx context.Context, in ports.AuthEventInput) error {
	if in.UserID == "" || in.Kind == "" {
		return fmt.Errorf("audit event missing user or kind")
	}

	if err := s.repo.InsertEvent(ctx, in); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}

	s.log.Debug().
		Str("user_id", in.UserID).
		Str("kind", in.Kind).
		Msg("auth event recorded")

	return nil
}
