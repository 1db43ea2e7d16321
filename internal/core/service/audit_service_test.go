package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fortune-labs/task-tracker/internal/core/domain"
	"github.com/fortune-labs/task-tracker/internal/core/ports"
)

type stubAuditRepo struct {
	inserted []ports.AuthEventInput
	fail     error
}

func (r *stubAuditRepo) InsertEvent(_ context.Context, event ports.AuthEventInput) error {
	if r.fail != nil {
		return r.fail
	}
	r.inserted = append(r.inserted, event)
	return nil
}

func TestAuditService_Process(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	event := ports.AuthEventInput{UserID: "u1", Kind: domain.EventSignIn, At: time.Now()}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].UserID != "u1" {
		t.Fatalf("unexpected inserted events: %+v", repo.inserted)
	}
}

func TestAuditService_Process_MissingFields(t *testing.T) {
	svc := NewAuditService(&stubAuditRepo{}, zerolog.Nop())

	if err := svc.Process(context.Background(), ports.AuthEventInput{Kind: domain.EventSignIn}); err == nil {
		t.Fatalf("expected error for missing user id")
	}
	if err := svc.Process(context.Background(), ports.AuthEventInput{UserID: "u1"}); err == nil {
		t.Fatalf("expected error for missing kind")
	}
}

func TestAuditService_Process_InsertFailure(t *testing.T) {
	repo := &stubAuditRepo{fail: errors.New("write failed")}
	svc := NewAuditService(repo, zerolog.Nop())

	event := ports.AuthEventInput{UserID: "u1", Kind: domain.EventSignUp, At: time.Now()}
	if err := svc.Process(context.Background(), event); err == nil {
		t.Fatalf("expected insert failure to propagate")
	}
}
