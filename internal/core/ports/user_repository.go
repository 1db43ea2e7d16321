package ports

import (
	"context"

	"github.com/fortune-labs/task-tracker/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// The store is expected to enforce uniqueness of username and email via
// its own constraints; Create must surface a constraint violation as
// domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByUsernameOrEmail performs the combined duplicate lookup used as
	// the fast-path existence check on sign-up.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
}
