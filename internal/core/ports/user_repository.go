package ports

import (
	"context"

	"github.com/taskboard/task-management-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Email uniqueness is enforced by the store; a lost duplicate race
// surfaces as domain.ErrUserExists from Create.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	// Count returns the number of registered users. Used by the
	// first-user-bootstrap rule at registration.
	Count(ctx context.Context) (int64, error)
}
