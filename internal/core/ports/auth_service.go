package ports

import (
	"context"

	"github.com/taskboard/task-management-api/internal/core/domain"
)

// AuthService implements registration and credential-based login.
type AuthService interface {
	// Register creates an account. The first account ever registered is
	// assigned the admin role; every later one gets the user role.
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token.
	// Unknown email and wrong password both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
