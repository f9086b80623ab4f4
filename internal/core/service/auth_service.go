package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates a new account. The first account ever registered gets
// the admin role (bootstrap rule); every subsequent one gets the user
// role. The existence check is check-then-act; the unique index on email
// converts a lost race into domain.ErrUserExists at insert time.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, &domain.EmailInUseError{Email: email}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	role := domain.RoleUser
	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("register: count users: %w", err)
	}
	if count == 0 {
		role = domain.RoleAdmin
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, &domain.EmailInUseError{Email: email}
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password collapse to the same error so callers cannot probe which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("user logged in")
	return token, user, nil
}
