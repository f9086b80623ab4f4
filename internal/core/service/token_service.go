package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskboard/task-management-api/internal/core/domain"
)

// TokenService issues and verifies signed bearer tokens. It is stateless:
// verification needs only the secret and the clock, never a store lookup.
// The trade-off is that an issued token cannot be revoked before expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token asserting the given identity. The role travels as a
// claim so verification can rebuild the principal without a user lookup.
func (s *TokenService) Issue(email string, role domain.Role) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates the signature and expiry and rebuilds the principal
// from the embedded claims. A token is rejected from the moment the
// clock reaches its expiry. Any failure collapses to a single error:
// the caller treats it as "no identity", not as a fault.
func (s *TokenService) Verify(token string) (domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return domain.Principal{}, fmt.Errorf("verify token: %w", jwt.ErrTokenUnverifiable)
	}

	email, err := claims.GetSubject()
	if err != nil || email == "" {
		return domain.Principal{}, fmt.Errorf("verify token: missing subject")
	}

	role, _ := claims["role"].(string)
	if !domain.Role(role).IsValid() {
		return domain.Principal{}, fmt.Errorf("verify token: unknown role %q", role)
	}

	return domain.Principal{Email: email, Role: domain.Role(role)}, nil
}
