package domain

import "time"

// Role is the closed set of authorization roles a user can hold.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// User models a registered account. The password hash never leaves the
// service layer in API responses.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the verified identity attached to a request after token
// verification. It is derived fresh per request and never persisted; the
// role comes from the token claim, not a live read of the user store.
type Principal struct {
	Email string
	Role  Role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
