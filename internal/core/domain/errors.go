package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccessDenied       = errors.New("access denied")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrUserExists         = errors.New("user already exists")
	ErrTaskExists         = errors.New("task already exists")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrInvalidComment     = errors.New("invalid comment content")
	ErrMissingCredentials = errors.New("email and password are required")
)

// EmailInUseError reports a registration conflict. It carries the
// conflicting email so the API error envelope can echo it back.
type EmailInUseError struct {
	Email string
}

func (e *EmailInUseError) Error() string {
	return fmt.Sprintf("user with email %s already exists", e.Email)
}

func (e *EmailInUseError) Unwrap() error { return ErrUserExists }

// TitleInUseError reports a task title conflict, carrying the
// conflicting title.
type TitleInUseError struct {
	Title string
}

func (e *TitleInUseError) Error() string {
	return fmt.Sprintf("task with title %q already exists", e.Title)
}

func (e *TitleInUseError) Unwrap() error { return ErrTaskExists }
