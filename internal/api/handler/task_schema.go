package handler

import "time"

// --- Request types ---

type taskRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	Status      string `json:"status"      validate:"required,oneof=queued in_progress in_review done"`
	Priority    string `json:"priority"    validate:"required,oneof=low medium high"`
	AuthorID    string `json:"author_id"   validate:"required"`
	ExecutorID  string `json:"executor_id"`
}

type statusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=queued in_progress in_review done"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	AuthorID    string    `json:"author_id"`
	ExecutorID  string    `json:"executor_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type taskPageResponse struct {
	Items      []taskResponse `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

type deletedResponse struct {
	Message string `json:"message"`
}
