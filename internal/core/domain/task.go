package domain

import "time"

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	StatusQueued     TaskStatus = "queued"
	StatusInProgress TaskStatus = "in_progress"
	StatusInReview   TaskStatus = "in_review"
	StatusDone       TaskStatus = "done"
)

// IsValid reports whether s is one of the known statuses. Any valid status
// may be set regardless of the current value; there is no transition graph.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusQueued, StatusInProgress, StatusInReview, StatusDone:
		return true
	}
	return false
}

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// IsValid reports whether p is one of the known priorities.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is the core aggregate. ExecutorID is empty while the task is
// unassigned. Comments are stored independently keyed by task id.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	AuthorID    string       `json:"author_id"`
	ExecutorID  string       `json:"executor_id,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Assigned reports whether the task has an executor.
func (t *Task) Assigned() bool {
	return t.ExecutorID != ""
}
