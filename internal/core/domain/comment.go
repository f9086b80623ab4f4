package domain

import "time"

// MaxCommentLength is the upper bound on comment content, counted in
// characters, not bytes.
const MaxCommentLength = 1000

// Comment is a remark attached to a task. Comments are immutable once
// created and are removed when their parent task is deleted.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
