package task

import "time"

type Status string

const (
	StatusPending     Status = "PENDING"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusCompleted   Status = "COMPLETED"
)

// Statuses lists every valid task status, for validation.
var Statuses = []string{
	string(StatusPending),
	string(StatusInProgress),
	string(StatusUnderReview),
	string(StatusCompleted),
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

var Priorities = []string{
	string(PriorityLow),
	string(PriorityMedium),
	string(PriorityHigh),
}

type Task struct {
	ID          string
	Title       string
	Description *string
	Status      Status
	Priority    Priority
	Deadline    *time.Time
	AssigneeID  string
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	AssigneeName   *string
	AssigneeEmail  *string
	AssigneeAvatar *string
	CreatedByName  *string
	CommentCount   int
	Comments       []Comment
}

type Comment struct {
	ID        string
	Content   string
	TaskID    string
	AuthorID  string
	CreatedAt time.Time

	// DTO / Join
	AuthorName   *string
	AuthorAvatar *string
}
