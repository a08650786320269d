package task

import (
	"time"

	"github.com/avis-hq/avis-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	AssigneeID  string  `json:"assigneeId"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Title) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must be at least 2 characters",
		})
	}
	if validator.IsEmpty(r.AssigneeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigneeId",
			Message: "assigneeId is required",
		})
	}
	if r.Priority != nil && !validator.IsInSlice(*r.Priority, Priorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be LOW, MEDIUM or HIGH",
		})
	}
	if r.Deadline != nil {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTaskRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && len(*r.Title) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must be at least 2 characters",
		})
	}
	if r.Priority != nil && !validator.IsInSlice(*r.Priority, Priorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be LOW, MEDIUM or HIGH",
		})
	}
	if r.Deadline != nil && *r.Deadline != "" {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be PENDING, IN_PROGRESS, UNDER_REVIEW or COMPLETED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

func (r *CreateCommentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter narrows task listings; zero values mean no filtering.
type Filter struct {
	Status   string
	Priority string
}

type UserSummary struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

type CommentResponse struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	TaskID    string       `json:"taskId"`
	Author    *UserSummary `json:"author,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

type TaskResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  *string           `json:"description,omitempty"`
	Status       Status            `json:"status"`
	Priority     Priority          `json:"priority"`
	Deadline     *time.Time        `json:"deadline,omitempty"`
	Assignee     *UserSummary      `json:"assignee,omitempty"`
	CreatedBy    *UserSummary      `json:"createdBy,omitempty"`
	CommentCount int               `json:"commentCount"`
	Comments     []CommentResponse `json:"comments,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func (t *Task) ToResponse() TaskResponse {
	resp := TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       t.Status,
		Priority:     t.Priority,
		Deadline:     t.Deadline,
		CommentCount: t.CommentCount,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.AssigneeName != nil {
		resp.Assignee = &UserSummary{
			ID:     t.AssigneeID,
			Name:   *t.AssigneeName,
			Email:  t.AssigneeEmail,
			Avatar: t.AssigneeAvatar,
		}
	}
	if t.CreatedByName != nil {
		resp.CreatedBy = &UserSummary{
			ID:   t.CreatedByID,
			Name: *t.CreatedByName,
		}
	}
	for _, c := range t.Comments {
		resp.Comments = append(resp.Comments, c.ToResponse())
	}
	return resp
}

func (c *Comment) ToResponse() CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		TaskID:    c.TaskID,
		CreatedAt: c.CreatedAt,
	}
	if c.AuthorName != nil {
		resp.Author = &UserSummary{
			ID:     c.AuthorID,
			Name:   *c.AuthorName,
			Avatar: c.AuthorAvatar,
		}
	}
	return resp
}
