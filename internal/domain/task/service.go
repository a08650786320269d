package task

import (
	"context"

	"github.com/avis-hq/avis-backend-go/internal/domain/auth"
)

type TaskService interface {
	List(ctx context.Context, session auth.Session, filter Filter) ([]TaskResponse, error)
	Get(ctx context.Context, session auth.Session, id string) (TaskResponse, error)
	Create(ctx context.Context, session auth.Session, req CreateTaskRequest) (TaskResponse, error)
	Update(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	UpdateStatus(ctx context.Context, session auth.Session, id string, req UpdateStatusRequest) (TaskResponse, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, session auth.Session, taskID string, req CreateCommentRequest) (CommentResponse, error)
}
