package task

import (
	"context"

	"github.com/avis-hq/avis-backend-go/internal/domain/user"
)

type TaskRepository interface {
	List(ctx context.Context, scope user.Scope, filter Filter) ([]Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	Create(ctx context.Context, newTask Task) (Task, error)
	Update(ctx context.Context, req UpdateTaskRequest) (Task, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Task, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, newComment Comment) (Comment, error)
}
