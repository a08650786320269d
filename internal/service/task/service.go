package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/avis-hq/avis-backend-go/internal/domain/auth"
	"github.com/avis-hq/avis-backend-go/internal/domain/task"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/avis-hq/avis-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type TaskServiceImpl struct {
	task.TaskRepository
	user.UserRepository
}

func NewTaskService(taskRepository task.TaskRepository, userRepository user.UserRepository) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository: taskRepository,
		UserRepository: userRepository,
	}
}

// canView reports whether the caller may read the task: owners see all,
// everyone sees tasks they are assigned to or created, and managers
// additionally see tasks assigned to their direct reports.
func (s *TaskServiceImpl) canView(ctx context.Context, session auth.Session, found task.Task) (bool, error) {
	if user.Role(session.Role) == user.RoleOwner {
		return true, nil
	}
	if found.AssigneeID == session.UserID || found.CreatedByID == session.UserID {
		return true, nil
	}
	if user.Role(session.Role) == user.RoleManager {
		assignee, err := s.UserRepository.GetByID(ctx, found.AssigneeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return false, nil
			}
			return false, fmt.Errorf("failed to get assignee: %w", err)
		}
		return assignee.ManagerID != nil && *assignee.ManagerID == session.UserID, nil
	}
	return false, nil
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, session auth.Session, filter task.Filter) ([]task.TaskResponse, error) {
	scope := user.VisibilityScope(user.Role(session.Role), session.UserID, user.ResourceTasks)

	tasks, err := s.TaskRepository.List(ctx, scope, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, tasks[i].ToResponse())
	}
	return responses, nil
}

// Get implements task.TaskService.
func (s *TaskServiceImpl) Get(ctx context.Context, session auth.Session, id string) (task.TaskResponse, error) {
	found, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.TaskResponse{}, task.ErrTaskNotFound
		}
		return task.TaskResponse{}, fmt.Errorf("failed to get task: %w", err)
	}

	visible, err := s.canView(ctx, session, found)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if !visible {
		return task.TaskResponse{}, task.ErrTaskNotVisible
	}
	return found.ToResponse(), nil
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, session auth.Session, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if _, err := s.UserRepository.GetByID(ctx, req.AssigneeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.TaskResponse{}, user.ErrUserNotFound
		}
		return task.TaskResponse{}, fmt.Errorf("failed to get assignee: %w", err)
	}

	newTask := task.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      task.StatusPending,
		Priority:    task.PriorityMedium,
		AssigneeID:  req.AssigneeID,
		CreatedByID: session.UserID,
	}
	if req.Priority != nil {
		newTask.Priority = task.Priority(*req.Priority)
	}
	if req.Deadline != nil && *req.Deadline != "" {
		deadline, _ := validator.IsValidDate(*req.Deadline)
		newTask.Deadline = &deadline
	}

	created, err := s.TaskRepository.Create(ctx, newTask)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}
	return created.ToResponse(), nil
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	updated, err := s.TaskRepository.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.TaskResponse{}, task.ErrTaskNotFound
		}
		return task.TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}
	return updated.ToResponse(), nil
}

// UpdateStatus implements task.TaskService. Only the assignee may move a
// task through its lifecycle; managers and the owner may move any task
// they can see.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, session auth.Session, id string, req task.UpdateStatusRequest) (task.TaskResponse, error) {
	found, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.TaskResponse{}, task.ErrTaskNotFound
		}
		return task.TaskResponse{}, fmt.Errorf("failed to get task: %w", err)
	}

	role := user.Role(session.Role)
	if found.AssigneeID != session.UserID && role != user.RoleManager && role != user.RoleOwner {
		return task.TaskResponse{}, task.ErrNotTaskAssignee
	}

	updated, err := s.TaskRepository.UpdateStatus(ctx, id, task.Status(req.Status))
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to update task status: %w", err)
	}
	return updated.ToResponse(), nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	return s.TaskRepository.Delete(ctx, id)
}

// AddComment implements task.TaskService.
func (s *TaskServiceImpl) AddComment(ctx context.Context, session auth.Session, taskID string, req task.CreateCommentRequest) (task.CommentResponse, error) {
	found, err := s.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.CommentResponse{}, task.ErrTaskNotFound
		}
		return task.CommentResponse{}, fmt.Errorf("failed to get task: %w", err)
	}

	visible, err := s.canView(ctx, session, found)
	if err != nil {
		return task.CommentResponse{}, err
	}
	if !visible {
		return task.CommentResponse{}, task.ErrTaskNotVisible
	}

	comment, err := s.TaskRepository.AddComment(ctx, task.Comment{
		Content:  req.Content,
		TaskID:   taskID,
		AuthorID: session.UserID,
	})
	if err != nil {
		return task.CommentResponse{}, fmt.Errorf("failed to add comment: %w", err)
	}
	return comment.ToResponse(), nil
}
