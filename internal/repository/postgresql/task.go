package postgresql

import (
	"context"
	"fmt"

	"github.com/avis-hq/avis-backend-go/internal/domain/task"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/avis-hq/avis-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

const taskColumns = `
	t.id, t.title, t.description, t.status, t.priority, t.deadline,
	t.assignee_id, t.created_by_id, t.created_at, t.updated_at,
	a.name, a.email, a.avatar,
	c.name,
	(SELECT COUNT(*) FROM comments cm WHERE cm.task_id = t.id)
`

const taskFrom = `
	FROM tasks t
	LEFT JOIN users a ON a.id = t.assignee_id
	LEFT JOIN users c ON c.id = t.created_by_id
`

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func scanTask(row interface{ Scan(...interface{}) error }) (task.Task, error) {
	var found task.Task
	err := row.Scan(
		&found.ID,
		&found.Title,
		&found.Description,
		&found.Status,
		&found.Priority,
		&found.Deadline,
		&found.AssigneeID,
		&found.CreatedByID,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.AssigneeName,
		&found.AssigneeEmail,
		&found.AssigneeAvatar,
		&found.CreatedByName,
		&found.CommentCount,
	)
	return found, err
}

// List implements task.TaskRepository, applying the caller's visibility
// scope on the assignee and optional status/priority filters. Ordered by
// priority, then nearest deadline, then newest.
func (r *taskRepositoryImpl) List(ctx context.Context, scope user.Scope, filter task.Filter) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + taskFrom
	var conditions []string
	var args []interface{}

	if clause, scopeArgs := scopeFilter(scope, "t.assignee_id", len(args)+1); clause != "" {
		conditions = append(conditions, clause)
		args = append(args, scopeArgs...)
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("t.priority = $%d", len(args)+1))
		args = append(args, filter.Priority)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += `
		ORDER BY CASE t.priority WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END DESC,
			t.deadline ASC NULLS LAST,
			t.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		found, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, found)
	}
	return tasks, rows.Err()
}

// GetByID implements task.TaskRepository, loading comments newest-first.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + taskFrom + ` WHERE t.id = $1`

	found, err := scanTask(q.QueryRow(ctx, query, id))
	if err != nil {
		return task.Task{}, err
	}

	commentsQuery := `
		SELECT cm.id, cm.content, cm.task_id, cm.author_id, cm.created_at, u.name, u.avatar
		FROM comments cm
		LEFT JOIN users u ON u.id = cm.author_id
		WHERE cm.task_id = $1
		ORDER BY cm.created_at DESC
	`

	rows, err := q.Query(ctx, commentsQuery, id)
	if err != nil {
		return task.Task{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var comment task.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.Content,
			&comment.TaskID,
			&comment.AuthorID,
			&comment.CreatedAt,
			&comment.AuthorName,
			&comment.AuthorAvatar,
		); err != nil {
			return task.Task{}, err
		}
		found.Comments = append(found.Comments, comment)
	}
	return found, rows.Err()
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO tasks (id, title, description, status, priority, deadline, assignee_id, created_by_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT t.id, t.title, t.description, t.status, t.priority, t.deadline,
			   t.assignee_id, t.created_by_id, t.created_at, t.updated_at,
			   a.name, a.email, a.avatar,
			   c.name,
			   0
		FROM inserted t
		LEFT JOIN users a ON a.id = t.assignee_id
		LEFT JOIN users c ON c.id = t.created_by_id
	`

	return scanTask(q.QueryRow(ctx, query,
		uuid.NewString(),
		newTask.Title,
		newTask.Description,
		newTask.Status,
		newTask.Priority,
		newTask.Deadline,
		newTask.AssigneeID,
		newTask.CreatedByID,
	))
}

// Update implements task.TaskRepository. Absent fields keep their value.
func (r *taskRepositoryImpl) Update(ctx context.Context, req task.UpdateTaskRequest) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	var deadline interface{}
	if req.Deadline != nil && *req.Deadline != "" {
		deadline = *req.Deadline
	}

	query := `
		WITH updated AS (
			UPDATE tasks SET
				title = COALESCE($2, title),
				description = COALESCE($3, description),
				priority = COALESCE($4, priority),
				deadline = COALESCE($5::timestamptz, deadline),
				assignee_id = COALESCE($6::uuid, assignee_id),
				updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT t.id, t.title, t.description, t.status, t.priority, t.deadline,
			   t.assignee_id, t.created_by_id, t.created_at, t.updated_at,
			   a.name, a.email, a.avatar,
			   c.name,
			   (SELECT COUNT(*) FROM comments cm WHERE cm.task_id = t.id)
		FROM updated t
		LEFT JOIN users a ON a.id = t.assignee_id
		LEFT JOIN users c ON c.id = t.created_by_id
	`

	return scanTask(q.QueryRow(ctx, query,
		req.ID,
		req.Title,
		req.Description,
		req.Priority,
		deadline,
		req.AssigneeID,
	))
}

// UpdateStatus implements task.TaskRepository.
func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, id string, status task.Status) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE tasks SET status = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT t.id, t.title, t.description, t.status, t.priority, t.deadline,
			   t.assignee_id, t.created_by_id, t.created_at, t.updated_at,
			   a.name, a.email, a.avatar,
			   c.name,
			   (SELECT COUNT(*) FROM comments cm WHERE cm.task_id = t.id)
		FROM updated t
		LEFT JOIN users a ON a.id = t.assignee_id
		LEFT JOIN users c ON c.id = t.created_by_id
	`

	return scanTask(q.QueryRow(ctx, query, id, status))
}

// Delete implements task.TaskRepository. Comments cascade.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// AddComment implements task.TaskRepository.
func (r *taskRepositoryImpl) AddComment(ctx context.Context, newComment task.Comment) (task.Comment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO comments (id, content, task_id, author_id)
			VALUES ($1, $2, $3, $4)
			RETURNING *
		)
		SELECT cm.id, cm.content, cm.task_id, cm.author_id, cm.created_at, u.name, u.avatar
		FROM inserted cm
		LEFT JOIN users u ON u.id = cm.author_id
	`

	var comment task.Comment
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		newComment.Content,
		newComment.TaskID,
		newComment.AuthorID,
	).Scan(
		&comment.ID,
		&comment.Content,
		&comment.TaskID,
		&comment.AuthorID,
		&comment.CreatedAt,
		&comment.AuthorName,
		&comment.AuthorAvatar,
	)
	if err != nil {
		return task.Comment{}, err
	}
	return comment, nil
}
