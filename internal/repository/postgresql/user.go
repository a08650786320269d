package postgresql

import (
	"context"

	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/avis-hq/avis-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

const userColumns = `
	u.id, u.email, u.password_hash, u.name, u.phone, u.role, u.designation,
	u.department, u.avatar, u.status, u.join_date, u.manager_id,
	u.created_at, u.updated_at,
	m.name, m.email,
	(SELECT COUNT(*) FROM tasks t WHERE t.assignee_id = u.id)
`

const userFrom = `FROM users u LEFT JOIN users m ON m.id = u.manager_id`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row interface{ Scan(...interface{}) error }) (user.User, error) {
	var found user.User
	err := row.Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.Name,
		&found.Phone,
		&found.Role,
		&found.Designation,
		&found.Department,
		&found.Avatar,
		&found.Status,
		&found.JoinDate,
		&found.ManagerID,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.ManagerName,
		&found.ManagerEmail,
		&found.TaskCount,
	)
	return found, err
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userFrom + ` WHERE LOWER(u.email) = LOWER($1)`

	return scanUser(q.QueryRow(ctx, query, email))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userFrom + ` WHERE u.id = $1`

	return scanUser(q.QueryRow(ctx, query, id))
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO users (
				id, email, password_hash, name, phone, role, designation,
				department, avatar, manager_id
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING *
		)
		SELECT u.id, u.email, u.password_hash, u.name, u.phone, u.role, u.designation,
			   u.department, u.avatar, u.status, u.join_date, u.manager_id,
			   u.created_at, u.updated_at,
			   m.name, m.email,
			   0
		FROM inserted u LEFT JOIN users m ON m.id = u.manager_id
	`

	return scanUser(q.QueryRow(ctx, query,
		uuid.NewString(),
		newUser.Email,
		newUser.PasswordHash,
		newUser.Name,
		newUser.Phone,
		newUser.Role,
		newUser.Designation,
		newUser.Department,
		newUser.Avatar,
		newUser.ManagerID,
	))
}

// Update implements user.UserRepository. Absent fields keep their value.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE users SET
				name = COALESCE($2, name),
				phone = COALESCE($3, phone),
				designation = COALESCE($4, designation),
				department = COALESCE($5, department),
				manager_id = COALESCE($6::uuid, manager_id),
				status = COALESCE($7, status),
				role = COALESCE($8, role),
				updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT u.id, u.email, u.password_hash, u.name, u.phone, u.role, u.designation,
			   u.department, u.avatar, u.status, u.join_date, u.manager_id,
			   u.created_at, u.updated_at,
			   m.name, m.email,
			   (SELECT COUNT(*) FROM tasks t WHERE t.assignee_id = u.id)
		FROM updated u LEFT JOIN users m ON m.id = u.manager_id
	`

	return scanUser(q.QueryRow(ctx, query,
		req.ID,
		req.Name,
		req.Phone,
		req.Designation,
		req.Department,
		req.ManagerID,
		req.Status,
		req.Role,
	))
}

// Delete implements user.UserRepository. Dependent rows follow the store's
// referential rules: tasks, comments, attendance and leave requests cascade,
// direct reports get manager_id set to NULL.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// List implements user.UserRepository, applying the caller's visibility scope.
func (r *userRepositoryImpl) List(ctx context.Context, scope user.Scope) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userFrom
	var args []interface{}

	switch scope.Kind {
	case user.ScopeManaged:
		query += ` WHERE u.manager_id = $1`
		args = append(args, scope.CallerID)
	case user.ScopeSelf:
		query += ` WHERE u.id = $1`
		args = append(args, scope.CallerID)
	}
	query += ` ORDER BY u.name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		found, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, found)
	}
	return users, rows.Err()
}

// ListManagers implements user.UserRepository.
func (r *userRepositoryImpl) ListManagers(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userFrom + ` WHERE u.role = 'MANAGER' ORDER BY u.name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var managers []user.User
	for rows.Next() {
		found, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		managers = append(managers, found)
	}
	return managers, rows.Err()
}
