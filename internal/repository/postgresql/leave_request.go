package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/domain/leave"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/avis-hq/avis-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const leaveColumns = `
	lr.id, lr.type, lr.start_date, lr.end_date, lr.reason, lr.status,
	lr.employee_id, lr.reviewer_id, lr.applied_at, lr.reviewed_at,
	e.name, e.avatar, e.department,
	rv.name
`

const leaveFrom = `
	FROM leave_requests lr
	LEFT JOIN users e ON e.id = lr.employee_id
	LEFT JOIN users rv ON rv.id = lr.reviewer_id
`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row interface{ Scan(...interface{}) error }) (leave.LeaveRequest, error) {
	var found leave.LeaveRequest
	err := row.Scan(
		&found.ID,
		&found.Type,
		&found.StartDate,
		&found.EndDate,
		&found.Reason,
		&found.Status,
		&found.EmployeeID,
		&found.ReviewerID,
		&found.AppliedAt,
		&found.ReviewedAt,
		&found.EmployeeName,
		&found.EmployeeAvatar,
		&found.EmployeeDepartment,
		&found.ReviewerName,
	)
	return found, err
}

// List implements leave.LeaveRequestRepository. Note the team scope for
// managers excludes the manager's own requests.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, scope user.Scope, status string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + leaveFrom
	var conditions []string
	var args []interface{}

	if clause, scopeArgs := scopeFilter(scope, "lr.employee_id", len(args)+1); clause != "" {
		conditions = append(conditions, clause)
		args = append(args, scopeArgs...)
	}
	if status != "" {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", len(args)+1))
		args = append(args, status)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += ` ORDER BY lr.applied_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		found, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, found)
	}
	return requests, rows.Err()
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + leaveFrom + ` WHERE lr.id = $1`

	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, newRequest leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO leave_requests (id, type, start_date, end_date, reason, employee_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)
		SELECT lr.id, lr.type, lr.start_date, lr.end_date, lr.reason, lr.status,
			   lr.employee_id, lr.reviewer_id, lr.applied_at, lr.reviewed_at,
			   e.name, e.avatar, e.department,
			   NULL::text
		FROM inserted lr
		LEFT JOIN users e ON e.id = lr.employee_id
	`

	return scanLeaveRequest(q.QueryRow(ctx, query,
		uuid.NewString(),
		newRequest.Type,
		newRequest.StartDate,
		newRequest.EndDate,
		newRequest.Reason,
		newRequest.EmployeeID,
	))
}

// Decide implements leave.LeaveRequestRepository. The PENDING guard in the
// WHERE clause makes the transition safe against concurrent decisions.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, status leave.Status, reviewerID string, reviewedAt time.Time) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE leave_requests SET status = $2, reviewer_id = $3, reviewed_at = $4
			WHERE id = $1 AND status = 'PENDING'
			RETURNING *
		)
		SELECT ` + leaveColumns + `
		FROM updated lr
		LEFT JOIN users e ON e.id = lr.employee_id
		LEFT JOIN users rv ON rv.id = lr.reviewer_id
	`

	decided, err := scanLeaveRequest(q.QueryRow(ctx, query, id, status, reviewerID, reviewedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
		}
		return leave.LeaveRequest{}, err
	}
	return decided, nil
}

// ListApprovedInYear implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedInYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)

	query := `SELECT ` + leaveColumns + leaveFrom + `
		WHERE lr.employee_id = $1 AND lr.status = 'APPROVED'
		AND lr.start_date >= $2 AND lr.start_date < $3
		ORDER BY lr.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		found, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, found)
	}
	return requests, rows.Err()
}
