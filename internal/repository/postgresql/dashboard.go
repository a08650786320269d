package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/domain/dashboard"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/avis-hq/avis-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// TaskCounts returns the by-status task breakdown for the scope in one query.
func (r *dashboardRepositoryImpl) TaskCounts(ctx context.Context, scope user.Scope) (dashboard.TaskCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'COMPLETED' THEN 1 ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN status = 'IN_PROGRESS' THEN 1 ELSE 0 END), 0) AS in_progress,
			COALESCE(SUM(CASE WHEN status = 'PENDING' THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN status = 'UNDER_REVIEW' THEN 1 ELSE 0 END), 0) AS under_review
		FROM tasks
	`
	var args []interface{}
	if clause, scopeArgs := scopeFilter(scope, "assignee_id", 1); clause != "" {
		query += " WHERE " + clause
		args = scopeArgs
	}

	var counts dashboard.TaskCounts
	err := q.QueryRow(ctx, query, args...).Scan(
		&counts.Total, &counts.Completed, &counts.InProgress, &counts.Pending, &counts.UnderReview,
	)
	if err != nil {
		return dashboard.TaskCounts{}, fmt.Errorf("failed to get task counts: %w", err)
	}
	return counts, nil
}

// ClockStateForDate returns the user's clock state for one calendar day.
func (r *dashboardRepositoryImpl) ClockStateForDate(ctx context.Context, userID string, date time.Time) (*time.Time, bool, error) {
	q := GetQuerier(ctx, r.db)

	var clockIn, clockOut *time.Time
	err := q.QueryRow(ctx,
		`SELECT clock_in, clock_out FROM attendance_records WHERE user_id = $1 AND date = $2`,
		userID, date,
	).Scan(&clockIn, &clockOut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get clock state: %w", err)
	}
	return clockIn, clockOut != nil, nil
}

// PendingLeaveCount counts PENDING leave requests within the scope.
func (r *dashboardRepositoryImpl) PendingLeaveCount(ctx context.Context, scope user.Scope) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM leave_requests WHERE status = 'PENDING'`
	var args []interface{}
	if clause, scopeArgs := scopeFilter(scope, "employee_id", 1); clause != "" {
		query += " AND " + clause
		args = scopeArgs
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return count, nil
}

// TeamSize counts a manager's direct reports.
func (r *dashboardRepositoryImpl) TeamSize(ctx context.Context, managerID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE manager_id = $1`, managerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}
	return count, nil
}

// PresentCountForDate counts scoped users who clocked in on the given day.
func (r *dashboardRepositoryImpl) PresentCountForDate(ctx context.Context, scope user.Scope, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM attendance_records WHERE date = $1 AND clock_in IS NOT NULL`
	args := []interface{}{date}
	if clause, scopeArgs := scopeFilter(scope, "user_id", 2); clause != "" {
		query += " AND " + clause
		args = append(args, scopeArgs...)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count present users: %w", err)
	}
	return count, nil
}

// OrgSummary returns org-wide user counts in a single query.
func (r *dashboardRepositoryImpl) OrgSummary(ctx context.Context) (dashboard.OrgSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN role <> 'OWNER' THEN 1 ELSE 0 END), 0) AS total_employees,
			COALESCE(SUM(CASE WHEN role = 'MANAGER' THEN 1 ELSE 0 END), 0) AS total_managers,
			COUNT(DISTINCT department) AS departments
		FROM users
	`

	var summary dashboard.OrgSummary
	err := q.QueryRow(ctx, query).Scan(&summary.TotalEmployees, &summary.TotalManagers, &summary.Departments)
	if err != nil {
		return dashboard.OrgSummary{}, fmt.Errorf("failed to get org summary: %w", err)
	}
	return summary, nil
}

// MonthlyTaskCounts aggregates tasks created within [start, end).
func (r *dashboardRepositoryImpl) MonthlyTaskCounts(ctx context.Context, start, end time.Time) (int, int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'COMPLETED' THEN 1 ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN status = 'PENDING' THEN 1 ELSE 0 END), 0) AS pending
		FROM tasks
		WHERE created_at >= $1 AND created_at < $2
	`

	var completed, pending int
	if err := q.QueryRow(ctx, query, start, end).Scan(&completed, &pending); err != nil {
		return 0, 0, fmt.Errorf("failed to get monthly task counts: %w", err)
	}
	return completed, pending, nil
}

// TopPerformers ranks assignees by tasks completed within [start, end).
func (r *dashboardRepositoryImpl) TopPerformers(ctx context.Context, start, end time.Time, limit int) ([]dashboard.TopPerformer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.name, COUNT(*) AS completed
		FROM tasks t
		JOIN users u ON u.id = t.assignee_id
		WHERE t.status = 'COMPLETED' AND t.updated_at >= $1 AND t.updated_at < $2
		GROUP BY u.id, u.name
		ORDER BY completed DESC, u.id ASC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top performers: %w", err)
	}
	defer rows.Close()

	var performers []dashboard.TopPerformer
	for rows.Next() {
		var p dashboard.TopPerformer
		if err := rows.Scan(&p.Name, &p.TasksCompleted); err != nil {
			return nil, err
		}
		performers = append(performers, p)
	}
	return performers, rows.Err()
}
