package dashboard

import (
	"context"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/domain/user"
)

// OrgSummary holds org-wide user counts for the owner view.
type OrgSummary struct {
	TotalEmployees int
	TotalManagers  int
	Departments    int
}

type DashboardRepository interface {
	// TaskCounts aggregates tasks whose assignee falls in the scope.
	TaskCounts(ctx context.Context, scope user.Scope) (TaskCounts, error)
	// ClockStateForDate returns clock-in time (nil if none) for one user/day.
	ClockStateForDate(ctx context.Context, userID string, date time.Time) (clockIn *time.Time, clockedOut bool, err error)
	// PendingLeaveCount counts PENDING requests for owners in the scope.
	PendingLeaveCount(ctx context.Context, scope user.Scope) (int, error)
	// TeamSize counts direct reports of a manager.
	TeamSize(ctx context.Context, managerID string) (int, error)
	// PresentCountForDate counts scoped users with a non-null clock_in that day.
	PresentCountForDate(ctx context.Context, scope user.Scope, date time.Time) (int, error)
	// OrgSummary counts non-owner users, managers, distinct departments.
	OrgSummary(ctx context.Context) (OrgSummary, error)
	// MonthlyTaskCounts aggregates tasks created within [start, end).
	MonthlyTaskCounts(ctx context.Context, start, end time.Time) (completed int, pending int, err error)
	// TopPerformers ranks assignees by tasks completed within [start, end).
	TopPerformers(ctx context.Context, start, end time.Time, limit int) ([]TopPerformer, error)
}
