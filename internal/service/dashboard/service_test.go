package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/domain/auth"
	"github.com/avis-hq/avis-backend-go/internal/domain/dashboard"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	countsByKind     map[user.ScopeKind]dashboard.TaskCounts
	clockIn          *time.Time
	clockedOut       bool
	pendingByKind    map[user.ScopeKind]int
	teamSize         int
	presentByKind    map[user.ScopeKind]int
	summary          dashboard.OrgSummary
	monthlyCompleted int
	monthlyPending   int
	performers       []dashboard.TopPerformer
}

func (f *fakeDashboardRepo) TaskCounts(ctx context.Context, scope user.Scope) (dashboard.TaskCounts, error) {
	return f.countsByKind[scope.Kind], nil
}

func (f *fakeDashboardRepo) ClockStateForDate(ctx context.Context, userID string, date time.Time) (*time.Time, bool, error) {
	return f.clockIn, f.clockedOut, nil
}

func (f *fakeDashboardRepo) PendingLeaveCount(ctx context.Context, scope user.Scope) (int, error) {
	return f.pendingByKind[scope.Kind], nil
}

func (f *fakeDashboardRepo) TeamSize(ctx context.Context, managerID string) (int, error) {
	return f.teamSize, nil
}

func (f *fakeDashboardRepo) PresentCountForDate(ctx context.Context, scope user.Scope, date time.Time) (int, error) {
	return f.presentByKind[scope.Kind], nil
}

func (f *fakeDashboardRepo) OrgSummary(ctx context.Context) (dashboard.OrgSummary, error) {
	return f.summary, nil
}

func (f *fakeDashboardRepo) MonthlyTaskCounts(ctx context.Context, start, end time.Time) (int, int, error) {
	return f.monthlyCompleted, f.monthlyPending, nil
}

func (f *fakeDashboardRepo) TopPerformers(ctx context.Context, start, end time.Time, limit int) ([]dashboard.TopPerformer, error) {
	if len(f.performers) > limit {
		return f.performers[:limit], nil
	}
	return f.performers, nil
}

func TestEmployeeStats(t *testing.T) {
	clockIn := time.Date(2026, time.August, 29, 9, 0, 0, 0, time.Local)
	repo := &fakeDashboardRepo{
		countsByKind: map[user.ScopeKind]dashboard.TaskCounts{
			user.ScopeSelf: {Total: 8, Completed: 5, InProgress: 2, Pending: 1},
		},
		clockIn:       &clockIn,
		pendingByKind: map[user.ScopeKind]int{user.ScopeSelf: 1},
	}
	svc := NewDashboardService(repo)

	result, err := svc.Stats(context.Background(), auth.Session{UserID: "emp-1", Role: "EMPLOYEE"})
	require.NoError(t, err)

	stats, ok := result.(dashboard.EmployeeStats)
	require.True(t, ok)
	assert.Equal(t, 8, stats.TasksTotal)
	assert.Equal(t, 5, stats.TasksCompleted)
	assert.True(t, stats.IsClockedIn)
	assert.Equal(t, 1, stats.PendingLeaves)
}

func TestManagerStats(t *testing.T) {
	repo := &fakeDashboardRepo{
		countsByKind: map[user.ScopeKind]dashboard.TaskCounts{
			user.ScopeTeam: {Total: 20, Completed: 12, InProgress: 4, Pending: 2, UnderReview: 2},
		},
		teamSize:      6,
		presentByKind: map[user.ScopeKind]int{user.ScopeTeamOnly: 4},
		pendingByKind: map[user.ScopeKind]int{user.ScopeTeamOnly: 3},
	}
	svc := NewDashboardService(repo)

	result, err := svc.Stats(context.Background(), auth.Session{UserID: "mgr-1", Role: "MANAGER"})
	require.NoError(t, err)

	stats, ok := result.(dashboard.ManagerStats)
	require.True(t, ok)
	assert.Equal(t, 6, stats.TeamSize)
	assert.Equal(t, 4, stats.TeamPresent)
	assert.Equal(t, 2, stats.TeamAbsent)
	// pending leave approvals plus tasks waiting for review
	assert.Equal(t, 5, stats.PendingApprovals)
}

func TestOwnerStats(t *testing.T) {
	repo := &fakeDashboardRepo{
		countsByKind: map[user.ScopeKind]dashboard.TaskCounts{
			user.ScopeAll: {Total: 3, Completed: 2, InProgress: 1},
		},
		summary:          dashboard.OrgSummary{TotalEmployees: 10, TotalManagers: 2, Departments: 3},
		presentByKind:    map[user.ScopeKind]int{user.ScopeAll: 7},
		monthlyCompleted: 2,
		monthlyPending:   1,
		performers: []dashboard.TopPerformer{
			{Name: "Ana", TasksCompleted: 4},
			{Name: "Ben", TasksCompleted: 2},
		},
	}
	svc := NewDashboardService(repo)

	result, err := svc.Stats(context.Background(), auth.Session{UserID: "owner-1", Role: "OWNER"})
	require.NoError(t, err)

	stats, ok := result.(dashboard.OwnerStats)
	require.True(t, ok)
	assert.Equal(t, 10, stats.TotalEmployees)
	assert.Equal(t, 67, stats.CompletionRate, "2/3 rounds to 67")
	assert.Equal(t, 7, stats.PresentToday)
	assert.Len(t, stats.TopPerformers, 2)
}

func TestOwnerStatsNoTasks(t *testing.T) {
	repo := &fakeDashboardRepo{}
	svc := NewDashboardService(repo)

	result, err := svc.Stats(context.Background(), auth.Session{UserID: "owner-1", Role: "OWNER"})
	require.NoError(t, err)

	stats := result.(dashboard.OwnerStats)
	assert.Equal(t, 0, stats.CompletionRate)
	assert.NotNil(t, stats.TopPerformers, "serializes as [] not null")
}
