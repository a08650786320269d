package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/domain/auth"
	"github.com/avis-hq/avis-backend-go/internal/domain/dashboard"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
)

const topPerformerLimit = 5

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	now func() time.Time
}

func NewDashboardService(dashboardRepository dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepository,
		now:                 time.Now,
	}
}

// Stats implements dashboard.DashboardService, dispatching to the view
// matching the caller's role.
func (s *DashboardServiceImpl) Stats(ctx context.Context, session auth.Session) (interface{}, error) {
	switch user.Role(session.Role) {
	case user.RoleOwner:
		return s.ownerStats(ctx)
	case user.RoleManager:
		return s.managerStats(ctx, session)
	default:
		return s.employeeStats(ctx, session)
	}
}

func (s *DashboardServiceImpl) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

func (s *DashboardServiceImpl) monthRange() (time.Time, time.Time) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

func (s *DashboardServiceImpl) employeeStats(ctx context.Context, session auth.Session) (dashboard.EmployeeStats, error) {
	self := user.Scope{Kind: user.ScopeSelf, CallerID: session.UserID}

	counts, err := s.DashboardRepository.TaskCounts(ctx, self)
	if err != nil {
		return dashboard.EmployeeStats{}, err
	}

	clockIn, clockedOut, err := s.DashboardRepository.ClockStateForDate(ctx, session.UserID, s.today())
	if err != nil {
		return dashboard.EmployeeStats{}, err
	}

	pendingLeaves, err := s.DashboardRepository.PendingLeaveCount(ctx, self)
	if err != nil {
		return dashboard.EmployeeStats{}, err
	}

	return dashboard.EmployeeStats{
		TasksTotal:      counts.Total,
		TasksCompleted:  counts.Completed,
		TasksInProgress: counts.InProgress,
		TasksPending:    counts.Pending,
		IsClockedIn:     clockIn != nil && !clockedOut,
		ClockInTime:     clockIn,
		PendingLeaves:   pendingLeaves,
	}, nil
}

func (s *DashboardServiceImpl) managerStats(ctx context.Context, session auth.Session) (dashboard.ManagerStats, error) {
	team := user.Scope{Kind: user.ScopeTeam, CallerID: session.UserID}
	reports := user.Scope{Kind: user.ScopeTeamOnly, CallerID: session.UserID}

	counts, err := s.DashboardRepository.TaskCounts(ctx, team)
	if err != nil {
		return dashboard.ManagerStats{}, err
	}

	teamSize, err := s.DashboardRepository.TeamSize(ctx, session.UserID)
	if err != nil {
		return dashboard.ManagerStats{}, err
	}

	teamPresent, err := s.DashboardRepository.PresentCountForDate(ctx, reports, s.today())
	if err != nil {
		return dashboard.ManagerStats{}, err
	}

	pendingLeaves, err := s.DashboardRepository.PendingLeaveCount(ctx, reports)
	if err != nil {
		return dashboard.ManagerStats{}, err
	}

	return dashboard.ManagerStats{
		TeamSize:         teamSize,
		TasksTotal:       counts.Total,
		TasksCompleted:   counts.Completed,
		TasksInProgress:  counts.InProgress,
		TasksPending:     counts.Pending,
		TasksUnderReview: counts.UnderReview,
		TeamPresent:      teamPresent,
		TeamAbsent:       teamSize - teamPresent,
		PendingApprovals: pendingLeaves + counts.UnderReview,
	}, nil
}

func (s *DashboardServiceImpl) ownerStats(ctx context.Context) (dashboard.OwnerStats, error) {
	all := user.Scope{Kind: user.ScopeAll}

	summary, err := s.DashboardRepository.OrgSummary(ctx)
	if err != nil {
		return dashboard.OwnerStats{}, err
	}

	counts, err := s.DashboardRepository.TaskCounts(ctx, all)
	if err != nil {
		return dashboard.OwnerStats{}, err
	}

	presentToday, err := s.DashboardRepository.PresentCountForDate(ctx, all, s.today())
	if err != nil {
		return dashboard.OwnerStats{}, err
	}

	monthStart, monthEnd := s.monthRange()

	monthlyCompleted, monthlyPending, err := s.DashboardRepository.MonthlyTaskCounts(ctx, monthStart, monthEnd)
	if err != nil {
		return dashboard.OwnerStats{}, err
	}

	performers, err := s.DashboardRepository.TopPerformers(ctx, monthStart, monthEnd, topPerformerLimit)
	if err != nil {
		return dashboard.OwnerStats{}, err
	}
	if performers == nil {
		performers = []dashboard.TopPerformer{}
	}

	completionRate := 0
	if counts.Total > 0 {
		completionRate = int(math.Round(float64(counts.Completed) / float64(counts.Total) * 100))
	}

	return dashboard.OwnerStats{
		TotalEmployees:   summary.TotalEmployees,
		TotalManagers:    summary.TotalManagers,
		Departments:      summary.Departments,
		TasksTotal:       counts.Total,
		TasksCompleted:   counts.Completed,
		TasksPending:     counts.Pending,
		TasksInProgress:  counts.InProgress,
		CompletionRate:   completionRate,
		PresentToday:     presentToday,
		TopPerformers:    performers,
		MonthlyCompleted: monthlyCompleted,
		MonthlyPending:   monthlyPending,
	}, nil
}
