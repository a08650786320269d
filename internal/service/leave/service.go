package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/config"
	"github.com/avis-hq/avis-backend-go/internal/domain/auth"
	"github.com/avis-hq/avis-backend-go/internal/domain/leave"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/avis-hq/avis-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	user.UserRepository
	allowances config.LeaveConfig
	now        func() time.Time
}

func NewLeaveService(leaveRepository leave.LeaveRequestRepository, userRepository user.UserRepository, allowances config.LeaveConfig) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepository,
		UserRepository:         userRepository,
		allowances:             allowances,
		now:                    time.Now,
	}
}

// List implements leave.LeaveService. Managers see their reports' requests
// here, not their own; a manager's own requests live under the self view
// served by the balance and apply flows.
func (s *LeaveServiceImpl) List(ctx context.Context, session auth.Session, status string) ([]leave.LeaveResponse, error) {
	scope := user.VisibilityScope(user.Role(session.Role), session.UserID, user.ResourceLeaves)

	requests, err := s.LeaveRequestRepository.List(ctx, scope, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, requests[i].ToResponse())
	}
	return responses, nil
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, session auth.Session, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)
	if startDate.After(endDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		Type:       leave.Type(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		EmployeeID: session.UserID,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created.ToResponse(), nil
}

// decide loads the request, checks the reviewer may act on it and applies
// the transition. A manager may only decide requests from direct reports;
// requests outside that set read as not found.
func (s *LeaveServiceImpl) decide(ctx context.Context, session auth.Session, id string, status leave.Status) (leave.LeaveResponse, error) {
	found, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if user.Role(session.Role) == user.RoleManager {
		employee, err := s.UserRepository.GetByID(ctx, found.EmployeeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
			}
			return leave.LeaveResponse{}, fmt.Errorf("failed to get employee: %w", err)
		}
		if employee.ManagerID == nil || *employee.ManagerID != session.UserID {
			return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
		}
	}

	if found.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	decided, err := s.LeaveRequestRepository.Decide(ctx, id, status, session.UserID, s.now())
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return decided.ToResponse(), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, session auth.Session, id string) (leave.LeaveResponse, error) {
	return s.decide(ctx, session, id, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, session auth.Session, id string) (leave.LeaveResponse, error) {
	return s.decide(ctx, session, id, leave.StatusRejected)
}

// Balance implements leave.LeaveService. Usage counts approved requests
// whose start date falls in the current year, each contributing its
// inclusive day span. Remaining balance never drops below zero.
func (s *LeaveServiceImpl) Balance(ctx context.Context, session auth.Session) (leave.BalanceResponse, error) {
	approved, err := s.LeaveRequestRepository.ListApprovedInYear(ctx, session.UserID, s.now().Year())
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to list approved leave: %w", err)
	}

	var used leave.Used
	for i := range approved {
		days := approved[i].DaySpan()
		switch approved[i].Type {
		case leave.TypeCasual:
			used.Casual += days
		case leave.TypeSick:
			used.Sick += days
		case leave.TypeEarned:
			used.Earned += days
		case leave.TypeUnpaid:
			used.Unpaid += days
		}
	}

	return leave.BalanceResponse{
		Balance: leave.Balance{
			Casual: remaining(s.allowances.CasualAllowance, used.Casual),
			Sick:   remaining(s.allowances.SickAllowance, used.Sick),
			Earned: remaining(s.allowances.EarnedAllowance, used.Earned),
		},
		Used: used,
	}, nil
}

func remaining(allowance, used int) int {
	if used >= allowance {
		return 0
	}
	return allowance - used
}
