package leave

import (
	"context"
	"testing"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/config"
	"github.com/avis-hq/avis-backend-go/internal/domain/auth"
	"github.com/avis-hq/avis-backend-go/internal/domain/leave"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	approved []leave.LeaveRequest
}

func (f *fakeLeaveRepo) List(ctx context.Context, scope user.Scope, status string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if status == "" || string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, pgx.ErrNoRows
	}
	return r, nil
}

func (f *fakeLeaveRepo) Create(ctx context.Context, newRequest leave.LeaveRequest) (leave.LeaveRequest, error) {
	newRequest.ID = "req-new"
	newRequest.Status = leave.StatusPending
	newRequest.AppliedAt = time.Now()
	if f.requests == nil {
		f.requests = map[string]leave.LeaveRequest{}
	}
	f.requests[newRequest.ID] = newRequest
	return newRequest, nil
}

func (f *fakeLeaveRepo) Decide(ctx context.Context, id string, status leave.Status, reviewerID string, reviewedAt time.Time) (leave.LeaveRequest, error) {
	r, ok := f.requests[id]
	if !ok || r.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}
	r.Status = status
	r.ReviewerID = &reviewerID
	r.ReviewedAt = &reviewedAt
	f.requests[id] = r
	return r, nil
}

func (f *fakeLeaveRepo) ListApprovedInYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	return f.approved, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeUserRepo) List(ctx context.Context, scope user.Scope) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListManagers(ctx context.Context) ([]user.User, error) { return nil, nil }

func testAllowances() config.LeaveConfig {
	return config.LeaveConfig{CasualAllowance: 12, SickAllowance: 12, EarnedAllowance: 24}
}

func approvedRequest(id string, leaveType leave.Type, start, end time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:        id,
		Type:      leaveType,
		StartDate: start,
		EndDate:   end,
		Status:    leave.StatusApproved,
	}
}

func TestBalance(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC) }

	repo := &fakeLeaveRepo{approved: []leave.LeaveRequest{
		approvedRequest("r1", leave.TypeCasual, day(2), day(4)),   // 3 days
		approvedRequest("r2", leave.TypeSick, day(10), day(23)),   // 14 days, over the cap
		approvedRequest("r3", leave.TypeUnpaid, day(25), day(25)), // 1 day, uncapped
	}}
	svc := NewLeaveService(repo, &fakeUserRepo{}, testAllowances())

	result, err := svc.Balance(context.Background(), auth.Session{UserID: "emp-1", Role: "EMPLOYEE"})
	require.NoError(t, err)

	assert.Equal(t, 9, result.Balance.Casual)
	assert.Equal(t, 0, result.Balance.Sick, "balance never drops below zero")
	assert.Equal(t, 24, result.Balance.Earned)
	assert.Equal(t, 3, result.Used.Casual)
	assert.Equal(t, 14, result.Used.Sick)
	assert.Equal(t, 1, result.Used.Unpaid)
}

func TestApproveByManager(t *testing.T) {
	managerID := "mgr-1"
	repo := &fakeLeaveRepo{requests: map[string]leave.LeaveRequest{
		"req-1": {ID: "req-1", EmployeeID: "emp-1", Status: leave.StatusPending},
	}}
	users := &fakeUserRepo{users: map[string]user.User{
		"emp-1": {ID: "emp-1", Role: user.RoleEmployee, ManagerID: &managerID},
	}}
	svc := NewLeaveService(repo, users, testAllowances())

	decided, err := svc.Approve(context.Background(), auth.Session{UserID: managerID, Role: "MANAGER"}, "req-1")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Status)
	require.NotNil(t, decided.ReviewedAt)
}

func TestApproveOutsideTeam(t *testing.T) {
	otherManager := "mgr-2"
	repo := &fakeLeaveRepo{requests: map[string]leave.LeaveRequest{
		"req-1": {ID: "req-1", EmployeeID: "emp-1", Status: leave.StatusPending},
	}}
	users := &fakeUserRepo{users: map[string]user.User{
		"emp-1": {ID: "emp-1", Role: user.RoleEmployee, ManagerID: &otherManager},
	}}
	svc := NewLeaveService(repo, users, testAllowances())

	_, err := svc.Approve(context.Background(), auth.Session{UserID: "mgr-1", Role: "MANAGER"}, "req-1")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestRejectAlreadyProcessed(t *testing.T) {
	repo := &fakeLeaveRepo{requests: map[string]leave.LeaveRequest{
		"req-1": {ID: "req-1", EmployeeID: "emp-1", Status: leave.StatusApproved},
	}}
	svc := NewLeaveService(repo, &fakeUserRepo{}, testAllowances())

	_, err := svc.Reject(context.Background(), auth.Session{UserID: "owner-1", Role: "OWNER"}, "req-1")
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestApply(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, &fakeUserRepo{}, testAllowances())

	created, err := svc.Apply(context.Background(), auth.Session{UserID: "emp-1", Role: "EMPLOYEE"}, leave.CreateLeaveRequest{
		Type:      "CASUAL",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Reason:    "Family trip",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, leave.TypeCasual, created.Type)
}
