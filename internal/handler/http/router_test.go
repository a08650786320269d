package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avis-hq/avis-backend-go/internal/config"
	"github.com/avis-hq/avis-backend-go/internal/domain/attendance"
	"github.com/avis-hq/avis-backend-go/internal/domain/auth"
	"github.com/avis-hq/avis-backend-go/internal/domain/dashboard"
	"github.com/avis-hq/avis-backend-go/internal/domain/leave"
	"github.com/avis-hq/avis-backend-go/internal/domain/task"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/avis-hq/avis-backend-go/internal/handler/http/response"
	"github.com/avis-hq/avis-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routerTestSecret = "test-secret-key-for-jwt"

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if req.Password != "password123" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	return auth.TokenResponse{Token: "stub-token"}, nil
}

func (stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{Token: "stub-token"}, nil
}

func (stubAuthService) Me(ctx context.Context, userID string) (user.UserResponse, error) {
	return user.UserResponse{ID: userID, Role: user.RoleOwner}, nil
}

type stubUserService struct{}

func (stubUserService) List(ctx context.Context, callerRole user.Role, callerID string) ([]user.UserResponse, error) {
	return []user.UserResponse{}, nil
}

func (stubUserService) Get(ctx context.Context, id string) (user.UserResponse, error) {
	return user.UserResponse{ID: id}, nil
}

func (stubUserService) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return user.UserResponse{Email: req.Email}, nil
}

func (stubUserService) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	return user.UserResponse{ID: req.ID}, nil
}

func (stubUserService) Delete(ctx context.Context, callerID string, id string) error { return nil }

func (stubUserService) ListManagers(ctx context.Context) ([]user.UserResponse, error) {
	return []user.UserResponse{}, nil
}

type stubTaskService struct{}

func (stubTaskService) List(ctx context.Context, session auth.Session, filter task.Filter) ([]task.TaskResponse, error) {
	return []task.TaskResponse{{ID: "task-1", Title: "Prepare report"}}, nil
}

func (stubTaskService) Get(ctx context.Context, session auth.Session, id string) (task.TaskResponse, error) {
	return task.TaskResponse{ID: id}, nil
}

func (stubTaskService) Create(ctx context.Context, session auth.Session, req task.CreateTaskRequest) (task.TaskResponse, error) {
	return task.TaskResponse{Title: req.Title}, nil
}

func (stubTaskService) Update(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	return task.TaskResponse{ID: req.ID}, nil
}

func (stubTaskService) UpdateStatus(ctx context.Context, session auth.Session, id string, req task.UpdateStatusRequest) (task.TaskResponse, error) {
	return task.TaskResponse{ID: id, Status: task.Status(req.Status)}, nil
}

func (stubTaskService) Delete(ctx context.Context, id string) error { return nil }

func (stubTaskService) AddComment(ctx context.Context, session auth.Session, taskID string, req task.CreateCommentRequest) (task.CommentResponse, error) {
	return task.CommentResponse{TaskID: taskID, Content: req.Content}, nil
}

type stubAttendanceService struct{}

func (stubAttendanceService) List(ctx context.Context, session auth.Session, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	return []attendance.AttendanceResponse{}, nil
}

func (stubAttendanceService) Today(ctx context.Context, session auth.Session) (attendance.TodayResponse, error) {
	return attendance.TodayResponse{}, nil
}

func (stubAttendanceService) ClockIn(ctx context.Context, session auth.Session) (attendance.ClockInResponse, error) {
	return attendance.ClockInResponse{ClockIn: "09:00 AM"}, nil
}

func (stubAttendanceService) ClockOut(ctx context.Context, session auth.Session) (attendance.ClockOutResponse, error) {
	return attendance.ClockOutResponse{HoursWorked: "8.00"}, nil
}

func (stubAttendanceService) Stats(ctx context.Context, session auth.Session) (attendance.MonthlyStats, error) {
	return attendance.MonthlyStats{}, nil
}

type stubLeaveService struct{}

func (stubLeaveService) List(ctx context.Context, session auth.Session, status string) ([]leave.LeaveResponse, error) {
	return []leave.LeaveResponse{}, nil
}

func (stubLeaveService) Apply(ctx context.Context, session auth.Session, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{Status: leave.StatusPending}, nil
}

func (stubLeaveService) Approve(ctx context.Context, session auth.Session, id string) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{ID: id, Status: leave.StatusApproved}, nil
}

func (stubLeaveService) Reject(ctx context.Context, session auth.Session, id string) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{ID: id, Status: leave.StatusRejected}, nil
}

func (stubLeaveService) Balance(ctx context.Context, session auth.Session) (leave.BalanceResponse, error) {
	return leave.BalanceResponse{}, nil
}

type stubDashboardService struct{}

func (stubDashboardService) Stats(ctx context.Context, session auth.Session) (interface{}, error) {
	return dashboard.EmployeeStats{}, nil
}

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Env: "test", FrontendURL: "http://localhost:3000"},
	}
	jwtSvc := jwt.NewJWTService(routerTestSecret, "1h")

	router := NewRouter(cfg, jwtSvc, Handlers{
		Auth:       NewAuthHandler(stubAuthService{}),
		User:       NewUserHandler(stubUserService{}),
		Task:       NewTaskHandler(stubTaskService{}),
		Attendance: NewAttendanceHandler(stubAttendanceService{}),
		Leave:      NewLeaveHandler(stubLeaveService{}),
		Dashboard:  NewDashboardHandler(stubDashboardService{}),
	})
	return router, jwtSvc
}

func bearerToken(t *testing.T, jwtSvc jwt.Service, role user.Role) string {
	t.Helper()
	token, _, err := jwtSvc.GenerateToken("user-1", "user@avis.dev", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, router http.Handler, method, path, authz string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "owner@avis.dev",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}

func TestLoginBadCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "owner@avis.dev",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
}

func TestLoginValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Details, "email")
	assert.Contains(t, envelope.Error.Details, "password")
}

func TestEmployeeCanListTasks(t *testing.T) {
	router, jwtSvc := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/tasks", bearerToken(t, jwtSvc, user.RoleEmployee), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.NotNil(t, envelope.Data)
}

func TestEmployeeCannotCreateTask(t *testing.T) {
	router, jwtSvc := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/tasks", bearerToken(t, jwtSvc, user.RoleEmployee), map[string]string{
		"title":      "New task",
		"assigneeId": "user-2",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestManagerCanCreateTask(t *testing.T) {
	router, jwtSvc := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/tasks", bearerToken(t, jwtSvc, user.RoleManager), map[string]string{
		"title":      "New task",
		"assigneeId": "user-2",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestManagerCannotCreateUser(t *testing.T) {
	router, jwtSvc := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/users", bearerToken(t, jwtSvc, user.RoleManager), map[string]string{
		"email":    "new@avis.dev",
		"password": "password123",
		"name":     "New Hire",
		"role":     "EMPLOYEE",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOwnerCanCreateUser(t *testing.T) {
	router, jwtSvc := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/users", bearerToken(t, jwtSvc, user.RoleOwner), map[string]string{
		"email":    "new@avis.dev",
		"password": "password123",
		"name":     "New Hire",
		"role":     "EMPLOYEE",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestEmployeeCannotApproveLeave(t *testing.T) {
	router, jwtSvc := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPatch, "/api/leaves/req-1/approve", bearerToken(t, jwtSvc, user.RoleEmployee), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMe(t *testing.T) {
	router, jwtSvc := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/auth/me", bearerToken(t, jwtSvc, user.RoleOwner), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}
