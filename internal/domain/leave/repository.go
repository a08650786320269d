package leave

import (
	"context"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/domain/user"
)

type LeaveRequestRepository interface {
	List(ctx context.Context, scope user.Scope, status string) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Create(ctx context.Context, newRequest LeaveRequest) (LeaveRequest, error)
	// Decide transitions a PENDING request to APPROVED or REJECTED and stamps
	// the reviewer. A request that is no longer pending is left untouched and
	// ErrLeaveAlreadyProcessed is returned.
	Decide(ctx context.Context, id string, status Status, reviewerID string, reviewedAt time.Time) (LeaveRequest, error)
	// ListApprovedInYear returns the employee's APPROVED requests whose
	// start date falls in the given calendar year.
	ListApprovedInYear(ctx context.Context, employeeID string, year int) ([]LeaveRequest, error)
}
