package leave

import (
	"context"

	"github.com/avis-hq/avis-backend-go/internal/domain/auth"
)

type LeaveService interface {
	List(ctx context.Context, session auth.Session, status string) ([]LeaveResponse, error)
	Apply(ctx context.Context, session auth.Session, req CreateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, session auth.Session, id string) (LeaveResponse, error)
	Reject(ctx context.Context, session auth.Session, id string) (LeaveResponse, error)
	Balance(ctx context.Context, session auth.Session) (BalanceResponse, error)
}
