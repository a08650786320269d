package attendance

import (
	"context"

	"github.com/avis-hq/avis-backend-go/internal/domain/auth"
)

type AttendanceService interface {
	List(ctx context.Context, session auth.Session, filter Filter) ([]AttendanceResponse, error)
	Today(ctx context.Context, session auth.Session) (TodayResponse, error)
	ClockIn(ctx context.Context, session auth.Session) (ClockInResponse, error)
	ClockOut(ctx context.Context, session auth.Session) (ClockOutResponse, error)
	Stats(ctx context.Context, session auth.Session) (MonthlyStats, error)
}
