package attendance

import (
	"context"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/domain/user"
)

type AttendanceRepository interface {
	List(ctx context.Context, scope user.Scope, filter Filter) ([]Attendance, error)
	GetForDate(ctx context.Context, userID string, date time.Time) (Attendance, error)
	// ClockIn upserts the (userID, date) record atomically, setting clock_in
	// only when it is not set yet. Returns ErrAlreadyClockedIn when another
	// request won the race.
	ClockIn(ctx context.Context, id string, userID string, date time.Time, now time.Time) (Attendance, error)
	// ClockOut sets clock_out only when clocked in and not yet clocked out.
	ClockOut(ctx context.Context, userID string, date time.Time, now time.Time) (Attendance, error)
	// MonthlyTotals returns present/absent/half-day counts and total worked
	// seconds for one user's month.
	MonthlyTotals(ctx context.Context, userID string, year int, month time.Month) (present int, absent int, halfDay int, totalSeconds float64, err error)
}
