package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/domain/attendance"
	"github.com/avis-hq/avis-backend-go/internal/domain/auth"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordKey struct {
	userID string
	date   time.Time
}

type fakeAttendanceRepo struct {
	records map[recordKey]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[recordKey]attendance.Attendance{}}
}

func (f *fakeAttendanceRepo) List(ctx context.Context, scope user.Scope, filter attendance.Filter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetForDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	r, ok := f.records[recordKey{userID, date}]
	if !ok {
		return attendance.Attendance{}, pgx.ErrNoRows
	}
	return r, nil
}

func (f *fakeAttendanceRepo) ClockIn(ctx context.Context, id string, userID string, date time.Time, now time.Time) (attendance.Attendance, error) {
	key := recordKey{userID, date}
	if existing, ok := f.records[key]; ok && existing.ClockIn != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}
	record := attendance.Attendance{
		ID:      id,
		UserID:  userID,
		Date:    date,
		ClockIn: &now,
		Status:  attendance.StatusPresent,
	}
	f.records[key] = record
	return record, nil
}

func (f *fakeAttendanceRepo) ClockOut(ctx context.Context, userID string, date time.Time, now time.Time) (attendance.Attendance, error) {
	key := recordKey{userID, date}
	record, ok := f.records[key]
	if !ok || record.ClockIn == nil || record.ClockOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
	}
	record.ClockOut = &now
	f.records[key] = record
	return record, nil
}

func (f *fakeAttendanceRepo) MonthlyTotals(ctx context.Context, userID string, year int, month time.Month) (int, int, int, float64, error) {
	present, absent, halfDay := 0, 0, 0
	var totalSeconds float64
	for _, r := range f.records {
		switch r.Status {
		case attendance.StatusPresent:
			present++
		case attendance.StatusAbsent:
			absent++
		case attendance.StatusHalfDay:
			halfDay++
		}
		if r.ClockIn != nil && r.ClockOut != nil {
			totalSeconds += r.ClockOut.Sub(*r.ClockIn).Seconds()
		}
	}
	return present, absent, halfDay, totalSeconds, nil
}

func newTestService(repo attendance.AttendanceRepository, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		now:                  func() time.Time { return now },
	}
}

var testSession = auth.Session{UserID: "emp-1", Role: "EMPLOYEE"}

func TestClockInThenOut(t *testing.T) {
	repo := newFakeAttendanceRepo()
	clockInAt := time.Date(2026, time.August, 29, 9, 0, 0, 0, time.Local)
	svc := newTestService(repo, clockInAt)

	inResult, err := svc.ClockIn(context.Background(), testSession)
	require.NoError(t, err)
	assert.Equal(t, "09:00 AM", inResult.ClockIn)

	// 8.5 hours later
	svc.now = func() time.Time { return clockInAt.Add(8*time.Hour + 30*time.Minute) }

	outResult, err := svc.ClockOut(context.Background(), testSession)
	require.NoError(t, err)
	assert.Equal(t, "8.50", outResult.HoursWorked)
}

func TestClockInTwice(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, time.August, 29, 9, 0, 0, 0, time.Local))

	_, err := svc.ClockIn(context.Background(), testSession)
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), testSession)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, time.August, 29, 17, 0, 0, 0, time.Local))

	_, err := svc.ClockOut(context.Background(), testSession)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockInAfterCompletedDay(t *testing.T) {
	repo := newFakeAttendanceRepo()
	start := time.Date(2026, time.August, 29, 9, 0, 0, 0, time.Local)
	svc := newTestService(repo, start)

	_, err := svc.ClockIn(context.Background(), testSession)
	require.NoError(t, err)

	svc.now = func() time.Time { return start.Add(8 * time.Hour) }
	_, err = svc.ClockOut(context.Background(), testSession)
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), testSession)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCompleted)

	_, err = svc.ClockOut(context.Background(), testSession)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestTodayEmpty(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2026, time.August, 29, 8, 0, 0, 0, time.Local))

	today, err := svc.Today(context.Background(), testSession)
	require.NoError(t, err)
	assert.False(t, today.IsClockedIn)
	assert.Nil(t, today.ClockIn)
	assert.Nil(t, today.Status)
}

func TestStatsFormatsHours(t *testing.T) {
	repo := newFakeAttendanceRepo()
	start := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.Local)
	end := start.Add(7*time.Hour + 45*time.Minute)
	repo.records[recordKey{"emp-1", start}] = attendance.Attendance{
		UserID:   "emp-1",
		Date:     start,
		ClockIn:  &start,
		ClockOut: &end,
		Status:   attendance.StatusPresent,
	}
	svc := newTestService(repo, end)

	stats, err := svc.Stats(context.Background(), testSession)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, "7.8", stats.TotalHours)
}
