package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/domain/attendance"
	"github.com/avis-hq/avis-backend-go/internal/domain/auth"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	now func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		now:                  time.Now,
	}
}

// today truncates the clock to the server-local calendar day that keys
// attendance records.
func (s *AttendanceServiceImpl) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, session auth.Session, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	scope := user.VisibilityScope(user.Role(session.Role), session.UserID, user.ResourceAttendance)

	records, err := s.AttendanceRepository.List(ctx, scope, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, records[i].ToResponse())
	}
	return responses, nil
}

// Today implements attendance.AttendanceService. No record for the day is
// not an error, it just means the caller has not started yet.
func (s *AttendanceServiceImpl) Today(ctx context.Context, session auth.Session) (attendance.TodayResponse, error) {
	record, err := s.AttendanceRepository.GetForDate(ctx, session.UserID, s.today())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TodayResponse{}, nil
		}
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	status := record.Status
	return attendance.TodayResponse{
		IsClockedIn: record.IsClockedIn(),
		ClockIn:     record.ClockIn,
		ClockOut:    record.ClockOut,
		Status:      &status,
	}, nil
}

// ClockIn implements attendance.AttendanceService. The pre-check gives the
// caller a precise error; the conditional upsert in the repository settles
// concurrent submissions.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, session auth.Session) (attendance.ClockInResponse, error) {
	today := s.today()

	existing, err := s.AttendanceRepository.GetForDate(ctx, session.UserID, today)
	if err == nil {
		if existing.IsCompleted() {
			return attendance.ClockInResponse{}, attendance.ErrAlreadyCompleted
		}
		if existing.IsClockedIn() {
			return attendance.ClockInResponse{}, attendance.ErrAlreadyClockedIn
		}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.ClockInResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	record, err := s.AttendanceRepository.ClockIn(ctx, uuid.NewString(), session.UserID, today, s.now())
	if err != nil {
		return attendance.ClockInResponse{}, err
	}

	return attendance.ClockInResponse{
		Record:  record.ToResponse(),
		ClockIn: record.ClockIn.Format("03:04 PM"),
	}, nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, session auth.Session) (attendance.ClockOutResponse, error) {
	today := s.today()

	existing, err := s.AttendanceRepository.GetForDate(ctx, session.UserID, today)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ClockOutResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.ClockOutResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing.ClockIn == nil {
		return attendance.ClockOutResponse{}, attendance.ErrNotClockedIn
	}
	if existing.IsCompleted() {
		return attendance.ClockOutResponse{}, attendance.ErrAlreadyClockedOut
	}

	record, err := s.AttendanceRepository.ClockOut(ctx, session.UserID, today, s.now())
	if err != nil {
		return attendance.ClockOutResponse{}, err
	}

	hours := record.ClockOut.Sub(*record.ClockIn).Hours()
	return attendance.ClockOutResponse{
		Record:      record.ToResponse(),
		HoursWorked: fmt.Sprintf("%.2f", hours),
	}, nil
}

// Stats implements attendance.AttendanceService for the current month.
func (s *AttendanceServiceImpl) Stats(ctx context.Context, session auth.Session) (attendance.MonthlyStats, error) {
	now := s.now()

	present, absent, halfDay, totalSeconds, err := s.AttendanceRepository.MonthlyTotals(ctx, session.UserID, now.Year(), now.Month())
	if err != nil {
		return attendance.MonthlyStats{}, err
	}

	return attendance.MonthlyStats{
		Present:    present,
		Absent:     absent,
		HalfDay:    halfDay,
		TotalHours: fmt.Sprintf("%.1f", totalSeconds/3600),
	}, nil
}
