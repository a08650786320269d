package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avis-hq/avis-backend-go/internal/domain/attendance"
	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/avis-hq/avis-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `
	ar.id, ar.user_id, ar.date, ar.clock_in, ar.clock_out, ar.status,
	ar.created_at, ar.updated_at,
	u.name, u.avatar
`

const attendanceFrom = `
	FROM attendance_records ar
	LEFT JOIN users u ON u.id = ar.user_id
`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row interface{ Scan(...interface{}) error }) (attendance.Attendance, error) {
	var found attendance.Attendance
	err := row.Scan(
		&found.ID,
		&found.UserID,
		&found.Date,
		&found.ClockIn,
		&found.ClockOut,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.UserName,
		&found.UserAvatar,
	)
	return found, err
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, scope user.Scope, filter attendance.Filter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom
	var conditions []string
	var args []interface{}

	if clause, scopeArgs := scopeFilter(scope, "ar.user_id", len(args)+1); clause != "" {
		conditions = append(conditions, clause)
		args = append(args, scopeArgs...)
	}
	if filter.Month != 0 && filter.Year != 0 {
		start := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.Local)
		end := start.AddDate(0, 1, 0)
		conditions = append(conditions, fmt.Sprintf("ar.date >= $%d AND ar.date < $%d", len(args)+1, len(args)+2))
		args = append(args, start, end)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += ` ORDER BY ar.date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		found, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, found)
	}
	return records, rows.Err()
}

// GetForDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetForDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + ` WHERE ar.user_id = $1 AND ar.date = $2`

	return scanAttendance(q.QueryRow(ctx, query, userID, date))
}

// ClockIn implements attendance.AttendanceRepository. The upsert is keyed on
// the (user_id, date) uniqueness constraint and only fills an unset clock_in,
// so a concurrent double-submission cannot clock in twice.
func (r *attendanceRepositoryImpl) ClockIn(ctx context.Context, id string, userID string, date time.Time, now time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH upserted AS (
			INSERT INTO attendance_records (id, user_id, date, clock_in, status)
			VALUES ($1, $2, $3, $4, 'PRESENT')
			ON CONFLICT (user_id, date) DO UPDATE
				SET clock_in = EXCLUDED.clock_in, status = 'PRESENT', updated_at = NOW()
				WHERE attendance_records.clock_in IS NULL
			RETURNING *
		)
		SELECT ar.id, ar.user_id, ar.date, ar.clock_in, ar.clock_out, ar.status,
			   ar.created_at, ar.updated_at,
			   u.name, u.avatar
		FROM upserted ar
		LEFT JOIN users u ON u.id = ar.user_id
	`

	record, err := scanAttendance(q.QueryRow(ctx, query, id, userID, date, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, err
	}
	return record, nil
}

// ClockOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ClockOut(ctx context.Context, userID string, date time.Time, now time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE attendance_records SET clock_out = $3, updated_at = NOW()
			WHERE user_id = $1 AND date = $2 AND clock_in IS NOT NULL AND clock_out IS NULL
			RETURNING *
		)
		SELECT ar.id, ar.user_id, ar.date, ar.clock_in, ar.clock_out, ar.status,
			   ar.created_at, ar.updated_at,
			   u.name, u.avatar
		FROM updated ar
		LEFT JOIN users u ON u.id = ar.user_id
	`

	record, err := scanAttendance(q.QueryRow(ctx, query, userID, date, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
		}
		return attendance.Attendance{}, err
	}
	return record, nil
}

// MonthlyTotals implements attendance.AttendanceRepository with a single
// aggregate query over the user's month.
func (r *attendanceRepositoryImpl) MonthlyTotals(ctx context.Context, userID string, year int, month time.Month) (int, int, int, float64, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'PRESENT' THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status = 'ABSENT' THEN 1 ELSE 0 END), 0) AS absent,
			COALESCE(SUM(CASE WHEN status = 'HALF_DAY' THEN 1 ELSE 0 END), 0) AS half_day,
			COALESCE(SUM(CASE WHEN clock_in IS NOT NULL AND clock_out IS NOT NULL
				THEN EXTRACT(EPOCH FROM (clock_out - clock_in)) ELSE 0 END), 0) AS total_seconds
		FROM attendance_records
		WHERE user_id = $1 AND date >= $2 AND date < $3
	`

	var present, absent, halfDay int
	var totalSeconds float64
	err := q.QueryRow(ctx, query, userID, start, end).Scan(&present, &absent, &halfDay, &totalSeconds)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to get monthly attendance totals: %w", err)
	}
	return present, absent, halfDay, totalSeconds, nil
}
