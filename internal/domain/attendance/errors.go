package attendance

import "errors"

// Clock state machine errors: NOT_STARTED -> CLOCKED_IN -> CLOCKED_OUT
var (
	ErrAlreadyClockedIn  = errors.New("already clocked in")
	ErrAlreadyCompleted  = errors.New("already completed for today")
	ErrNotClockedIn      = errors.New("not clocked in today")
	ErrAlreadyClockedOut = errors.New("already clocked out")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
