package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusHalfDay Status = "HALF_DAY"
)

type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	ClockIn   *time.Time
	ClockOut  *time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	UserName   *string
	UserAvatar *string
}

// IsClockedIn reports whether the record is in the CLOCKED_IN state:
// clocked in today without having clocked out yet.
func (a *Attendance) IsClockedIn() bool {
	return a.ClockIn != nil && a.ClockOut == nil
}

// IsCompleted reports whether the day's clock cycle is finished.
func (a *Attendance) IsCompleted() bool {
	return a.ClockOut != nil
}
