package leave

import (
	"math"
	"time"
)

type Type string

const (
	TypeCasual Type = "CASUAL"
	TypeSick   Type = "SICK"
	TypeEarned Type = "EARNED"
	TypeUnpaid Type = "UNPAID"
)

var Types = []string{
	string(TypeCasual),
	string(TypeSick),
	string(TypeEarned),
	string(TypeUnpaid),
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type LeaveRequest struct {
	ID         string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	EmployeeID string
	ReviewerID *string
	AppliedAt  time.Time
	ReviewedAt *time.Time

	// DTO / Join
	EmployeeName       *string
	EmployeeAvatar     *string
	EmployeeDepartment *string
	ReviewerName       *string
}

// DaySpan is the inclusive calendar-day count of the request.
func (l *LeaveRequest) DaySpan() int {
	return DaySpan(l.StartDate, l.EndDate)
}

// DaySpan counts calendar days from start to end inclusive: a single-day
// leave spans 1 day, D to D+2 spans 3 days.
func DaySpan(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}
