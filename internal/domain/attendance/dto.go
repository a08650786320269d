package attendance

import "time"

type UserSummary struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
}

type AttendanceResponse struct {
	ID       string       `json:"id"`
	UserID   string       `json:"userId"`
	Date     time.Time    `json:"date"`
	ClockIn  *time.Time   `json:"clockIn"`
	ClockOut *time.Time   `json:"clockOut"`
	Status   Status       `json:"status"`
	User     *UserSummary `json:"user,omitempty"`
}

func (a *Attendance) ToResponse() AttendanceResponse {
	resp := AttendanceResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		Date:     a.Date,
		ClockIn:  a.ClockIn,
		ClockOut: a.ClockOut,
		Status:   a.Status,
	}
	if a.UserName != nil {
		resp.User = &UserSummary{
			ID:     a.UserID,
			Name:   *a.UserName,
			Avatar: a.UserAvatar,
		}
	}
	return resp
}

type TodayResponse struct {
	IsClockedIn bool       `json:"isClockedIn"`
	ClockIn     *time.Time `json:"clockIn"`
	ClockOut    *time.Time `json:"clockOut"`
	Status      *Status    `json:"status"`
}

type ClockInResponse struct {
	Record  AttendanceResponse `json:"record"`
	ClockIn string             `json:"clockIn"`
}

type ClockOutResponse struct {
	Record      AttendanceResponse `json:"record"`
	HoursWorked string             `json:"hoursWorked"`
}

// MonthlyStats summarizes the caller's current month.
type MonthlyStats struct {
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	HalfDay    int    `json:"halfDay"`
	TotalHours string `json:"totalHours"`
}

// Filter narrows attendance listings to a calendar month; zero means all.
type Filter struct {
	Month int
	Year  int
}
