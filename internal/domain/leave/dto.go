package leave

import (
	"time"

	"github.com/avis-hq/avis-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, Types) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be CASUAL, SICK, EARNED or UNPAID",
		})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}
	if len(r.Reason) < 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be at least 5 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserSummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Avatar     *string `json:"avatar,omitempty"`
	Department *string `json:"department,omitempty"`
}

type LeaveResponse struct {
	ID         string       `json:"id"`
	Type       Type         `json:"type"`
	StartDate  time.Time    `json:"startDate"`
	EndDate    time.Time    `json:"endDate"`
	Reason     string       `json:"reason"`
	Status     Status       `json:"status"`
	Employee   *UserSummary `json:"employee,omitempty"`
	Reviewer   *UserSummary `json:"reviewer,omitempty"`
	AppliedAt  time.Time    `json:"appliedAt"`
	ReviewedAt *time.Time   `json:"reviewedAt,omitempty"`
}

func (l *LeaveRequest) ToResponse() LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID,
		Type:       l.Type,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		Reason:     l.Reason,
		Status:     l.Status,
		AppliedAt:  l.AppliedAt,
		ReviewedAt: l.ReviewedAt,
	}
	if l.EmployeeName != nil {
		resp.Employee = &UserSummary{
			ID:         l.EmployeeID,
			Name:       *l.EmployeeName,
			Avatar:     l.EmployeeAvatar,
			Department: l.EmployeeDepartment,
		}
	}
	if l.ReviewerID != nil && l.ReviewerName != nil {
		resp.Reviewer = &UserSummary{
			ID:   *l.ReviewerID,
			Name: *l.ReviewerName,
		}
	}
	return resp
}

// Balance is the remaining paid-leave days for the current year. Unpaid
// leave has no cap and is reported only under Used.
type Balance struct {
	Casual int `json:"casual"`
	Sick   int `json:"sick"`
	Earned int `json:"earned"`
}

type Used struct {
	Casual int `json:"casual"`
	Sick   int `json:"sick"`
	Earned int `json:"earned"`
	Unpaid int `json:"unpaid"`
}

type BalanceResponse struct {
	Balance Balance `json:"balance"`
	Used    Used    `json:"used"`
}
