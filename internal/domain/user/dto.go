package user

import (
	"time"

	"github.com/avis-hq/avis-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Name        string  `json:"name"`
	Phone       *string `json:"phone,omitempty"`
	Role        string  `json:"role"`
	Designation *string `json:"designation,omitempty"`
	Department  *string `json:"department,omitempty"`
	ManagerID   *string `json:"managerId,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}
	if len(r.Name) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be at least 2 characters",
		})
	}
	// Only owner accounts are created through registration
	if !validator.IsInSlice(r.Role, []string{string(RoleManager), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be MANAGER or EMPLOYEE",
		})
	}
	if r.ManagerID != nil && !validator.IsValidUUID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "managerId",
			Message: "managerId must be a valid id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Department  *string `json:"department,omitempty"`
	ManagerID   *string `json:"managerId,omitempty"`
	Status      *string `json:"status,omitempty"`
	Role        *string `json:"role,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && len(*r.Name) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be at least 2 characters",
		})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleManager), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be MANAGER or EMPLOYEE",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{StatusActive, StatusInactive}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be ACTIVE or INACTIVE",
		})
	}
	if r.ManagerID != nil && *r.ManagerID != "" && !validator.IsValidUUID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "managerId",
			Message: "managerId must be a valid id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ManagerSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Phone       *string         `json:"phone,omitempty"`
	Role        Role            `json:"role"`
	Designation *string         `json:"designation,omitempty"`
	Department  *string         `json:"department,omitempty"`
	Avatar      *string         `json:"avatar,omitempty"`
	Status      string          `json:"status"`
	JoinDate    time.Time       `json:"joinDate"`
	ManagerID   *string         `json:"managerId,omitempty"`
	Manager     *ManagerSummary `json:"manager,omitempty"`
	TaskCount   int             `json:"taskCount"`
}

// ToResponse strips the password hash and flattens the manager join.
func (u *User) ToResponse() UserResponse {
	resp := UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Phone:       u.Phone,
		Role:        u.Role,
		Designation: u.Designation,
		Department:  u.Department,
		Avatar:      u.Avatar,
		Status:      u.Status,
		JoinDate:    u.JoinDate,
		ManagerID:   u.ManagerID,
		TaskCount:   u.TaskCount,
	}
	if u.ManagerID != nil && u.ManagerName != nil {
		resp.Manager = &ManagerSummary{
			ID:    *u.ManagerID,
			Name:  *u.ManagerName,
			Email: u.ManagerEmail,
		}
	}
	return resp
}
