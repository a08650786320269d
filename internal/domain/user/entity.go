package user

import "time"

type Role string

const (
	RoleOwner    Role = "OWNER"    // Administers the org - full access
	RoleManager  Role = "MANAGER"  // Manages a team, can approve leave and review tasks
	RoleEmployee Role = "EMPLOYEE" // Regular employee
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Phone        *string
	Role         Role
	Designation  *string
	Department   *string
	Avatar       *string
	Status       string
	JoinDate     time.Time
	ManagerID    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	ManagerName  *string
	ManagerEmail *string
	TaskCount    int
}

// IsOwner checks if user administers the org
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// IsManager checks if user is manager or owner
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleOwner
}

// CanApprove checks if user can approve leave requests and manage tasks
func (u *User) CanApprove() bool {
	return u.IsManager()
}

// CanManageUsers checks if user can create, update or delete users
func (u *User) CanManageUsers() bool {
	return u.IsOwner()
}
