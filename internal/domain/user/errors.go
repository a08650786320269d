package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrCannotDeleteSelf      = errors.New("cannot delete your own account")
	ErrManagerNotFound       = errors.New("referenced manager not found")
	ErrManagerRoleRequired   = errors.New("manager_id must reference a user with the MANAGER role")
	ErrOwnerAccessRequired   = errors.New("owner access required")
	ErrManagerAccessRequired = errors.New("manager access required")
)
