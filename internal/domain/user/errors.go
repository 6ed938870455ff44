package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrOwnerPrivilegeRequired = errors.New("owner privilege required")
)
