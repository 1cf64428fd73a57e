package user

import "errors"

var (
	ErrUserNotFound      = errors.New("User not found")
	ErrEmailExists       = errors.New("Email already registered")
	ErrNotACounselor     = errors.New("Referenced user is not a counselor")
	ErrApproverRoleOnly  = errors.New("Counselor or HOD role required")
	ErrHODAccessRequired = errors.New("HOD role required")
)
