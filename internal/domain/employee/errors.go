package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")

	// Role middleware errors
	ErrManagerAccessRequired = errors.New("manager access required")
	ErrAdminAccessRequired   = errors.New("admin access required")
)
