package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists in this club")
	ErrEmployeeInactive   = errors.New("employee is inactive")
	ErrNoSchemeAssigned   = errors.New("employee has no compensation scheme assigned")
)
