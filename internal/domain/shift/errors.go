package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftAlreadyOpen   = errors.New("employee already has an open shift")
	ErrShiftAlreadyClosed = errors.New("shift is already closed")
	ErrShiftNotOpen       = errors.New("shift is not open")
)
