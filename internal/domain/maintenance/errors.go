package maintenance

import "errors"

var (
	ErrTaskNotFound         = errors.New("maintenance task not found")
	ErrTaskAlreadyCompleted = errors.New("maintenance task is already completed")
	ErrTaskNotCompleted     = errors.New("maintenance task is not completed")
	ErrConfigNotFound       = errors.New("maintenance KPI config not found")
	ErrInvalidTaskType      = errors.New("invalid maintenance task type")
)
