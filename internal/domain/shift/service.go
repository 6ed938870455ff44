package shift

import "context"

type ShiftService interface {
	Open(ctx context.Context, req OpenShiftRequest) (Shift, error)
	// Close records the report, computes the salary from the employee's
	// current scheme version, and persists everything atomically.
	Close(ctx context.Context, shiftID string, req CloseShiftRequest) (Shift, error)
	Get(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context, limit, offset int) ([]Shift, error)
	ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Shift, error)
}
