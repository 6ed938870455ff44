package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string, clubID string) (Shift, error)
	GetOpenByEmployee(ctx context.Context, employeeID string) (Shift, error)
	ListByClub(ctx context.Context, clubID string, limit, offset int) ([]Shift, error)
	ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Shift, error)
	// Close marks the shift closed and stores the report, revenue figures and
	// the computed salary in one statement. It only updates open shifts; a
	// zero-row result means the shift was already closed.
	Close(ctx context.Context, s Shift) error
}
