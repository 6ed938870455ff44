package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, clubID string) (Employee, error)
	ListByClub(ctx context.Context, clubID string, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, clubID string, req UpdateEmployeeRequest) error
	AssignScheme(ctx context.Context, clubID string, employeeID string, schemeID string) error
	Delete(ctx context.Context, id string, clubID string) error
}
