package compensation

import (
	"context"

	"github.com/shopspring/decimal"
)

// PreviewSalaryRequest runs the evaluator against a stored scheme without
// touching any shift, so an owner can check a scheme before assigning it.
type PreviewSalaryRequest struct {
	SchemeID    string                 `json:"-"`
	HoursWorked decimal.Decimal        `json:"hours_worked"`
	Metrics     map[string]interface{} `json:"metrics,omitempty"`
}

type SchemeService interface {
	CreateScheme(ctx context.Context, req CreateSchemeRequest) (SchemeResponse, error)
	// CreateVersion appends a new version of an existing scheme; prior
	// versions stay untouched.
	CreateVersion(ctx context.Context, req NewVersionRequest) (SchemeResponse, error)
	GetScheme(ctx context.Context, id string) (SchemeResponse, error)
	ListSchemes(ctx context.Context) ([]SchemeResponse, error)
	PreviewSalary(ctx context.Context, req PreviewSalaryRequest) (SalaryResult, error)
}
