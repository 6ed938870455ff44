package shift

import (
	"github.com/shopspring/decimal"

	"github.com/clubops/clubops-backend-go/internal/pkg/validator"
)

type OpenShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	StartedAt  string `json:"started_at,omitempty"`
}

func (r *OpenShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}
	if r.StartedAt != "" {
		if _, ok := validator.IsValidDateTime(r.StartedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "started_at", Message: "started_at must be a valid RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CloseShiftRequest struct {
	EndedAt      string                 `json:"ended_at,omitempty"`
	RevenueTotal decimal.Decimal        `json:"revenue_total"`
	RevenueCash  decimal.Decimal        `json:"revenue_cash"`
	RevenueCard  decimal.Decimal        `json:"revenue_card"`
	ReportData   map[string]interface{} `json:"report_data,omitempty"`
}

func (r *CloseShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EndedAt != "" {
		if _, ok := validator.IsValidDateTime(r.EndedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "ended_at", Message: "ended_at must be a valid RFC3339 timestamp"})
		}
	}
	if r.RevenueTotal.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "revenue_total", Message: "revenue_total must not be negative"})
	}
	if r.RevenueCash.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "revenue_cash", Message: "revenue_cash must not be negative"})
	}
	if r.RevenueCard.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "revenue_card", Message: "revenue_card must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
