package shift

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubops-backend-go/internal/domain/compensation"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Shift is one employee's working period at a club. While open it accumulates
// nothing; at close time the report data and revenue figures are recorded and
// the salary is computed once from the employee's scheme version at that
// moment, then stored for audit.
type Shift struct {
	ID              string                  `json:"id"`
	ClubID          string                  `json:"club_id"`
	EmployeeID      string                  `json:"employee_id"`
	SchemeID        *string                 `json:"scheme_id,omitempty"`
	SchemeVersion   *int                    `json:"scheme_version,omitempty"`
	Status          Status                  `json:"status"`
	StartedAt       time.Time               `json:"started_at"`
	EndedAt         *time.Time              `json:"ended_at,omitempty"`
	HoursWorked     decimal.Decimal         `json:"hours_worked"`
	RevenueTotal    decimal.Decimal         `json:"revenue_total"`
	RevenueCash     decimal.Decimal         `json:"revenue_cash"`
	RevenueCard     decimal.Decimal         `json:"revenue_card"`
	ReportData      map[string]interface{}  `json:"report_data,omitempty"`
	SalaryTotal     *decimal.Decimal        `json:"salary_total,omitempty"`
	SalaryBreakdown *compensation.Breakdown `json:"salary_breakdown,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`

	// Joined for list views
	EmployeeName string `json:"employee_name,omitempty"`
}

// Metrics assembles the metric map fed to the salary evaluator: the recorded
// revenue figures plus any numeric fields from the free-form report.
func (s *Shift) Metrics() compensation.PeriodMetrics {
	metrics := compensation.ParseMetrics(s.ReportData)
	metrics[compensation.MetricTotalRevenue] = s.RevenueTotal
	metrics[compensation.MetricRevenueCash] = s.RevenueCash
	metrics[compensation.MetricRevenueCard] = s.RevenueCard
	return metrics
}
