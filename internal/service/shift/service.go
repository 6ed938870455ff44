package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	compensationdomain "github.com/clubops/clubops-backend-go/internal/domain/compensation"
	"github.com/clubops/clubops-backend-go/internal/domain/employee"
	"github.com/clubops/clubops-backend-go/internal/domain/shift"
	"github.com/clubops/clubops-backend-go/internal/pkg/database"
	"github.com/clubops/clubops-backend-go/internal/pkg/validator"
	"github.com/clubops/clubops-backend-go/internal/repository/postgresql"
	compensationservice "github.com/clubops/clubops-backend-go/internal/service/compensation"
)

type ShiftServiceImpl struct {
	db           *database.DB
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
	schemeRepo   compensationdomain.SchemeRepository
	calculator   *compensationservice.SalaryCalculator
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	schemeRepo compensationdomain.SchemeRepository,
	calculator *compensationservice.SalaryCalculator,
) shift.ShiftService {
	return &ShiftServiceImpl{
		db:           db,
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		schemeRepo:   schemeRepo,
		calculator:   calculator,
	}
}

// Helper to get club_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (clubID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	clubID, ok := claims["club_id"].(string)
	if !ok || clubID == "" {
		return "", "", fmt.Errorf("club_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return clubID, userID, nil
}

func (s *ShiftServiceImpl) Open(ctx context.Context, req shift.OpenShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return shift.Shift{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, clubID)
	if err != nil {
		return shift.Shift{}, err
	}
	if !e.IsActive {
		return shift.Shift{}, employee.ErrEmployeeInactive
	}

	startedAt := time.Now()
	if req.StartedAt != "" {
		startedAt, _ = validator.IsValidDateTime(req.StartedAt)
	}

	return s.shiftRepo.Create(ctx, shift.Shift{
		ClubID:     clubID,
		EmployeeID: e.ID,
		Status:     shift.StatusOpen,
		StartedAt:  startedAt,
	})
}

// Close computes the salary from the employee's assigned scheme and persists
// the closed shift in one transaction, pinning the scheme version it was
// paid against.
func (s *ShiftServiceImpl) Close(ctx context.Context, shiftID string, req shift.CloseShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return shift.Shift{}, err
	}

	var closed shift.Shift
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		sh, err := s.shiftRepo.GetByID(txCtx, shiftID, clubID)
		if err != nil {
			return err
		}
		if sh.Status != shift.StatusOpen {
			return shift.ErrShiftNotOpen
		}

		e, err := s.employeeRepo.GetByID(txCtx, sh.EmployeeID, clubID)
		if err != nil {
			return err
		}
		if e.SchemeID == nil {
			return employee.ErrNoSchemeAssigned
		}

		scheme, err := s.schemeRepo.GetByID(txCtx, *e.SchemeID, clubID)
		if err != nil {
			return err
		}

		endedAt := time.Now()
		if req.EndedAt != "" {
			endedAt, _ = validator.IsValidDateTime(req.EndedAt)
		}

		sh.EndedAt = &endedAt
		sh.HoursWorked = hoursBetween(sh.StartedAt, endedAt)
		sh.RevenueTotal = req.RevenueTotal
		sh.RevenueCash = req.RevenueCash
		sh.RevenueCard = req.RevenueCard
		sh.ReportData = req.ReportData
		sh.SchemeID = e.SchemeID
		sh.SchemeVersion = &scheme.Version

		result := s.calculator.ComputeSalary(sh.HoursWorked, scheme.Document, sh.Metrics())
		sh.SalaryTotal = &result.Total
		sh.SalaryBreakdown = &result.Breakdown
		sh.Status = shift.StatusClosed

		if err := s.shiftRepo.Close(txCtx, sh); err != nil {
			return err
		}

		closed = sh
		return nil
	})
	if err != nil {
		return shift.Shift{}, err
	}

	return closed, nil
}

func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.Shift, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return shift.Shift{}, err
	}

	return s.shiftRepo.GetByID(ctx, id, clubID)
}

func (s *ShiftServiceImpl) List(ctx context.Context, limit, offset int) ([]shift.Shift, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.shiftRepo.ListByClub(ctx, clubID, normalizeLimit(limit), offset)
}

func (s *ShiftServiceImpl) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]shift.Shift, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Scope check before listing by employee ID alone
	if _, err := s.employeeRepo.GetByID(ctx, employeeID, clubID); err != nil {
		return nil, err
	}

	return s.shiftRepo.ListByEmployee(ctx, employeeID, normalizeLimit(limit), offset)
}

func hoursBetween(start, end time.Time) decimal.Decimal {
	if end.Before(start) {
		return decimal.Zero
	}
	minutes := end.Sub(start).Minutes()
	return decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60)).Round(2)
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 50
	}
	return limit
}
