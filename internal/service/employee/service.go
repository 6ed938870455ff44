package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/compensation"
	"github.com/clubops/clubops-backend-go/internal/domain/employee"
	"github.com/clubops/clubops-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	schemeRepo   compensation.SchemeRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	schemeRepo compensation.SchemeRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		schemeRepo:   schemeRepo,
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

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	hiredAt := time.Now()
	if req.HiredAt != nil {
		hiredAt, _ = validator.IsValidDate(*req.HiredAt)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ClubID:  clubID,
		Name:    req.Name,
		Code:    req.Code,
		HiredAt: hiredAt,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, id, clubID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(e), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByClub(ctx, clubID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}

	return responses, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.employeeRepo.Update(ctx, clubID, req)
}

// AssignScheme validates the scheme belongs to the same club before linking
// it; a foreign scheme ID must not leak across tenants.
func (s *EmployeeServiceImpl) AssignScheme(ctx context.Context, req employee.AssignSchemeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.schemeRepo.GetByID(ctx, req.SchemeID, clubID); err != nil {
		return err
	}

	return s.employeeRepo.AssignScheme(ctx, clubID, req.EmployeeID, req.SchemeID)
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.employeeRepo.Delete(ctx, id, clubID)
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         e.ID,
		ClubID:     e.ClubID,
		Name:       e.Name,
		Code:       e.Code,
		SchemeID:   e.SchemeID,
		SchemeName: e.SchemeName,
		IsActive:   e.IsActive,
		HiredAt:    e.HiredAt.Format("2006-01-02"),
	}
}
