package compensation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/compensation"
)

type SchemeServiceImpl struct {
	schemeRepo compensation.SchemeRepository
	calculator *SalaryCalculator
}

func NewSchemeService(schemeRepo compensation.SchemeRepository, calculator *SalaryCalculator) compensation.SchemeService {
	return &SchemeServiceImpl{
		schemeRepo: schemeRepo,
		calculator: calculator,
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

// CreateScheme starts a new scheme at version 1. Edits to an existing name
// go through CreateVersion instead.
func (s *SchemeServiceImpl) CreateScheme(ctx context.Context, req compensation.CreateSchemeRequest) (compensation.SchemeResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.SchemeResponse{}, err
	}

	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return compensation.SchemeResponse{}, err
	}

	if _, err := s.schemeRepo.GetLatestByName(ctx, clubID, req.Name); err == nil {
		return compensation.SchemeResponse{}, compensation.ErrSchemeNameExists
	} else if !errors.Is(err, compensation.ErrSchemeNotFound) {
		return compensation.SchemeResponse{}, err
	}

	created, err := s.schemeRepo.Create(ctx, compensation.CompensationScheme{
		ClubID:   clubID,
		Name:     req.Name,
		Document: req.Document,
	})
	if err != nil {
		return compensation.SchemeResponse{}, err
	}

	return toResponse(created), nil
}

// CreateVersion appends the next version under the same name. The referenced
// scheme row only anchors the name; the new document does not merge with it.
func (s *SchemeServiceImpl) CreateVersion(ctx context.Context, req compensation.NewVersionRequest) (compensation.SchemeResponse, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return compensation.SchemeResponse{}, err
	}

	existing, err := s.schemeRepo.GetByID(ctx, req.SchemeID, clubID)
	if err != nil {
		return compensation.SchemeResponse{}, err
	}

	created, err := s.schemeRepo.Create(ctx, compensation.CompensationScheme{
		ClubID:   clubID,
		Name:     existing.Name,
		Document: req.Document,
	})
	if err != nil {
		return compensation.SchemeResponse{}, err
	}

	return toResponse(created), nil
}

func (s *SchemeServiceImpl) GetScheme(ctx context.Context, id string) (compensation.SchemeResponse, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return compensation.SchemeResponse{}, err
	}

	scheme, err := s.schemeRepo.GetByID(ctx, id, clubID)
	if err != nil {
		return compensation.SchemeResponse{}, err
	}

	return toResponse(scheme), nil
}

func (s *SchemeServiceImpl) ListSchemes(ctx context.Context) ([]compensation.SchemeResponse, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	schemes, err := s.schemeRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	responses := make([]compensation.SchemeResponse, 0, len(schemes))
	for _, scheme := range schemes {
		responses = append(responses, toResponse(scheme))
	}

	return responses, nil
}

func (s *SchemeServiceImpl) PreviewSalary(ctx context.Context, req compensation.PreviewSalaryRequest) (compensation.SalaryResult, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return compensation.SalaryResult{}, err
	}

	scheme, err := s.schemeRepo.GetByID(ctx, req.SchemeID, clubID)
	if err != nil {
		return compensation.SalaryResult{}, err
	}

	metrics := compensation.ParseMetrics(req.Metrics)
	return s.calculator.ComputeSalary(req.HoursWorked, scheme.Document, metrics), nil
}

func toResponse(s compensation.CompensationScheme) compensation.SchemeResponse {
	return compensation.SchemeResponse{
		ID:        s.ID,
		ClubID:    s.ClubID,
		Name:      s.Name,
		Version:   s.Version,
		Document:  s.Document,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}
