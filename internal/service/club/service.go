package club

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/club"
)

type ClubServiceImpl struct {
	clubRepo club.ClubRepository
}

func NewClubService(clubRepo club.ClubRepository) club.ClubService {
	return &ClubServiceImpl{clubRepo: clubRepo}
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

func (s *ClubServiceImpl) GetMyClub(ctx context.Context) (club.ClubResponse, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return club.ClubResponse{}, err
	}

	c, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return club.ClubResponse{}, err
	}

	return toResponse(c), nil
}

func (s *ClubServiceImpl) UpdateMyClub(ctx context.Context, req club.UpdateClubRequest) (club.ClubResponse, error) {
	if err := req.Validate(); err != nil {
		return club.ClubResponse{}, err
	}

	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return club.ClubResponse{}, err
	}

	if err := s.clubRepo.Update(ctx, clubID, req); err != nil {
		return club.ClubResponse{}, err
	}

	c, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return club.ClubResponse{}, err
	}

	return toResponse(c), nil
}

// DeactivateMyClub soft-deletes the club. Records stay in place so closed
// shifts and completed tasks remain auditable.
func (s *ClubServiceImpl) DeactivateMyClub(ctx context.Context) error {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.clubRepo.Delete(ctx, clubID)
}

func toResponse(c club.Club) club.ClubResponse {
	return club.ClubResponse{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		Address:  c.Address,
		Timezone: c.Timezone,
		IsActive: c.IsActive,
	}
}
