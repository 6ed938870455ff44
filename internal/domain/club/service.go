package club

import "context"

type ClubService interface {
	GetMyClub(ctx context.Context) (ClubResponse, error)
	UpdateMyClub(ctx context.Context, req UpdateClubRequest) (ClubResponse, error)
	DeactivateMyClub(ctx context.Context) error
}
