package club

import "context"

type ClubRepository interface {
	Create(ctx context.Context, c Club) (Club, error)
	GetByID(ctx context.Context, id string) (Club, error)
	GetByOwner(ctx context.Context, ownerUserID string) (Club, error)
	Update(ctx context.Context, id string, req UpdateClubRequest) error
	Delete(ctx context.Context, id string) error
}
