package compensation

import "context"

type SchemeRepository interface {
	Create(ctx context.Context, s CompensationScheme) (CompensationScheme, error)
	GetByID(ctx context.Context, id string, clubID string) (CompensationScheme, error)
	// GetLatestByName returns the highest version of the named scheme.
	GetLatestByName(ctx context.Context, clubID string, name string) (CompensationScheme, error)
	// ListByClub returns the latest version of every scheme in the club.
	ListByClub(ctx context.Context, clubID string) ([]CompensationScheme, error)
}
