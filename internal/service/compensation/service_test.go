package compensation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubops/clubops-backend-go/internal/domain/compensation"
)

// fakeSchemeRepo keeps schemes in memory with the same versioning contract
// as the SQL repository: Create assigns max(version)+1 per club and name.
type fakeSchemeRepo struct {
	schemes []compensation.CompensationScheme
}

func (f *fakeSchemeRepo) Create(ctx context.Context, s compensation.CompensationScheme) (compensation.CompensationScheme, error) {
	s.ID = fmt.Sprintf("scheme-%d", len(f.schemes)+1)
	s.Version = 1
	for _, existing := range f.schemes {
		if existing.ClubID == s.ClubID && existing.Name == s.Name && existing.Version >= s.Version {
			s.Version = existing.Version + 1
		}
	}
	s.CreatedAt = time.Now()
	f.schemes = append(f.schemes, s)
	return s, nil
}

func (f *fakeSchemeRepo) GetByID(ctx context.Context, id string, clubID string) (compensation.CompensationScheme, error) {
	for _, s := range f.schemes {
		if s.ID == id && s.ClubID == clubID {
			return s, nil
		}
	}
	return compensation.CompensationScheme{}, compensation.ErrSchemeNotFound
}

func (f *fakeSchemeRepo) GetLatestByName(ctx context.Context, clubID string, name string) (compensation.CompensationScheme, error) {
	var latest compensation.CompensationScheme
	found := false
	for _, s := range f.schemes {
		if s.ClubID == clubID && s.Name == name && s.Version > latest.Version {
			latest = s
			found = true
		}
	}
	if !found {
		return compensation.CompensationScheme{}, compensation.ErrSchemeNotFound
	}
	return latest, nil
}

func (f *fakeSchemeRepo) ListByClub(ctx context.Context, clubID string) ([]compensation.CompensationScheme, error) {
	latest := map[string]compensation.CompensationScheme{}
	for _, s := range f.schemes {
		if s.ClubID == clubID && s.Version > latest[s.Name].Version {
			latest[s.Name] = s
		}
	}
	schemes := make([]compensation.CompensationScheme, 0, len(latest))
	for _, s := range latest {
		schemes = append(schemes, s)
	}
	return schemes, nil
}

func authedContext(t *testing.T, clubID string) context.Context {
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": "user-1",
		"club_id": clubID,
	})
	require.NoError(t, err)
	return context.WithValue(context.Background(), jwtauth.TokenCtxKey, token)
}

func TestSchemeService_CreateScheme_DuplicateNameConflicts(t *testing.T) {
	ctx := authedContext(t, "club-1")
	svc := NewSchemeService(&fakeSchemeRepo{}, NewSalaryCalculator())

	first, err := svc.CreateScheme(ctx, compensation.CreateSchemeRequest{Name: "Bar Staff"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)

	_, err = svc.CreateScheme(ctx, compensation.CreateSchemeRequest{Name: "Bar Staff"})
	assert.ErrorIs(t, err, compensation.ErrSchemeNameExists)
}

func TestSchemeService_CreateScheme_SameNameInAnotherClub(t *testing.T) {
	repo := &fakeSchemeRepo{}
	svc := NewSchemeService(repo, NewSalaryCalculator())

	_, err := svc.CreateScheme(authedContext(t, "club-1"), compensation.CreateSchemeRequest{Name: "Bar Staff"})
	require.NoError(t, err)

	created, err := svc.CreateScheme(authedContext(t, "club-2"), compensation.CreateSchemeRequest{Name: "Bar Staff"})
	assert.NoError(t, err)
	assert.Equal(t, 1, created.Version)
}

func TestSchemeService_CreateVersion_IncrementsVersion(t *testing.T) {
	ctx := authedContext(t, "club-1")
	svc := NewSchemeService(&fakeSchemeRepo{}, NewSalaryCalculator())

	first, err := svc.CreateScheme(ctx, compensation.CreateSchemeRequest{Name: "Bar Staff"})
	require.NoError(t, err)

	second, err := svc.CreateVersion(ctx, compensation.NewVersionRequest{SchemeID: first.ID})
	require.NoError(t, err)

	assert.Equal(t, "Bar Staff", second.Name)
	assert.Equal(t, 2, second.Version)
}
