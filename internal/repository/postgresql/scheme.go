package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/compensation"
	"github.com/clubops/clubops-backend-go/internal/pkg/database"
)

type schemeRepository struct {
	db *database.DB
}

func NewSchemeRepository(db *database.DB) compensation.SchemeRepository {
	return &schemeRepository{db: db}
}

// Create inserts the next version for (club, name). Existing rows are never
// updated; a shift that closed against version N keeps reproducing the same
// salary from the same document.
func (r *schemeRepository) Create(ctx context.Context, s compensation.CompensationScheme) (compensation.CompensationScheme, error) {
	q := GetQuerier(ctx, r.db)

	document, err := json.Marshal(s.Document)
	if err != nil {
		return compensation.CompensationScheme{}, fmt.Errorf("failed to marshal scheme document: %w", err)
	}

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO compensation_schemes (id, club_id, name, version, document)
		VALUES (
			$1, $2, $3,
			COALESCE((SELECT MAX(version) FROM compensation_schemes WHERE club_id = $2 AND name = $3), 0) + 1,
			$4
		)
		RETURNING id, club_id, name, version, document, created_at
	`

	return r.scanScheme(q.QueryRow(ctx, query, s.ID, s.ClubID, s.Name, document))
}

func (r *schemeRepository) GetByID(ctx context.Context, id string, clubID string) (compensation.CompensationScheme, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, club_id, name, version, document, created_at
		FROM compensation_schemes
		WHERE id = $1 AND club_id = $2
	`

	return r.scanScheme(q.QueryRow(ctx, query, id, clubID))
}

func (r *schemeRepository) GetLatestByName(ctx context.Context, clubID string, name string) (compensation.CompensationScheme, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, club_id, name, version, document, created_at
		FROM compensation_schemes
		WHERE club_id = $1 AND name = $2
		ORDER BY version DESC
		LIMIT 1
	`

	return r.scanScheme(q.QueryRow(ctx, query, clubID, name))
}

func (r *schemeRepository) ListByClub(ctx context.Context, clubID string) ([]compensation.CompensationScheme, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ON (name) id, club_id, name, version, document, created_at
		FROM compensation_schemes
		WHERE club_id = $1
		ORDER BY name, version DESC
	`

	rows, err := q.Query(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schemes: %w", err)
	}
	defer rows.Close()

	var schemes []compensation.CompensationScheme
	for rows.Next() {
		s, err := r.scanScheme(rows)
		if err != nil {
			return nil, err
		}
		schemes = append(schemes, s)
	}

	return schemes, rows.Err()
}

func (r *schemeRepository) scanScheme(row pgx.Row) (compensation.CompensationScheme, error) {
	var s compensation.CompensationScheme
	var document []byte

	err := row.Scan(&s.ID, &s.ClubID, &s.Name, &s.Version, &document, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return compensation.CompensationScheme{}, compensation.ErrSchemeNotFound
		}
		return compensation.CompensationScheme{}, fmt.Errorf("failed to scan scheme: %w", err)
	}

	if err := json.Unmarshal(document, &s.Document); err != nil {
		return compensation.CompensationScheme{}, fmt.Errorf("failed to unmarshal scheme document: %w", err)
	}

	return s, nil
}
