package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/club"
	"github.com/clubops/clubops-backend-go/internal/pkg/database"
)

type clubRepository struct {
	db *database.DB
}

func NewClubRepository(db *database.DB) club.ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, c club.Club) (club.Club, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clubs (owner_user_id, name, slug, address, timezone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_user_id, name, slug, address, timezone, is_active, created_at, updated_at
	`

	var created club.Club
	err := q.QueryRow(ctx, query,
		c.OwnerUserID, c.Name, c.Slug, c.Address, c.Timezone,
	).Scan(
		&created.ID, &created.OwnerUserID, &created.Name, &created.Slug,
		&created.Address, &created.Timezone, &created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_clubs_slug") {
			return club.Club{}, club.ErrClubSlugExists
		}
		return club.Club{}, fmt.Errorf("failed to create club: %w", err)
	}

	return created, nil
}

func (r *clubRepository) GetByID(ctx context.Context, id string) (club.Club, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *clubRepository) GetByOwner(ctx context.Context, ownerUserID string) (club.Club, error) {
	return r.getBy(ctx, "owner_user_id = $1", ownerUserID)
}

func (r *clubRepository) getBy(ctx context.Context, where string, arg any) (club.Club, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_user_id, name, slug, address, timezone, is_active, created_at, updated_at
		FROM clubs
		WHERE ` + where

	var c club.Club
	err := q.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.OwnerUserID, &c.Name, &c.Slug,
		&c.Address, &c.Timezone, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return club.Club{}, club.ErrClubNotFound
		}
		return club.Club{}, fmt.Errorf("failed to get club: %w", err)
	}

	return c, nil
}

func (r *clubRepository) Update(ctx context.Context, id string, req club.UpdateClubRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clubs SET
			name = COALESCE($2, name),
			address = COALESCE($3, address),
			timezone = COALESCE($4, timezone),
			is_active = COALESCE($5, is_active),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, req.Name, req.Address, req.Timezone, req.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update club: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return club.ErrClubNotFound
	}

	return nil
}

func (r *clubRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE clubs SET is_active = false, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return club.ErrClubNotFound
	}

	return nil
}
