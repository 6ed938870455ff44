package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/user"
	"github.com/clubops/clubops-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, password_hash, name, role, google_id, club_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, password_hash, name, role, google_id, club_id, is_active, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		u.Email, u.PasswordHash, u.Name, u.Role, u.GoogleID, u.ClubID,
	).Scan(
		&created.ID, &created.Email, &created.PasswordHash, &created.Name, &created.Role,
		&created.GoogleID, &created.ClubID, &created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_users_email") {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *userRepository) GetByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	return r.getBy(ctx, "google_id = $1", googleID)
}

func (r *userRepository) getBy(ctx context.Context, where string, arg any) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, name, role, google_id, club_id, is_active, created_at, updated_at
		FROM users
		WHERE ` + where

	var u user.User
	err := q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
		&u.GoogleID, &u.ClubID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (r *userRepository) SetClubID(ctx context.Context, userID string, clubID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET club_id = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, userID, clubID)
	if err != nil {
		return fmt.Errorf("failed to set user club: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
