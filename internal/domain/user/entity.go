package user

import "time"

// Role enum
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
)

func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleManager
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	GoogleID     *string
	ClubID       *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
