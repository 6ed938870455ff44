package employee

import "time"

type Employee struct {
	ID        string
	ClubID    string
	Name      string
	Code      string
	SchemeID  *string
	IsActive  bool
	HiredAt   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	SchemeName *string
}
