package club

import "time"

// Club is the tenant root: every employee, scheme, shift, and maintenance
// record hangs off a club.
type Club struct {
	ID          string
	OwnerUserID string
	Name        string
	Slug        string
	Address     *string
	Timezone    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
