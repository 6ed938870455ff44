package club

import "errors"

var (
	ErrClubNotFound   = errors.New("club not found")
	ErrClubSlugExists = errors.New("club slug already taken")
	ErrNotClubOwner   = errors.New("user does not own this club")
)
