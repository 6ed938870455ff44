package club

import "github.com/clubops/clubops-backend-go/internal/pkg/validator"

type CreateClubRequest struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

func (r *CreateClubRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
	}
	if validator.IsEmpty(r.Slug) {
		errs = append(errs, validator.ValidationError{Field: "slug", Message: "slug is required"})
	} else if !validator.IsValidClubSlug(r.Slug) {
		errs = append(errs, validator.ValidationError{Field: "slug", Message: "slug must be 3-50 characters of lowercase letters, numbers, and hyphens"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateClubRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateClubRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Name != nil && len(*r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClubResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Address  *string `json:"address,omitempty"`
	Timezone string  `json:"timezone"`
	IsActive bool    `json:"is_active"`
}
