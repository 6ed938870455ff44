package compensation

import "github.com/clubops/clubops-backend-go/internal/pkg/validator"

type CreateSchemeRequest struct {
	Name     string         `json:"name"`
	Document SchemeDocument `json:"document"`
}

func (r *CreateSchemeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
	}
	// The document is not validated beyond its JSON shape; malformed rules
	// degrade to zero at evaluation time.

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NewVersionRequest struct {
	SchemeID string         `json:"-"`
	Document SchemeDocument `json:"document"`
}

type SchemeResponse struct {
	ID        string         `json:"id"`
	ClubID    string         `json:"club_id"`
	Name      string         `json:"name"`
	Version   int            `json:"version"`
	Document  SchemeDocument `json:"document"`
	CreatedAt string         `json:"created_at"`
}
