package employee

import "github.com/clubops/clubops-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	Name    string  `json:"name"`
	Code    string  `json:"code"`
	HiredAt *string `json:"hired_at,omitempty"` // YYYY-MM-DD, defaults to today
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	} else if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must match NNNN-NNNN"})
	}
	if r.HiredAt != nil {
		if _, ok := validator.IsValidDate(*r.HiredAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "hired_at", Message: "hired_at must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID       string
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type AssignSchemeRequest struct {
	EmployeeID string `json:"-"`
	SchemeID   string `json:"scheme_id"`
}

func (r *AssignSchemeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SchemeID) {
		errs = append(errs, validator.ValidationError{Field: "scheme_id", Message: "scheme_id is required"})
	} else if !validator.IsValidUUID(r.SchemeID) {
		errs = append(errs, validator.ValidationError{Field: "scheme_id", Message: "scheme_id must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	ClubID     string  `json:"club_id"`
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	SchemeID   *string `json:"scheme_id,omitempty"`
	SchemeName *string `json:"scheme_name,omitempty"`
	IsActive   bool    `json:"is_active"`
	HiredAt    string  `json:"hired_at"`
}
