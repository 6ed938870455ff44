package response

import (
	"errors"
	"net/http"

	"github.com/clubops/clubops-backend-go/internal/domain/auth"
	"github.com/clubops/clubops-backend-go/internal/domain/club"
	"github.com/clubops/clubops-backend-go/internal/domain/compensation"
	"github.com/clubops/clubops-backend-go/internal/domain/employee"
	"github.com/clubops/clubops-backend-go/internal/domain/maintenance"
	"github.com/clubops/clubops-backend-go/internal/domain/shift"
	"github.com/clubops/clubops-backend-go/internal/domain/user"
	"github.com/clubops/clubops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, "Google login is not configured", nil)
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrOwnerPrivilegeRequired):
		Forbidden(w, "Owner privilege required")

	// Club domain errors
	case errors.Is(err, club.ErrClubNotFound), errors.Is(err, auth.ErrClubNotFound):
		NotFound(w, "Club not found")
	case errors.Is(err, club.ErrClubSlugExists):
		Conflict(w, "Club slug already taken")
	case errors.Is(err, club.ErrNotClubOwner):
		Forbidden(w, "Not the club owner")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)
	case errors.Is(err, employee.ErrNoSchemeAssigned):
		BadRequest(w, "Employee has no compensation scheme assigned", nil)

	// Compensation domain errors
	case errors.Is(err, compensation.ErrSchemeNotFound):
		NotFound(w, "Compensation scheme not found")
	case errors.Is(err, compensation.ErrSchemeNameExists):
		Conflict(w, "Compensation scheme name already exists")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftAlreadyOpen):
		Conflict(w, "Employee already has an open shift")
	case errors.Is(err, shift.ErrShiftAlreadyClosed), errors.Is(err, shift.ErrShiftNotOpen):
		Conflict(w, "Shift is not open")

	// Maintenance domain errors
	case errors.Is(err, maintenance.ErrTaskNotFound):
		NotFound(w, "Maintenance task not found")
	case errors.Is(err, maintenance.ErrTaskAlreadyCompleted):
		Conflict(w, "Maintenance task already completed")
	case errors.Is(err, maintenance.ErrTaskNotCompleted):
		Conflict(w, "Maintenance task is not completed")
	case errors.Is(err, maintenance.ErrInvalidTaskType):
		BadRequest(w, "Invalid maintenance task type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
