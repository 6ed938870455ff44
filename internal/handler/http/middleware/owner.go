package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/auth"
	"github.com/clubops/clubops-backend-go/internal/domain/user"
	"github.com/clubops/clubops-backend-go/internal/handler/http/response"
)

// OwnerOnly restricts scheme and config management to the club owner.
func OwnerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) != user.RoleOwner {
			response.HandleError(w, user.ErrOwnerPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
