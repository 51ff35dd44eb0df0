package middleware

import (
	"net/http"

	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/handler/http/response"
)

// RequireAdmin requires the admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, role, ok := Claims(r)
		if !ok || role != user.RoleAdmin {
			response.HandleError(w, user.ErrOwnerRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireOwnerPosition requires the owner position, independent of role.
func RequireOwnerPosition(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, position, _, ok := Claims(r)
		if !ok || position != user.PositionOwner {
			response.HandleError(w, user.ErrOwnerRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
