package middleware

import (
	"net/http"

	"github.com/crewlog/crewlog-backend/internal/domain/auth"
	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a valid access token. Refresh tokens
// are not accepted here.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// Claims pulls the identity fields out of the verified token. ok is false
// when the token is missing or malformed.
func Claims(r *http.Request) (userID string, position user.Position, role user.Role, ok bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", "", false
	}
	userID, ok = claims["user_id"].(string)
	if !ok {
		return "", "", "", false
	}
	positionStr, _ := claims["position"].(string)
	roleStr, _ := claims["role"].(string)
	return userID, user.Position(positionStr), user.Role(roleStr), true
}
