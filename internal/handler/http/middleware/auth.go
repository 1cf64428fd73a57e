package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workzen/workzen-backend-go/internal/domain/auth"
	"github.com/workzen/workzen-backend-go/internal/domain/user"
	"github.com/workzen/workzen-backend-go/internal/handler/http/response"
)

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

// ActorFromContext builds the acting user from verified token claims.
// Must run behind AuthRequired; returns an error otherwise.
func ActorFromContext(r *http.Request) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Actor{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Actor{}, auth.ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok || !user.IsValidRole(user.Role(role)) {
		return user.Actor{}, auth.ErrInvalidToken
	}

	return user.Actor{ID: userID, Role: user.Role(role)}, nil
}
