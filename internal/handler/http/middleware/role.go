package middleware

import (
	"net/http"

	"github.com/workzen/workzen-backend-go/internal/domain/user"
	"github.com/workzen/workzen-backend-go/internal/handler/http/response"
)

// RequireApprover admits counselors and the HOD.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !actor.CanApprove() {
			response.HandleError(w, user.ErrApproverRoleOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireHOD admits the HOD only.
func RequireHOD(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !actor.IsHOD() {
			response.HandleError(w, user.ErrHODAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
