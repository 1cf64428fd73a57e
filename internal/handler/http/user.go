package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workzen/workzen-backend-go/internal/domain/auth"
	"github.com/workzen/workzen-backend-go/internal/domain/user"
	"github.com/workzen/workzen-backend-go/internal/handler/http/middleware"
	"github.com/workzen/workzen-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AssignCounselor(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
	authService auth.AuthService
}

func NewUserHandler(userService user.UserService, authService auth.AuthService) UserHandler {
	return &UserHandlerImpl{
		userService: userService,
		authService: authService,
	}
}

// Create implements UserHandler. HOD only; unlike self-registration it may
// set any role and a counselor reference.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var registerReq user.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.authService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", created)
}

// Get implements UserHandler.
func (h *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.userService.Get(r.Context(), actor, chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	users, err := h.userService.List(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// AssignCounselor implements UserHandler.
func (h *UserHandlerImpl) AssignCounselor(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var assignReq user.AssignCounselorRequest
	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("AssignCounselor decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	assignReq.UserID = chi.URLParam(r, "userID")

	if err := h.userService.AssignCounselor(r.Context(), actor, assignReq); err != nil {
		slog.Error("AssignCounselor service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Counselor assigned", nil)
}
