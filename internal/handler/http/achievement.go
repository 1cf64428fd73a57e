package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workzen/workzen-backend-go/internal/domain/achievement"
	"github.com/workzen/workzen-backend-go/internal/handler/http/middleware"
	"github.com/workzen/workzen-backend-go/internal/handler/http/response"
)

type AchievementHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AchievementHandlerImpl struct {
	achievementService achievement.AchievementService
}

func NewAchievementHandler(achievementService achievement.AchievementService) AchievementHandler {
	return &AchievementHandlerImpl{achievementService: achievementService}
}

// Upload implements AchievementHandler.
func (h *AchievementHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		slog.Error("Upload achievement multipart parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	uploadReq := achievement.UploadAchievementRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	if f, header, err := r.FormFile("file"); err == nil {
		defer f.Close()
		uploadReq.File = f
		uploadReq.Filename = header.Filename
		uploadReq.Size = header.Size
	}

	created, err := h.achievementService.Upload(r.Context(), actor, uploadReq)
	if err != nil {
		slog.Error("Upload achievement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Achievement uploaded", created)
}

// List implements AchievementHandler.
func (h *AchievementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.achievementService.List(r.Context(), actor, r.URL.Query().Get("user_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Delete implements AchievementHandler.
func (h *AchievementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.achievementService.Delete(r.Context(), actor, chi.URLParam(r, "achievementID")); err != nil {
		slog.Error("Delete achievement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Achievement deleted", nil)
}
