package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/workzen/workzen-backend-go/internal/domain/leave"
	"github.com/workzen/workzen-backend-go/internal/domain/user"
	"github.com/workzen/workzen-backend-go/internal/handler/http/middleware"
	"github.com/workzen/workzen-backend-go/internal/handler/http/response"
	"github.com/workzen/workzen-backend-go/internal/pkg/validator"
)

// maxUploadMemory caps the in-memory portion of multipart parsing.
const maxUploadMemory = 8 << 20

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
	AttachDocument(w http.ResponseWriter, r *http.Request)
	DetachDocument(w http.ResponseWriter, r *http.Request)
	ListDocuments(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler. Accepts multipart form data so documents can
// ride along with the request, or plain JSON when there are none.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var applyReq leave.ApplyLeaveRequest
	var closers []multipart.File
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			slog.Error("Apply multipart parse error", "error", err)
			response.BadRequest(w, "Invalid multipart form", nil)
			return
		}

		applyReq = leave.ApplyLeaveRequest{
			LeaveType: r.FormValue("leave_type"),
			StartDate: r.FormValue("start_date"),
			EndDate:   r.FormValue("end_date"),
			Reason:    r.FormValue("reason"),
		}

		for _, header := range r.MultipartForm.File["documents"] {
			f, err := header.Open()
			if err != nil {
				slog.Error("Apply document open error", "error", err)
				response.BadRequest(w, "Unreadable document in form", nil)
				return
			}
			closers = append(closers, f)
			applyReq.Documents = append(applyReq.Documents, leave.DocumentUpload{
				File:         f,
				Filename:     header.Filename,
				Size:         header.Size,
				DocumentType: r.FormValue("document_type"),
			})
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
			slog.Error("Apply decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	created, err := h.leaveService.Apply(r.Context(), actor, applyReq)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave applied", "leave_id", created.ID, "user_id", actor.ID)
	response.Created(w, "Leave request submitted", created)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.leaveService.Approve, "Leave request approved")
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.leaveService.Reject, "Leave request rejected")
}

func (h *LeaveHandlerImpl) resolve(w http.ResponseWriter, r *http.Request, fn func(context.Context, user.Actor, string) error, message string) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaveID := chi.URLParam(r, "leaveID")
	if err := fn(r.Context(), actor, leaveID); err != nil {
		slog.Error("Resolve leave service error", "leave_id", leaveID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave resolved", "leave_id", leaveID, "by", actor.ID)
	response.SuccessWithMessage(w, message, nil)
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.leaveService.Get(r.Context(), actor, chi.URLParam(r, "leaveID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements LeaveHandler. Scope comes from the actor's role; query
// params only narrow within it.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := leave.LeaveFilter{}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("leave_type"); v != "" {
		filter.LeaveType = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		if date, ok := validator.IsValidDate(v); ok {
			filter.StartDate = &date
		}
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		if date, ok := validator.IsValidDate(v); ok {
			filter.EndDate = &date
		}
	}

	leaves, err := h.leaveService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaves, err := h.leaveService.ListMine(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// Stats implements LeaveHandler.
func (h *LeaveHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.leaveService.Stats(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Balances implements LeaveHandler. Defaults to the caller and current year.
func (h *LeaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = actor.ID
	}

	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	balances, err := h.leaveService.Balances(r.Context(), actor, userID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// AttachDocument implements LeaveHandler.
func (h *LeaveHandlerImpl) AttachDocument(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		slog.Error("AttachDocument multipart parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, header, err := r.FormFile("document")
	if err != nil {
		response.BadRequest(w, "document file is required", nil)
		return
	}
	defer f.Close()

	doc, err := h.leaveService.AttachDocument(r.Context(), actor, chi.URLParam(r, "leaveID"), leave.DocumentUpload{
		File:         f,
		Filename:     header.Filename,
		Size:         header.Size,
		DocumentType: r.FormValue("document_type"),
	})
	if err != nil {
		slog.Error("AttachDocument service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document attached", doc)
}

// DetachDocument implements LeaveHandler.
func (h *LeaveHandlerImpl) DetachDocument(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.leaveService.DetachDocument(r.Context(), actor, chi.URLParam(r, "documentID")); err != nil {
		slog.Error("DetachDocument service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document removed", nil)
}

// ListDocuments implements LeaveHandler.
func (h *LeaveHandlerImpl) ListDocuments(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	docs, err := h.leaveService.ListDocuments(r.Context(), actor, chi.URLParam(r, "leaveID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, docs)
}
