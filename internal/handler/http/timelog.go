package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewlog/crewlog-backend/internal/domain/auth"
	"github.com/crewlog/crewlog-backend/internal/domain/timelog"
	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/handler/http/middleware"
	"github.com/crewlog/crewlog-backend/internal/handler/http/response"
	timelogService "github.com/crewlog/crewlog-backend/internal/service/timelog"
	"github.com/go-chi/chi/v5"
)

type TimelogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Change(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimelogHandlerImpl struct {
	timelogService *timelogService.Service
}

func NewTimelogHandler(svc *timelogService.Service) TimelogHandler {
	return &TimelogHandlerImpl{timelogService: svc}
}

func caller(r *http.Request) (user.User, bool) {
	userID, position, role, ok := middleware.Claims(r)
	if !ok {
		return user.User{}, false
	}
	return user.User{ID: userID, Position: position, Role: role}, true
}

// Create implements TimelogHandler. Entries always belong to the caller.
func (h *TimelogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq timelog.CreateTimelogRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.timelogService.Create(r.Context(), c.ID, chi.URLParam(r, "projectID"), createReq)
	if err != nil {
		slog.Error("Create timelog service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Timelog created", created)
}

// Get implements TimelogHandler.
func (h *TimelogHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	t, err := h.timelogService.Get(r.Context(), chi.URLParam(r, "id"), c)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

// Change implements TimelogHandler.
func (h *TimelogHandlerImpl) Change(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var changeReq timelog.ChangeTimelogRequest
	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.timelogService.Change(r.Context(), chi.URLParam(r, "id"), changeReq, c)
	if err != nil {
		slog.Error("Change timelog service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements TimelogHandler.
func (h *TimelogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.timelogService.Delete(r.Context(), chi.URLParam(r, "id"), c); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Timelog deleted", nil)
}
