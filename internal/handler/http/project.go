package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/crewlog/crewlog-backend/internal/domain/auth"
	"github.com/crewlog/crewlog-backend/internal/domain/project"
	"github.com/crewlog/crewlog-backend/internal/handler/http/middleware"
	"github.com/crewlog/crewlog-backend/internal/handler/http/response"
	projectService "github.com/crewlog/crewlog-backend/internal/service/project"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	Find(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService *projectService.Service
}

func NewProjectHandler(svc *projectService.Service) ProjectHandler {
	return &ProjectHandlerImpl{projectService: svc}
}

func parseProjectFilter(r *http.Request) project.Filter {
	var filter project.Filter
	q := r.URL.Query()
	if v := q.Get("uid"); v != "" {
		filter.UserID = &v
	}
	if v := q.Get("stack"); v != "" {
		filter.StackID = &v
	}
	if v := q.Get("isActive"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.IsActive = &b
		}
	}
	if v := q.Get("isInternal"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.IsInternal = &b
		}
	}
	return filter
}

// Find implements ProjectHandler.
func (h *ProjectHandlerImpl) Find(w http.ResponseWriter, r *http.Request) {
	_, _, role, ok := middleware.Claims(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	projects, err := h.projectService.Find(r.Context(), parseProjectFilter(r), role)
	if err != nil {
		slog.Error("Find projects service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, projects)
}

// Get implements ProjectHandler.
func (h *ProjectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.projectService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.projectService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create project service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Project created", created)
}

// Update implements ProjectHandler.
func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.projectService.Update(r.Context(), chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("Update project service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements ProjectHandler.
func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Project deleted", nil)
}
