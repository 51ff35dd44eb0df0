package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewlog/crewlog-backend/internal/domain/facility"
	"github.com/crewlog/crewlog-backend/internal/domain/feedback"
	"github.com/crewlog/crewlog-backend/internal/handler/http/response"
	catalogService "github.com/crewlog/crewlog-backend/internal/service/catalog"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler interface {
	CreateStack(w http.ResponseWriter, r *http.Request)
	ListStacks(w http.ResponseWriter, r *http.Request)
	DeleteStack(w http.ResponseWriter, r *http.Request)

	CreateFacility(w http.ResponseWriter, r *http.Request)
	ListFacilities(w http.ResponseWriter, r *http.Request)
	UpdateFacility(w http.ResponseWriter, r *http.Request)
	DeleteFacility(w http.ResponseWriter, r *http.Request)

	CreateFeedback(w http.ResponseWriter, r *http.Request)
	ListFeedbacks(w http.ResponseWriter, r *http.Request)
	SetFeedbackShown(w http.ResponseWriter, r *http.Request)
	DeleteFeedback(w http.ResponseWriter, r *http.Request)
}

type CatalogHandlerImpl struct {
	catalogService *catalogService.Service
}

func NewCatalogHandler(svc *catalogService.Service) CatalogHandler {
	return &CatalogHandlerImpl{catalogService: svc}
}

// CreateStack implements CatalogHandler.
func (h *CatalogHandlerImpl) CreateStack(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.catalogService.CreateStack(r.Context(), body.Name)
	if err != nil {
		slog.Error("CreateStack service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Stack created", created)
}

// ListStacks implements CatalogHandler.
func (h *CatalogHandlerImpl) ListStacks(w http.ResponseWriter, r *http.Request) {
	stacks, err := h.catalogService.ListStacks(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stacks)
}

// DeleteStack implements CatalogHandler.
func (h *CatalogHandlerImpl) DeleteStack(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteStack(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Stack deleted", nil)
}

// CreateFacility implements CatalogHandler.
func (h *CatalogHandlerImpl) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var body facility.Facility
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.catalogService.CreateFacility(r.Context(), body)
	if err != nil {
		slog.Error("CreateFacility service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Facility created", created)
}

// ListFacilities implements CatalogHandler.
func (h *CatalogHandlerImpl) ListFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.catalogService.ListFacilities(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, facilities)
}

// UpdateFacility implements CatalogHandler.
func (h *CatalogHandlerImpl) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	var body facility.Facility
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	body.ID = chi.URLParam(r, "id")

	if err := h.catalogService.UpdateFacility(r.Context(), body); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, body)
}

// DeleteFacility implements CatalogHandler.
func (h *CatalogHandlerImpl) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteFacility(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Facility deleted", nil)
}

// CreateFeedback implements CatalogHandler. Open to the public site, hence
// no auth; new entries stay hidden until approved.
func (h *CatalogHandlerImpl) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var createReq feedback.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.catalogService.CreateFeedback(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateFeedback service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Feedback received", created)
}

// ListFeedbacks implements CatalogHandler. ?all=true includes hidden entries
// and is admin-gated at the router.
func (h *CatalogHandlerImpl) ListFeedbacks(w http.ResponseWriter, r *http.Request) {
	includeHidden := r.URL.Query().Get("all") == "true"
	feedbacks, err := h.catalogService.ListFeedbacks(r.Context(), includeHidden)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, feedbacks)
}

// SetFeedbackShown implements CatalogHandler.
func (h *CatalogHandlerImpl) SetFeedbackShown(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IsShown bool `json:"isShown"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.catalogService.SetFeedbackShown(r.Context(), chi.URLParam(r, "id"), body.IsShown); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Feedback updated", nil)
}

// DeleteFeedback implements CatalogHandler.
func (h *CatalogHandlerImpl) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteFeedback(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Feedback deleted", nil)
}
