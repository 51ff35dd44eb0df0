package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewlog/crewlog-backend/internal/domain/auth"
	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
	"github.com/crewlog/crewlog-backend/internal/handler/http/middleware"
	"github.com/crewlog/crewlog-backend/internal/handler/http/response"
	vacationService "github.com/crewlog/crewlog-backend/internal/service/vacation"
	"github.com/go-chi/chi/v5"
)

type VacationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	StatusChange(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	VacationCount(w http.ResponseWriter, r *http.Request)
	SickCount(w http.ResponseWriter, r *http.Request)
}

type VacationHandlerImpl struct {
	vacationService *vacationService.Service
	userRepo        user.Repository
}

func NewVacationHandler(svc *vacationService.Service, userRepo user.Repository) VacationHandler {
	return &VacationHandlerImpl{vacationService: svc, userRepo: userRepo}
}

// Create implements VacationHandler. Requests are always filed for the
// caller.
func (h *VacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, _, ok := middleware.Claims(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq vacation.CreateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.vacationService.Create(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("Create vacation service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Vacation request created", created)
}

// StatusChange implements VacationHandler. The acting owner is loaded so the
// notification can name them and skip their own Slack handle.
func (h *VacationHandlerImpl) StatusChange(w http.ResponseWriter, r *http.Request) {
	actorID, _, _, ok := middleware.Claims(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var changeReq vacation.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := changeReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	actor, err := h.userRepo.GetByID(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.vacationService.StatusChange(r.Context(), chi.URLParam(r, "id"), changeReq, actor)
	if err != nil {
		slog.Error("StatusChange vacation service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Pending implements VacationHandler.
func (h *VacationHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.vacationService.Pending(r.Context())
	if err != nil {
		slog.Error("Pending vacations service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, pending)
}

// VacationCount implements VacationHandler.
func (h *VacationHandlerImpl) VacationCount(w http.ResponseWriter, r *http.Request) {
	h.count(w, r, vacation.TypeVacationPaid)
}

// SickCount implements VacationHandler.
func (h *VacationHandlerImpl) SickCount(w http.ResponseWriter, r *http.Request) {
	h.count(w, r, vacation.TypeSickPaid)
}

func (h *VacationHandlerImpl) count(w http.ResponseWriter, r *http.Request, t vacation.Type) {
	count, err := h.vacationService.AvailableCount(r.Context(), chi.URLParam(r, "uid"), t)
	if err != nil {
		slog.Error("AvailableCount service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]int{"count": count})
}
