package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/auth"
	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/handler/http/middleware"
	"github.com/crewlog/crewlog-backend/internal/handler/http/response"
	userService "github.com/crewlog/crewlog-backend/internal/service/user"
	worklogService "github.com/crewlog/crewlog-backend/internal/service/worklog"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Terminate(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService *userService.Service
}

func NewUserHandler(svc *userService.Service) UserHandler {
	return &UserHandlerImpl{userService: svc}
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, _, role, ok := middleware.Claims(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	users, err := h.userService.List(r.Context(), role)
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

// Get implements UserHandler.
func (h *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	callerID, _, role, ok := middleware.Claims(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	u, err := h.userService.Get(r.Context(), chi.URLParam(r, "id"), role, callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, u)
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "User created", created)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.userService.Update(r.Context(), chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Terminate implements UserHandler. The end date defaults to today.
func (h *UserHandlerImpl) Terminate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		EndDate string `json:"endDate"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	endDate := worklogService.NormalizeDate(time.Now().UTC())
	if body.EndDate != "" {
		parsed, err := worklogService.ParseDate(body.EndDate)
		if err != nil {
			response.BadRequest(w, "Malformed date", nil)
			return
		}
		endDate = parsed
	}

	if err := h.userService.Terminate(r.Context(), chi.URLParam(r, "id"), endDate); err != nil {
		slog.Error("Terminate user service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User terminated", nil)
}
