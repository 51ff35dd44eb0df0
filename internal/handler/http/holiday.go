package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/holiday"
	"github.com/crewlog/crewlog-backend/internal/handler/http/response"
	"github.com/crewlog/crewlog-backend/internal/pkg/validator"
	worklogService "github.com/crewlog/crewlog-backend/internal/service/worklog"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayRepo holiday.Repository
}

func NewHolidayHandler(holidayRepo holiday.Repository) HolidayHandler {
	return &HolidayHandlerImpl{holidayRepo: holidayRepo}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date string `json:"date"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(body.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(body.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	date, _ := worklogService.ParseDate(body.Date)
	created, err := h.holidayRepo.Create(r.Context(), holiday.Holiday{Date: date, Name: body.Name})
	if err != nil {
		slog.Error("Create holiday error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Holiday created", created)
}

// List implements HolidayHandler. Defaults to the current calendar year,
// narrowed by ?year=.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year := time.Now().UTC().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		if parsed, err := time.Parse("2006", v); err == nil {
			year = parsed.Year()
		}
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	holidays, err := h.holidayRepo.List(r.Context(), from, to)
	if err != nil {
		slog.Error("List holidays error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, holidays)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
