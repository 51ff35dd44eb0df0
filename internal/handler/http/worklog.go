package http

import (
	"log/slog"
	"net/http"

	"github.com/crewlog/crewlog-backend/internal/domain/auth"
	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
	"github.com/crewlog/crewlog-backend/internal/domain/worklog"
	"github.com/crewlog/crewlog-backend/internal/handler/http/middleware"
	"github.com/crewlog/crewlog-backend/internal/handler/http/response"
	vacationService "github.com/crewlog/crewlog-backend/internal/service/vacation"
	worklogService "github.com/crewlog/crewlog-backend/internal/service/worklog"
	"github.com/go-chi/chi/v5"
)

type WorklogHandler interface {
	FindLogs(w http.ResponseWriter, r *http.Request)
	FindLogsByDate(w http.ResponseWriter, r *http.Request)
}

type WorklogHandlerImpl struct {
	worklogService  *worklogService.Service
	vacationService *vacationService.Service
}

func NewWorklogHandler(worklogSvc *worklogService.Service, vacationSvc *vacationService.Service) WorklogHandler {
	return &WorklogHandlerImpl{
		worklogService:  worklogSvc,
		vacationService: vacationSvc,
	}
}

// parseQuery builds the aggregation query from the URL. Non-owners are
// pinned to their own uid, whatever the query string says.
func parseQuery(r *http.Request) (worklog.Query, error) {
	userID, position, _, ok := middleware.Claims(r)
	if !ok {
		return worklog.Query{}, auth.ErrInvalidToken
	}

	first, err := worklogService.ParseDate(chi.URLParam(r, "first"))
	if err != nil {
		return worklog.Query{}, worklog.ErrInvalidDate
	}
	logType, err := worklog.ParseLogType(chi.URLParam(r, "logType"))
	if err != nil {
		return worklog.Query{}, err
	}

	q := worklog.Query{First: first, LogType: logType}

	values := r.URL.Query()
	if v := values.Get("uid"); v != "" {
		q.UserID = &v
	}
	if v := values.Get("project"); v != "" {
		q.ProjectID = &v
	}
	if v := values.Get("type"); v != "" {
		vt := vacation.Type(v)
		q.VacationType = &vt
	}

	if position != user.PositionOwner {
		q.UserID = &userID
	}

	return q, nil
}

// FindLogs implements WorklogHandler. Month calendar view plus statistics.
func (h *WorklogHandlerImpl) FindLogs(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	logs, err := h.worklogService.FindLogs(r.Context(), q)
	if err != nil {
		slog.Error("FindLogs service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, logs)
}

// FindLogsByDate implements WorklogHandler. Single-day drill-down; paid
// leave balances ride along when a specific user was asked for.
func (h *WorklogHandlerImpl) FindLogsByDate(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.worklogService.FindLogsByDate(r.Context(), q)
	if err != nil {
		slog.Error("FindLogsByDate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	result := worklog.DayLogsResponse{Logs: records}
	if q.UserID != nil {
		if count, err := h.vacationService.AvailableCount(r.Context(), *q.UserID, vacation.TypeVacationPaid); err == nil {
			result.VacationAvailable = &count
		}
		if count, err := h.vacationService.AvailableCount(r.Context(), *q.UserID, vacation.TypeSickPaid); err == nil {
			result.SickAvailable = &count
		}
	}
	response.Success(w, result)
}
