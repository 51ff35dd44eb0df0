package response

import (
	"errors"
	"net/http"

	"github.com/crewlog/crewlog-backend/internal/domain/auth"
	"github.com/crewlog/crewlog-backend/internal/domain/facility"
	"github.com/crewlog/crewlog-backend/internal/domain/feedback"
	"github.com/crewlog/crewlog-backend/internal/domain/holiday"
	"github.com/crewlog/crewlog-backend/internal/domain/project"
	"github.com/crewlog/crewlog-backend/internal/domain/stack"
	"github.com/crewlog/crewlog-backend/internal/domain/timelog"
	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
	"github.com/crewlog/crewlog-backend/internal/domain/worklog"
	"github.com/crewlog/crewlog-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrPhoneExists):
		Conflict(w, "Phone number already registered")
	case errors.Is(err, user.ErrAlreadyTerminated):
		Conflict(w, "User is already terminated")
	case errors.Is(err, user.ErrOwnerRequired):
		Forbidden(w, "Owner access required")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectNameExists):
		Conflict(w, "Project name already exists")
	case errors.Is(err, project.ErrFilterNotAllowed):
		Forbidden(w, "Filtering is restricted to admins")

	// Timelog domain errors
	case errors.Is(err, timelog.ErrTimelogNotFound):
		NotFound(w, "Timelog not found")
	case errors.Is(err, timelog.ErrNotYourTimelog):
		Forbidden(w, "Timelog belongs to another user")
	case errors.Is(err, timelog.ErrPastMonth):
		BadRequest(w, "Cannot log time before the current month", nil)

	// Vacation domain errors
	case errors.Is(err, vacation.ErrVacationNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrNoPaidVacationsLeft):
		BadRequest(w, "No paid vacation days left this year", nil)
	case errors.Is(err, vacation.ErrNoPaidSickDaysLeft):
		BadRequest(w, "No paid sick days left this year", nil)
	case errors.Is(err, vacation.ErrPastMonth):
		BadRequest(w, "Cannot request leave before the current month", nil)
	case errors.Is(err, vacation.ErrUserTerminated):
		BadRequest(w, "User no longer works here", nil)
	case errors.Is(err, vacation.ErrAlreadyProcessed):
		Conflict(w, "Vacation request already processed")

	// Worklog query errors
	case errors.Is(err, worklog.ErrInvalidUserID):
		BadRequest(w, "Malformed user id", nil)
	case errors.Is(err, worklog.ErrInvalidProjectID):
		BadRequest(w, "Malformed project id", nil)
	case errors.Is(err, worklog.ErrInvalidLogType):
		BadRequest(w, "Unknown log type", nil)
	case errors.Is(err, worklog.ErrInvalidVacationType):
		BadRequest(w, "Unknown vacation type", nil)
	case errors.Is(err, worklog.ErrInvalidDate):
		BadRequest(w, "Malformed date", nil)

	// Reference data errors
	case errors.Is(err, stack.ErrStackNotFound):
		NotFound(w, "Stack not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, facility.ErrFacilityNotFound):
		NotFound(w, "Facility not found")
	case errors.Is(err, feedback.ErrFeedbackNotFound):
		NotFound(w, "Feedback not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
