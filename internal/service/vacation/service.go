package vacation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewlog/crewlog-backend/internal/config"
	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/domain/vacation"
	"github.com/crewlog/crewlog-backend/internal/pkg/slack"
	worklogService "github.com/crewlog/crewlog-backend/internal/service/worklog"
)

// Service owns leave requests: the yearly entitlement calculation, the
// policy checks at creation, approval/rejection and the Slack fan-out.
type Service struct {
	vacationRepo vacation.Repository
	userRepo     user.Repository
	notifier     slack.Notifier
	caps         config.LeaveConfig
}

func NewService(vacationRepo vacation.Repository, userRepo user.Repository, notifier slack.Notifier, caps config.LeaveConfig) *Service {
	return &Service{
		vacationRepo: vacationRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		caps:         caps,
	}
}

// Create validates the request against employment and entitlement policy,
// persists it as pending and notifies the owners. The entitlement check and
// the insert are not transactionally isolated; two concurrent requests can
// both pass the check. Accepted for this domain.
func (s *Service) Create(ctx context.Context, userID string, req vacation.CreateVacationRequest) (vacation.Vacation, error) {
	if err := req.Validate(); err != nil {
		return vacation.Vacation{}, err
	}

	requester, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return vacation.Vacation{}, err
	}
	if !requester.Employed() {
		return vacation.Vacation{}, vacation.ErrUserTerminated
	}

	parsed, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("parse date: %w", err)
	}
	date := worklogService.NormalizeDate(parsed)

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if date.Before(monthStart) {
		return vacation.Vacation{}, vacation.ErrPastMonth
	}

	if req.Type.Paid() {
		available, err := s.AvailableCount(ctx, userID, req.Type)
		if err != nil {
			return vacation.Vacation{}, err
		}
		if available < 1 {
			if req.Type == vacation.TypeSickPaid {
				return vacation.Vacation{}, vacation.ErrNoPaidSickDaysLeft
			}
			return vacation.Vacation{}, vacation.ErrNoPaidVacationsLeft
		}
	}

	created, err := s.vacationRepo.Create(ctx, vacation.Vacation{
		UserID: userID,
		Date:   date,
		Type:   req.Type,
		Status: vacation.StatusPending,
		Desc:   req.Desc,
	})
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("create vacation: %w", err)
	}

	s.notifyOwners(ctx, fmt.Sprintf(
		"%s You have request for %s\n*From*: %s.\n*Date*: %s.\n*Reason*: %s.",
		typeEmoji(req.Type), req.Type.Describe(), requester.FullName(),
		date.Format("Monday, 1/2/2006"), req.Desc,
	), nil)

	return created, nil
}

// StatusChange approves or rejects a pending request and notifies the
// requester plus the other owners. The state change commits even when every
// notification fails.
func (s *Service) StatusChange(ctx context.Context, vacationID string, req vacation.ChangeStatusRequest, actor user.User) (vacation.Vacation, error) {
	current, err := s.vacationRepo.GetByID(ctx, vacationID)
	if err != nil {
		return vacation.Vacation{}, err
	}
	if current.Status != vacation.StatusPending {
		return vacation.Vacation{}, vacation.ErrAlreadyProcessed
	}

	updated, err := s.vacationRepo.UpdateStatus(ctx, vacationID, req.Status)
	if err != nil {
		return vacation.Vacation{}, err
	}

	requester, err := s.userRepo.GetByID(ctx, updated.UserID)
	if err != nil {
		return vacation.Vacation{}, err
	}

	message := fmt.Sprintf(
		"%s Your request for %s has been %s\n*Date*: %s\n*%s by*: %s",
		statusEmoji(req.Status), updated.Type.Describe(), req.Status,
		updated.Date.Format("Monday, 1/2/2006"),
		statusVerb(req.Status), actor.FullName(),
	)

	if requester.Slack != nil {
		s.send(ctx, *requester.Slack, message)
	}
	ownerMessage := fmt.Sprintf(
		"%s Request from %s for %s has been %s\n*Date*: %s\n*%s by*: %s",
		statusEmoji(req.Status), requester.FullName(), updated.Type.Describe(), req.Status,
		updated.Date.Format("Monday, 1/2/2006"),
		statusVerb(req.Status), actor.FullName(),
	)
	s.notifyOwners(ctx, ownerMessage, actor.Slack)

	return updated, nil
}

// Pending lists requests awaiting a decision, with requester info.
func (s *Service) Pending(ctx context.Context) ([]vacation.WithRequester, error) {
	return s.vacationRepo.Pending(ctx)
}

// AvailableCount returns the remaining paid-leave balance for the user's
// current calendar year: max(0, cap - approved entries of the type). The
// year is always the year of now, regardless of any queried window.
func (s *Service) AvailableCount(ctx context.Context, userID string, t vacation.Type) (int, error) {
	limit, err := s.capFor(ctx, userID, t)
	if err != nil {
		return 0, err
	}
	return s.availableAt(ctx, userID, t, limit, time.Now().UTC())
}

func (s *Service) availableAt(ctx context.Context, userID string, t vacation.Type, limit int, now time.Time) (int, error) {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	spent, err := s.vacationRepo.CountApproved(ctx, userID, t, start, end)
	if err != nil {
		return 0, fmt.Errorf("count approved leave: %w", err)
	}
	if spent >= limit {
		return 0, nil
	}
	return limit - spent, nil
}

// capFor resolves the yearly cap: paid vacation honors the per-user
// override, paid sick uses the configured default. Unpaid types are not
// gated and never reach here through Create.
func (s *Service) capFor(ctx context.Context, userID string, t vacation.Type) (int, error) {
	switch t {
	case vacation.TypeVacationPaid:
		u, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return 0, err
		}
		if u.VacationCount > 0 {
			return u.VacationCount, nil
		}
		return s.caps.DefaultVacationCap, nil
	case vacation.TypeSickPaid:
		return s.caps.DefaultSickCap, nil
	default:
		return 0, nil
	}
}

// notifyOwners sends to every owner handle except skip.
func (s *Service) notifyOwners(ctx context.Context, message string, skip *string) {
	if !s.notifier.Enabled() {
		return
	}
	handles, err := s.userRepo.OwnerSlackHandles(ctx)
	if err != nil {
		slog.Error("list owner slack handles", "error", err)
		return
	}
	for _, handle := range handles {
		if skip != nil && handle == *skip {
			continue
		}
		s.send(ctx, handle, message)
	}
}

func (s *Service) send(ctx context.Context, channel, message string) {
	if !s.notifier.Enabled() {
		return
	}
	if err := s.notifier.Send(ctx, channel, message); err != nil {
		slog.Error("slack notification failed", "channel", channel, "error", err)
	}
}

func typeEmoji(t vacation.Type) string {
	switch t {
	case vacation.TypeSickPaid, vacation.TypeSickUnpaid:
		return ":pill:"
	default:
		return ":beach_with_umbrella:"
	}
}

func statusEmoji(st vacation.Status) string {
	if st == vacation.StatusRejected {
		return ":no_entry_sign:"
	}
	return ":white_check_mark:"
}

func statusVerb(st vacation.Status) string {
	if st == vacation.StatusRejected {
		return "Rejected"
	}
	return "Approved"
}
