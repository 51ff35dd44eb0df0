package cron

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/crewlog/crewlog-backend/internal/domain/worklog"
	"github.com/crewlog/crewlog-backend/internal/pkg/slack"
)

// BirthdayGreetingJob posts a greeting to the general channel for everyone
// whose birthday is today. Registered only when Slack is configured.
func BirthdayGreetingJob(repo worklog.Repository, notifier slack.Notifier, channel string) func(ctx context.Context) error {
	var lastGreetedDay string

	return func(ctx context.Context) error {
		today := time.Now().UTC()
		dayKey := today.Format("2006-01-02")
		if dayKey == lastGreetedDay {
			return nil
		}

		day := today.Day()
		birthdays, err := repo.Birthdays(ctx, today.Month(), &day)
		if err != nil {
			return fmt.Errorf("fetch todays birthdays: %w", err)
		}
		lastGreetedDay = dayKey
		if len(birthdays) == 0 {
			return nil
		}

		names := make([]string, 0, len(birthdays))
		for _, b := range birthdays {
			names = append(names, b.FullName)
		}
		message := fmt.Sprintf(":birthday: Happy birthday, %s!", strings.Join(names, ", "))
		if err := notifier.Send(ctx, channel, message); err != nil {
			slog.Error("birthday greeting failed", "error", err)
		}
		return nil
	}
}
