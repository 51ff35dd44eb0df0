package slack

import (
	"context"
	"fmt"

	"github.com/crewlog/crewlog-backend/internal/config"
	slackapi "github.com/slack-go/slack"
)

// Notifier sends a message to a Slack channel or user handle. Delivery is
// best-effort; callers log failures and move on.
type Notifier interface {
	Send(ctx context.Context, channel, text string) error
	Enabled() bool
}

type client struct {
	api *slackapi.Client
}

// NewNotifier returns a disabled notifier when no bot token is configured.
func NewNotifier(cfg config.SlackConfig) Notifier {
	if cfg.BotToken == "" {
		return disabled{}
	}
	return &client{api: slackapi.New(cfg.BotToken)}
}

func (c *client) Enabled() bool { return true }

func (c *client) Send(ctx context.Context, channel, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, channel,
		slackapi.MsgOptionText(">>>"+text, false),
	)
	if err != nil {
		return fmt.Errorf("slack post to %s: %w", channel, err)
	}
	return nil
}

type disabled struct{}

func (disabled) Enabled() bool { return false }

func (disabled) Send(ctx context.Context, channel, text string) error {
	return nil
}
