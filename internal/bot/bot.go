// Package bot ties the reference-data refreshers and the gateway session
// into one runnable unit.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/relyk/tomatobot/internal/discord"
	"github.com/relyk/tomatobot/internal/service/refdata"
)

// Dependencies is everything the bot needs to run.
type Dependencies struct {
	Session *discord.Session
	RefData *refdata.Service
	Logger  *slog.Logger
}

// Bot runs the process: background refreshers plus the gateway connection.
type Bot struct {
	deps *Dependencies
}

// NewBot validates the wiring and builds the bot.
func NewBot(deps *Dependencies) (*Bot, error) {
	if deps == nil || deps.Session == nil || deps.RefData == nil || deps.Logger == nil {
		return nil, fmt.Errorf("bot dependencies not initialized")
	}
	return &Bot{deps: deps}, nil
}

// Run starts the refreshers, connects the gateway and blocks until ctx is
// canceled.
func (b *Bot) Run(ctx context.Context) error {
	b.deps.RefData.Start(ctx)

	if err := b.deps.Session.Open(ctx); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer func() {
		if err := b.deps.Session.Close(); err != nil {
			b.deps.Logger.Warn("gateway close failed", slog.Any("error", err))
		}
	}()

	b.deps.Logger.Info("bot running")
	<-ctx.Done()
	b.deps.Logger.Info("bot shutting down")
	return nil
}
