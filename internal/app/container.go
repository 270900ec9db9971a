// Package app assembles the object graph: clients, services, commands and
// the gateway session.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/relyk/tomatobot/internal/bot"
	"github.com/relyk/tomatobot/internal/command"
	"github.com/relyk/tomatobot/internal/config"
	"github.com/relyk/tomatobot/internal/discord"
	"github.com/relyk/tomatobot/internal/interaction"
	"github.com/relyk/tomatobot/internal/service/aggregator"
	"github.com/relyk/tomatobot/internal/service/refdata"
	"github.com/relyk/tomatobot/internal/service/resolver"
	"github.com/relyk/tomatobot/internal/service/tomato"
	"github.com/relyk/tomatobot/internal/service/wargaming"
)

// Container holds the wired application.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	botDeps *bot.Dependencies
}

// BuildContainer wires every service by hand, bottom-up.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	httpClient := &http.Client{}

	wargamingClient := wargaming.NewClient(httpClient, cfg.Wargaming.AppID, logger)
	tomatoClient := tomato.NewClient(httpClient, logger)

	refData := refdata.NewService(tomatoClient, logger)
	playerResolver := resolver.New(wargamingClient, logger)
	statsAggregator := aggregator.New(tomatoClient, wargamingClient, logger)
	loop := interaction.NewLoop(statsAggregator, logger)

	deps := &command.Dependencies{
		Resolver: playerResolver,
		Clans:    wargamingClient,
		ClanData: statsAggregator,
		Loop:     loop,
		RefData:  refData,
		Logger:   logger,
	}

	registry := command.NewRegistry()
	registry.Register(command.NewStatsCommand(deps))
	registry.Register(command.NewClanStatsCommand(deps))
	registry.Register(command.NewMarksCommand(deps))

	session, err := discord.NewSession(cfg.Discord.Token, registry, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build discord session: %w", err)
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		botDeps: &bot.Dependencies{
			Session: session,
			RefData: refData,
			Logger:  logger,
		},
	}, nil
}

// NewBot builds the runnable bot from the wired dependencies.
func (c *Container) NewBot() (*bot.Bot, error) {
	if c == nil || c.botDeps == nil {
		return nil, fmt.Errorf("bot dependencies not initialized")
	}
	return bot.NewBot(c.botDeps)
}
