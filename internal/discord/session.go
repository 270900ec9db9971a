package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/relyk/tomatobot/internal/command"
	"github.com/relyk/tomatobot/internal/domain"
)

// Session owns the gateway connection and bridges interactions into the
// command registry.
type Session struct {
	gateway  *discordgo.Session
	registry *command.Registry
	router   *componentRouter
	logger   *slog.Logger

	baseCtx context.Context
}

// NewSession builds the gateway session. The connection opens in Open.
func NewSession(token string, registry *command.Registry, logger *slog.Logger) (*Session, error) {
	gateway, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	gateway.Identify.Intents = discordgo.IntentsGuilds

	s := &Session{
		gateway:  gateway,
		registry: registry,
		router:   newComponentRouter(),
		logger:   logger.With(slog.String("component", "discord")),
		baseCtx:  context.Background(),
	}
	gateway.AddHandler(s.handleInteraction)
	return s, nil
}

// Open connects to the gateway and overwrites the global slash commands.
// ctx bounds the lifetime of command handlers spawned by this session.
func (s *Session) Open(ctx context.Context) error {
	s.baseCtx = ctx

	if err := s.gateway.Open(); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}

	appID := s.gateway.State.User.ID
	if _, err := s.gateway.ApplicationCommandBulkOverwrite(appID, "", slashDefinitions(s.registry)); err != nil {
		return fmt.Errorf("failed to register slash commands: %w", err)
	}

	s.logger.Info("gateway connected",
		slog.String("user", s.gateway.State.User.Username),
		slog.Int("commands", s.registry.Count()),
	)
	return nil
}

// Close disconnects from the gateway.
func (s *Session) Close() error {
	return s.gateway.Close()
}

func (s *Session) handleInteraction(gateway *discordgo.Session, ic *discordgo.InteractionCreate) {
	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		s.handleCommand(gateway, ic)
	case discordgo.InteractionMessageComponent:
		s.handleComponent(gateway, ic)
	}
}

func (s *Session) handleCommand(gateway *discordgo.Session, ic *discordgo.InteractionCreate) {
	data := ic.ApplicationCommandData()

	err := gateway.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		s.logger.Error("failed to defer interaction",
			slog.String("command", data.Name),
			slog.Any("error", err),
		)
		return
	}

	params := make(map[string]any, len(data.Options))
	for _, option := range data.Options {
		if option.Type == discordgo.ApplicationCommandOptionString {
			params[option.Name] = option.StringValue()
		}
	}

	reply := newReply(gateway, ic.Interaction, s.router)
	go func() {
		defer reply.Close()
		if err := s.registry.Execute(s.baseCtx, reply, data.Name, params); err != nil {
			s.logger.Error("command failed",
				slog.String("command", data.Name),
				slog.Any("error", err),
			)
		}
	}()
}

func (s *Session) handleComponent(gateway *discordgo.Session, ic *discordgo.InteractionCreate) {
	data := ic.MessageComponentData()

	delivered := s.router.dispatch(domain.ComponentEvent{
		CustomID:  data.CustomID,
		Values:    data.Values,
		UserID:    invokerID(ic.Interaction),
		ChannelID: ic.ChannelID,
		Ack: func() error {
			return gateway.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseDeferredMessageUpdate,
			})
		},
	})
	if !delivered {
		// Stale component on an expired reply.
		s.logger.Debug("dropped component event", slog.String("custom_id", data.CustomID))
	}
}

func slashDefinitions(registry *command.Registry) []*discordgo.ApplicationCommand {
	descriptions := make(map[string]string)
	for _, handler := range registry.All() {
		descriptions[handler.Name()] = handler.Description()
	}

	regionChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "NA", Value: "NA"},
		{Name: "EU", Value: "EU"},
		{Name: "ASIA", Value: "ASIA"},
	}
	periodChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.AllPeriods))
	for _, period := range domain.AllPeriods {
		periodChoices = append(periodChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  period.Label(),
			Value: period.CanonicalName(),
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "stats",
			Description: descriptions["stats"],
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "user", Description: "Players Username", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "region", Description: "Select a Region", Choices: regionChoices},
				{Type: discordgo.ApplicationCommandOptionString, Name: "period", Description: "Select a Period", Choices: periodChoices},
			},
		},
		{
			Name:        "clanstats",
			Description: descriptions["clanstats"],
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "clan", Description: "Clan Tag", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "region", Description: "Select a Region", Required: true, Choices: regionChoices},
			},
		},
		{
			Name:        "marks",
			Description: descriptions["marks"],
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "input", Description: "Tank Name", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "region", Description: "Select a Region", Choices: regionChoices},
			},
		},
	}
}
