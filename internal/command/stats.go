package command

import (
	"context"

	"github.com/relyk/tomatobot/internal/constants"
	"github.com/relyk/tomatobot/internal/domain"
	"github.com/relyk/tomatobot/internal/interaction"
	"github.com/relyk/tomatobot/internal/util"
)

// StatsCommand is the interactive player-stats command.
type StatsCommand struct {
	deps *Dependencies
}

// NewStatsCommand builds the stats handler.
func NewStatsCommand(deps *Dependencies) *StatsCommand {
	return &StatsCommand{deps: deps}
}

// Name implements Command.
func (c *StatsCommand) Name() string {
	return "stats"
}

// Description implements Command.
func (c *StatsCommand) Description() string {
	return "Player stats with interactive period and clan views"
}

// Execute resolves the player and hands the reply to the interaction loop.
// The loop blocks until the reply closes.
func (c *StatsCommand) Execute(ctx context.Context, reply interaction.Replier, params map[string]any) error {
	user, _ := params["user"].(string)
	user = util.TrimSpace(user)
	if user == "" {
		return reply.Say(constants.MsgNoPlayer)
	}

	var region *domain.Region
	if raw, _ := params["region"].(string); raw != "" {
		if parsed, ok := domain.ParseRegion(raw); ok {
			region = &parsed
		}
	}

	var period *domain.Period
	if raw, _ := params["period"].(string); raw != "" {
		if parsed, ok := domain.ParsePeriod(raw); ok {
			period = &parsed
		}
	}

	resolution, err := c.deps.Resolver.Resolve(ctx, user, region)
	if err != nil {
		return err
	}
	if resolution == nil {
		return reply.Say(constants.MsgNoPlayer)
	}

	c.deps.Loop.Run(ctx, reply, resolution.Region, resolution.Player, period)
	return nil
}
