package command

import (
	"context"

	"github.com/relyk/tomatobot/internal/constants"
	"github.com/relyk/tomatobot/internal/domain"
	"github.com/relyk/tomatobot/internal/interaction"
	"github.com/relyk/tomatobot/internal/render"
	"github.com/relyk/tomatobot/internal/util"
)

// ClanStatsCommand is the single-shot clan card command.
type ClanStatsCommand struct {
	deps *Dependencies
}

// NewClanStatsCommand builds the clanstats handler.
func NewClanStatsCommand(deps *Dependencies) *ClanStatsCommand {
	return &ClanStatsCommand{deps: deps}
}

// Name implements Command.
func (c *ClanStatsCommand) Name() string {
	return "clanstats"
}

// Description implements Command.
func (c *ClanStatsCommand) Description() string {
	return "Clan overview card"
}

// Execute resolves the tag in the required region and renders the clan card.
func (c *ClanStatsCommand) Execute(ctx context.Context, reply interaction.Replier, params map[string]any) error {
	tag, _ := params["clan"].(string)
	tag = util.TrimSpace(tag)
	if tag == "" {
		return reply.Say(constants.MsgNoClan)
	}

	raw, _ := params["region"].(string)
	region, ok := domain.ParseRegion(raw)
	if !ok {
		return reply.Say(constants.MsgNoClan)
	}

	hit, err := c.deps.Clans.SearchClan(ctx, region, tag)
	if err != nil || hit == nil {
		return reply.Say(constants.MsgNoClan)
	}

	data := c.deps.ClanData.FetchClan(ctx, region, hit.ClanID)
	if data.Empty() {
		// The clan exists; none of its stat sources answered.
		return reply.Say(constants.MsgClanUnavailable)
	}
	return reply.Edit(render.ClanCard(data), nil)
}
