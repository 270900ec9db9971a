package command

import (
	"context"

	"github.com/relyk/tomatobot/internal/constants"
	"github.com/relyk/tomatobot/internal/domain"
	"github.com/relyk/tomatobot/internal/interaction"
	"github.com/relyk/tomatobot/internal/render"
	"github.com/relyk/tomatobot/internal/service/matcher"
	"github.com/relyk/tomatobot/internal/util"
)

// MarksCommand is the tank marks/mastery/economics lookup.
type MarksCommand struct {
	deps *Dependencies
}

// NewMarksCommand builds the marks handler.
func NewMarksCommand(deps *Dependencies) *MarksCommand {
	return &MarksCommand{deps: deps}
}

// Name implements Command.
func (c *MarksCommand) Name() string {
	return "marks"
}

// Description implements Command.
func (c *MarksCommand) Description() string {
	return "Mark of Excellence and mastery requirements for a tank"
}

// Execute fuzzy-matches the tank name against the region's reference
// snapshot and renders the marks card from the cached lists.
func (c *MarksCommand) Execute(ctx context.Context, reply interaction.Replier, params map[string]any) error {
	input, _ := params["input"].(string)
	input = util.TrimSpace(input)
	if input == "" {
		return reply.Say(constants.MsgTanksNotReady)
	}

	region := domain.RegionNA
	if raw, _ := params["region"].(string); raw != "" {
		if parsed, ok := domain.ParseRegion(raw); ok {
			region = parsed
		}
	}

	tanks, ok := c.deps.RefData.TanksFor(region)
	if !ok {
		return reply.Say(constants.MsgTanksNotReady)
	}
	tank, _ := matcher.BestTank(input, tanks)
	if tank == nil {
		return reply.Say(constants.MsgTanksNotReady)
	}

	var econRow *domain.TankEconomics
	if rows, ok := c.deps.RefData.Economics(); ok {
		for i := range rows {
			if rows[i].ID == tank.ID {
				econRow = &rows[i]
				break
			}
		}
	}

	var recentRow *domain.RecentTankStats
	if rows, ok := c.deps.RefData.ServerStatsFor(region); ok {
		for i := range rows {
			if rows[i].TankID == tank.ID {
				recentRow = &rows[i]
				break
			}
		}
	}

	return reply.Edit(render.TankCard(tank, region, econRow, recentRow), nil)
}
