package render

import (
	"fmt"

	"github.com/relyk/tomatobot/internal/constants"
	"github.com/relyk/tomatobot/internal/domain"
)

// TankCard builds the marks card: moe thresholds, mastery thresholds,
// economics and the 30-day server aggregate for one tank. Economics and
// recent rows may be absent for brand-new tanks; they render as zeros.
func TankCard(tank *domain.Tank, region domain.Region, econ *domain.TankEconomics, recent *domain.RecentTankStats) *domain.Card {
	if econ == nil {
		econ = &domain.TankEconomics{}
	}
	if recent == nil {
		recent = &domain.RecentTankStats{}
	}

	return &domain.Card{
		Title:       fmt.Sprintf("%s %s", tank.Name, region.Name()),
		URL:         fmt.Sprintf(constants.TankPageURL, region.Name(), tank.ID),
		Description: NationEmoji(tank.Nation) + " " + ClassEmoji(tank.IsPremium, tank.Class),
		Color:       WN8Color(recent.WN8),
		Thumbnail:   tank.Images.BigIcon,
		Fields: []domain.Field{
			{
				Name: "MoE Reqs",
				Value: fmt.Sprintf("100: `%d`\n%s: `%d`\n %s: `%d`\n %s: `%d`",
					tank.Pct100, emojiMark3, tank.Pct95, emojiMark2, tank.Pct85, emojiMark1, tank.Pct65),
				Inline: true,
			},
			{
				Name: "Mastery(XP)",
				Value: fmt.Sprintf("%s: `%d`\n%s: `%d`\n%s: `%d`\n%s: `%d`",
					emojiMastery, tank.Ace, emojiFirstClass, tank.First,
					emojiSecondClass, tank.Second, emojiThirdClass, tank.Third.Int()),
				Inline: true,
			},
			{
				Name: "Economics",
				Value: fmt.Sprintf("Avg. Profit: `%d`%s\nAvg. Revenue: `%d`%s\n Avg. Ammo Cost: `%d`%s\n Profit/Min: `%d`%s",
					econ.AvgProfit, emojiCredits, econ.AvgEarnings, emojiCredits,
					econ.AvgAmmoCost, emojiCredits, econ.ProfitPerMin, emojiCredits),
				Inline: true,
			},
			{
				Name: "30 Days Stats",
				Value: fmt.Sprintf("WN8: `%d`\nWinRate: `%v%%`\n Damage: `%d`\n Assist: `%d`",
					recent.WN8, recent.Winrate, recent.Damage,
					recent.SpottingAssist+recent.TrackingAssist),
				Inline: true,
			},
		},
		Footer: footer(),
	}
}
