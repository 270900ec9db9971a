package render

import (
	"fmt"

	"github.com/relyk/tomatobot/internal/domain"
)

// ClanCard builds the four-pane clan card. Missing source blocks render as
// zeros; a missing tomato profile degrades to an untitled grey card rather
// than failing the command.
func ClanCard(data *domain.ClanData) *domain.Card {
	tomato := data.Tomato
	if tomato == nil {
		tomato = &domain.TomatoClan{}
	}
	rating := data.Rating
	if rating == nil {
		rating = &domain.ClanRating{}
	}
	global := data.Global
	if global == nil {
		global = &domain.GlobalMapStats{}
	}

	color := DefaultColor
	if data.Tomato != nil {
		color = ParseHexColor(tomato.Color)
	}

	// 0/0 is NaN and renders as "NaN%", matching the upstream site for
	// clans with no tier-X global map battles.
	globalWR := float64(global.Statistics.Wins10Level) /
		float64(global.Statistics.Battles10Level) * 100

	return &domain.Card{
		Title:       fmt.Sprintf("[%s] %s", tomato.Tag, tomato.Name),
		Description: tomato.Motto,
		Thumbnail:   tomato.Emblems.X64.Portal,
		Color:       color,
		Fields: []domain.Field{
			{
				Name: "Player Stats",
				Value: fmt.Sprintf("Overall WN8: `%.0f`\nOverall WR: `%.1f%%`\nRecent WN8: `%.0f`\nRecent WR: `%.1f`",
					tomato.OverallWN8, tomato.OverallWinrate, tomato.RecentWN8, tomato.RecentWinrate),
				Inline: true,
			},
			{
				Name: "General Stats",
				Value: fmt.Sprintf("Clan Rating: `%.0f`\nAvg. Daily Battles: `%.0f`\nAvg. PR: `%.0f`\nPlayers: `%d`",
					rating.Efficiency.Value, rating.BattlesCountAvgDaily.Value,
					rating.GlobalRatingWeightedAvg.Value, tomato.MembersCount),
				Inline: true,
			},
			{
				Name: "Stronghold Stats",
				Value: fmt.Sprintf("SH Tier X ELO: `%.0f`\nSH Tier VIII ELO: `%.0f`\nSH Tier VI ELO: `%.0f`",
					rating.FBEloRating10.Value, rating.FBEloRating8.Value, rating.FBEloRating6.Value),
				Inline: true,
			},
			{
				Name: "Global Map Stats",
				Value: fmt.Sprintf("Global Map ELO: `%.0f`\nGlobal Map WR: `%.1f%%`\nProvinces: `%d`",
					rating.GMEloRating10.Value, globalWR, global.Statistics.ProvincesCount),
				Inline: true,
			},
		},
	}
}
