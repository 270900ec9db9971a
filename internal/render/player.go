package render

import (
	"fmt"
	"sort"

	"github.com/relyk/tomatobot/internal/constants"
	"github.com/relyk/tomatobot/internal/domain"
)

// topTankRows is the per-period tank-row cap on the period card.
const topTankRows = 5

// CanRenderPlayer reports whether the aggregate carries enough data for the
// player and period cards.
func CanRenderPlayer(agg *domain.PlayerAggregate) bool {
	return agg != nil && agg.Overall != nil && agg.Recents != nil
}

// PlayerCard builds the main player card: the lifetime pane plus five recent
// windows, colored by lifetime WN8. Callers guard with CanRenderPlayer.
func PlayerCard(agg *domain.PlayerAggregate) *domain.Card {
	card := &domain.Card{
		Title: fmt.Sprintf("%s's Stats", agg.Player.Nickname),
		URL:   profileURL(agg),
		Color: WN8Color(agg.Overall.WN8),
		Fields: []domain.Field{
			{Name: "Overall", Value: overallPane(agg.Overall), Inline: true},
		},
		Footer: footer(),
	}

	for _, period := range []domain.Period{
		domain.Period24h,
		domain.Period7d,
		domain.Period30d,
		domain.Period60d,
		domain.Period1000Battles,
	} {
		window := period.TimeFrame(agg.Recents)
		card.Fields = append(card.Fields, domain.Field{
			Name:   period.Label(),
			Value:  windowPane(&window.Overall),
			Inline: true,
		})
	}

	if agg.InClan() {
		card.Description = fmt.Sprintf("**%s at [%s]**",
			domain.ShortRole(agg.PlayerClan.Role), agg.PlayerClan.Tag)
		card.Thumbnail = agg.PlayerClan.EmblemURL
	}
	return card
}

// PeriodCard builds the single-window drill-down: window totals plus the
// top-battles tank rows, colored by the window's WN8.
func PeriodCard(agg *domain.PlayerAggregate, period domain.Period) *domain.Card {
	window := period.TimeFrame(agg.Recents)

	card := &domain.Card{
		Title:       fmt.Sprintf("%s's Stats", agg.Player.Nickname),
		URL:         profileURL(agg),
		Description: fmt.Sprintf("Last %s Stats", period.Label()),
		Color:       WN8Color(window.Overall.WN8),
		Fields: []domain.Field{
			{Name: "Total", Value: windowPane(&window.Overall), Inline: true},
		},
		Footer: footer(),
	}

	for _, tank := range topTanks(window.TankStats, topTankRows) {
		card.Fields = append(card.Fields, domain.Field{
			Name: tank.Name,
			Value: fmt.Sprintf("Battles: `%d`\nWN8: `%d`\nDPG: `%d`\nWR: `%.1f%%`",
				tank.Battles, tank.WN8, tank.DPG, tank.Winrate),
			Inline: true,
		})
	}

	if agg.InClan() {
		card.Thumbnail = agg.PlayerClan.EmblemURL
	}
	return card
}

// topTanks returns the n most-played rows, descending by battles. The sort
// is stable so equal-battles rows keep their upstream order.
func topTanks(rows []domain.TankStats, n int) []domain.TankStats {
	sorted := make([]domain.TankStats, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Battles > sorted[j].Battles
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func profileURL(agg *domain.PlayerAggregate) string {
	return fmt.Sprintf(constants.PlayerProfileURL,
		agg.Region.Name(), agg.Player.Nickname, agg.Player.AccountID)
}

func overallPane(o *domain.OverallStats) string {
	return fmt.Sprintf("Battles: `%d`\nWN8: `%d`\nWR: `%.1f%%`\nAvg Tier: `%.1f`",
		o.Battles, o.WN8, o.Winrate, o.Tier)
}

func windowPane(w *domain.WindowStats) string {
	return fmt.Sprintf("Battles: `%d`\nWN8: `%d`\nWR: `%.1f%%`\nAvg Tier: `%.1f`",
		w.Battles, w.WN8, w.Winrate, w.Tier)
}

func footer() *domain.Footer {
	return &domain.Footer{
		Text:    constants.FooterText,
		IconURL: constants.FooterIconURL,
	}
}
