// Package interaction owns the lifecycle of one interactive stats reply:
// the fast first render, the authoritative upgrade, and the component loop
// that flips the card between views until the idle timeout.
package interaction

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/relyk/tomatobot/internal/constants"
	"github.com/relyk/tomatobot/internal/domain"
	"github.com/relyk/tomatobot/internal/render"
)

// Replier is the transport-side handle for one deferred reply.
type Replier interface {
	// ID is the platform's unique numeric interaction id; component
	// custom-ids derive from it.
	ID() int64
	InvokerID() string
	ChannelID() string
	// Say replaces the reply with plain text.
	Say(content string) error
	// Edit replaces the reply with a card; nil rows strip all components.
	Edit(card *domain.Card, rows []domain.ActionRow) error
	// Events delivers component interactions targeting this reply.
	Events() <-chan domain.ComponentEvent
}

// StatsProvider is the two-wave aggregator slice the loop drives.
type StatsProvider interface {
	FastWave(ctx context.Context, region domain.Region, player domain.PlayerIdentity) *domain.PlayerAggregate
	AuthoritativeWave(ctx context.Context, agg *domain.PlayerAggregate)
}

// view is the reply's current render mode.
type view struct {
	clan   bool
	period *domain.Period
}

// Loop runs interactive stats replies.
type Loop struct {
	stats       StatsProvider
	logger      *slog.Logger
	idleTimeout time.Duration
}

// NewLoop builds a Loop with the standard 120s idle timeout.
func NewLoop(stats StatsProvider, logger *slog.Logger) *Loop {
	return &Loop{
		stats:       stats,
		logger:      logger.With(slog.String("component", "interaction")),
		idleTimeout: constants.InteractionConfig.IdleTimeout,
	}
}

// Run drives one reply to completion. It returns when the loop closes: on
// timeout, on context cancellation, or on a terminal miss.
func (l *Loop) Run(ctx context.Context, r Replier, region domain.Region, player domain.PlayerIdentity, initialPeriod *domain.Period) {
	current := view{period: initialPeriod}

	agg := l.stats.FastWave(ctx, region, player)
	if render.CanRenderPlayer(agg) {
		l.edit(r, renderView(agg, current), nil)
	} else {
		// The cached path missed; hold the reply while the
		// authoritative wave runs.
		l.say(r, constants.MsgNotInCache)
	}

	l.stats.AuthoritativeWave(ctx, agg)
	if !render.CanRenderPlayer(agg) {
		l.say(r, constants.MsgUserNotFound)
		return
	}

	ids := deriveIDs(r.ID())
	rows := componentRows(ids, agg.InClan())
	card := renderView(agg, current)
	if !l.edit(r, card, rows) {
		return
	}

	timer := time.NewTimer(l.idleTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.edit(r, card, nil)
			return

		case <-timer.C:
			l.edit(r, card, nil)
			return

		case ev := <-r.Events():
			if ev.UserID != r.InvokerID() || ev.ChannelID != r.ChannelID() {
				continue
			}
			next, ok := nextView(current, ids, ev)
			if !ok {
				continue
			}
			current = next

			card = renderView(agg, current)
			if !l.edit(r, card, rows) {
				return
			}
			if ev.Ack != nil {
				if err := ev.Ack(); err != nil {
					l.logger.Warn("component ack failed", slog.Any("error", err))
				}
			}

			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(l.idleTimeout)
		}
	}
}

// componentIDs are the three custom-ids one reply answers to.
type componentIDs struct {
	selectMenu   string
	playerButton string
	clanButton   string
}

func deriveIDs(u int64) componentIDs {
	return componentIDs{
		selectMenu:   strconv.FormatInt(u, 10),
		playerButton: strconv.FormatInt(u*2, 10),
		clanButton:   strconv.FormatInt(u*3, 10),
	}
}

func componentRows(ids componentIDs, inClan bool) []domain.ActionRow {
	options := make([]domain.SelectOption, 0, len(domain.AllPeriods))
	for _, period := range domain.AllPeriods {
		options = append(options, domain.SelectOption{
			Label: period.Label(),
			Value: period.CanonicalName(),
		})
	}

	rows := []domain.ActionRow{{
		Select: &domain.SelectMenu{
			CustomID:    ids.selectMenu,
			Placeholder: "Select a Period",
			Options:     options,
		},
	}}
	if inClan {
		rows = append(rows, domain.ActionRow{
			Buttons: []domain.Button{
				{CustomID: ids.playerButton, Label: "Player Stats", Primary: true},
				{CustomID: ids.clanButton, Label: "Clan Stats"},
			},
		})
	}
	return rows
}

func nextView(current view, ids componentIDs, ev domain.ComponentEvent) (view, bool) {
	switch ev.CustomID {
	case ids.selectMenu:
		if len(ev.Values) == 0 {
			return current, false
		}
		period, ok := domain.ParsePeriod(ev.Values[0])
		if !ok {
			return current, false
		}
		return view{period: &period}, true
	case ids.playerButton:
		return view{}, true
	case ids.clanButton:
		return view{clan: true}, true
	}
	return current, false
}

func renderView(agg *domain.PlayerAggregate, current view) *domain.Card {
	switch {
	case current.clan:
		clan := agg.Clan
		if clan.Empty() && agg.PlayerClan != nil {
			// No clan block survived the fetch; fall back to the
			// membership descriptor so the card is not blank.
			clan = &domain.ClanData{Tomato: &domain.TomatoClan{
				Tag:  agg.PlayerClan.Tag,
				Name: agg.PlayerClan.Name,
				Emblems: domain.Emblems{
					X64: domain.EmblemURL{Portal: agg.PlayerClan.EmblemURL},
				},
				MembersCount: agg.PlayerClan.MembersCount,
			}}
		}
		if clan == nil {
			clan = &domain.ClanData{}
		}
		return render.ClanCard(clan)
	case current.period != nil:
		return render.PeriodCard(agg, *current.period)
	default:
		return render.PlayerCard(agg)
	}
}

// edit applies a reply edit; a failed edit ends the loop since the reply is
// no longer reachable.
func (l *Loop) edit(r Replier, card *domain.Card, rows []domain.ActionRow) bool {
	if err := r.Edit(card, rows); err != nil {
		l.logger.Error("reply edit failed", slog.Any("error", err))
		return false
	}
	return true
}

func (l *Loop) say(r Replier, content string) {
	if err := r.Say(content); err != nil {
		l.logger.Error("reply update failed", slog.Any("error", err))
	}
}
