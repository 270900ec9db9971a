// Package aggregator assembles the player and clan aggregates out of the
// tomato.gg and Wargaming upstreams. Player stats run in two waves: a fast
// cached wave for the first reply and an authoritative wave that patches the
// reply in place.
package aggregator

import (
	"context"
	"log/slog"

	"github.com/sourcegraph/conc/pool"

	"github.com/relyk/tomatobot/internal/domain"
)

// StatsSource is the slice of the tomato client the aggregator needs for
// player stats and the clan profile.
type StatsSource interface {
	Overall(ctx context.Context, region domain.Region, accountID uint32, cached bool) (*domain.OverallStats, error)
	Recents(ctx context.Context, region domain.Region, accountID uint32, cached bool) (*domain.RecentsData, error)
	Clan(ctx context.Context, region domain.Region, clanID uint32) (*domain.TomatoClan, error)
}

// ClanSource is the slice of the Wargaming client the aggregator needs.
type ClanSource interface {
	AccountClan(ctx context.Context, region domain.Region, accountID uint32) (*domain.PlayerClan, error)
	ClanRating(ctx context.Context, region domain.Region, clanID uint32) (*domain.ClanRating, error)
	ClanGlobalMap(ctx context.Context, region domain.Region, clanID uint32) (*domain.GlobalMapStats, error)
}

// Aggregator fans out to the upstreams and merges their blocks.
type Aggregator struct {
	stats  StatsSource
	clans  ClanSource
	logger *slog.Logger
}

// New builds an Aggregator.
func New(stats StatsSource, clans ClanSource, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		stats:  stats,
		clans:  clans,
		logger: logger.With(slog.String("component", "aggregator")),
	}
}

// FastWave fetches the cached overall and recents blocks plus the clan
// membership, all in parallel. A failed block stays absent; the caller
// decides how to render absence.
func (a *Aggregator) FastWave(ctx context.Context, region domain.Region, player domain.PlayerIdentity) *domain.PlayerAggregate {
	agg := &domain.PlayerAggregate{Player: player, Region: region}

	p := pool.New().WithMaxGoroutines(3)
	p.Go(func() {
		overall, err := a.stats.Overall(ctx, region, player.AccountID, true)
		if err != nil {
			a.warn("overall", region, err)
			return
		}
		agg.Overall = overall
	})
	p.Go(func() {
		recents, err := a.stats.Recents(ctx, region, player.AccountID, true)
		if err != nil {
			a.warn("recents", region, err)
			return
		}
		agg.Recents = recents
	})
	p.Go(func() {
		clan, err := a.clans.AccountClan(ctx, region, player.AccountID)
		if err != nil {
			a.warn("account_clan", region, err)
			return
		}
		agg.PlayerClan = clan
	})
	p.Wait()

	return agg
}

// AuthoritativeWave refetches the stats blocks without the cache hint and,
// when the player is in a clan, materializes the full clan aggregate. Each
// block overwrites the fast-wave value only when its fetch succeeds.
func (a *Aggregator) AuthoritativeWave(ctx context.Context, agg *domain.PlayerAggregate) {
	p := pool.New().WithMaxGoroutines(3)
	p.Go(func() {
		overall, err := a.stats.Overall(ctx, agg.Region, agg.Player.AccountID, false)
		if err != nil {
			a.warn("overall", agg.Region, err)
			return
		}
		agg.Overall = overall
	})
	p.Go(func() {
		recents, err := a.stats.Recents(ctx, agg.Region, agg.Player.AccountID, false)
		if err != nil {
			a.warn("recents", agg.Region, err)
			return
		}
		agg.Recents = recents
	})
	if agg.InClan() {
		p.Go(func() {
			agg.Clan = a.FetchClan(ctx, agg.Region, agg.PlayerClan.ClanID)
		})
	}
	p.Wait()
}

// FetchClan assembles the clan aggregate from its three sources in parallel.
// A failed source leaves its block nil; the result is never nil.
func (a *Aggregator) FetchClan(ctx context.Context, region domain.Region, clanID uint32) *domain.ClanData {
	data := &domain.ClanData{}

	p := pool.New().WithMaxGoroutines(3)
	p.Go(func() {
		tomato, err := a.stats.Clan(ctx, region, clanID)
		if err != nil {
			a.warn("clan_profile", region, err)
			return
		}
		data.Tomato = tomato
	})
	p.Go(func() {
		rating, err := a.clans.ClanRating(ctx, region, clanID)
		if err != nil {
			a.warn("clan_rating", region, err)
			return
		}
		data.Rating = rating
	})
	p.Go(func() {
		global, err := a.clans.ClanGlobalMap(ctx, region, clanID)
		if err != nil {
			a.warn("clan_global_map", region, err)
			return
		}
		data.Global = global
	})
	p.Wait()

	return data
}

func (a *Aggregator) warn(block string, region domain.Region, err error) {
	a.logger.Warn("block fetch failed",
		slog.String("block", block),
		slog.String("region", region.Name()),
		slog.Any("error", err),
	)
}
