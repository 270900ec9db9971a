// Package command defines the slash commands and the registry that
// dispatches them.
package command

import (
	"context"
	"log/slog"

	"github.com/relyk/tomatobot/internal/domain"
	"github.com/relyk/tomatobot/internal/interaction"
	"github.com/relyk/tomatobot/internal/service/resolver"
	"github.com/relyk/tomatobot/internal/service/wargaming"
)

// Command handles one slash command against an already-deferred reply.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, reply interaction.Replier, params map[string]any) error
}

// PlayerResolver resolves a nickname to a (region, account) pair.
type PlayerResolver interface {
	Resolve(ctx context.Context, nickname string, region *domain.Region) (*resolver.Resolution, error)
}

// ClanDirectory resolves a clan tag to its id.
type ClanDirectory interface {
	SearchClan(ctx context.Context, region domain.Region, query string) (*wargaming.ClanHit, error)
}

// ClanFetcher materializes the full clan aggregate.
type ClanFetcher interface {
	FetchClan(ctx context.Context, region domain.Region, clanID uint32) *domain.ClanData
}

// ReplyLoop drives an interactive stats reply to completion.
type ReplyLoop interface {
	Run(ctx context.Context, reply interaction.Replier, region domain.Region, player domain.PlayerIdentity, initialPeriod *domain.Period)
}

// ReferenceData is the refresh-on-interval snapshot store.
type ReferenceData interface {
	TanksFor(region domain.Region) ([]domain.Tank, bool)
	Economics() ([]domain.TankEconomics, bool)
	ServerStatsFor(region domain.Region) ([]domain.RecentTankStats, bool)
}

// Dependencies bundles everything the commands need.
type Dependencies struct {
	Resolver PlayerResolver
	Clans    ClanDirectory
	ClanData ClanFetcher
	Loop     ReplyLoop
	RefData  ReferenceData
	Logger   *slog.Logger
}
