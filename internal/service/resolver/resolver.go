// Package resolver turns a nickname (and optional region) into a
// (region, account id) pair using the regional account directories.
package resolver

import (
	"context"
	"log/slog"

	"github.com/sourcegraph/conc/pool"

	"github.com/relyk/tomatobot/internal/domain"
)

// Directory is the slice of the Wargaming client the resolver needs.
type Directory interface {
	SearchAccount(ctx context.Context, region domain.Region, nickname string) (*domain.PlayerIdentity, error)
}

// Resolution is a successful directory match.
type Resolution struct {
	Region domain.Region
	Player domain.PlayerIdentity
}

// Resolver resolves player identities against the regional directories.
type Resolver struct {
	directory Directory
	logger    *slog.Logger
}

// New builds a Resolver.
func New(directory Directory, logger *slog.Logger) *Resolver {
	return &Resolver{
		directory: directory,
		logger:    logger.With(slog.String("component", "resolver")),
	}
}

// Resolve finds the player. With an explicit region only that directory is
// consulted; otherwise all three are probed in parallel and the first
// matching region in NA, EU, ASIA order wins. (nil, nil) means no player.
func (r *Resolver) Resolve(ctx context.Context, nickname string, region *domain.Region) (*Resolution, error) {
	if region != nil {
		player, err := r.directory.SearchAccount(ctx, *region, nickname)
		if err != nil {
			r.logger.Warn("directory lookup failed",
				slog.String("region", region.Name()),
				slog.Any("error", err),
			)
			return nil, nil
		}
		if player == nil {
			return nil, nil
		}
		return &Resolution{Region: *region, Player: *player}, nil
	}

	results := make([]*domain.PlayerIdentity, len(domain.AllRegions))

	p := pool.New().WithMaxGoroutines(len(domain.AllRegions))
	for i, probe := range domain.AllRegions {
		i, probe := i, probe
		p.Go(func() {
			player, err := r.directory.SearchAccount(ctx, probe, nickname)
			if err != nil {
				// An unreachable directory is the same as no match there.
				r.logger.Warn("directory lookup failed",
					slog.String("region", probe.Name()),
					slog.Any("error", err),
				)
				return
			}
			results[i] = player
		})
	}
	p.Wait()

	for i, probe := range domain.AllRegions {
		if results[i] != nil {
			return &Resolution{Region: probe, Player: *results[i]}, nil
		}
	}
	return nil, nil
}
