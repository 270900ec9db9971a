// Package refdata holds the process-wide reference snapshots: tank
// reference lists per region, the global economics list and the server-wide
// recent tank stats per region. Each cell refreshes on its own schedule;
// readers always observe a whole snapshot, never a partial one.
package refdata

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/relyk/tomatobot/internal/constants"
	"github.com/relyk/tomatobot/internal/domain"
)

// Fetcher is the slice of the tomato client the refreshers need.
type Fetcher interface {
	TankReference(ctx context.Context, region domain.Region) ([]domain.Tank, error)
	TankEconomics(ctx context.Context) ([]domain.TankEconomics, error)
	ServerTankStats(ctx context.Context, region domain.Region) ([]domain.RecentTankStats, error)
}

// cell is one independently locked snapshot slot. The snapshot is built
// off-lock and published by pointer swap, so readers hold the lock only for
// the copy of a pointer.
type cell[T any] struct {
	mu     sync.RWMutex
	snap   *T
	loaded bool
}

func (c *cell[T]) publish(snap *T) {
	c.mu.Lock()
	c.snap = snap
	c.loaded = true
	c.mu.Unlock()
}

func (c *cell[T]) read() (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap, c.loaded
}

// Service owns the three cells and their background refreshers.
type Service struct {
	fetcher Fetcher
	logger  *slog.Logger

	tanks       cell[map[domain.Region][]domain.Tank]
	economics   cell[[]domain.TankEconomics]
	serverStats cell[map[domain.Region][]domain.RecentTankStats]

	intervals Intervals
}

// Intervals configures the per-cell refresh schedules.
type Intervals struct {
	Tanks       time.Duration
	Economics   time.Duration
	ServerStats time.Duration
}

// NewService builds the cache with the default schedules. The cells start
// empty; commands running before the first refresh must treat absence as
// "not yet available".
func NewService(fetcher Fetcher, logger *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		logger:  logger.With(slog.String("component", "refdata")),
		intervals: Intervals{
			Tanks:       constants.RefreshConfig.Tanks,
			Economics:   constants.RefreshConfig.Economics,
			ServerStats: constants.RefreshConfig.ServerStats,
		},
	}
}

// Start spawns one refresher per cell. Each performs an immediate refresh,
// then ticks on its interval until ctx is canceled. Refreshers are not
// joined; they live for the process.
func (s *Service) Start(ctx context.Context) {
	go s.runRefresher(ctx, "tanks", s.intervals.Tanks, s.refreshTanks)
	go s.runRefresher(ctx, "economics", s.intervals.Economics, s.refreshEconomics)
	go s.runRefresher(ctx, "server_stats", s.intervals.ServerStats, s.refreshServerStats)
}

func (s *Service) runRefresher(ctx context.Context, name string, interval time.Duration, refresh func(context.Context) error) {
	tick := func() {
		start := time.Now()
		if err := refresh(ctx); err != nil {
			// Previous snapshot stays untouched; do not escalate.
			s.logger.Error("refresh failed",
				slog.String("cell", name),
				slog.Any("error", err),
			)
			return
		}
		s.logger.Info("refreshed",
			slog.String("cell", name),
			slog.Duration("took", time.Since(start)),
		)
	}

	tick()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick()
		}
	}
}

func (s *Service) refreshTanks(ctx context.Context) error {
	snap := make(map[domain.Region][]domain.Tank, len(domain.AllRegions))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, region := range domain.AllRegions {
		region := region
		g.Go(func() error {
			tanks, err := s.fetcher.TankReference(ctx, region)
			if err != nil {
				return err
			}
			mu.Lock()
			snap[region] = tanks
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.tanks.publish(&snap)
	return nil
}

func (s *Service) refreshEconomics(ctx context.Context) error {
	rows, err := s.fetcher.TankEconomics(ctx)
	if err != nil {
		return err
	}
	s.economics.publish(&rows)
	return nil
}

func (s *Service) refreshServerStats(ctx context.Context) error {
	snap := make(map[domain.Region][]domain.RecentTankStats, len(domain.AllRegions))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, region := range domain.AllRegions {
		region := region
		g.Go(func() error {
			rows, err := s.fetcher.ServerTankStats(ctx, region)
			if err != nil {
				return err
			}
			mu.Lock()
			snap[region] = rows
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.serverStats.publish(&snap)
	return nil
}

// TanksFor returns the current tank reference list for a region. The second
// return is false until the first refresh completes.
func (s *Service) TanksFor(region domain.Region) ([]domain.Tank, bool) {
	snap, ok := s.tanks.read()
	if !ok || snap == nil {
		return nil, false
	}
	tanks, ok := (*snap)[region]
	return tanks, ok
}

// Economics returns the current global economics list.
func (s *Service) Economics() ([]domain.TankEconomics, bool) {
	snap, ok := s.economics.read()
	if !ok || snap == nil {
		return nil, false
	}
	return *snap, true
}

// ServerStatsFor returns the current server-wide tank stats for a region.
func (s *Service) ServerStatsFor(region domain.Region) ([]domain.RecentTankStats, bool) {
	snap, ok := s.serverStats.read()
	if !ok || snap == nil {
		return nil, false
	}
	rows, ok := (*snap)[region]
	return rows, ok
}
