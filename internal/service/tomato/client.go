// Package tomato talks to the tomato.gg API: per-player overall and recents
// stats, the clan profile, the tank reference lists (marks + mastery), tank
// economics and server-wide recent tank stats.
package tomato

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/relyk/tomatobot/internal/constants"
	"github.com/relyk/tomatobot/internal/domain"
	"github.com/relyk/tomatobot/pkg/errors"
)

// Client is the tomato.gg API client. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient builds a tomato.gg client with a polite request-rate cap.
func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    constants.TomatoBaseURL,
		limiter:    rate.NewLimiter(rate.Limit(constants.HTTPConfig.RequestsPerSec), 1),
		logger:     logger,
	}
}

// Overall fetches a player's lifetime block. The cached hint asks the
// upstream for its fast, possibly-stale path; staleness is not interpreted
// here.
func (c *Client) Overall(ctx context.Context, region domain.Region, accountID uint32, cached bool) (*domain.OverallStats, error) {
	path := fmt.Sprintf("/dev/api-v2/overall/%s/%d%s", region.Extension(), accountID, cacheSuffix(cached))

	var envelope struct {
		Data domain.OverallStats `json:"data"`
	}
	if err := c.get(ctx, path, "tomato.overall", constants.HTTPConfig.Timeout, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// Recents fetches the seven recent-play windows for a player. The recents
// endpoint is the slowest upstream call and carries its own timeout cap.
func (c *Client) Recents(ctx context.Context, region domain.Region, accountID uint32, cached bool) (*domain.RecentsData, error) {
	path := fmt.Sprintf("/dev/api-v2/recents/%s/%d%s", region.Extension(), accountID, cacheSuffix(cached))

	var envelope struct {
		Data domain.RecentsData `json:"data"`
	}
	if err := c.get(ctx, path, "tomato.recents", constants.HTTPConfig.RecentsTimeout, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// Clan fetches the tomato.gg clan profile.
func (c *Client) Clan(ctx context.Context, region domain.Region, clanID uint32) (*domain.TomatoClan, error) {
	path := fmt.Sprintf("/api/clan/%s/%d", region.Extension(), clanID)

	var clan domain.TomatoClan
	if err := c.get(ctx, path, "tomato.clan", constants.HTTPConfig.Timeout, &clan); err != nil {
		return nil, err
	}
	return &clan, nil
}

// TankReference fetches the marks and mastery lists for a region in
// parallel and merges them by tank id. Tanks present in only one list are
// dropped. A non-ok meta status logs but still merges whatever arrived.
func (c *Client) TankReference(ctx context.Context, region domain.Region) ([]domain.Tank, error) {
	type markResponse struct {
		Meta struct {
			Status string `json:"status"`
		} `json:"meta"`
		Data []domain.Tank `json:"data"`
	}

	var (
		moe, mastery       markResponse
		moeErr, masteryErr error
		wg                 sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		moeErr = c.get(ctx, "/dev/api-v2/moe/"+region.Extension(), "tomato.moe", constants.HTTPConfig.Timeout, &moe)
	}()
	go func() {
		defer wg.Done()
		masteryErr = c.get(ctx, "/dev/api-v2/mastery/"+region.Extension(), "tomato.mastery", constants.HTTPConfig.Timeout, &mastery)
	}()
	wg.Wait()

	if moeErr != nil {
		return nil, moeErr
	}
	if masteryErr != nil {
		return nil, masteryErr
	}
	if moe.Meta.Status != "ok" || mastery.Meta.Status != "ok" {
		c.logger.Warn("tank reference meta status not ok",
			slog.String("region", region.Name()),
			slog.String("moe_status", moe.Meta.Status),
			slog.String("mastery_status", mastery.Meta.Status),
		)
	}

	byID := make(map[uint32]*domain.Tank, len(mastery.Data))
	for i := range mastery.Data {
		byID[mastery.Data[i].ID] = &mastery.Data[i]
	}

	tanks := make([]domain.Tank, 0, len(moe.Data))
	for _, tank := range moe.Data {
		counterpart, ok := byID[tank.ID]
		if !ok {
			continue
		}
		tank.First = counterpart.First
		tank.Second = counterpart.Second
		tank.Third = counterpart.Third
		tank.Ace = counterpart.Ace
		tank.Images = counterpart.Images
		tanks = append(tanks, tank)
	}
	return tanks, nil
}

// TankEconomics fetches the global per-tank economics list.
func (c *Client) TankEconomics(ctx context.Context) ([]domain.TankEconomics, error) {
	var envelope struct {
		Data []domain.TankEconomics `json:"data"`
	}
	if err := c.get(ctx, "/dev/api-v2/tank-economics", "tomato.tank_economics", constants.HTTPConfig.Timeout, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// ServerTankStats fetches the server-wide recent per-tank aggregates for a
// region. The response is a bare array.
func (c *Client) ServerTankStats(ctx context.Context, region domain.Region) ([]domain.RecentTankStats, error) {
	path := fmt.Sprintf("/dev/api-v2/all-tanks-server-stats-wr-range/%s/0/100?cache=true", region.Extension())

	var rows []domain.RecentTankStats
	if err := c.get(ctx, path, "tomato.server_tank_stats", constants.HTTPConfig.Timeout, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func cacheSuffix(cached bool) string {
	if cached {
		return "?cache=true"
	}
	return ""
}

func (c *Client) get(ctx context.Context, path, op string, timeout time.Duration, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Transport(op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return errors.Transport(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Transport(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Transport(op, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Transport(op, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Decode(op, err)
	}
	return nil
}
