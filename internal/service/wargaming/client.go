// Package wargaming talks to the Wargaming public API: the account and
// clan directories, clan ratings and the global map. All calls are GET over
// HTTPS with query parameters and a bounded timeout; there are no retries.
package wargaming

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/relyk/tomatobot/internal/constants"
	"github.com/relyk/tomatobot/internal/domain"
	"github.com/relyk/tomatobot/pkg/errors"
)

// Client is the Wargaming API client. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string // host template with a %s region-extension slot
	appID      string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient builds a Wargaming client with a polite request-rate cap.
func NewClient(httpClient *http.Client, appID string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    constants.WargamingBaseURL,
		appID:      appID,
		limiter:    rate.NewLimiter(rate.Limit(constants.HTTPConfig.RequestsPerSec), 1),
		logger:     logger,
	}
}

// SearchAccount looks a nickname up in one region's directory. The first
// record of the response array is the match; an empty array is (nil, nil),
// never an error.
func (c *Client) SearchAccount(ctx context.Context, region domain.Region, nickname string) (*domain.PlayerIdentity, error) {
	params := url.Values{}
	params.Set("search", nickname)
	params.Set("language", "en")

	var envelope struct {
		Data []domain.PlayerIdentity `json:"data"`
	}
	if err := c.get(ctx, region, "/wot/account/list/", params, "wargaming.account_list", &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Data) == 0 {
		return nil, nil
	}
	return &envelope.Data[0], nil
}

// AccountClan fetches a player's clan membership. The response is a map
// keyed by the stringified account id; a missing or null entry means "not
// in any clan" and yields (nil, nil).
func (c *Client) AccountClan(ctx context.Context, region domain.Region, accountID uint32) (*domain.PlayerClan, error) {
	params := url.Values{}
	params.Set("account_id", strconv.FormatUint(uint64(accountID), 10))

	var envelope struct {
		Data map[string]*accountClanRecord `json:"data"`
	}
	if err := c.get(ctx, region, "/wot/clans/accountinfo/", params, "wargaming.clans_accountinfo", &envelope); err != nil {
		return nil, err
	}

	record := envelope.Data[strconv.FormatUint(uint64(accountID), 10)]
	if record == nil {
		return nil, nil
	}
	return &domain.PlayerClan{
		ClanID:       record.Clan.ClanID,
		Tag:          record.Clan.Tag,
		Name:         record.Clan.Name,
		Role:         record.Role,
		MembersCount: record.Clan.MembersCount,
		Color:        record.Clan.Color,
		EmblemURL:    record.Clan.Emblems.X64.Portal,
	}, nil
}

// ClanHit is one record of the clan directory.
type ClanHit struct {
	ClanID uint32 `json:"clan_id"`
	Tag    string `json:"tag"`
	Name   string `json:"name"`
}

// SearchClan resolves a clan tag via the clan directory. First record wins;
// an empty result is (nil, nil).
func (c *Client) SearchClan(ctx context.Context, region domain.Region, query string) (*ClanHit, error) {
	params := url.Values{}
	params.Set("search", query)

	var envelope struct {
		Data []ClanHit `json:"data"`
	}
	if err := c.get(ctx, region, "/wot/clans/list/", params, "wargaming.clans_list", &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Data) == 0 {
		return nil, nil
	}
	return &envelope.Data[0], nil
}

// ClanRating fetches the clan-ratings block, or (nil, nil) when the clan is
// unranked.
func (c *Client) ClanRating(ctx context.Context, region domain.Region, clanID uint32) (*domain.ClanRating, error) {
	params := url.Values{}
	params.Set("clan_id", strconv.FormatUint(uint64(clanID), 10))

	var envelope struct {
		Data map[string]*domain.ClanRating `json:"data"`
	}
	if err := c.get(ctx, region, "/wot/clanratings/clans/", params, "wargaming.clanratings", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data[strconv.FormatUint(uint64(clanID), 10)], nil
}

// ClanGlobalMap fetches the global-map block, or (nil, nil) when the clan
// has no global-map presence.
func (c *Client) ClanGlobalMap(ctx context.Context, region domain.Region, clanID uint32) (*domain.GlobalMapStats, error) {
	params := url.Values{}
	params.Set("clan_id", strconv.FormatUint(uint64(clanID), 10))

	var envelope struct {
		Data map[string]*domain.GlobalMapStats `json:"data"`
	}
	if err := c.get(ctx, region, "/wot/globalmap/claninfo/", params, "wargaming.globalmap_claninfo", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data[strconv.FormatUint(uint64(clanID), 10)], nil
}

type accountClanRecord struct {
	Clan struct {
		ClanID       uint32         `json:"clan_id"`
		Tag          string         `json:"tag"`
		Name         string         `json:"name"`
		Color        string         `json:"color"`
		MembersCount int            `json:"members_count"`
		Emblems      domain.Emblems `json:"emblems"`
	} `json:"clan"`
	Role string `json:"role"`
}

func (c *Client) get(ctx context.Context, region domain.Region, path string, params url.Values, op string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Transport(op, err)
	}

	params.Set("application_id", c.appID)
	reqURL := fmt.Sprintf(c.baseURL, region.Extension()) + path + "?" + params.Encode()

	ctx, cancel := context.WithTimeout(ctx, constants.HTTPConfig.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
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
