package wargaming

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/relyk/tomatobot/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c := NewClient(ts.Client(), "test-app-id", slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.baseURL = ts.URL + "/%s"
	return c
}

func TestSearchAccountFirstRecordWins(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/com/wot/account/list/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("application_id"); got != "test-app-id" {
			t.Errorf("application_id = %q", got)
		}
		if got := r.URL.Query().Get("search"); got != "Relyk" {
			t.Errorf("search = %q", got)
		}
		_, _ = w.Write([]byte(`{"status":"ok","meta":{"count":2},"data":[
			{"nickname":"Relyk","account_id":1001234567},
			{"nickname":"Relyk2","account_id":42}
		]}`))
	})

	player, err := c.SearchAccount(context.Background(), domain.RegionNA, "Relyk")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if player == nil || player.AccountID != 1001234567 || player.Nickname != "Relyk" {
		t.Fatalf("unexpected match: %+v", player)
	}
}

func TestSearchAccountEmptyIsAbsentNotError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","meta":{"count":0},"data":[]}`))
	})

	player, err := c.SearchAccount(context.Background(), domain.RegionEU, "ghost")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if player != nil {
		t.Fatalf("expected absent, got %+v", player)
	}
}

func TestAccountClanReadsKeyedMap(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","data":{"1001234567":{
			"role":"combat_officer",
			"clan":{"clan_id":500012345,"tag":"RELIC","name":"Relic Armoured","color":"#ff9900","members_count":98,
				"emblems":{"x64":{"portal":"https://emblem.example/64.png"}}}
		}}}`))
	})

	clan, err := c.AccountClan(context.Background(), domain.RegionNA, 1001234567)
	if err != nil {
		t.Fatalf("account clan: %v", err)
	}
	if clan == nil || clan.Tag != "RELIC" || clan.ClanID != 500012345 {
		t.Fatalf("unexpected clan: %+v", clan)
	}
	if clan.Role != "combat_officer" || clan.EmblemURL != "https://emblem.example/64.png" {
		t.Fatalf("unexpected clan details: %+v", clan)
	}
}

func TestAccountClanMissingKeyMeansClanless(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","data":{"1001234567":null}}`))
	})

	clan, err := c.AccountClan(context.Background(), domain.RegionNA, 1001234567)
	if err != nil {
		t.Fatalf("account clan: %v", err)
	}
	if clan != nil {
		t.Fatalf("expected clanless, got %+v", clan)
	}
}

func TestSearchClan(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/com/wot/clans/list/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"ok","data":[{"clan_id":500012345,"tag":"RELIC","name":"Relic Armoured"}]}`))
	})

	hit, err := c.SearchClan(context.Background(), domain.RegionNA, "RELIC")
	if err != nil {
		t.Fatalf("search clan: %v", err)
	}
	if hit == nil || hit.ClanID != 500012345 {
		t.Fatalf("unexpected hit: %+v", hit)
	}
}

func TestClanRatingUnrankedIsAbsent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","data":{"500012345":null}}`))
	})

	rating, err := c.ClanRating(context.Background(), domain.RegionNA, 500012345)
	if err != nil {
		t.Fatalf("clan rating: %v", err)
	}
	if rating != nil {
		t.Fatalf("expected absent rating, got %+v", rating)
	}
}

func TestClanGlobalMap(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","data":{"500012345":{
			"statistics":{"battles_10_level":120,"wins_10_level":80,"provinces_count":4}}}}`))
	})

	global, err := c.ClanGlobalMap(context.Background(), domain.RegionNA, 500012345)
	if err != nil {
		t.Fatalf("global map: %v", err)
	}
	if global == nil || global.Statistics.Wins10Level != 80 {
		t.Fatalf("unexpected global map: %+v", global)
	}
}
