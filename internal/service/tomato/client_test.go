package tomato

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/relyk/tomatobot/internal/constants"
	"github.com/relyk/tomatobot/internal/domain"
	"github.com/relyk/tomatobot/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c := NewClient(ts.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.baseURL = ts.URL
	return c
}

func TestOverallCachedHint(t *testing.T) {
	var sawCache bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dev/api-v2/overall/com/1001234567" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		sawCache = r.URL.Query().Get("cache") == "true"
		_, _ = w.Write([]byte(`{"data":{"server":"com","id":1001234567,"battles":50000,"overallWN8":2500,"avgTier":8.2,"winrate":56.5,"dpg":2400}}`))
	})

	overall, err := c.Overall(context.Background(), domain.RegionNA, 1001234567, true)
	if err != nil {
		t.Fatalf("overall: %v", err)
	}
	if !sawCache {
		t.Fatalf("cached call must append cache=true")
	}
	if overall.Battles != 50000 || overall.WN8 != 2500 {
		t.Fatalf("unexpected overall: %+v", overall)
	}
}

func TestOverallAuthoritativeOmitsCacheParam(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("cache") {
			t.Errorf("authoritative call must not send cache param")
		}
		_, _ = w.Write([]byte(`{"data":{"battles":50010}}`))
	})

	overall, err := c.Overall(context.Background(), domain.RegionNA, 1001234567, false)
	if err != nil {
		t.Fatalf("overall: %v", err)
	}
	if overall.Battles != 50010 {
		t.Fatalf("unexpected overall: %+v", overall)
	}
}

func TestRecentsMissingNumbersDecodeToZero(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{
			"recent24hr":{"overall":{"battles":100,"wn8":3100,"tier":8.5,"winrate":60.0,"dpg":3000},
				"tankStats":[{"id":1,"name":"Obj. 140","tier":10,"battles":40,"wn8":3200,"dpg":3100,"kpg":1.4,"winrate":62.5}]},
			"recent30days":{"overall":{"battles":900,"wn8":null,"tier":null,"winrate":null,"dpg":null}}
		}}`))
	})

	recents, err := c.Recents(context.Background(), domain.RegionNA, 1001234567, true)
	if err != nil {
		t.Fatalf("recents: %v", err)
	}
	if recents.Recent24h.Overall.WN8 != 3100 {
		t.Fatalf("unexpected 24h window: %+v", recents.Recent24h)
	}
	if len(recents.Recent24h.TankStats) != 1 || recents.Recent24h.TankStats[0].Name != "Obj. 140" {
		t.Fatalf("unexpected tank rows: %+v", recents.Recent24h.TankStats)
	}
	month := recents.Recent30Days.Overall
	if month.Battles != 900 || month.WN8 != 0 || month.DPG != 0 {
		t.Fatalf("null fields must default to zero: %+v", month)
	}
	if len(recents.Recent7Days.TankStats) != 0 {
		t.Fatalf("absent window must stay empty")
	}
}

func TestTankReferenceMergesByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dev/api-v2/moe/com":
			_, _ = w.Write([]byte(`{"meta":{"status":"ok"},"data":[
				{"id":16897,"name":"Obj. 140","tier":10,"class":"MT","nation":"ussr","isPrem":false,"65":1800,"85":2600,"95":3400,"100":4200},
				{"id":999,"name":"Orphan","tier":8,"class":"HT","nation":"usa","isPrem":false}
			]}`))
		case "/dev/api-v2/mastery/com":
			_, _ = w.Write([]byte(`{"meta":{"status":"ok"},"data":[
				{"id":16897,"1st":5200,"2nd":4100,"3rd":"","ace":6400,
					"images":{"big_icon":"https://icons.example/obj140.png"}}
			]}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})

	tanks, err := c.TankReference(context.Background(), domain.RegionNA)
	if err != nil {
		t.Fatalf("tank reference: %v", err)
	}
	if len(tanks) != 1 {
		t.Fatalf("inner join should keep 1 tank, got %d", len(tanks))
	}
	tank := tanks[0]
	if tank.Name != "Obj. 140" || tank.Pct100 != 4200 || tank.Ace != 6400 {
		t.Fatalf("merge lost fields: %+v", tank)
	}
	if tank.Third.Int() != 0 {
		t.Fatalf("string 3rd slot must decode to zero, got %d", tank.Third.Int())
	}
	if tank.Images.BigIcon != "https://icons.example/obj140.png" {
		t.Fatalf("mastery images must carry over: %+v", tank.Images)
	}
}

func TestTankEconomicsSignedProfit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"tank_id":16897,"battles":120000,"avg_earnings":52000,"avg_profit":-4200,"avg_ammo_cost":18000,"cost_per_shot":1030,"earnings_per_minute":7400,"profit_per_minute":-600}]}`))
	})

	rows, err := c.TankEconomics(context.Background())
	if err != nil {
		t.Fatalf("economics: %v", err)
	}
	if len(rows) != 1 || rows[0].AvgProfit != -4200 || rows[0].ProfitPerMin != -600 {
		t.Fatalf("unexpected economics: %+v", rows)
	}
}

func TestServerTankStatsBareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dev/api-v2/all-tanks-server-stats-wr-range/eu/0/100" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"tank_id":16897,"name":"Obj. 140","tier":10,"class":"MT","nation":"ussr","battles":420000,"winrate":52.1,"damage":2300,"spotting_assist":400,"tracking_assist":180,"wn8":2100,"isPrem":false}]`))
	})

	rows, err := c.ServerTankStats(context.Background(), domain.RegionEU)
	if err != nil {
		t.Fatalf("server stats: %v", err)
	}
	if len(rows) != 1 || rows[0].WN8 != 2100 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestRecentsHonorsOwnTimeout(t *testing.T) {
	oldTimeout := constants.HTTPConfig.RecentsTimeout
	constants.HTTPConfig.RecentsTimeout = 30 * time.Millisecond
	t.Cleanup(func() { constants.HTTPConfig.RecentsTimeout = oldTimeout })

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"data":{}}`))
	})

	_, err := c.Recents(context.Background(), domain.RegionNA, 1, true)
	if !errors.IsTransport(err) {
		t.Fatalf("slow recents must time out with a transport error, got %v", err)
	}

	// The general cap is untouched; the same slow upstream is fine for the
	// overall call.
	if _, err := c.Overall(context.Background(), domain.RegionNA, 1, true); err != nil {
		t.Fatalf("overall must not use the recents cap: %v", err)
	}
}

func TestDecodeErrorsAreCategorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":`))
	})

	_, err := c.Overall(context.Background(), domain.RegionNA, 1, false)
	if !errors.IsDecode(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestTransportErrorsAreCategorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Overall(context.Background(), domain.RegionNA, 1, false)
	if !errors.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
