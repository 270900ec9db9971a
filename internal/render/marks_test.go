package render

import (
	"strings"
	"testing"

	"github.com/relyk/tomatobot/internal/domain"
)

func TestTankCardLayout(t *testing.T) {
	tank := &domain.Tank{
		ID: 16897, Name: "Obj. 140", Tier: 10, Class: "MT", Nation: "ussr",
		Pct65: 1800, Pct85: 2600, Pct95: 3400, Pct100: 4200,
		First: 5200, Second: 4100, Third: 0, Ace: 6400,
		Images: domain.TankImages{BigIcon: "https://icons.example/obj140.png"},
	}
	econ := &domain.TankEconomics{AvgEarnings: 52000, AvgProfit: -4200, AvgAmmoCost: 18000, ProfitPerMin: -600}
	recent := &domain.RecentTankStats{WN8: 2100, Winrate: 52.1, Damage: 2300, SpottingAssist: 400, TrackingAssist: 180}

	card := TankCard(tank, domain.RegionNA, econ, recent)

	if card.Title != "Obj. 140 NA" {
		t.Fatalf("title %q", card.Title)
	}
	if card.URL != "https://tomato.gg/tanks/NA/16897" {
		t.Fatalf("url %q", card.URL)
	}
	if !strings.Contains(card.Description, "USSR") || !strings.Contains(card.Description, ":MT:") {
		t.Fatalf("description must carry nation and class glyphs: %q", card.Description)
	}
	if card.Color != WN8Color(2100) {
		t.Fatalf("color must come from the 30-day WN8")
	}
	if len(card.Fields) != 4 {
		t.Fatalf("got %d fields", len(card.Fields))
	}
	if !strings.Contains(card.Fields[0].Value, "100: `4200`") {
		t.Fatalf("moe pane wrong: %q", card.Fields[0].Value)
	}
	if !strings.Contains(card.Fields[2].Value, "Avg. Profit: `-4200`") {
		t.Fatalf("economics pane must keep signed profit: %q", card.Fields[2].Value)
	}
	if !strings.Contains(card.Fields[3].Value, "Assist: `580`") {
		t.Fatalf("assist must sum spotting and tracking: %q", card.Fields[3].Value)
	}
	if card.Thumbnail != "https://icons.example/obj140.png" {
		t.Fatalf("thumbnail %q", card.Thumbnail)
	}
}

func TestTankCardPremiumGlyph(t *testing.T) {
	tank := &domain.Tank{Name: "Skoda T 56", Class: "HT", Nation: "czech", IsPremium: true}
	card := TankCard(tank, domain.RegionEU, nil, nil)
	if !strings.Contains(card.Description, "premHT") {
		t.Fatalf("premium tank must use the gold class glyph: %q", card.Description)
	}
}

func TestTankCardMissingRowsRenderZeros(t *testing.T) {
	tank := &domain.Tank{Name: "Brand New", Class: "TD", Nation: "usa"}
	card := TankCard(tank, domain.RegionNA, nil, nil)
	if card.Color != DefaultColor {
		t.Fatalf("no 30-day row means default color, got %#x", card.Color)
	}
	if !strings.Contains(card.Fields[2].Value, "Avg. Profit: `0`") {
		t.Fatalf("missing economics must render zeros: %q", card.Fields[2].Value)
	}
}
