package domain

import "testing"

func TestPeriodTimeFrameSelectsRequestedWindow(t *testing.T) {
	recents := &RecentsData{}
	recents.Recent3Days.Overall.Battles = 3
	recents.Recent7Days.Overall.Battles = 7
	recents.Recent30Days.Overall.Battles = 30

	// The 7-day selector must read the 7-day window, never the 3-day one.
	if got := Period7d.TimeFrame(recents).Overall.Battles; got != 7 {
		t.Fatalf("7d window battles = %d, want 7", got)
	}
	if got := Period3d.TimeFrame(recents).Overall.Battles; got != 3 {
		t.Fatalf("3d window battles = %d, want 3", got)
	}
	if got := Period30d.TimeFrame(recents).Overall.Battles; got != 30 {
		t.Fatalf("30d window battles = %d, want 30", got)
	}

	if Period24h.TimeFrame(nil) != nil {
		t.Fatalf("nil recents must select nil window")
	}
}

func TestParsePeriod(t *testing.T) {
	for raw, want := range map[string]Period{
		"24h":         Period24h,
		"R24HR":       Period24h,
		"3d":          Period3d,
		"7d":          Period7d,
		"R30DAYS":     Period30d,
		"60d":         Period60d,
		"1000b":       Period1000Battles,
		"R100BATTLES": Period100Battles,
	} {
		got, ok := ParsePeriod(raw)
		if !ok || got != want {
			t.Errorf("ParsePeriod(%q) = %v, %v; want %v", raw, got, ok, want)
		}
	}

	if _, ok := ParsePeriod("90d"); ok {
		t.Errorf("ParsePeriod(90d) should not match")
	}
}

func TestPeriodCanonicalNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range AllPeriods {
		name := p.CanonicalName()
		if name == "" {
			t.Fatalf("period %d has no canonical name", p)
		}
		if seen[name] {
			t.Fatalf("duplicate canonical name %q", name)
		}
		seen[name] = true
	}
}
