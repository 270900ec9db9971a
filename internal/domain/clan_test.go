package domain

import "testing"

func TestShortRoleTable(t *testing.T) {
	known := map[string]string{
		"commander":            "CDR",
		"executive_officer":    "XO",
		"personnel_officer":    "PO",
		"combat_officer":       "CO",
		"recruitment_officer":  "RO",
		"intelligence_officer": "IO",
		"quartermaster":        "QM",
		"junior_officer":       "JO",
		"private":              "PVT",
		"recruit":              "RCT",
		"reservist":            "RES",
	}
	for role, want := range known {
		if got := ShortRole(role); got != want {
			t.Errorf("ShortRole(%q) = %q, want %q", role, got, want)
		}
	}
}

func TestShortRoleUnknown(t *testing.T) {
	for _, role := range []string{"", "Commander", "owner", "commander "} {
		if got := ShortRole(role); got != "Err" {
			t.Errorf("ShortRole(%q) = %q, want Err", role, got)
		}
	}
}

func TestClanDataEmpty(t *testing.T) {
	var nilData *ClanData
	if !nilData.Empty() {
		t.Fatalf("nil ClanData must be empty")
	}
	if !(&ClanData{}).Empty() {
		t.Fatalf("zero ClanData must be empty")
	}
	if (&ClanData{Tomato: &TomatoClan{}}).Empty() {
		t.Fatalf("ClanData with a tomato block must not be empty")
	}
}
