package domain

import "strings"

// Region identifies one of the three World of Tanks server clusters.
type Region int

const (
	RegionNA Region = iota
	RegionEU
	RegionAsia
)

// AllRegions lists every region in resolver priority order (NA first).
var AllRegions = []Region{RegionNA, RegionEU, RegionAsia}

// Extension returns the URL extension used by both API families
// (api.worldoftanks.<ext>, api.tomato.gg/.../<ext>/...).
func (r Region) Extension() string {
	switch r {
	case RegionEU:
		return "eu"
	case RegionAsia:
		return "asia"
	default:
		return "com"
	}
}

// Name returns the display name ("NA", "EU", "ASIA").
func (r Region) Name() string {
	switch r {
	case RegionEU:
		return "EU"
	case RegionAsia:
		return "ASIA"
	default:
		return "NA"
	}
}

func (r Region) String() string { return r.Name() }

// ParseRegion parses a user-supplied region name. It accepts the display
// names and the URL extensions, case-insensitively.
func ParseRegion(raw string) (Region, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "na", "com", "north america":
		return RegionNA, true
	case "eu", "europe":
		return RegionEU, true
	case "asia", "sea":
		return RegionAsia, true
	}
	return RegionNA, false
}
