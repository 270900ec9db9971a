package domain

import "strings"

// Period is one of the seven named windows of recent play served by the
// recents upstream. It is a closed enum; the renderer never sees the raw
// window strings.
type Period int

const (
	Period24h Period = iota
	Period3d
	Period7d
	Period30d
	Period60d
	Period1000Battles
	Period100Battles
)

// AllPeriods lists the windows in menu order.
var AllPeriods = []Period{
	Period24h,
	Period3d,
	Period7d,
	Period30d,
	Period60d,
	Period1000Battles,
	Period100Battles,
}

// CanonicalName is the stable identifier used as the select-menu value.
func (p Period) CanonicalName() string {
	switch p {
	case Period24h:
		return "R24HR"
	case Period3d:
		return "R3DAYS"
	case Period7d:
		return "R7DAYS"
	case Period30d:
		return "R30DAYS"
	case Period60d:
		return "R60DAYS"
	case Period1000Battles:
		return "R1000BATTLES"
	case Period100Battles:
		return "R100BATTLES"
	}
	return ""
}

// Label is the human-readable window name used in card text.
func (p Period) Label() string {
	switch p {
	case Period24h:
		return "24 Hours"
	case Period3d:
		return "3 Days"
	case Period7d:
		return "7 Days"
	case Period30d:
		return "30 Days"
	case Period60d:
		return "60 Days"
	case Period1000Battles:
		return "1000 Battles"
	case Period100Battles:
		return "100 Battles"
	}
	return ""
}

func (p Period) String() string { return p.CanonicalName() }

// TimeFrame selects this period's window from a recents record. The window
// always matches the requested period; nil recents yields nil.
func (p Period) TimeFrame(r *RecentsData) *TimeFrame {
	if r == nil {
		return nil
	}
	switch p {
	case Period24h:
		return &r.Recent24h
	case Period3d:
		return &r.Recent3Days
	case Period7d:
		return &r.Recent7Days
	case Period30d:
		return &r.Recent30Days
	case Period60d:
		return &r.Recent60Days
	case Period1000Battles:
		return &r.Recent1000Battles
	case Period100Battles:
		return &r.Recent100Battles
	}
	return nil
}

// ParsePeriod accepts both the canonical names and the short option values
// exposed on the slash command (24h, 3d, 7d, 30d, 60d, 1000b, 100b).
func ParsePeriod(raw string) (Period, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "R24HR", "24H":
		return Period24h, true
	case "R3DAYS", "3D":
		return Period3d, true
	case "R7DAYS", "7D":
		return Period7d, true
	case "R30DAYS", "30D":
		return Period30d, true
	case "R60DAYS", "60D":
		return Period60d, true
	case "R1000BATTLES", "1000B":
		return Period1000Battles, true
	case "R100BATTLES", "100B":
		return Period100Battles, true
	}
	return Period24h, false
}
