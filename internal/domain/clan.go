package domain

// TomatoClan is the tomato.gg clan profile block.
type TomatoClan struct {
	Name           string  `json:"name"`
	Tag            string  `json:"tag"`
	Color          string  `json:"color"` // hex string with leading '#'
	Motto          string  `json:"motto"`
	Emblems        Emblems `json:"emblems"`
	OverallWN8     float64 `json:"overallWN8"`
	OverallWinrate float64 `json:"overallWinrate"`
	RecentWN8      float64 `json:"recentWN8"`
	RecentWinrate  float64 `json:"recentWinrate"`
	MembersCount   int     `json:"members_count"`
}

// Emblems is the nested emblem-url shape shared by the clan upstreams.
type Emblems struct {
	X64 EmblemURL `json:"x64"`
}

// EmblemURL carries the portal-hosted emblem image.
type EmblemURL struct {
	Portal string `json:"portal"`
}

// RatingValue is the { "value": n } wrapper the clan-ratings upstream puts
// around every number.
type RatingValue struct {
	Value float64 `json:"value"`
}

// ClanRating is the Wargaming clan-ratings block.
type ClanRating struct {
	Efficiency              RatingValue `json:"efficiency"`
	BattlesCountAvgDaily    RatingValue `json:"battles_count_avg_daily"`
	GlobalRatingWeightedAvg RatingValue `json:"global_rating_weighted_avg"`
	FBEloRating10           RatingValue `json:"fb_elo_rating_10"`
	FBEloRating8            RatingValue `json:"fb_elo_rating_8"`
	FBEloRating6            RatingValue `json:"fb_elo_rating_6"`
	GMEloRating10           RatingValue `json:"gm_elo_rating_10"`
}

// GlobalMapStats is the Wargaming global-map block.
type GlobalMapStats struct {
	Statistics GlobalMapStatistics `json:"statistics"`
}

// GlobalMapStatistics holds the high-tier global-map numbers.
type GlobalMapStatistics struct {
	Battles10Level int `json:"battles_10_level"`
	Wins10Level    int `json:"wins_10_level"`
	ProvincesCount int `json:"provinces_count"`
}

// ClanData is the full clan aggregate. Any block may be absent; the
// renderer substitutes zeros and dashes.
type ClanData struct {
	Tomato *TomatoClan
	Rating *ClanRating
	Global *GlobalMapStats
}

// Empty reports whether no source block resolved at all.
func (c *ClanData) Empty() bool {
	return c == nil || (c.Tomato == nil && c.Rating == nil && c.Global == nil)
}

var shortRoles = map[string]string{
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

// ShortRole maps a Wargaming clan role to its short display form. Unknown
// roles render as "Err".
func ShortRole(role string) string {
	if short, ok := shortRoles[role]; ok {
		return short
	}
	return "Err"
}
