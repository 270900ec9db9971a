package domain

// PlayerIdentity is a directory match: the nickname as the directory knows
// it plus the stable account id. Opaque after resolution.
type PlayerIdentity struct {
	Nickname  string `json:"nickname"`
	AccountID uint32 `json:"account_id"`
}

// OverallStats is the lifetime block from the tomato.gg overall endpoint.
type OverallStats struct {
	Server  string  `json:"server"`
	ID      uint32  `json:"id"`
	Battles int     `json:"battles"`
	WN8     int     `json:"overallWN8"`
	Tier    float64 `json:"avgTier"`
	Winrate float64 `json:"winrate"`
	DPG     int     `json:"dpg"`
}

// RecentsData carries the seven named windows of recent play.
type RecentsData struct {
	Recent24h         TimeFrame `json:"recent24hr"`
	Recent3Days       TimeFrame `json:"recent3days"`
	Recent7Days       TimeFrame `json:"recent7days"`
	Recent30Days      TimeFrame `json:"recent30days"`
	Recent60Days      TimeFrame `json:"recent60days"`
	Recent1000Battles TimeFrame `json:"recent1000battles"`
	Recent100Battles  TimeFrame `json:"recent100battles"`
}

// TimeFrame is one window: an overall block plus per-tank rows. The overall
// block is always present; the tank list may be empty.
type TimeFrame struct {
	Overall   WindowStats `json:"overall"`
	TankStats []TankStats `json:"tankStats"`
}

// WindowStats is the totals block inside a window.
type WindowStats struct {
	Battles int     `json:"battles"`
	WN8     int     `json:"wn8"`
	Tier    float64 `json:"tier"`
	Winrate float64 `json:"winrate"`
	DPG     int     `json:"dpg"`
}

// TankStats is one per-tank row inside a window.
type TankStats struct {
	ID      uint32  `json:"id"`
	Name    string  `json:"name"`
	Tier    int     `json:"tier"`
	Battles int     `json:"battles"`
	WN8     int     `json:"wn8"`
	DPG     int     `json:"dpg"`
	KPG     float64 `json:"kpg"`
	Winrate float64 `json:"winrate"`
}

// PlayerClan is the clan-membership descriptor from the Wargaming
// accountinfo endpoint. Absent when the player is clanless.
type PlayerClan struct {
	ClanID       uint32 `json:"clan_id"`
	Tag          string `json:"tag"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	MembersCount int    `json:"members_count"`
	Color        string `json:"color"`
	EmblemURL    string `json:"emblem_url"`
}

// PlayerAggregate is the record the renderer consumes. Every sub-record is
// independently optional; absence means that section is omitted or
// placeholdered, never an error.
type PlayerAggregate struct {
	Player     PlayerIdentity
	Region     Region
	Overall    *OverallStats
	Recents    *RecentsData
	PlayerClan *PlayerClan
	Clan       *ClanData // materialized by the authoritative wave on demand
}

// InClan reports whether the player has a clan membership.
func (a *PlayerAggregate) InClan() bool {
	return a != nil && a.PlayerClan != nil
}
