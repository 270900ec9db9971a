// Package constants centralizes the upstream endpoints, timing knobs and
// presentation constants of the bot.
package constants

import "time"

// Upstream base URLs. The Wargaming host embeds the region extension.
const (
	WargamingBaseURL = "https://api.worldoftanks.%s"
	TomatoBaseURL    = "https://api.tomato.gg"
)

// HTTPConfig bounds every upstream call. No retries anywhere; a slow
// upstream is treated as absent.
var HTTPConfig = struct {
	Timeout        time.Duration
	RecentsTimeout time.Duration
	RequestsPerSec int
}{
	Timeout:        10 * time.Second,
	RecentsTimeout: 10 * time.Second,
	RequestsPerSec: 10,
}

// RefreshConfig drives the reference-data refreshers. The server-stats
// interval is effectively "once per process" plus the initial refresh; the
// upstream window it serves moves slowly enough that it never matters.
var RefreshConfig = struct {
	Tanks       time.Duration
	Economics   time.Duration
	ServerStats time.Duration
}{
	Tanks:       10 * time.Hour,
	Economics:   128000 * time.Second,
	ServerStats: 36000000 * time.Second,
}

// InteractionConfig bounds the interactive reply lifecycle.
var InteractionConfig = struct {
	IdleTimeout time.Duration
}{
	IdleTimeout: 120 * time.Second,
}

// WargamingDefaults holds the fallback application id used when WG_APP_ID
// is not configured.
var WargamingDefaults = struct {
	AppID string
}{
	AppID: "20e1e0e4254d98635796fc71f2dfe741",
}

// Footer attribution on every card.
const (
	FooterText    = "Powered by Tomato.gg"
	FooterIconURL = "https://tomato.gg/_next/image?url=%2Ftomato.png&w=48&q=75"
)

// Web profile URL templates (region name, then identifiers).
const (
	PlayerProfileURL = "https://tomato.gg/stats/%s/%s=%d"
	TankPageURL      = "https://tomato.gg/tanks/%s/%d"
)

// User-visible terminal messages.
const (
	MsgNoPlayer        = "No Player found with that name"
	MsgNoClan          = "Couldn't find a clan with that name"
	MsgClanUnavailable = "Couldn't fetch clan data, try again later"
	MsgUserNotFound    = "User Not Found on Tomato.gg"
	MsgNotInCache      = "Not in Cache... Please wait"
	MsgTanksNotReady   = "Tank data is still loading, try again in a minute"
)
