// Package render builds the reply cards. Everything here is pure: data in,
// card out, no upstream calls and no platform types.
package render

import "strconv"

// DefaultColor is the neutral grey used when no rating is available.
const DefaultColor = 0x808080

// WN8Color maps a WN8 value to its community color band.
func WN8Color(wn8 int) int {
	switch {
	case wn8 <= 0:
		return 0x808080
	case wn8 <= 300:
		return 0x930D0D
	case wn8 <= 450:
		return 0xCD3333
	case wn8 <= 650:
		return 0xCC7A00
	case wn8 <= 900:
		return 0xCCB800
	case wn8 <= 1200:
		return 0x849B24
	case wn8 <= 1600:
		return 0x4D7326
	case wn8 <= 2000:
		return 0x4099BF
	case wn8 <= 2450:
		return 0x3972C6
	case wn8 <= 2900:
		return 0x6844D4
	case wn8 <= 3400:
		return 0x522B99
	case wn8 <= 4000:
		return 0x411D73
	case wn8 <= 4700:
		return 0x310D59
	default:
		return 0x24073D
	}
}

// ParseHexColor parses a "#rrggbb" or "rrggbb" string. Malformed input falls
// back to DefaultColor.
func ParseHexColor(raw string) int {
	if len(raw) > 0 && raw[0] == '#' {
		raw = raw[1:]
	}
	n, err := strconv.ParseInt(raw, 16, 32)
	if err != nil {
		return DefaultColor
	}
	return int(n)
}
