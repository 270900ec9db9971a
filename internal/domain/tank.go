package domain

import (
	"bytes"
	"strconv"
)

// FlexInt decodes a JSON slot the upstream sometimes fills with a string
// when the data is missing. Numbers decode normally; any string decodes to
// zero. Observed on the "3rd" mastery threshold.
type FlexInt int

// UnmarshalJSON implements tolerant number-or-string decoding.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '"' || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = FlexInt(int(n))
	return nil
}

// Int returns the plain integer value.
func (f FlexInt) Int() int { return int(f) }

// Tank is a tank reference row: moe thresholds and mastery thresholds
// merged by tank id.
type Tank struct {
	ID        uint32     `json:"id"`
	Name      string     `json:"name"`
	Tier      int        `json:"tier"`
	Class     string     `json:"class"`
	Nation    string     `json:"nation"`
	IsPremium bool       `json:"isPrem"`
	Pct65     int        `json:"65"`
	Pct85     int        `json:"85"`
	Pct95     int        `json:"95"`
	Pct100    int        `json:"100"`
	First     int        `json:"1st"`
	Second    int        `json:"2nd"`
	Third     FlexInt    `json:"3rd"`
	Ace       int        `json:"ace"`
	Images    TankImages `json:"images"`
}

// TankImages carries the encyclopedia icon URLs.
type TankImages struct {
	BigIcon string `json:"big_icon"`
}

// TankEconomics is one row of the global tank-economics list. Earnings and
// profit are signed: some revisions of the upstream report net losses.
type TankEconomics struct {
	ID             uint32 `json:"tank_id"`
	Battles        int    `json:"battles"`
	AvgEarnings    int32  `json:"avg_earnings"`
	AvgProfit      int32  `json:"avg_profit"`
	AvgAmmoCost    int32  `json:"avg_ammo_cost"`
	CostPerShot    int32  `json:"cost_per_shot"`
	EarningsPerMin int32  `json:"earnings_per_minute"`
	ProfitPerMin   int32  `json:"profit_per_minute"`
}

// RecentTankStats is one per-tank server-wide aggregate over a recent
// window (the 30-day slice tomato.gg serves for all tanks).
type RecentTankStats struct {
	TankID         uint32  `json:"tank_id"`
	Name           string  `json:"name"`
	Nation         string  `json:"nation"`
	Tier           int     `json:"tier"`
	Class          string  `json:"class"`
	Image          string  `json:"image"`
	BigImage       string  `json:"big_image"`
	Battles        int     `json:"battles"`
	Winrate        float64 `json:"winrate"`
	Damage         int     `json:"damage"`
	Frags          float64 `json:"frags"`
	SpottingAssist int     `json:"spotting_assist"`
	TrackingAssist int     `json:"tracking_assist"`
	Survival       float64 `json:"survival"`
	WN8            int     `json:"wn8"`
	IsPremium      bool    `json:"isPrem"`
}
