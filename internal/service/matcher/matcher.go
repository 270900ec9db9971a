// Package matcher picks the tank a user meant from a free-form query.
// Tank names are messy ("Obj. 140", "T-34-85M", "Skoda T 56"), so the match
// is fuzzy rather than prefix-based.
package matcher

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/relyk/tomatobot/internal/domain"
)

// BestTank returns the reference row whose name scores highest against the
// query, with the score. An exact case-insensitive name match wins outright.
// Ties keep the earliest row so results are stable across calls. An empty
// list yields nil.
func BestTank(query string, tanks []domain.Tank) (*domain.Tank, int) {
	if len(tanks) == 0 {
		return nil, 0
	}

	needle := fuzzy.Cleanse(query, false)
	lowered := strings.ToLower(strings.TrimSpace(query))

	var best *domain.Tank
	bestScore := -1
	for i := range tanks {
		if strings.ToLower(tanks[i].Name) == lowered {
			return &tanks[i], 100
		}
		score := fuzzy.WRatio(needle, fuzzy.Cleanse(tanks[i].Name, false))
		if score > bestScore {
			best = &tanks[i]
			bestScore = score
		}
	}
	return best, bestScore
}
