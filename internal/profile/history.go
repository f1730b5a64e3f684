package profile

import (
	"time"

	"github.com/anand/fintype/internal/vgla"
)

// HistoryRecord is one completed assessment in the longitudinal log.
type HistoryRecord struct {
	TestID      string                 `json:"test_id"`
	TestDate    time.Time              `json:"test_date"`
	Primary     vgla.Dimension         `json:"primary"`
	Secondary   vgla.Dimension         `json:"secondary"`
	Combination vgla.Combination       `json:"combination"`
	BlindSpot   vgla.Dimension         `json:"blind_spot"`
	Totals      map[vgla.Dimension]int `json:"totals"`
}

// Stability measures how consistent the combination type has been across
// the history, in [0,1]. One distinct type is perfectly stable; every
// additional distinct type lowers the score by 1/len.
func Stability(history []HistoryRecord) float64 {
	if len(history) <= 1 {
		return 1.0
	}
	distinct := make(map[vgla.Combination]bool, len(history))
	for _, r := range history {
		distinct[r.Combination] = true
	}
	return 1.0 - float64(len(distinct)-1)/float64(len(history))
}

// MostCommonType returns the combination appearing most often in the
// history. Ties go to the type that appeared first. Empty history returns
// the empty combination.
func MostCommonType(history []HistoryRecord) vgla.Combination {
	counts := make(map[vgla.Combination]int, len(history))
	var order []vgla.Combination
	for _, r := range history {
		if counts[r.Combination] == 0 {
			order = append(order, r.Combination)
		}
		counts[r.Combination]++
	}

	var best vgla.Combination
	bestCount := 0
	for _, c := range order {
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	return best
}
