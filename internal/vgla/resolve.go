package vgla

// CombinationGapThreshold is the fixed score gap at or above which the
// primary dimension is considered clearly dominant and the combination
// collapses to a pure doubled code. The value is part of the behavioral
// contract and must not be tuned.
const CombinationGapThreshold = 3

// Resolution is the derived pairing for a scored assessment.
type Resolution struct {
	Primary     Dimension   `json:"primary"`
	Secondary   Dimension   `json:"secondary"`
	Combination Combination `json:"combination"`

	// BlindSpot is the lowest-ranked dimension, surfaced downstream as the
	// primary growth-area signal.
	BlindSpot Dimension `json:"blind_spot"`
}

// Resolve derives the primary/secondary dimensions and the combination code
// from the ranked totals. orderTotal must be the four dimensions ranked
// descending by total score (ScoreVector.OrderTotal).
func Resolve(orderTotal []Dimension, total map[Dimension]int) Resolution {
	primary := orderTotal[0]
	secondary := orderTotal[1]

	gap := total[primary] - total[secondary]
	if gap < 0 {
		gap = -gap
	}

	combination := MakeCombination(primary, secondary)
	if gap >= CombinationGapThreshold {
		combination = MakePure(primary)
	}

	return Resolution{
		Primary:     primary,
		Secondary:   secondary,
		Combination: combination,
		BlindSpot:   orderTotal[len(orderTotal)-1],
	}
}
