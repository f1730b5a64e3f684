package vgla

import "sort"

// ScoreVector holds the per-dimension like/dislike/total scores and the
// three independently ranked dimension orderings for one response set.
// Invariant: Total[d] = Like[d] + Dislike[d] for every dimension; Like
// values are >= 0, Dislike values are <= 0.
type ScoreVector struct {
	Like    map[Dimension]int `json:"like"`
	Dislike map[Dimension]int `json:"dislike"`
	Total   map[Dimension]int `json:"total"`

	OrderLike    []Dimension `json:"order_like"`
	OrderDislike []Dimension `json:"order_dislike"`
	OrderTotal   []Dimension `json:"order_total"`
}

// Score maps a response set to per-dimension scores and rankings. Pure and
// total: a set with fewer than the full 60 responses simply scores whatever
// is present, which yields a degraded partial vector — callers must not
// finalize a profile from one.
func Score(responses []Response) ScoreVector {
	like := zeroScores()
	dislike := zeroScores()
	total := zeroScores()

	for _, r := range responses {
		switch {
		case r.IsLike():
			like[r.Dimension]++
		case r.IsDislike():
			dislike[r.Dimension]--
		}
	}

	for _, d := range AllDimensions() {
		total[d] = like[d] + dislike[d]
	}

	return ScoreVector{
		Like:         like,
		Dislike:      dislike,
		Total:        total,
		OrderLike:    RankDimensions(like),
		OrderDislike: RankDimensions(dislike),
		OrderTotal:   RankDimensions(total),
	}
}

// RankDimensions orders the four dimensions descending by score. Equal
// scores resolve by the canonical declaration order (Vision > Goal >
// Logic > Action) so rankings are always deterministic.
func RankDimensions(scores map[Dimension]int) []Dimension {
	dims := AllDimensions()
	sort.SliceStable(dims, func(i, j int) bool {
		return scores[dims[i]] > scores[dims[j]]
	})
	return dims
}

func zeroScores() map[Dimension]int {
	m := make(map[Dimension]int, 4)
	for _, d := range AllDimensions() {
		m[d] = 0
	}
	return m
}
