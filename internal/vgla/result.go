package vgla

import "time"

// Result is the finalized, read-only outcome of one completed assessment.
// It is consumed as an opaque value by the profile tracker and by report
// collaborators; no presentation text is attached here.
type Result struct {
	Scores       ScoreVector `json:"scores"`
	Order        []Dimension `json:"order"`
	Primary      Dimension   `json:"primary"`
	Secondary    Dimension   `json:"secondary"`
	Combination  Combination `json:"combination"`
	BlindSpot    Dimension   `json:"blind_spot"`
	AnalysisDate time.Time   `json:"analysis_date"`
}

// NewResult scores a complete response set, resolves the combination, and
// stamps the analysis date.
func NewResult(responses []Response, now time.Time) *Result {
	sv := Score(responses)
	res := Resolve(sv.OrderTotal, sv.Total)
	return &Result{
		Scores:       sv,
		Order:        sv.OrderTotal,
		Primary:      res.Primary,
		Secondary:    res.Secondary,
		Combination:  res.Combination,
		BlindSpot:    res.BlindSpot,
		AnalysisDate: now,
	}
}
