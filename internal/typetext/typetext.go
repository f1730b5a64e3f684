// Package typetext holds the presentation strings for dimensions and
// combination types. The scoring engine stays free of display text; every
// screen and CLI command that needs a human-readable label reads it here.
package typetext

import "github.com/anand/fintype/internal/vgla"

var dimensionNames = map[vgla.Dimension]string{
	vgla.Vision: "Vision",
	vgla.Goal:   "Goal",
	vgla.Logic:  "Logic",
	vgla.Action: "Action",
}

var dimensionBlurbs = map[vgla.Dimension]string{
	vgla.Vision: "drawn to long-term possibility and imagination",
	vgla.Goal:   "works toward concrete targets and milestones",
	vgla.Logic:  "decides with data, comparison, and analysis",
	vgla.Action: "moves quickly and learns by doing",
}

var combinationNames = map[vgla.Combination]string{
	"VV": "Pure Visionary",
	"VG": "Structured Visionary",
	"VL": "Analytical Visionary",
	"VA": "Hands-on Visionary",
	"GG": "Pure Planner",
	"GV": "Big-picture Planner",
	"GL": "Analytical Planner",
	"GA": "Hands-on Planner",
	"LL": "Pure Analyst",
	"LV": "Big-picture Analyst",
	"LG": "Structured Analyst",
	"LA": "Hands-on Analyst",
	"AA": "Pure Doer",
	"AV": "Big-picture Doer",
	"AG": "Structured Doer",
	"AL": "Analytical Doer",
}

// DimensionName returns the display name for a dimension.
func DimensionName(d vgla.Dimension) string {
	if name, ok := dimensionNames[d]; ok {
		return name
	}
	return string(d)
}

// DimensionBlurb returns a one-line description of how a dimension shows up
// in money decisions.
func DimensionBlurb(d vgla.Dimension) string {
	return dimensionBlurbs[d]
}

// CombinationName returns the display name for a combination type code.
func CombinationName(c vgla.Combination) string {
	if name, ok := combinationNames[c]; ok {
		return name
	}
	return string(c)
}
