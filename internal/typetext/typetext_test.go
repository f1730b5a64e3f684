package typetext

import (
	"testing"

	"github.com/anand/fintype/internal/vgla"
)

func TestEveryCombinationHasAName(t *testing.T) {
	for _, c := range vgla.AllCombinations() {
		name := CombinationName(c)
		if name == "" || name == string(c) {
			t.Errorf("combination %s has no display name", c)
		}
	}
}

func TestEveryDimensionHasText(t *testing.T) {
	for _, d := range vgla.AllDimensions() {
		if DimensionName(d) == string(d) {
			t.Errorf("dimension %s has no display name", d)
		}
		if DimensionBlurb(d) == "" {
			t.Errorf("dimension %s has no blurb", d)
		}
	}
}

func TestUnknownCodesFallBack(t *testing.T) {
	if got := CombinationName(vgla.Combination("XY")); got != "XY" {
		t.Errorf("unknown combination name = %q, want code passthrough", got)
	}
	if got := DimensionName(vgla.Dimension("chaos")); got != "chaos" {
		t.Errorf("unknown dimension name = %q, want passthrough", got)
	}
}
