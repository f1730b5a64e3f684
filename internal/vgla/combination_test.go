package vgla

import "testing"

func TestAllCombinations_SixteenCanonicalCodes(t *testing.T) {
	codes := AllCombinations()
	if len(codes) != 16 {
		t.Fatalf("got %d codes, want 16", len(codes))
	}

	pure := 0
	seen := make(map[Combination]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("duplicate code %s", c)
		}
		seen[c] = true
		if !c.Valid() {
			t.Errorf("code %s not marked valid", c)
		}
		if c.IsPure() {
			pure++
		}
	}
	if pure != 4 {
		t.Errorf("got %d pure codes, want 4", pure)
	}
}

func TestCombination_RoundTripLetters(t *testing.T) {
	c := MakeCombination(Logic, Action)

	p, err := c.Primary()
	if err != nil {
		t.Fatalf("primary: %v", err)
	}
	s, err := c.Secondary()
	if err != nil {
		t.Fatalf("secondary: %v", err)
	}
	if p != Logic || s != Action {
		t.Errorf("round trip = %s/%s, want logic/action", p, s)
	}
}

func TestCombination_Invalid(t *testing.T) {
	for _, c := range []Combination{"", "V", "VGL", "XX", "vg"} {
		if c.Valid() {
			t.Errorf("%q should be invalid", c)
		}
	}
	if _, err := Combination("").Primary(); err == nil {
		t.Error("expected error decoding empty code")
	}
}

func TestParseDimension(t *testing.T) {
	for _, d := range AllDimensions() {
		got, err := ParseDimension(string(d))
		if err != nil || got != d {
			t.Errorf("ParseDimension(%q) = %v, %v", d, got, err)
		}
	}
	if _, err := ParseDimension("charisma"); err == nil {
		t.Error("expected error for unknown dimension")
	}
}
