package vgla

// Combination is a two-letter code naming the dominant pairing of the two
// highest-scoring dimensions. The code is order-sensitive ("VG" and "GV"
// are distinct) and a doubled letter ("VV") marks a pure type where the
// primary dimension clearly dominates.
type Combination string

// MakeCombination builds the order-sensitive code for a primary/secondary pair.
func MakeCombination(primary, secondary Dimension) Combination {
	return Combination(primary.Letter() + secondary.Letter())
}

// MakePure builds the doubled code for a clearly dominant primary dimension.
func MakePure(primary Dimension) Combination {
	return MakeCombination(primary, primary)
}

// Primary returns the dimension named by the first letter.
func (c Combination) Primary() (Dimension, error) {
	if len(c) != 2 {
		return "", errMalformedCombination(c)
	}
	return DimensionForLetter(string(c[0]))
}

// Secondary returns the dimension named by the second letter.
func (c Combination) Secondary() (Dimension, error) {
	if len(c) != 2 {
		return "", errMalformedCombination(c)
	}
	return DimensionForLetter(string(c[1]))
}

// IsPure reports whether the code is one of the four doubled codes.
func (c Combination) IsPure() bool {
	return len(c) == 2 && c[0] == c[1] && c.Valid()
}

// Valid reports whether the code is one of the 16 canonical combinations.
func (c Combination) Valid() bool {
	return canonicalCombinations[c]
}

// AllCombinations returns the 16 canonical codes in a fixed order:
// primary cycling the declaration order, secondary likewise, pure codes
// included where primary == secondary.
func AllCombinations() []Combination {
	codes := make([]Combination, 0, 16)
	for _, p := range AllDimensions() {
		for _, s := range AllDimensions() {
			codes = append(codes, MakeCombination(p, s))
		}
	}
	return codes
}

// canonicalCombinations is the closed set of the 16 valid codes.
var canonicalCombinations = func() map[Combination]bool {
	set := make(map[Combination]bool, 16)
	for _, c := range AllCombinations() {
		set[c] = true
	}
	return set
}()

type errMalformedCombination Combination

func (e errMalformedCombination) Error() string {
	return "malformed combination code " + string(e)
}
