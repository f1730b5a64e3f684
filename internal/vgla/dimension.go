package vgla

import "fmt"

// Dimension is one of the four money-personality dimensions.
type Dimension string

const (
	Vision Dimension = "vision"
	Goal   Dimension = "goal"
	Logic  Dimension = "logic"
	Action Dimension = "action"
)

// AllDimensions returns the four dimensions in canonical declaration order.
// This ordering is load-bearing: question dimension assignment cycles
// through it and score ties resolve by position in it, so it must never
// be reordered.
func AllDimensions() []Dimension {
	return []Dimension{Vision, Goal, Logic, Action}
}

// Letter returns the one-letter code used in combination types.
func (d Dimension) Letter() string {
	switch d {
	case Vision:
		return "V"
	case Goal:
		return "G"
	case Logic:
		return "L"
	case Action:
		return "A"
	default:
		return "?"
	}
}

// ParseDimension converts a stored string back to a Dimension.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(s) {
	case Vision, Goal, Logic, Action:
		return Dimension(s), nil
	}
	return "", fmt.Errorf("unknown dimension %q", s)
}

// DimensionForLetter converts a one-letter code back to a Dimension.
func DimensionForLetter(letter string) (Dimension, error) {
	for _, d := range AllDimensions() {
		if d.Letter() == letter {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown dimension letter %q", letter)
}

// rank returns the dimension's position in declaration order.
// Unknown dimensions sort last.
func (d Dimension) rank() int {
	for i, dim := range AllDimensions() {
		if d == dim {
			return i
		}
	}
	return len(AllDimensions())
}
