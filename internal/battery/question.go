package battery

import "github.com/anand/fintype/internal/vgla"

// Phase tells which half of the battery a question belongs to. The same 30
// scenario prompts are served twice: once asking what appeals (like) and
// once asking what the user would avoid (dislike).
type Phase string

const (
	PhaseLike    Phase = "like"
	PhaseDislike Phase = "dislike"
)

// ParsePhase converts a stored string back to a Phase.
func ParsePhase(s string) (Phase, error) {
	switch Phase(s) {
	case PhaseLike, PhaseDislike:
		return Phase(s), nil
	}
	return "", errUnknownPhase(s)
}

// PhaseForQuestionID derives the phase from a question id by range.
func PhaseForQuestionID(id int) Phase {
	if id <= vgla.LikeQuestionCount {
		return PhaseLike
	}
	return PhaseDislike
}

// Question is a single item of the fixed battery.
type Question struct {
	ID        int
	Text      string
	Dimension vgla.Dimension
	Phase     Phase
}

// Prompt returns the phase-specific framing shown above the options.
func (p Phase) Prompt() string {
	if p == PhaseDislike {
		return "Which approach would you avoid?"
	}
	return "Which approach appeals to you most?"
}

type errUnknownPhase string

func (e errUnknownPhase) Error() string {
	return "unknown phase " + string(e)
}
