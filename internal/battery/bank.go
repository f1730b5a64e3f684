package battery

import (
	"errors"
	"fmt"

	"github.com/anand/fintype/internal/vgla"
)

// ErrUnknownOption reports an option text outside the four canonical answers.
var ErrUnknownOption = errors.New("unknown answer option")

// questionBank holds the generated battery with lookup indices.
type questionBank struct {
	questions []Question
	byID      map[int]Question
	options   []string
	optionDim map[string]vgla.Dimension
}

// bank is the package-level singleton, set by init() in seed.go.
var bank *questionBank

// buildBank generates the full battery from the scenario prompts: ids 1-30
// in the like phase and 31-60 in the dislike phase over the same prompts,
// with the dimension cycling through the canonical order.
func buildBank(prompts []string, options []string) (*questionBank, error) {
	dims := vgla.AllDimensions()

	questions := make([]Question, 0, 2*len(prompts))
	for _, phase := range []Phase{PhaseLike, PhaseDislike} {
		offset := 0
		if phase == PhaseDislike {
			offset = len(prompts)
		}
		for i, text := range prompts {
			questions = append(questions, Question{
				ID:        offset + i + 1,
				Text:      text,
				Dimension: dims[i%len(dims)],
				Phase:     phase,
			})
		}
	}

	optionDim := make(map[string]vgla.Dimension, len(options))
	for i, text := range options {
		optionDim[text] = dims[i]
	}

	b := &questionBank{
		questions: questions,
		byID:      make(map[int]Question, len(questions)),
		options:   options,
		optionDim: optionDim,
	}
	for _, q := range questions {
		b.byID[q.ID] = q
	}

	if err := validateBank(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Questions returns the fixed 60-question battery in id order.
func Questions() []Question {
	out := make([]Question, len(bank.questions))
	copy(out, bank.questions)
	return out
}

// QuestionByID looks up a single question.
func QuestionByID(id int) (Question, error) {
	q, ok := bank.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("no question with id %d", id)
	}
	return q, nil
}

// Options returns the four canonical option texts in fixed order.
func Options() []string {
	out := make([]string, len(bank.options))
	copy(out, bank.options)
	return out
}

// DimensionForOption maps an option position to its dimension
// (0 Vision, 1 Goal, 2 Logic, 3 Action).
func DimensionForOption(index int) (vgla.Dimension, error) {
	dims := vgla.AllDimensions()
	if index < 0 || index >= len(dims) {
		return "", fmt.Errorf("option index %d out of range: %w", index, ErrUnknownOption)
	}
	return dims[index], nil
}

// DimensionForOptionText maps a canonical option text to its dimension.
func DimensionForOptionText(text string) (vgla.Dimension, error) {
	d, ok := bank.optionDim[text]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOption, text)
	}
	return d, nil
}
