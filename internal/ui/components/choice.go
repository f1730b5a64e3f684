package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anand/fintype/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D"}

// Choice is a forced-choice option selector. There is no correct answer;
// the caller reads Selected (or the Option* helpers) when the user confirms.
type Choice struct {
	Prompt   string
	Options  []string
	Selected int
}

// NewChoice creates a selector with the cursor on the given option, so a
// previously answered question shows its recorded choice when revisited.
func NewChoice(prompt string, options []string, selected int) Choice {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Choice{
		Prompt:   prompt,
		Options:  options,
		Selected: selected,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. Letter and number keys jump the cursor
// directly; confirmation is the parent screen's concern.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "a", "1":
		c.jumpTo(0)
	case "b", "2":
		c.jumpTo(1)
	case "c", "3":
		c.jumpTo(2)
	case "d", "4":
		c.jumpTo(3)
	}

	return c, nil
}

func (c *Choice) jumpTo(i int) {
	if i < len(c.Options) {
		c.Selected = i
	}
}

// SelectedOption returns the text of the option under the cursor.
func (c Choice) SelectedOption() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the prompt and the labeled options.
func (c Choice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		label := choiceLabels[i%len(choiceLabels)]
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
