package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mavila/zodico/internal/ui/theme"
)

// RadioGroup is a single-choice selector. Unlike a quiz reveal widget
// it carries no notion of a correct option; the chosen index is just
// recorded and can be changed at any time.
type RadioGroup struct {
	Label   string
	Options []string
	Cursor  int
	chosen  int
}

// NewRadioGroup creates a radio group with nothing chosen.
func NewRadioGroup(label string, options []string) RadioGroup {
	return RadioGroup{
		Label:   label,
		Options: options,
		chosen:  -1,
	}
}

// Init returns nil.
func (r RadioGroup) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (r RadioGroup) Update(msg tea.Msg) (RadioGroup, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.Cursor > 0 {
			r.Cursor--
		}
	case "down", "j":
		if r.Cursor < len(r.Options)-1 {
			r.Cursor++
		}
	case "enter", "space":
		r.chosen = r.Cursor
	}

	return r, nil
}

// View renders the radio group.
func (r RadioGroup) View() string {
	s := ""
	if r.Label != "" {
		s = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r.Label) + "\n\n"
	}

	for i, opt := range r.Options {
		mark := "( )"
		if i == r.chosen {
			mark = "(•)"
		}
		prefix := "  "
		if i == r.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, mark, opt)

		switch {
		case i == r.chosen:
			s += theme.Selected.Render(line) + "\n"
		case i == r.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// Chosen returns the chosen option index, or -1 if nothing is chosen.
func (r RadioGroup) Chosen() int {
	return r.chosen
}

// SetChosen restores a previous choice and moves the cursor to it.
func (r *RadioGroup) SetChosen(i int) {
	if i >= 0 && i < len(r.Options) {
		r.chosen = i
		r.Cursor = i
	}
}

// Clear forgets the choice.
func (r *RadioGroup) Clear() {
	r.chosen = -1
}
