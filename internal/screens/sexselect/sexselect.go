// Package sexselect is the sex-selection step of the wizard.
package sexselect

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mavila/zodico/internal/profile"
	"github.com/mavila/zodico/internal/router"
	"github.com/mavila/zodico/internal/screen"
	"github.com/mavila/zodico/internal/ui/components"
	"github.com/mavila/zodico/internal/ui/layout"
	"github.com/mavila/zodico/internal/ui/theme"
	"github.com/mavila/zodico/internal/wizard"
)

var options = []string{profile.SexMale, profile.SexFemale}

// SexScreen completes the profile with a sex selection.
type SexScreen struct {
	flow   *wizard.Flow
	next   func() screen.Screen
	radio  components.RadioGroup
	errMsg string
}

var _ screen.Screen = (*SexScreen)(nil)
var _ screen.KeyHintProvider = (*SexScreen)(nil)

// New creates the sex-selection screen. next builds the quiz screen
// pushed after a successful submit.
func New(flow *wizard.Flow, next func() screen.Screen) *SexScreen {
	s := &SexScreen{
		flow:  flow,
		next:  next,
		radio: components.NewRadioGroup("", options),
	}
	// Restore the choice when stepping back from the quiz.
	if p, err := flow.Profile(); err == nil && p.Sex != "" {
		for i, opt := range options {
			if opt == p.Sex {
				s.radio.SetChosen(i)
			}
		}
	}
	return s
}

func (s *SexScreen) Init() tea.Cmd {
	return nil
}

func (s *SexScreen) Title() string {
	return "Select Your Sex"
}

func (s *SexScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Choose"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SexScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		// The back edge returns to profile entry with the partial
		// profile intact.
		if err := s.flow.Back(); err != nil {
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter":
		return s, s.submit()
	}

	var cmd tea.Cmd
	s.radio, cmd = s.radio.Update(msg)
	if s.radio.Chosen() >= 0 {
		s.errMsg = ""
	}
	return s, cmd
}

// submit runs the transition guard; with nothing chosen the step
// refuses to advance.
func (s *SexScreen) submit() tea.Cmd {
	sex := ""
	if i := s.radio.Chosen(); i >= 0 {
		sex = options[i]
	}

	err := s.flow.SubmitSex(sex)
	if err == nil {
		nextScreen := s.next()
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: nextScreen}
		}
	}
	if errors.Is(err, wizard.ErrNoSexSelected) {
		s.errMsg = "Choose an option to continue"
	}
	return nil
}

func (s *SexScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Select your sex"))
	b.WriteString("\n\n")

	card := theme.Card.Render(s.radio.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.FieldError.Render(s.errMsg)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
