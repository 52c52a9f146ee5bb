// Package exam is the quiz step of the wizard.
package exam

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mavila/zodico/internal/quiz"
	"github.com/mavila/zodico/internal/router"
	"github.com/mavila/zodico/internal/screen"
	"github.com/mavila/zodico/internal/ui/components"
	"github.com/mavila/zodico/internal/ui/layout"
	"github.com/mavila/zodico/internal/ui/theme"
	"github.com/mavila/zodico/internal/wizard"
)

// ExamScreen presents the six-question quiz, one question at a time.
// Answers can be revisited and changed until the finish gate runs.
type ExamScreen struct {
	flow    *wizard.Flow
	next    func() screen.Screen
	radios  []components.RadioGroup
	current int
	answers quiz.AnswerSet
	errMsg  string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// New creates the quiz screen. next builds the results screen pushed
// once every question is answered and the guard passes.
func New(flow *wizard.Flow, next func() screen.Screen) *ExamScreen {
	qs := quiz.Questions()
	radios := make([]components.RadioGroup, len(qs))
	for i, q := range qs {
		radios[i] = components.NewRadioGroup(q.Prompt, q.Options)
	}
	return &ExamScreen{
		flow:    flow,
		next:    next,
		radios:  radios,
		answers: quiz.AnswerSet{},
	}
}

func (e *ExamScreen) Init() tea.Cmd {
	return nil
}

func (e *ExamScreen) Title() string {
	return "General Knowledge Exam"
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "Esc", Description: "Back"},
	}
	if quiz.Complete(e.answers) {
		hints = append(hints, layout.KeyHint{Key: "F", Description: "Finish"})
	}
	return hints
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}

	switch kmsg.String() {
	case "esc":
		if err := e.flow.Back(); err != nil {
			return e, nil
		}
		return e, func() tea.Msg { return router.PopScreenMsg{} }

	case "left", "h":
		if e.current > 0 {
			e.current--
		}
		return e, nil

	case "right", "l":
		if e.current < len(e.radios)-1 {
			e.current++
		}
		return e, nil

	case "f", "F":
		return e, e.finish()
	}

	var cmd tea.Cmd
	before := e.radios[e.current].Chosen()
	e.radios[e.current], cmd = e.radios[e.current].Update(msg)
	after := e.radios[e.current].Chosen()

	if after >= 0 && after != before {
		e.answers[e.current] = after
		e.errMsg = ""
		// Answering jumps to the next unanswered question, if any.
		if n, ok := e.nextUnanswered(); ok {
			e.current = n
		}
	}
	return e, cmd
}

// nextUnanswered finds the first question without an answer, searching
// forward from the current one and wrapping.
func (e *ExamScreen) nextUnanswered() (int, bool) {
	for off := 1; off <= len(e.radios); off++ {
		i := (e.current + off) % len(e.radios)
		if _, ok := e.answers[i]; !ok {
			return i, true
		}
	}
	return 0, false
}

// finish runs the Quiz → Results guard. The score is computed inside
// the transition and never recomputed after it.
func (e *ExamScreen) finish() tea.Cmd {
	err := e.flow.SubmitAnswers(e.answers)
	if err == nil {
		nextScreen := e.next()
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: nextScreen}
		}
	}
	if errors.Is(err, wizard.ErrQuizIncomplete) {
		e.errMsg = "Answer every question before finishing"
	}
	return nil
}

func (e *ExamScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Prove your knowledge"))
	b.WriteString("\n")

	answered := len(e.answers)
	progress := fmt.Sprintf("Question %d of %d (%d answered)",
		e.current+1, len(e.radios), answered)
	b.WriteString(theme.Subtitle.Width(width).Render(progress))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-8, 64)).Render(e.radios[e.current].View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")

	// Per-question answered markers.
	marks := make([]string, len(e.radios))
	for i := range e.radios {
		m := "○"
		if _, ok := e.answers[i]; ok {
			m = "●"
		}
		if i == e.current {
			m = lipgloss.NewStyle().Foreground(theme.Secondary).Render(m)
		}
		marks[i] = m
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(marks, " ")))

	if quiz.Complete(e.answers) {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Notice.Render("All answered. Press F to finish")))
	}
	if e.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.FieldError.Render(e.errMsg)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
