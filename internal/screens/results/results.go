// Package results is the final step: derived values, score display,
// and the one cloud submission.
package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mavila/zodico/internal/history"
	"github.com/mavila/zodico/internal/profile"
	"github.com/mavila/zodico/internal/quiz"
	"github.com/mavila/zodico/internal/router"
	"github.com/mavila/zodico/internal/screen"
	"github.com/mavila/zodico/internal/sink"
	"github.com/mavila/zodico/internal/ui/layout"
	"github.com/mavila/zodico/internal/ui/theme"
	"github.com/mavila/zodico/internal/wizard"
	"github.com/mavila/zodico/internal/zodiac"
)

// Result is the scored outcome shown on this screen: the completed
// profile plus everything derived from it.
type Result struct {
	Profile    profile.Profile
	ZodiacSign string
	Age        int
	Score      int
}

// submission status
type status int

const (
	statusSubmitting status = iota
	statusSaved
	statusFailed      // retry still available
	statusFailedFinal // retry spent; failure surfaced and dropped
)

// submitDoneMsg reports the outcome of one submission attempt.
type submitDoneMsg struct {
	attempt int
	err     error
}

const submitTimeout = 15 * time.Second

// ResultsScreen shows the outcome and submits it to the result sink.
type ResultsScreen struct {
	flow    *wizard.Flow
	sink    sink.Sink
	log     *history.Store
	restart func() screen.Screen
	now     func() time.Time

	result  Result
	loadErr error

	status  status
	attempt int
	logged  bool
	lastErr error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen. The sink and attempt log are
// injected; restart builds a fresh profile-entry screen for the full
// wizard reset.
func New(flow *wizard.Flow, snk sink.Sink, log *history.Store, restart func() screen.Screen) *ResultsScreen {
	return newWithClock(flow, snk, log, restart, time.Now)
}

func newWithClock(flow *wizard.Flow, snk sink.Sink, log *history.Store, restart func() screen.Screen, now func() time.Time) *ResultsScreen {
	r := &ResultsScreen{
		flow:    flow,
		sink:    snk,
		log:     log,
		restart: restart,
		now:     now,
	}

	p, err := flow.Profile()
	if err != nil {
		// The flow controls both ends of the handoff; a decode failure
		// here is an invariant violation, shown as-is.
		r.loadErr = err
		return r
	}
	r.result = Result{
		Profile:    p,
		ZodiacSign: zodiac.Sign(p.BirthYear),
		Age:        zodiac.Age(p.BirthDay, p.BirthMonth, p.BirthYear, r.now()),
		Score:      flow.Payload().Score,
	}
	return r
}

func (r *ResultsScreen) Init() tea.Cmd {
	if r.loadErr != nil {
		return nil
	}
	return r.submit()
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Start over"},
	}
	if r.status == statusFailed {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry save"})
	}
	return hints
}

// record builds the wire form of the result.
func (r *ResultsScreen) record() sink.Record {
	p := r.result.Profile
	return sink.Record{
		GivenName:       p.GivenName,
		PaternalSurname: p.PaternalSurname,
		MaternalSurname: p.MaternalSurname,
		BirthDay:        p.BirthDay,
		BirthMonth:      p.BirthMonth,
		BirthYear:       p.BirthYear,
		Sex:             p.Sex,
		ZodiacSign:      r.result.ZodiacSign,
		Score:           r.result.Score,
		SubmittedAt:     r.now().UnixMilli(),
	}
}

// submit fires one submission attempt. The UI never blocks on it; the
// outcome arrives as a submitDoneMsg.
func (r *ResultsScreen) submit() tea.Cmd {
	r.status = statusSubmitting
	r.attempt++
	attempt := r.attempt
	rec := r.record()
	snk := r.sink

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		return submitDoneMsg{attempt: attempt, err: snk.Submit(ctx, rec)}
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		return r.handleSubmitDone(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return r, r.reset()
		case "r", "R":
			// One manual retry. A second failure is surfaced and then
			// dropped; nothing is queued or persisted for later.
			if r.status == statusFailed {
				return r, r.submit()
			}
		}
	}
	return r, nil
}

func (r *ResultsScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.attempt != r.attempt {
		// A stale attempt finishing after a retry was issued. Both may
		// complete; only the newest drives the banner.
		return r, nil
	}

	r.lastErr = msg.err
	switch {
	case msg.err == nil:
		r.status = statusSaved
	case r.attempt == 1:
		r.status = statusFailed
	default:
		r.status = statusFailedFinal
	}

	// The local log records the outcome of the initial delivery, once
	// per visit. It is an audit trail, never a redelivery queue.
	if !r.logged && r.log != nil {
		r.logged = true
		p := r.result.Profile
		_ = r.log.Append(context.Background(), history.Attempt{
			GivenName:       p.GivenName,
			PaternalSurname: p.PaternalSurname,
			MaternalSurname: p.MaternalSurname,
			Sex:             p.Sex,
			ZodiacSign:      r.result.ZodiacSign,
			Age:             r.result.Age,
			Score:           r.result.Score,
			Delivered:       msg.err == nil,
		})
	}

	return r, nil
}

// reset leaves the wizard entirely: the flow returns to profile entry
// and the screen stack collapses to a fresh first step.
func (r *ResultsScreen) reset() tea.Cmd {
	r.flow.Reset()
	fresh := r.restart()
	return func() tea.Msg {
		return router.ResetScreenMsg{Screen: fresh}
	}
}

func (r *ResultsScreen) View(width, height int) string {
	if r.loadErr != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.FieldError.Render("internal error: "+r.loadErr.Error()))
	}

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("Hello, %s", r.result.Profile.FullName())))
	b.WriteString("\n\n")

	ageLine := fmt.Sprintf("You are %d years old", r.result.Age)
	signLine := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(r.result.ZodiacSign)

	scoreStyle := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	if r.result.Score >= 4 {
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	}
	scoreLine := scoreStyle.Render(fmt.Sprintf("Score: %d/%d", r.result.Score, quiz.Len()))

	card := theme.Card.Render(strings.Join([]string{
		lipgloss.NewStyle().Foreground(theme.Text).Render(ageLine),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Your sign is"),
		signArt(r.result.ZodiacSign) + "  " + signLine,
		"",
		scoreLine,
	}, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.banner()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// banner renders the transient submission notice.
func (r *ResultsScreen) banner() string {
	switch r.status {
	case statusSubmitting:
		return theme.Hint.Render("Saving result to the cloud...")
	case statusSaved:
		return theme.Notice.Render("Result saved to the cloud")
	case statusFailed:
		return theme.FieldError.Render("Could not save result. Press R to retry")
	case statusFailedFinal:
		return theme.FieldError.Render("Could not save result. It was not saved")
	default:
		return ""
	}
}

// signArt maps each sign to its emoji glyph.
func signArt(sign string) string {
	art := map[string]string{
		"Rat": "🐀", "Ox": "🐂", "Tiger": "🐅", "Rabbit": "🐇",
		"Dragon": "🐉", "Snake": "🐍", "Horse": "🐎", "Goat": "🐐",
		"Monkey": "🐒", "Rooster": "🐓", "Dog": "🐕", "Pig": "🐖",
	}
	if a, ok := art[sign]; ok {
		return a
	}
	return "☯"
}
