// Package wizard is the four-step state machine behind the quiz flow.
//
// Each step hands its accumulated data forward by value as an encoded
// payload; no state is shared between steps. Transitions are guarded,
// and a refused transition leaves the machine exactly where it was.
package wizard

import (
	"errors"
	"fmt"

	"github.com/mavila/zodico/internal/profile"
	"github.com/mavila/zodico/internal/quiz"
)

// State names one wizard step.
type State int

const (
	StateProfileEntry State = iota
	StateSexSelect
	StateQuiz
	StateResults
)

func (s State) String() string {
	switch s {
	case StateProfileEntry:
		return "profile-entry"
	case StateSexSelect:
		return "sex-select"
	case StateQuiz:
		return "quiz"
	case StateResults:
		return "results"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// forward is the only-advance transition table. Results has no forward
// edge; leaving it is the full reset.
var forward = map[State]State{
	StateProfileEntry: StateSexSelect,
	StateSexSelect:    StateQuiz,
	StateQuiz:         StateResults,
}

// backward holds the two allowed single-step back edges.
var backward = map[State]State{
	StateSexSelect: StateProfileEntry,
	StateQuiz:      StateSexSelect,
}

// Payload is the value handed across a step boundary: the encoded
// profile, plus the score once the quiz transition has computed it.
type Payload struct {
	EncodedProfile string
	Score          int
}

var (
	// ErrQuizIncomplete refuses Quiz → Results until every question
	// has an answer.
	ErrQuizIncomplete = errors.New("quiz: not every question answered")

	// ErrNoSexSelected refuses SexSelect → Quiz with nothing chosen.
	ErrNoSexSelected = errors.New("sex selection required")

	// ErrBadTransition reports a transition the table does not allow.
	ErrBadTransition = errors.New("transition not allowed")
)

// ValidationError carries the field errors that refused
// ProfileEntry → SexSelect.
type ValidationError struct {
	Fields []profile.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile validation failed (%d fields)", len(e.Fields))
}

// Flow is the wizard state machine.
type Flow struct {
	state   State
	payload Payload
}

// New returns a Flow at the profile-entry step.
func New() *Flow {
	return &Flow{state: StateProfileEntry}
}

// State returns the current step.
func (f *Flow) State() State {
	return f.state
}

// Payload returns the value carried into the current step.
func (f *Flow) Payload() Payload {
	return f.payload
}

// Profile decodes the carried profile. Before the first forward
// transition there is nothing to decode and the zero profile returns.
func (f *Flow) Profile() (profile.Profile, error) {
	if f.payload.EncodedProfile == "" {
		return profile.Profile{}, nil
	}
	return profile.Decode(f.payload.EncodedProfile)
}

// SubmitProfile guards ProfileEntry → SexSelect. The profile must pass
// field validation; on refusal the machine does not move and the field
// errors are returned for inline display.
func (f *Flow) SubmitProfile(p profile.Profile) error {
	if f.state != StateProfileEntry {
		return fmt.Errorf("%w: submit profile from %s", ErrBadTransition, f.state)
	}
	if errs := p.Validate(); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	enc, err := profile.Encode(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	f.payload = Payload{EncodedProfile: enc}
	f.state = forward[f.state]
	return nil
}

// SubmitSex guards SexSelect → Quiz. Completion produces a new profile
// value; the partial one carried in is not modified.
func (f *Flow) SubmitSex(sex string) error {
	if f.state != StateSexSelect {
		return fmt.Errorf("%w: submit sex from %s", ErrBadTransition, f.state)
	}
	if sex == "" {
		return ErrNoSexSelected
	}
	p, err := f.Profile()
	if err != nil {
		return fmt.Errorf("carried profile: %w", err)
	}
	enc, err := profile.Encode(p.WithSex(sex))
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	f.payload = Payload{EncodedProfile: enc}
	f.state = forward[f.state]
	return nil
}

// SubmitAnswers guards Quiz → Results. The score is computed here,
// exactly once, and travels with the payload from then on.
func (f *Flow) SubmitAnswers(answers quiz.AnswerSet) error {
	if f.state != StateQuiz {
		return fmt.Errorf("%w: submit answers from %s", ErrBadTransition, f.state)
	}
	if !quiz.Complete(answers) {
		return ErrQuizIncomplete
	}
	f.payload = Payload{
		EncodedProfile: f.payload.EncodedProfile,
		Score:          quiz.Score(answers),
	}
	f.state = forward[f.state]
	return nil
}

// Back takes the single allowed backward edge. The carried payload is
// kept, so re-advancing does not lose already-entered data.
func (f *Flow) Back() error {
	prev, ok := backward[f.state]
	if !ok {
		return fmt.Errorf("%w: back from %s", ErrBadTransition, f.state)
	}
	f.state = prev
	return nil
}

// Reset pops all the way back to profile entry and drops the payload.
// This is the only way out of Results.
func (f *Flow) Reset() {
	f.state = StateProfileEntry
	f.payload = Payload{}
}
