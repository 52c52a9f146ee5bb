// Package form is the profile-entry step of the wizard.
package form

import (
	"errors"
	"strconv"
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

// Field positions in tab order.
const (
	fieldGivenName = iota
	fieldPaternal
	fieldMaternal
	fieldDay
	fieldMonth
	fieldYear
	fieldCount
)

// FormScreen collects the name parts and birth date.
type FormScreen struct {
	flow    *wizard.Flow
	next    func() screen.Screen
	inputs  [fieldCount]components.TextInput
	focused int
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the profile-entry screen. next builds the sex-selection
// screen pushed after a successful submit.
func New(flow *wizard.Flow, next func() screen.Screen) *FormScreen {
	f := &FormScreen{flow: flow, next: next}

	f.inputs[fieldGivenName] = components.NewTextInput("Given name", "Ana", false, 40)
	f.inputs[fieldPaternal] = components.NewTextInput("Paternal surname", "Lopez", false, 40)
	f.inputs[fieldMaternal] = components.NewTextInput("Maternal surname (optional)", "", false, 40)
	f.inputs[fieldDay] = components.NewTextInput("Day", "DD", true, 2)
	f.inputs[fieldMonth] = components.NewTextInput("Month", "MM", true, 2)
	f.inputs[fieldYear] = components.NewTextInput("Year", "YYYY", true, 4)

	// Restore values when the user stepped back from sex selection.
	if p, err := flow.Profile(); err == nil && p.GivenName != "" {
		f.inputs[fieldGivenName].Model.SetValue(p.GivenName)
		f.inputs[fieldPaternal].Model.SetValue(p.PaternalSurname)
		f.inputs[fieldMaternal].Model.SetValue(p.MaternalSurname)
		f.inputs[fieldDay].Model.SetValue(itoa(p.BirthDay))
		f.inputs[fieldMonth].Model.SetValue(itoa(p.BirthMonth))
		f.inputs[fieldYear].Model.SetValue(itoa(p.BirthYear))
	}

	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return f.inputs[f.focused].Focus()
}

func (f *FormScreen) Title() string {
	return "Your Details"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+L", Description: "Clear"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return f, f.moveFocus(1)
		case "shift+tab", "up":
			return f, f.moveFocus(-1)
		case "enter":
			return f, f.submit()
		case "ctrl+l":
			f.clear()
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	f.liveValidate()
	return f, cmd
}

// moveFocus shifts focus by delta, wrapping around the field list.
func (f *FormScreen) moveFocus(delta int) tea.Cmd {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + delta + fieldCount) % fieldCount
	return f.inputs[f.focused].Focus()
}

// liveValidate surfaces day/month range errors while typing, the same
// way the fields flag bad values before the submit gate runs.
func (f *FormScreen) liveValidate() {
	check := func(idx int, min, max int, msg string) {
		v := f.inputs[idx].Value()
		if v == "" {
			f.inputs[idx].ClearError()
			return
		}
		n, err := f.inputs[idx].NumericValue()
		if err != nil || n < min || n > max {
			f.inputs[idx].SetError(msg)
		} else {
			f.inputs[idx].ClearError()
		}
	}
	check(fieldDay, 1, 31, "Día inválido (1-31)")
	check(fieldMonth, 1, 12, "Mes inválido (01-12)")
}

// buildProfile assembles the partial profile from field values. Sex
// stays empty; the next step fills it.
func (f *FormScreen) buildProfile() profile.Profile {
	day, _ := f.inputs[fieldDay].NumericValue()
	month, _ := f.inputs[fieldMonth].NumericValue()
	year, _ := f.inputs[fieldYear].NumericValue()
	return profile.Profile{
		GivenName:       strings.TrimSpace(f.inputs[fieldGivenName].Value()),
		PaternalSurname: strings.TrimSpace(f.inputs[fieldPaternal].Value()),
		MaternalSurname: strings.TrimSpace(f.inputs[fieldMaternal].Value()),
		BirthDay:        day,
		BirthMonth:      month,
		BirthYear:       year,
	}
}

// submit runs the transition guard. On refusal the field errors are
// attached inline and nothing advances; entered values are preserved.
func (f *FormScreen) submit() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].ClearError()
	}

	err := f.flow.SubmitProfile(f.buildProfile())
	if err == nil {
		nextScreen := f.next()
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: nextScreen}
		}
	}

	var verr *wizard.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Fields {
			if idx, ok := fieldIndex(fe.Field); ok {
				f.inputs[idx].SetError(fe.Message)
			}
		}
	}
	return nil
}

func fieldIndex(field string) (int, bool) {
	switch field {
	case profile.FieldGivenName:
		return fieldGivenName, true
	case profile.FieldPaternalSurname:
		return fieldPaternal, true
	case profile.FieldBirthDay:
		return fieldDay, true
	case profile.FieldBirthMonth:
		return fieldMonth, true
	case profile.FieldBirthYear:
		return fieldYear, true
	}
	return 0, false
}

// clear resets every field and error.
func (f *FormScreen) clear() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.inputs[f.focused].Focus()
}

func (f *FormScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Chinese Zodiac Quiz"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Tell us who you are"))
	b.WriteString("\n\n")

	var fields []string
	for i := range f.inputs {
		fields = append(fields, f.inputs[i].View())
	}

	names := strings.Join(fields[:3], "\n\n")
	date := lipgloss.JoinHorizontal(lipgloss.Top,
		fields[fieldDay], "   ", fields[fieldMonth], "   ", fields[fieldYear])

	dateHeading := lipgloss.NewStyle().Foreground(theme.Secondary).Render("Date of birth")
	card := theme.Card.Render(names + "\n\n" + dateHeading + "\n\n" + date)

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// itoa renders a positive field value, leaving zero (unset) blank.
func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
