package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mavila/zodico/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Zodico styling and an inline
// field error slot.
type TextInput struct {
	Model       textinput.Model
	Label       string
	NumericOnly bool
	errMsg      string
}

// NewTextInput creates a new styled text input.
func NewTextInput(label, placeholder string, numericOnly bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model:       ti,
		Label:       label,
		NumericOnly: numericOnly,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 {
				if key[0] < '0' || key[0] > '9' {
					return t, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, input, and any field error.
func (t TextInput) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if t.Model.Focused() {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	}

	view := labelStyle.Render(t.Label) + "\n" + t.Model.View()
	if t.errMsg != "" {
		view += "\n" + theme.FieldError.Render(t.errMsg)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue returns the input value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// SetError attaches an inline error message to the field.
func (t *TextInput) SetError(msg string) {
	t.errMsg = msg
}

// ClearError removes the inline error message.
func (t *TextInput) ClearError() {
	t.errMsg = ""
}

// Err returns the current field error, if any.
func (t TextInput) Err() string {
	return t.errMsg
}

// Reset clears the value and the error.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.errMsg = ""
}
