package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mavila/zodico/internal/history"
	"github.com/mavila/zodico/internal/router"
	"github.com/mavila/zodico/internal/screen"
	"github.com/mavila/zodico/internal/screens/exam"
	"github.com/mavila/zodico/internal/screens/form"
	"github.com/mavila/zodico/internal/screens/results"
	"github.com/mavila/zodico/internal/screens/sexselect"
	"github.com/mavila/zodico/internal/sink"
	"github.com/mavila/zodico/internal/ui/layout"
	"github.com/mavila/zodico/internal/wizard"
)

const totalSteps = 4

// Options carries the explicitly constructed dependencies into the
// app. Nothing here is a process-wide singleton; the sink and the
// attempt log are built at the cmd edge and passed down.
type Options struct {
	Sink sink.Sink
	Log  *history.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	flow   *wizard.Flow
	width  int
	height int
}

// newAppModel wires the wizard flow and the four screens. Each screen
// builds its successor through a factory so the whole chain shares one
// flow without import cycles.
func newAppModel(opts Options) AppModel {
	flow := wizard.New()

	var formFactory func() screen.Screen
	resultsFactory := func() screen.Screen {
		return results.New(flow, opts.Sink, opts.Log, formFactory)
	}
	examFactory := func() screen.Screen {
		return exam.New(flow, resultsFactory)
	}
	sexFactory := func() screen.Screen {
		return sexselect.New(flow, examFactory)
	}
	formFactory = func() screen.Screen {
		return form.New(flow, sexFactory)
	}

	return AppModel{
		router: router.New(formFactory()),
		flow:   flow,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, int(m.flow.State())+1, totalSteps, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
