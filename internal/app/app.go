package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/disciple/internal/prefs"
	"github.com/abhisek/disciple/internal/progress"
	"github.com/abhisek/disciple/internal/router"
	"github.com/abhisek/disciple/internal/screen"
	"github.com/abhisek/disciple/internal/screens/study"
	"github.com/abhisek/disciple/internal/screens/welcome"
	"github.com/abhisek/disciple/internal/ui/layout"
	"github.com/abhisek/disciple/internal/ui/theme"
)

// Options holds dependencies for the interactive app.
type Options struct {
	Progress *progress.Store
	Prefs    *prefs.Prefs
	Logger   *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress *progress.Store
	width    int
	height   int
}

// newAppModel creates a new AppModel that opens on the welcome screen and
// continues to the study screen.
func newAppModel(opts Options) AppModel {
	theme.Apply(opts.Prefs.Theme())
	studyFactory := func() screen.Screen {
		return study.New(opts.Progress, opts.Prefs)
	}
	course := opts.Progress.Catalog().Course()
	return AppModel{
		router:   router.New(welcome.New(course, studyFactory)),
		progress: opts.Progress,
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

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
			break
		}
		if msg.String() == "esc" {
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
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

	course := m.progress.Catalog().Course().Title
	header := layout.RenderHeader(title, course, m.progress.CompletionPercentage(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
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

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Prefs == nil {
		opts.Prefs = prefs.New(nil, opts.Logger)
	}

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		opts.Logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}
