package settings

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disciple/internal/prefs"
	"github.com/abhisek/disciple/internal/screen"
	"github.com/abhisek/disciple/internal/ui/components"
	"github.com/abhisek/disciple/internal/ui/layout"
	"github.com/abhisek/disciple/internal/ui/theme"
)

// Compile-time interface checks.
var (
	_ screen.Screen          = (*SettingsScreen)(nil)
	_ screen.KeyHintProvider = (*SettingsScreen)(nil)
	_ screen.InputCapturer   = (*SettingsScreen)(nil)
)

// SettingsScreen picks the theme and edits the daily reflection.
type SettingsScreen struct {
	prefs   *prefs.Prefs
	menu    components.Menu
	editor  components.Editor
	editing bool
	width   int
}

// New creates the settings screen.
func New(p *prefs.Prefs) *SettingsScreen {
	s := &SettingsScreen{prefs: p}
	s.buildMenu()
	return s
}

// buildMenu lists the themes with the cursor on the active one.
func (s *SettingsScreen) buildMenu() {
	current := s.prefs.Theme()
	themes := prefs.AllThemes()
	items := make([]components.MenuItem, 0, len(themes))
	selected := 0
	for i, t := range themes {
		item := components.MenuItem{
			Label:  themeLabel(t),
			Action: s.applyTheme(t),
		}
		if t == current {
			item.Detail = "(current)"
			selected = i
		}
		items = append(items, item)
	}
	s.menu = components.NewMenu(items)
	s.menu.Selected = selected
}

// themeChangedMsg refreshes the menu labels after a theme is applied.
type themeChangedMsg struct{}

func (s *SettingsScreen) applyTheme(t prefs.Theme) func() tea.Cmd {
	return func() tea.Cmd {
		s.prefs.SetTheme(t)
		theme.Apply(t)
		return func() tea.Msg { return themeChangedMsg{} }
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

// CapturingInput reports whether the reflection editor is open.
func (s *SettingsScreen) CapturingInput() bool {
	return s.editing
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Save"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Apply Theme"},
		{Key: "r", Description: "Reflection"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case themeChangedMsg:
		s.buildMenu()
		return s, nil

	case tea.WindowSizeMsg:
		s.width = msg.Width
		if s.editing {
			s.editor.SetWidth(msg.Width)
		}
		return s, nil

	case tea.KeyMsg:
		if s.editing {
			if msg.String() == "esc" {
				text := s.editor.Value()
				if strings.TrimSpace(text) == "" {
					text = ""
				}
				s.prefs.SetDailyReflection(text)
				s.editing = false
				return s, nil
			}
			var cmd tea.Cmd
			s.editor, cmd = s.editor.Update(msg)
			return s, cmd
		}
		if msg.String() == "r" {
			s.editing = true
			s.editor = components.NewEditor("Daily reflection", s.prefs.DailyReflection(), s.width)
			return s, s.editor.Init()
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	if s.editing {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SettingsScreen) View(width, height int) string {
	section := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).PaddingLeft(2)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(section.Render("Theme"))
	b.WriteString("\n")
	b.WriteString(s.menu.View())
	b.WriteString("\n")
	b.WriteString(section.Render("Daily reflection"))
	b.WriteString("\n")

	if s.editing {
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.editor.View()))
		return b.String()
	}

	text := s.prefs.DailyReflection()
	if text == "" {
		text = theme.Hint.Render("press r to write today's reflection")
	} else {
		text = theme.Body.Render(text)
	}
	b.WriteString(lipgloss.NewStyle().Width(width - 4).PaddingLeft(2).Render(text))
	return b.String()
}

func themeLabel(t prefs.Theme) string {
	switch t {
	case prefs.ThemeLight:
		return "Light"
	case prefs.ThemeDark:
		return "Dark"
	case prefs.ThemeParchment:
		return "Parchment"
	default:
		return string(t)
	}
}
