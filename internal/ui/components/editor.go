package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disciple/internal/ui/theme"
)

// Editor wraps bubbles/textarea for free-text answers such as notes and
// checkpoint reflections.
type Editor struct {
	Label string
	Model textarea.Model
}

// NewEditor creates a focused editor prefilled with value.
func NewEditor(label, value string, width int) Editor {
	ta := textarea.New()
	ta.Placeholder = "Write here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 4000
	ta.SetWidth(editorWidth(width))
	ta.SetHeight(6)
	ta.SetValue(value)
	ta.Focus()

	return Editor{Label: label, Model: ta}
}

// Init returns the initial command.
func (e Editor) Init() tea.Cmd {
	return e.Model.Focus()
}

// Update handles messages.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// SetWidth resizes the editor to fit width.
func (e *Editor) SetWidth(width int) {
	e.Model.SetWidth(editorWidth(width))
}

// View renders the editor.
func (e Editor) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(e.Label)
	hint := theme.Hint.Render("esc saves")
	return label + "  " + hint + "\n" + e.Model.View()
}

// Value returns the current text.
func (e Editor) Value() string {
	return e.Model.Value()
}

func editorWidth(width int) int {
	w := width - 8
	if w < 20 {
		w = 20
	}
	return w
}
