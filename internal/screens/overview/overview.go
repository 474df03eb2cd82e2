package overview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disciple/internal/catalog"
	"github.com/abhisek/disciple/internal/progress"
	"github.com/abhisek/disciple/internal/router"
	"github.com/abhisek/disciple/internal/screen"
	"github.com/abhisek/disciple/internal/ui/layout"
	"github.com/abhisek/disciple/internal/ui/theme"
)

// Compile-time interface checks.
var (
	_ screen.Screen          = (*OverviewScreen)(nil)
	_ screen.KeyHintProvider = (*OverviewScreen)(nil)
)

type rowKind int

const (
	rowModuleHeader rowKind = iota
	rowLesson
)

// row is a single line in the overview: a module header or a lesson.
type row struct {
	kind     rowKind
	moduleID string
	summary  progress.ModuleSummary
	lesson   catalog.FlattenedLesson
}

// OverviewScreen lists every module and lesson with completion marks.
type OverviewScreen struct {
	progress     *progress.Store
	rows         []row
	cursor       int
	scrollOffset int
}

// New creates the overview with the cursor on the active lesson.
func New(p *progress.Store) *OverviewScreen {
	s := &OverviewScreen{progress: p}
	s.buildRows()

	active := progress.ResolveActiveLesson(p.Snapshot(), p.Catalog())
	for i, r := range s.rows {
		if r.kind == rowLesson && r.lesson.ID == active.ID {
			s.cursor = i
			break
		}
	}
	return s
}

// buildRows rebuilds the row list from the current progress.
func (s *OverviewScreen) buildRows() {
	st := s.progress.Snapshot()
	c := s.progress.Catalog()
	summaries := progress.ModuleCompletion(st, c)

	s.rows = s.rows[:0]
	for mi, m := range c.Modules() {
		s.rows = append(s.rows, row{kind: rowModuleHeader, moduleID: m.ID, summary: summaries[mi]})
		for _, l := range m.Lessons {
			fl, _ := c.Lesson(l.ID)
			s.rows = append(s.rows, row{kind: rowLesson, moduleID: m.ID, lesson: fl})
		}
	}
}

func (s *OverviewScreen) Init() tea.Cmd {
	return nil
}

func (s *OverviewScreen) Title() string {
	return "Course Overview"
}

func (s *OverviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Next Module"},
		{Key: "Enter", Description: "Study"},
		{Key: "c", Description: "Complete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "tab":
		s.nextModule()
	case "shift+tab":
		s.prevModule()
	case "c", "space":
		if r := s.rows[s.cursor]; r.kind == rowLesson {
			if _, err := s.progress.ToggleLessonComplete(r.lesson.ID); err == nil {
				s.buildRows()
			}
		}
	case "enter":
		return s, s.selectLesson()
	}
	return s, nil
}

// moveCursor moves to the next lesson row in the direction of delta,
// skipping module headers.
func (s *OverviewScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLesson {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextModule jumps the cursor to the first lesson of the next module.
func (s *OverviewScreen) nextModule() {
	current := s.rows[s.cursor].moduleID
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowLesson && s.rows[i].moduleID != current {
			s.cursor = i
			return
		}
	}
}

// prevModule jumps the cursor to the first lesson of the previous module.
func (s *OverviewScreen) prevModule() {
	current := s.rows[s.cursor].moduleID
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowModuleHeader && s.rows[i].moduleID != current {
			s.cursor = i
			s.moveCursor(1)
			return
		}
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *OverviewScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the module header above the cursor if possible
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowModuleHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectLesson makes the lesson under the cursor active and returns to
// the study screen.
func (s *OverviewScreen) selectLesson() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowLesson {
		return nil
	}
	if _, err := s.progress.SetActiveLesson(r.lesson.ID); err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

func (s *OverviewScreen) View(width, height int) string {
	st := s.progress.Snapshot()
	active := progress.ResolveActiveLesson(st, s.progress.Catalog())

	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowModuleHeader:
			lines = append(lines, renderModuleHeader(r.summary, width))
		case rowLesson:
			lines = append(lines, renderLessonRow(r.lesson, st, i == s.cursor, r.lesson.ID == active.ID, width))
		}
	}
	return strings.Join(lines, "\n")
}

// renderModuleHeader renders a module section header with its completion.
func renderModuleHeader(m progress.ModuleSummary, width int) string {
	name := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(strings.ToUpper(m.Title))
	count := theme.Subtitle.Render(fmt.Sprintf("  %d/%d  %d%%", m.Completed, m.Total, m.Percent()))
	return lipgloss.NewStyle().Width(width).PaddingLeft(2).Render(name + count)
}

// renderLessonRow renders a single lesson row.
func renderLessonRow(l catalog.FlattenedLesson, st progress.State, selected, active bool, width int) string {
	icon := "○"
	nameStyle := theme.Unselected
	if st.IsComplete(l.ID) {
		icon = "✓"
		nameStyle = theme.Done
	}
	if selected {
		nameStyle = theme.Selected
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	nameWidth := width - 16
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := l.Title
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	tag := ""
	if active {
		tag = "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("current")
	}

	return fmt.Sprintf("    %s%s %s%s", cursor, icon, nameStyle.Render(name), tag)
}
