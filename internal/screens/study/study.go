package study

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disciple/internal/catalog"
	"github.com/abhisek/disciple/internal/prefs"
	"github.com/abhisek/disciple/internal/progress"
	"github.com/abhisek/disciple/internal/router"
	"github.com/abhisek/disciple/internal/screen"
	"github.com/abhisek/disciple/internal/screens/overview"
	"github.com/abhisek/disciple/internal/screens/settings"
	"github.com/abhisek/disciple/internal/ui/components"
	"github.com/abhisek/disciple/internal/ui/layout"
	"github.com/abhisek/disciple/internal/ui/theme"
)

type mode int

const (
	modeReading mode = iota
	modeNote
	modeCheckpoint
)

// Compile-time interface checks.
var (
	_ screen.Screen          = (*StudyScreen)(nil)
	_ screen.KeyHintProvider = (*StudyScreen)(nil)
	_ screen.InputCapturer   = (*StudyScreen)(nil)
)

// StudyScreen shows the active lesson and edits its progress.
type StudyScreen struct {
	progress *progress.Store
	prefs    *prefs.Prefs

	mode      mode
	editor    components.Editor
	editingID string

	status string
	scroll int
	width  int
}

// New creates the study screen.
func New(p *progress.Store, pr *prefs.Prefs) *StudyScreen {
	return &StudyScreen{progress: p, prefs: pr}
}

// Init pins the lesson being shown so that completing it does not move
// the reader on.
func (s *StudyScreen) Init() tea.Cmd {
	s.progress.ResolveActiveLesson()
	return nil
}

func (s *StudyScreen) Title() string {
	return "Study"
}

// CapturingInput reports whether a note or checkpoint editor is open.
func (s *StudyScreen) CapturingInput() bool {
	return s.mode != modeReading
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.mode != modeReading {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Save"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "n/p", Description: "Next/Prev"},
		{Key: "c", Description: "Complete"},
		{Key: "1-9", Description: "Practice"},
		{Key: "e", Description: "Note"},
		{Key: "k", Description: "Checkpoint"},
		{Key: "o", Description: "Overview"},
		{Key: "s", Description: "Settings"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		if s.mode != modeReading {
			s.editor.SetWidth(msg.Width)
		}
		return s, nil

	case tea.KeyMsg:
		if s.mode != modeReading {
			return s.updateEditor(msg)
		}
		return s.handleKey(msg.String())
	}

	if s.mode != modeReading {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StudyScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	lesson := s.progress.ResolveActiveLesson()
	s.status = ""

	switch key {
	case "n", "right":
		s.step(progress.Next)
	case "p", "left":
		s.step(progress.Previous)
	case "c", "space":
		st, err := s.progress.ToggleLessonComplete(lesson.ID)
		if err != nil {
			s.status = err.Error()
			break
		}
		if st.IsComplete(lesson.ID) {
			s.status = "Marked complete."
		} else {
			s.status = "Marked not complete."
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(key[0] - '1')
		if _, err := s.progress.TogglePractice(lesson.ID, index); err != nil {
			s.status = err.Error()
		}
	case "e":
		return s, s.openEditor(modeNote, lesson)
	case "k":
		return s, s.openEditor(modeCheckpoint, lesson)
	case "up":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down":
		s.scroll++
	case "o":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: overview.New(s.progress)}
		}
	case "s":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: settings.New(s.prefs)}
		}
	case "q":
		return s, tea.Quit
	}
	return s, nil
}

func (s *StudyScreen) step(d progress.Direction) {
	before := s.progress.ResolveActiveLesson()
	if _, err := s.progress.Advance(d); err != nil {
		s.status = err.Error()
		return
	}
	if s.progress.ResolveActiveLesson().ID == before.ID {
		if d == progress.Next {
			s.status = "This is the last lesson."
		} else {
			s.status = "This is the first lesson."
		}
		return
	}
	s.scroll = 0
}

func (s *StudyScreen) openEditor(m mode, lesson catalog.FlattenedLesson) tea.Cmd {
	st := s.progress.Snapshot()
	s.mode = m
	s.editingID = lesson.ID
	if m == modeNote {
		s.editor = components.NewEditor("Note", st.Note(lesson.ID), s.width)
	} else {
		s.editor = components.NewEditor("Checkpoint", st.Checkpoint(lesson.ID), s.width)
	}
	return s.editor.Init()
}

func (s *StudyScreen) updateEditor(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() != "esc" {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}

	text := s.editor.Value()
	if strings.TrimSpace(text) == "" {
		text = ""
	}

	var err error
	switch s.mode {
	case modeNote:
		_, err = s.progress.SetLessonNote(s.editingID, text)
		s.status = "Note saved."
	case modeCheckpoint:
		_, err = s.progress.SetLessonCheckpoint(s.editingID, text)
		s.status = "Checkpoint saved."
	}
	if err != nil {
		s.status = err.Error()
	}
	s.mode = modeReading
	s.editingID = ""
	return s, nil
}

func (s *StudyScreen) View(width, height int) string {
	c := s.progress.Catalog()
	st := s.progress.Snapshot()
	lesson := progress.ResolveActiveLesson(st, c)

	head := s.renderHeading(c, st, lesson, width)
	if s.mode != modeReading {
		return head + "\n\n" + s.editor.View()
	}

	body := s.renderBody(st, lesson, width)
	footer := s.renderFooter(c, st, width)

	avail := height - lipgloss.Height(head) - lipgloss.Height(footer) - 2
	body = s.window(body, avail)

	return head + "\n\n" + body + "\n" + footer
}

// window clips body to height lines starting at the scroll offset.
func (s *StudyScreen) window(body string, height int) string {
	lines := strings.Split(body, "\n")
	if height <= 0 || len(lines) <= height {
		s.scroll = 0
		return body
	}
	maxScroll := len(lines) - height
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	return strings.Join(lines[s.scroll:s.scroll+height], "\n")
}

func (s *StudyScreen) renderHeading(c *catalog.Catalog, st progress.State, lesson catalog.FlattenedLesson, width int) string {
	module := theme.Subtitle.Render(fmt.Sprintf("  Module %d · %s    Lesson %d of %d",
		moduleNumber(c, lesson.ModuleID), lesson.ModuleTitle, lesson.Index+1, c.Len()))

	mark := ""
	if st.IsComplete(lesson.ID) {
		mark = "  " + theme.Done.Render("✓ complete")
	}
	title := "  " + theme.Title.Render(lesson.Title) + mark

	return module + "\n" + title
}

func (s *StudyScreen) renderBody(st progress.State, lesson catalog.FlattenedLesson, width int) string {
	wrap := lipgloss.NewStyle().Width(contentWidth(width)).PaddingLeft(2)
	section := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).PaddingLeft(2)

	var b strings.Builder
	b.WriteString(wrap.Inherit(theme.Body).Render(lesson.Objective))
	b.WriteString("\n\n")

	if len(lesson.Read) > 0 {
		b.WriteString(section.Render("Read"))
		b.WriteString("\n")
		for _, ref := range lesson.Read {
			line := "• " + ref.Reference
			if ref.ExternalLink != "" {
				line += "  " + theme.Hint.Render(ref.ExternalLink)
			}
			b.WriteString(wrap.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(lesson.Practice) > 0 {
		b.WriteString(section.Render("Practice"))
		b.WriteString("\n")
		for i, item := range lesson.Practice {
			box := "[ ]"
			style := theme.Unselected
			if st.PracticeChecked(lesson.ID, i) {
				box = "[x]"
				style = theme.Done
			}
			b.WriteString(wrap.Render(style.Render(fmt.Sprintf("%s %d. %s", box, i+1, item))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(section.Render("Checkpoint"))
	b.WriteString("\n")
	b.WriteString(wrap.Inherit(theme.Body).Render(lesson.Checkpoint))
	b.WriteString("\n")
	b.WriteString(wrap.Render(answerOrHint(st.Checkpoint(lesson.ID), "press k to answer")))
	b.WriteString("\n\n")

	b.WriteString(section.Render("Note"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(answerOrHint(st.Note(lesson.ID), "press e to write a note")))

	return b.String()
}

func (s *StudyScreen) renderFooter(c *catalog.Catalog, st progress.State, width int) string {
	pct := progress.CompletionPercentage(st, c)
	label := fmt.Sprintf("%d/%d lessons", progress.CompletedCount(st, c), c.Len())
	bar := components.NewProgressBar(label, pct, contentWidth(width))
	out := "  " + bar.View()

	if err := s.progress.Degraded(); err != nil {
		out += "\n  " + theme.Warning.Render("Progress is not being saved this session.")
	}
	if s.status != "" {
		out += "\n  " + theme.Hint.Render(s.status)
	}
	return out
}

func answerOrHint(text, hint string) string {
	if text == "" {
		return theme.Hint.Render(hint)
	}
	return theme.Body.Render(text)
}

func moduleNumber(c *catalog.Catalog, moduleID string) int {
	for i, m := range c.Modules() {
		if m.ID == moduleID {
			return i + 1
		}
	}
	return 0
}

func contentWidth(width int) int {
	w := width - 4
	if layout.IsCompactWidth(width) {
		w = width - 2
	}
	if w < 20 {
		w = 20
	}
	return w
}
