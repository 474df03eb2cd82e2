package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disciple/internal/catalog"
	"github.com/abhisek/disciple/internal/router"
	"github.com/abhisek/disciple/internal/screen"
	"github.com/abhisek/disciple/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const lampArt = `      )
     (  )
   ___)(___
  (________)
    \    /
     \__/`

// glow frames flicker beside the lamp
var glowFrames = []string{"·", "˙"}

type tickMsg time.Time

// WelcomeScreen introduces the course before handing over to the study screen.
type WelcomeScreen struct {
	course       catalog.Course
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen for course that is replaced by the screen
// produced by next on the first key press.
func New(course catalog.Course, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		course: course,
		next:   next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Accent).Render(lampArt)

	// Phase 2+: glow beside the lamp
	if w.elapsed >= phase1End {
		glow := lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(glowFrames[w.tickCount%len(glowFrames)])

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[1] = glow + "  " + lines[1] + "  " + glow
		}
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	// Phase 3+: banner and course card
	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, theme.Title.Render(w.course.Title))
		if w.course.Tagline != "" {
			sections = append(sections, theme.Body.Render(w.course.Tagline))
		}
		if pace := pace(w.course); pace != "" {
			sections = append(sections, theme.Subtitle.Render(pace))
		}
	}

	sections = append(sections, "", theme.Hint.Render("press any key to begin"))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// pace describes the suggested study rhythm, e.g. "21 days · 15 minutes a day".
func pace(c catalog.Course) string {
	var parts []string
	if c.EstDays > 0 {
		parts = append(parts, fmt.Sprintf("%d days", c.EstDays))
	}
	if c.EstMinsPerDay > 0 {
		parts = append(parts, fmt.Sprintf("%d minutes a day", c.EstMinsPerDay))
	}
	return strings.Join(parts, " · ")
}
