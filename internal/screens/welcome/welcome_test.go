package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disciple/internal/catalog"
	"github.com/abhisek/disciple/internal/router"
	"github.com/abhisek/disciple/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "study" }
func (s *stubScreen) Title() string                          { return "Study" }

func testCourse() catalog.Course {
	return catalog.Course{
		ID:            "c",
		Title:         "Walking With Him",
		Tagline:       "A short course",
		EstDays:       21,
		EstMinsPerDay: 15,
	}
}

func newTestWelcomeWithCounter() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(testCourse(), factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) (screen.Screen, tea.Cmd) {
	var s screen.Screen = w
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		s, cmd = s.Update(tickMsg(time.Now()))
	}
	return s, cmd
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()

	view := w.View(100, 40)
	if strings.Contains(view, "Walking With Him") {
		t.Error("course title should not be visible at start")
	}

	sendTicks(w, 5)
	if w.elapsed != 500*time.Millisecond {
		t.Errorf("expected elapsed 500ms, got %v", w.elapsed)
	}

	sendTicks(w, 10)
	view = w.View(100, 40)
	if !strings.Contains(view, "Walking With Him") {
		t.Error("course title should be visible after phase 2")
	}
	if !strings.Contains(view, "21 days · 15 minutes a day") {
		t.Error("pace should be visible after phase 2")
	}
}

func TestKeypressDuringAnimationSkips(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replace.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	sendTicks(w, 45)
	if *callCount != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *callCount)
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTicksStopAfterTransition(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()

	w.Update(tea.KeyPressMsg{Code: 'a'})
	if _, cmd := sendTicks(w, 1); cmd != nil {
		t.Error("ticks should stop once the screen has transitioned")
	}
}

func TestPace(t *testing.T) {
	tests := []struct {
		course catalog.Course
		want   string
	}{
		{catalog.Course{EstDays: 21, EstMinsPerDay: 15}, "21 days · 15 minutes a day"},
		{catalog.Course{EstDays: 7}, "7 days"},
		{catalog.Course{}, ""},
	}
	for _, tt := range tests {
		if got := pace(tt.course); got != tt.want {
			t.Errorf("pace(%+v) = %q, want %q", tt.course, got, tt.want)
		}
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
