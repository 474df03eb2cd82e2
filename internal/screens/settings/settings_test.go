package settings

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disciple/internal/prefs"
	"github.com/abhisek/disciple/internal/store"
	"github.com/abhisek/disciple/internal/ui/theme"
)

func newTestSettings(t *testing.T) (*SettingsScreen, *prefs.Prefs) {
	t.Helper()
	t.Cleanup(func() { theme.Apply(prefs.DefaultTheme) })
	p := prefs.New(store.NewMemory(), nil)
	return New(p), p
}

// drain runs cmd and feeds any resulting message back into the screen.
func drain(s *SettingsScreen, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = s.Update(msg)
	}
}

func TestSettings_Title(t *testing.T) {
	s, _ := newTestSettings(t)
	if s.Title() != "Settings" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSettings_MenuMarksCurrentTheme(t *testing.T) {
	s, _ := newTestSettings(t)

	if s.menu.Selected != 0 {
		t.Errorf("selected = %d, want 0", s.menu.Selected)
	}
	if s.menu.Items[0].Detail != "(current)" {
		t.Errorf("%q not marked current", s.menu.Items[0].Label)
	}
}

func TestSettings_ApplyTheme(t *testing.T) {
	s, p := newTestSettings(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	drain(s, cmd)

	if got := p.Theme(); got != prefs.ThemeDark {
		t.Errorf("stored theme = %q, want dark", got)
	}
	if got := theme.Current(); got != prefs.ThemeDark {
		t.Errorf("active theme = %q, want dark", got)
	}
	if s.menu.Items[1].Detail != "(current)" {
		t.Errorf("%q not marked current", s.menu.Items[1].Label)
	}
	if s.menu.Items[0].Detail != "" {
		t.Errorf("old theme still marked current: %q", s.menu.Items[0].Label)
	}
}

func TestSettings_EditReflection(t *testing.T) {
	s, p := newTestSettings(t)

	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if !s.CapturingInput() {
		t.Fatal("expected editor open")
	}
	s.editor.Model.SetValue("Walk in the light.")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	if s.CapturingInput() {
		t.Error("expected editor closed")
	}
	if got := p.DailyReflection(); got != "Walk in the light." {
		t.Errorf("reflection = %q", got)
	}
	if view := s.View(100, 30); !strings.Contains(view, "Walk in the light.") {
		t.Error("view missing reflection")
	}
}

func TestSettings_KeyHints(t *testing.T) {
	s, _ := newTestSettings(t)
	if len(s.KeyHints()) != 4 {
		t.Errorf("KeyHints length = %d, want 4", len(s.KeyHints()))
	}
}
