// Package prefs holds presentation preferences that share the progress
// storage backend: the colour theme and the free-form daily reflection.
package prefs

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/disciple/internal/store"
)

// Backend keys.
const (
	KeyTheme           = "theme"
	KeyDailyReflection = "dailyReflection"
)

// Theme is a display palette.
type Theme string

const (
	ThemeLight     Theme = "light"
	ThemeDark      Theme = "dark"
	ThemeParchment Theme = "parchment"

	DefaultTheme = ThemeLight
)

// AllThemes returns all themes in display order.
func AllThemes() []Theme {
	return []Theme{ThemeLight, ThemeDark, ThemeParchment}
}

// ParseTheme returns the theme named s.
func ParseTheme(s string) (Theme, error) {
	for _, t := range AllThemes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q (want light, dark or parchment)", s)
}

// Prefs reads and writes preferences. Storage failures are logged and
// otherwise ignored; reads fall back to defaults.
type Prefs struct {
	backend store.Backend
	logger  *zap.Logger
}

// New returns Prefs over backend. A nil logger disables logging.
func New(backend store.Backend, logger *zap.Logger) *Prefs {
	if backend == nil {
		backend = store.Unavailable{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prefs{backend: backend, logger: logger}
}

// Theme returns the stored theme, or DefaultTheme if none or unknown.
func (p *Prefs) Theme() Theme {
	raw := p.get(KeyTheme)
	t, err := ParseTheme(raw)
	if err != nil {
		if raw != "" {
			p.logger.Warn("ignoring stored theme", zap.String("theme", raw))
		}
		return DefaultTheme
	}
	return t
}

// SetTheme stores t.
func (p *Prefs) SetTheme(t Theme) {
	p.set(KeyTheme, string(t))
}

// DailyReflection returns the stored reflection text.
func (p *Prefs) DailyReflection() string {
	return p.get(KeyDailyReflection)
}

// SetDailyReflection stores text. An empty text clears it.
func (p *Prefs) SetDailyReflection(text string) {
	if text == "" {
		if err := p.backend.Delete(KeyDailyReflection); err != nil {
			p.logger.Warn("save preference", zap.String("key", KeyDailyReflection), zap.Error(err))
		}
		return
	}
	p.set(KeyDailyReflection, text)
}

func (p *Prefs) get(key string) string {
	v, _, err := p.backend.Get(key)
	if err != nil {
		p.logger.Debug("load preference", zap.String("key", key), zap.Error(err))
		return ""
	}
	return v
}

func (p *Prefs) set(key, value string) {
	if err := p.backend.Set(key, value); err != nil {
		p.logger.Warn("save preference", zap.String("key", key), zap.Error(err))
	}
}
