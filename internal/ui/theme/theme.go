package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/disciple/internal/prefs"
)

// Palette is the set of colors a theme is drawn with.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
}

// Palettes for each selectable theme.
var palettes = map[prefs.Theme]Palette{
	prefs.ThemeLight: {
		Primary:   lipgloss.Color("#4F46E5"), // Indigo
		Secondary: lipgloss.Color("#0D9488"), // Teal
		Accent:    lipgloss.Color("#B45309"), // Amber
		Success:   lipgloss.Color("#15803D"), // Green
		Error:     lipgloss.Color("#BE123C"), // Rose
		Text:      lipgloss.Color("#1E293B"),
		TextDim:   lipgloss.Color("#64748B"),
		BgCard:    lipgloss.Color("#F1F5F9"),
		Border:    lipgloss.Color("#CBD5E1"),
	},
	prefs.ThemeDark: {
		Primary:   lipgloss.Color("#A78BFA"),
		Secondary: lipgloss.Color("#2DD4BF"),
		Accent:    lipgloss.Color("#FBBF24"),
		Success:   lipgloss.Color("#4ADE80"),
		Error:     lipgloss.Color("#FB7185"),
		Text:      lipgloss.Color("#F8FAFC"),
		TextDim:   lipgloss.Color("#94A3B8"),
		BgCard:    lipgloss.Color("#1E293B"),
		Border:    lipgloss.Color("#334155"),
	},
	prefs.ThemeParchment: {
		Primary:   lipgloss.Color("#7C2D12"), // Oxblood
		Secondary: lipgloss.Color("#92400E"), // Umber
		Accent:    lipgloss.Color("#A16207"), // Ochre
		Success:   lipgloss.Color("#3F6212"), // Olive
		Error:     lipgloss.Color("#9F1239"),
		Text:      lipgloss.Color("#3B2F2F"),
		TextDim:   lipgloss.Color("#78716C"),
		BgCard:    lipgloss.Color("#F5EBD7"),
		Border:    lipgloss.Color("#D6C4A0"),
	},
}

// Current theme name.
var current = prefs.ThemeLight

// Color palette
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
)

// Styles
var (
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Body       lipgloss.Style
	Hint       lipgloss.Style
	Card       lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Done       lipgloss.Style
	Warning    lipgloss.Style
)

func init() {
	Apply(prefs.ThemeLight)
}

// Current returns the active theme.
func Current() prefs.Theme {
	return current
}

// PaletteFor returns the palette of t, falling back to the default theme.
func PaletteFor(t prefs.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[prefs.DefaultTheme]
}

// Apply switches every exported color and style to theme t.
func Apply(t prefs.Theme) {
	if _, ok := palettes[t]; !ok {
		t = prefs.DefaultTheme
	}
	current = t
	p := palettes[t]

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(Success)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
}
