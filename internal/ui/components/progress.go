package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/disciple/internal/ui/theme"
)

// ProgressBar displays a completion percentage as a horizontal bar.
type ProgressBar struct {
	Label   string
	Percent int // 0-100
	Width   int
}

// NewProgressBar creates a progress bar. Percent is clamped to [0, 100].
func NewProgressBar(label string, percent, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: min(max(percent, 0), 100),
		Width:   width,
	}
}

// filled returns how many of barWidth cells are filled.
func (p ProgressBar) filled(barWidth int) int {
	return p.Percent * barWidth / 100
}

// View renders the label, the bar and the percentage.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result = theme.Body.Render(p.Label) + "  "
	}

	const percentWidth = 6 // "  100%"
	barWidth := p.Width - lipgloss.Width(result) - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}
	filled := p.filled(barWidth)

	result += lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled))
	result += lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))
	result += theme.Subtitle.Render(fmt.Sprintf("  %d%%", p.Percent))
	return result
}
