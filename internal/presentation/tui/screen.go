package tui

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/netgrid/pkg/console"
)

// Screen paints a console's render surface with terminal colors: completed
// lines dimmed, the in-progress line bright with a block cursor.
type Screen struct {
	profile termenv.Profile
	lines   int
}

// NewScreen creates a painter bounded to the given number of display lines.
func NewScreen(lines int) *Screen {
	if lines <= 0 {
		lines = 24
	}
	return &Screen{
		profile: termenv.ColorProfile(),
		lines:   lines,
	}
}

// Paint renders the console surface as a colored string.
func (s *Screen) Paint(c *console.Console) string {
	surface := c.Render(s.lines)
	rows := strings.Split(surface, "\n")

	var b strings.Builder
	for i, row := range rows {
		if i < len(rows)-1 {
			b.WriteString(termenv.String(row).Foreground(s.profile.Color("#22c55e")).Faint().String())
			b.WriteByte('\n')
			continue
		}
		// In-progress line with cursor.
		b.WriteString(termenv.String(row).Foreground(s.profile.Color("#4ade80")).String())
		if !c.Closed() {
			b.WriteString(termenv.String("█").Foreground(s.profile.Color("#86efac")).Blink().String())
		}
	}
	return b.String()
}
