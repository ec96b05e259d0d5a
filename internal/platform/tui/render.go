package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Styles maps color slots to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds styles from a theme. Tiles get the theme background and
// the tile text color; interface slots only set a foreground.
func NewStyles(theme config.Theme) Styles {
	fg := func(c string) lipgloss.Style {
		s := lipgloss.NewStyle()
		if c != "" {
			s = s.Foreground(lipgloss.Color(c))
		}
		return s
	}
	tile := func(bg string) lipgloss.Style {
		s := fg(theme.TileText).Bold(true)
		if bg != "" {
			s = s.Background(lipgloss.Color(bg))
		}
		return s
	}

	styles := Styles{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorFrame:   fg(theme.Frame),
		core.ColorTitle:   fg(theme.Title).Bold(true),
		core.ColorText:    fg(theme.Text),
		core.ColorOverlay: fg(theme.Overlay).Bold(true),
	}
	for c := core.ColorTileEmpty; c <= core.ColorTileSuper; c++ {
		if v, ok := c.TileValue(); ok {
			styles[c] = tile(theme.TileColor(v))
			continue
		}
		styles[c] = tile(theme.Super)
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
