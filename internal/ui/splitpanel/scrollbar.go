package splitpanel

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	ScrollThumbChar = "█"
	ScrollTrackChar = "│"
)

// BuildScrollbar returns one cell per visible row. When everything fits
// the cells are blank.
func BuildScrollbar(viewHeight, totalItems, scrollOffset int, activeColor, trackColor lipgloss.Color, focused bool) []string {
	bar := make([]string, viewHeight)
	if totalItems <= viewHeight {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}

	thumb := max((viewHeight*viewHeight)/totalItems, 1)
	thumb = min(thumb, max(viewHeight-2, 1))

	maxScroll := max(totalItems-viewHeight, 1)
	space := max(viewHeight-thumb, 0)
	pos := min(max(scrollOffset*space/maxScroll, 0), space)

	thumbColor := trackColor
	if focused {
		thumbColor = activeColor
	}
	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)
	trackStyle := lipgloss.NewStyle().Foreground(trackColor)

	for i := range bar {
		if i >= pos && i < pos+thumb {
			bar[i] = thumbStyle.Render(ScrollThumbChar)
		} else {
			bar[i] = trackStyle.Render(ScrollTrackChar)
		}
	}
	return bar
}
