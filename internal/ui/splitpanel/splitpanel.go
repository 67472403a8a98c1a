// Package splitpanel lays out a sidebar and a content pane side by side,
// each in a rounded border with its own scrollbar.
package splitpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/cmdspec/internal/ui/style"
)

// Panel is the visible slice of one pane.
type Panel struct {
	Lines      []string
	ScrollPos  int
	TotalItems int
}

type Config struct {
	SidebarWidthPercent float64
	SidebarMinWidth     int
	SidebarMaxWidth     int
}

// Layout holds computed widths and renders both panes.
type Layout struct {
	Width        int
	SidebarWidth int
	ContentWidth int
	FocusSidebar bool
	Colors       style.ColorConfig
}

func NewLayout(width int, cfg Config, colors style.ColorConfig) *Layout {
	sidebar := int(float64(width) * cfg.SidebarWidthPercent)
	sidebar = max(sidebar, cfg.SidebarMinWidth)
	sidebar = min(sidebar, cfg.SidebarMaxWidth)

	return &Layout{
		Width:        width,
		SidebarWidth: sidebar,
		ContentWidth: width - sidebar,
		FocusSidebar: true,
		Colors:       colors,
	}
}

func (l *Layout) SetFocus(sidebar bool) {
	l.FocusSidebar = sidebar
}

// Render joins both panes at the given outer height.
func (l *Layout) Render(sidebar, content Panel, height int) string {
	active := lipgloss.Color(l.Colors.Accent)
	dim := lipgloss.Color(l.Colors.Border)

	left := buildPanel(sidebar, l.SidebarWidth, height, l.FocusSidebar, active, dim)
	right := buildPanel(content, l.ContentWidth, height, !l.FocusSidebar, active, dim)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// MainContentWidth is the usable text width of the content pane.
func (l *Layout) MainContentWidth() int {
	return l.ContentWidth - 6 // border, padding, scrollbar
}

func buildPanel(panel Panel, width, height int, focused bool, active, dim lipgloss.Color) string {
	textWidth := max(width-6, 1)
	visible := max(height-2, 1)

	lines := panel.Lines
	if len(lines) > visible {
		lines = lines[:visible]
	}

	total := panel.TotalItems
	if total == 0 {
		total = len(panel.Lines)
	}
	bar := BuildScrollbar(visible, total, panel.ScrollPos, active, dim, focused)

	rows := make([]string, visible)
	for i := range rows {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w > textWidth {
			line = truncate(line, textWidth)
		} else {
			line += strings.Repeat(" ", textWidth-w)
		}
		rows[i] = line + " " + bar[i]
	}

	border := dim
	if focused {
		border = active
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}

func truncate(s string, width int) string {
	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		if c := string(runes[:i]); lipgloss.Width(c) <= width-3 {
			return c + "..."
		}
	}
	return "..."
}
