// Package style provides semantic terminal styling using lipgloss.
//
// Styling is semantic (Success, Warning, Error...) rather than visual.
// A disabled Styler returns its input unchanged with no ANSI codes.
package style

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/footprint-tools/cmdspec/internal/domain"
)

// ColorMode is the value of the color setting.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode maps a setting value to a mode. Unknown values are auto.
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "true", "on", "yes":
		return ColorAlways
	case "never", "false", "off", "no":
		return ColorNever
	default:
		return ColorAuto
	}
}

// ShouldColor decides whether output to w is styled. NO_COLOR and
// CMDSPEC_NO_COLOR disable color in every mode.
func ShouldColor(mode ColorMode, w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CMDSPEC_NO_COLOR") != "" {
		return false
	}
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return termenv.NewOutput(w).Profile != termenv.Ascii
}

// Styler implements domain.Styler with lipgloss.
type Styler struct {
	enabled bool
	colors  ColorConfig

	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
	header  lipgloss.Style
	accent  lipgloss.Style
}

// New returns a Styler rendering for w. Styles use the 256-color
// palette regardless of what the terminal reports.
func New(enabled bool, colors ColorConfig, w io.Writer) *Styler {
	s := &Styler{enabled: enabled, colors: colors}
	if !enabled {
		return s
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	s.success = makeStyle(r, colors.Success)
	s.warning = makeStyle(r, colors.Warning)
	s.err = makeStyle(r, colors.Error)
	s.info = makeStyle(r, colors.Info)
	s.muted = makeStyle(r, colors.Muted)
	s.header = makeStyle(r, colors.Header)
	s.accent = makeStyle(r, colors.Accent)
	return s
}

// Setup builds a Styler from the color and theme settings.
func Setup(mode ColorMode, theme string, w io.Writer) *Styler {
	return New(ShouldColor(mode, w), LoadColorConfig(theme), w)
}

func makeStyle(r *lipgloss.Renderer, value string) lipgloss.Style {
	if value == "bold" {
		return r.NewStyle().Bold(true)
	}
	return r.NewStyle().Foreground(lipgloss.Color(value))
}

func (s *Styler) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s *Styler) Enabled() bool         { return s.enabled }
func (s *Styler) Colors() ColorConfig   { return s.colors }
func (s *Styler) Success(t string) string { return s.render(s.success, t) }
func (s *Styler) Warning(t string) string { return s.render(s.warning, t) }
func (s *Styler) Error(t string) string   { return s.render(s.err, t) }
func (s *Styler) Info(t string) string    { return s.render(s.info, t) }
func (s *Styler) Muted(t string) string   { return s.render(s.muted, t) }
func (s *Styler) Header(t string) string  { return s.render(s.header, t) }

// Accent highlights names such as commands and flags.
func (s *Styler) Accent(t string) string { return s.render(s.accent, t) }

// NopStyler returns text unchanged.
type NopStyler struct{}

func (NopStyler) Enabled() bool             { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }

var _ domain.Styler = (*Styler)(nil)
var _ domain.Styler = NopStyler{}
