package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds the colors used for terminal output.
// Values are ANSI color numbers (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Accent  string
	Border  string
}

// BaseThemeNames lists the theme families. Each has a dark and a light
// variant picked from the terminal background.
var BaseThemeNames = []string{"default", "ocean", "mono", "contrast"}

// ThemeNames lists every theme with an explicit variant.
var ThemeNames = []string{
	"default-dark", "default-light",
	"ocean-dark", "ocean-light",
	"mono-dark", "mono-light",
	"contrast-dark", "contrast-light",
}

// Dark themes use bright colors, light themes use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
		Accent:  "13",
		Border:  "240",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "243",
		Header:  "bold",
		Accent:  "90",
		Border:  "250",
	},
	"ocean-dark": {
		Success: "79",
		Warning: "222",
		Error:   "210",
		Info:    "117",
		Muted:   "67",
		Header:  "bold",
		Accent:  "44",
		Border:  "24",
	},
	"ocean-light": {
		Success: "29",
		Warning: "136",
		Error:   "160",
		Info:    "25",
		Muted:   "66",
		Header:  "bold",
		Accent:  "30",
		Border:  "153",
	},
	"mono-dark": {
		Success: "255",
		Warning: "252",
		Error:   "bold",
		Info:    "250",
		Muted:   "242",
		Header:  "bold",
		Accent:  "255",
		Border:  "238",
	},
	"mono-light": {
		Success: "232",
		Warning: "236",
		Error:   "bold",
		Info:    "238",
		Muted:   "245",
		Header:  "bold",
		Accent:  "232",
		Border:  "252",
	},
	"contrast-dark": {
		Success: "46",
		Warning: "226",
		Error:   "196",
		Info:    "51",
		Muted:   "250",
		Header:  "bold",
		Accent:  "201",
		Border:  "255",
	},
	"contrast-light": {
		Success: "22",
		Warning: "94",
		Error:   "88",
		Info:    "18",
		Muted:   "236",
		Header:  "bold",
		Accent:  "53",
		Border:  "232",
	},
}

// IsDarkBackground queries the terminal; it reports true when detection
// fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name.
func ResolveThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "default"
	}
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig returns the colors for a theme. CMDSPEC_THEME overrides
// the argument; unknown names fall back to default-dark.
func LoadColorConfig(theme string) ColorConfig {
	if env := os.Getenv("CMDSPEC_THEME"); env != "" {
		theme = env
	}
	if c, ok := Themes[ResolveThemeName(theme)]; ok {
		return c
	}
	return Themes["default-dark"]
}
