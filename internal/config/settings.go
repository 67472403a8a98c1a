package config

import (
	"strconv"

	"github.com/footprint-tools/cmdspec/internal/domain"
	"github.com/footprint-tools/cmdspec/internal/log"
)

// Settings is the typed view of the host configuration.
type Settings struct {
	Color              string
	Theme              string
	Pager              string
	SuggestMaxDistance int
	SuggestLimit       int
	EnableHistory      bool
	HistorySize        int
	EnableLog          bool
	LogLevel           string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Load(defaultsOnly{})
}

// Load reads settings from a provider. Values that do not parse fall back
// to their defaults and are logged.
func Load(p domain.ConfigProvider) Settings {
	get := func(key string) string {
		if v, ok := p.Get(key); ok {
			return v
		}
		v, _ := domain.GetDefaultValue(key)
		return v
	}

	s := Settings{
		Color:              get("color"),
		Theme:              get("theme"),
		Pager:              get("pager"),
		SuggestMaxDistance: intSetting("suggest_max_distance", get("suggest_max_distance"), 0),
		SuggestLimit:       intSetting("suggest_limit", get("suggest_limit"), 0),
		EnableHistory:      boolSetting("enable_history", get("enable_history")),
		HistorySize:        intSetting("history_size", get("history_size"), 1),
		EnableLog:          boolSetting("enable_log", get("enable_log")),
		LogLevel:           get("log_level"),
	}

	switch s.Color {
	case "auto", "always", "never":
	default:
		log.Warn("config: invalid color %q, using auto", s.Color)
		s.Color = "auto"
	}

	return s
}

func intSetting(key, raw string, min int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < min {
		def, _ := domain.GetDefaultValue(key)
		log.Warn("config: invalid %s %q, using %s", key, raw, def)
		n, _ = strconv.Atoi(def)
	}
	return n
}

func boolSetting(key, raw string) bool {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		def, _ := domain.GetDefaultValue(key)
		log.Warn("config: invalid %s %q, using %s", key, raw, def)
		b, _ = strconv.ParseBool(def)
	}
	return b
}

type defaultsOnly struct{}

func (defaultsOnly) Get(key string) (string, bool) {
	return domain.GetDefaultValue(key)
}

func (defaultsOnly) GetAll() (map[string]string, error) {
	return nil, nil
}

func (defaultsOnly) Set(string, string) error {
	return nil
}

func (defaultsOnly) Unset(string) error {
	return nil
}
