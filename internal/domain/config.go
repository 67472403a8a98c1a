package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string
	Hidden      bool
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
// Order determines display order in listings.
var ConfigKeys = []ConfigKey{
	// Display
	{
		Name:        "color",
		Default:     "auto",
		Description: "Colored output: auto, always, never",
		Section:     "Display",
	},
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono, ocean",
		Section:     "Display",
	},
	{
		Name:        "pager",
		Default:     "less -FRSX",
		Description: "Pager command for long help output",
		Section:     "Display",
	},
	// Suggestions
	{
		Name:        "suggest_max_distance",
		Default:     "2",
		Description: "Largest edit distance offered as a 'did you mean' suggestion",
		Section:     "Suggestions",
	},
	{
		Name:        "suggest_limit",
		Default:     "3",
		Description: "Maximum number of suggestions shown",
		Section:     "Suggestions",
	},
	// Shell
	{
		Name:        "enable_history",
		Default:     "true",
		Description: "Persist interactive shell history (true/false)",
		Section:     "Shell",
	},
	{
		Name:        "history_size",
		Default:     "500",
		Description: "Number of history lines kept",
		Section:     "Shell",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "false",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
}

var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Display", "Suggestions", "Shell", "Logging"}
}
