package config

import (
	"fmt"
	"strings"
)

// Parse reads key=value lines into a map. Blank lines and lines starting
// with '#' are skipped, values may be double quoted, and an unquoted value
// ends at " #".
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value, got %q", i+1, line)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = parseValue(strings.TrimSpace(value))
	}

	return cfg, nil
}

func parseValue(v string) string {
	if len(v) >= 2 && v[0] == '"' {
		if end := strings.IndexByte(v[1:], '"'); end >= 0 {
			return v[1 : end+1]
		}
	}
	if idx := strings.Index(v, " #"); idx >= 0 {
		v = v[:idx]
	}
	return strings.TrimSpace(v)
}

// SetLine updates key in place, keeping any inline comment, or appends it.
// It reports whether an existing line was replaced.
func SetLine(lines []string, key, value string) ([]string, bool) {
	out := append([]string(nil), lines...)
	if strings.ContainsAny(value, " #") {
		value = "\"" + value + "\""
	}

	for i, line := range out {
		k, rest, ok := splitSetting(line)
		if !ok || k != key {
			continue
		}
		if idx := strings.Index(rest, " #"); idx >= 0 && !strings.HasPrefix(strings.TrimSpace(rest), "\"") {
			out[i] = key + "=" + value + " " + strings.TrimSpace(rest[idx:])
		} else {
			out[i] = key + "=" + value
		}
		return out, true
	}

	return append(out, key+"="+value), false
}

// UnsetLine removes every line setting key and reports whether any was found.
func UnsetLine(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false
	for _, line := range lines {
		if k, _, ok := splitSetting(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}
	return out, removed
}

func splitSetting(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	key, rest, ok := strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), rest, true
}
