package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/domain"
)

const envPrefix = "CMDSPEC_"

// EnvName returns the environment variable overriding key.
func EnvName(key string) string {
	return envPrefix + strings.ToUpper(key)
}

// Get returns the value for key: environment first, then the file, then
// the default. Unknown keys are not found.
func (f *File) Get(key string) (string, bool) {
	if !domain.IsValidConfigKey(key) {
		return "", false
	}
	if v, ok := os.LookupEnv(EnvName(key)); ok {
		return v, true
	}
	if cfg, err := f.values(); err == nil {
		if v, ok := cfg[key]; ok {
			return v, true
		}
	}
	return domain.GetDefaultValue(key)
}

// GetAll returns every known key with its effective value.
func (f *File) GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name] = key.Default
	}

	cfg, err := f.values()
	if err != nil {
		return result, err
	}
	for k, v := range cfg {
		if domain.IsValidConfigKey(k) {
			result[k] = v
		}
	}

	for _, key := range domain.ConfigKeys {
		if v, ok := os.LookupEnv(EnvName(key.Name)); ok {
			result[key.Name] = v
		}
	}
	return result, nil
}

func (f *File) values() (map[string]string, error) {
	lines, err := f.ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}

// Set persists a value under the file lock.
func (f *File) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("config: unknown key %q", key)
	}
	return f.WithLock(func() error {
		lines, err := f.ReadLines()
		if err != nil {
			return err
		}
		lines, _ = SetLine(lines, key, value)
		return f.WriteLines(lines)
	})
}

// Unset removes a value under the file lock, restoring its default.
func (f *File) Unset(key string) error {
	return f.WithLock(func() error {
		lines, err := f.ReadLines()
		if err != nil {
			return err
		}
		lines, _ = UnsetLine(lines, key)
		return f.WriteLines(lines)
	})
}

var _ domain.ConfigProvider = (*File)(nil)
