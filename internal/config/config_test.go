package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T, content string) *File {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".cmdspecrc")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return Open(path)
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLines []string
	}{
		{
			name:      "single line",
			content:   "theme=mono\n",
			wantLines: []string{"theme=mono"},
		},
		{
			name:      "comments kept",
			content:   "# Comment\ntheme=mono\n",
			wantLines: []string{"# Comment", "theme=mono"},
		},
		{
			name:      "Windows CRLF line endings",
			content:   "theme=mono\r\ncolor=never\r\n",
			wantLines: []string{"theme=mono", "color=never"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tempFile(t, tt.content)

			got, err := f.ReadLines()
			require.NoError(t, err)
			require.Equal(t, tt.wantLines, got)

			info, err := os.Stat(f.Path())
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())
		})
	}
}

func TestReadLines_WritesDefaultsWhenMissing(t *testing.T) {
	f := tempFile(t, "")

	lines, err := f.ReadLines()
	require.NoError(t, err)
	require.Contains(t, lines, "suggest_max_distance=2")
	require.Contains(t, lines, "pager=\"less -FRSX\"")

	cfg, err := Parse(lines)
	require.NoError(t, err)
	require.Equal(t, "less -FRSX", cfg["pager"])

	data, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	require.Contains(t, string(data), "# Suggestions")
}

func TestWriteLines_Atomic(t *testing.T) {
	f := tempFile(t, "theme=mono\n")

	require.NoError(t, f.WriteLines([]string{"theme=ocean", "color=never"}))

	data, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	require.Equal(t, "theme=ocean\ncolor=never\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(f.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestSetLine(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		key      string
		value    string
		want     []string
		replaced bool
	}{
		{
			name:     "replace existing",
			lines:    []string{"theme=mono", "color=auto"},
			key:      "color",
			value:    "never",
			want:     []string{"theme=mono", "color=never"},
			replaced: true,
		},
		{
			name:     "append new",
			lines:    []string{"theme=mono"},
			key:      "color",
			value:    "never",
			want:     []string{"theme=mono", "color=never"},
			replaced: false,
		},
		{
			name:     "keep inline comment",
			lines:    []string{"history_size=500 # lines"},
			key:      "history_size",
			value:    "50",
			want:     []string{"history_size=50 # lines"},
			replaced: true,
		},
		{
			name:     "quote values with spaces",
			lines:    nil,
			key:      "pager",
			value:    "more -d",
			want:     []string{`pager="more -d"`},
			replaced: false,
		},
		{
			name:     "skip commented key",
			lines:    []string{"# color=always"},
			key:      "color",
			value:    "never",
			want:     []string{"# color=always", "color=never"},
			replaced: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, replaced := SetLine(tt.lines, tt.key, tt.value)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.replaced, replaced)
		})
	}
}

func TestUnsetLine(t *testing.T) {
	got, removed := UnsetLine([]string{"# keep", "color=never", "theme=mono", "color = always"}, "color")
	require.True(t, removed)
	require.Equal(t, []string{"# keep", "theme=mono"}, got)

	got, removed = UnsetLine([]string{"theme=mono"}, "color")
	require.False(t, removed)
	require.Equal(t, []string{"theme=mono"}, got)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "empty input",
			lines: []string{},
			want:  map[string]string{},
		},
		{
			name:  "blank lines and comments",
			lines: []string{"", "# comment", "  # indented", "theme=mono"},
			want:  map[string]string{"theme": "mono"},
		},
		{
			name:  "trims whitespace",
			lines: []string{"  theme  =  mono  "},
			want:  map[string]string{"theme": "mono"},
		},
		{
			name:  "equals sign in value",
			lines: []string{"pager=less --prompt=x"},
			want:  map[string]string{"pager": "less --prompt=x"},
		},
		{
			name:  "quoted value",
			lines: []string{`pager="less -R # not a comment"`},
			want:  map[string]string{"pager": "less -R # not a comment"},
		},
		{
			name:  "inline comment",
			lines: []string{"history_size=200 # plenty"},
			want:  map[string]string{"history_size": "200"},
		},
		{
			name:    "missing equals",
			lines:   []string{"theme"},
			wantErr: true,
		},
		{
			name:    "empty key",
			lines:   []string{"=mono"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
