package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_FileSink(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "logs", "cmdspec.log")

	logger, err := New(logPath, LevelDebug, DefaultRotation())
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("parse start: %s", "copy")
	logger.Error("dispatch failed: %d", 2)
	_ = logger.Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	logContent := string(content)
	if !strings.Contains(logContent, "DEBUG: parse start: copy") {
		t.Error("Debug message not found in log")
	}
	if !strings.Contains(logContent, "ERROR: dispatch failed: 2") {
		t.Error("Error message not found in log")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Log file permissions = %o, want %o", info.Mode().Perm(), 0600)
	}

	dirInfo, err := os.Stat(filepath.Dir(logPath))
	if err != nil {
		t.Fatalf("Failed to stat log directory: %v", err)
	}
	if dirInfo.Mode().Perm() != 0700 {
		t.Errorf("Log directory permissions = %o, want %o", dirInfo.Mode().Perm(), 0700)
	}
}

func TestLogger_AppendsAcrossOpens(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	for _, msg := range []string{"first message", "second message"} {
		logger, err := New(logPath, LevelInfo, DefaultRotation())
		if err != nil {
			t.Fatalf("Failed to create logger: %v", err)
		}
		logger.Info("%s", msg)
		_ = logger.Close()
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "first message") || !strings.Contains(string(content), "second message") {
		t.Errorf("expected both messages, got %q", content)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "DEBUG") || strings.Contains(out, "INFO") {
		t.Errorf("debug and info should be filtered, got %q", out)
	}
	if !strings.Contains(out, "WARN: warning message") || !strings.Contains(out, "ERROR: error message") {
		t.Errorf("warn and error should be present, got %q", out)
	}
}

func TestLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelInfo)

	logger.Info("enabled message")
	logger.SetEnabled(false)
	logger.Info("disabled message")
	logger.SetEnabled(true)
	logger.Info("enabled again")

	out := buf.String()
	if strings.Contains(out, "disabled message") {
		t.Error("Disabled message should not be present")
	}
	if !strings.Contains(out, "enabled message") || !strings.Contains(out, "enabled again") {
		t.Errorf("enabled messages missing, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"unknown", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLogger_NilReceiver(t *testing.T) {
	var logger *Logger
	// Should not panic
	logger.SetEnabled(true)
	logger.Debug("test")
	logger.Error("test")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nil logger should return nil, got %v", err)
	}
}

func TestPackageLogger(t *testing.T) {
	saved := GetLogger()
	defer SetDefault(saved)

	SetDefault(nil)
	Debug("dropped")
	if err := Close(); err != nil {
		t.Errorf("Close() with nil default should return nil, got %v", err)
	}

	var buf bytes.Buffer
	SetDefault(NewWriter(&buf, LevelDebug))
	Debug("registry: built with %d commands", 3)
	Warn("config: bad value")

	if !strings.Contains(buf.String(), "DEBUG: registry: built with 3 commands") {
		t.Errorf("package Debug not routed, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "WARN: config: bad value") {
		t.Errorf("package Warn not routed, got %q", buf.String())
	}
}
