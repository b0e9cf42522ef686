package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitWith_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	opts := DefaultOptions("debug", logFile)
	opts.Console = false // keep test output quiet
	opts.Compress = false

	if err := InitWith(opts); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Info("hello from the test")
	Debug("debug is enabled")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	if !strings.Contains(string(data), "hello from the test") {
		t.Error("expected info message in log file")
	}
	if !strings.Contains(string(data), "debug is enabled") {
		t.Error("expected debug message in log file")
	}
}

func TestInitWith_LevelFilter(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	opts := DefaultOptions("warn", logFile)
	opts.Console = false
	opts.Compress = false

	if err := InitWith(opts); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Info("should be filtered")
	Warn("should appear")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	if strings.Contains(string(data), "should be filtered") {
		t.Error("info message should not pass a warn-level filter")
	}
	if !strings.Contains(string(data), "should appear") {
		t.Error("warn message missing from log file")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
