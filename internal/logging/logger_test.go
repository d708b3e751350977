package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spacesedan/sentiment/internal/models"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"Info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
		{" error ", slog.LevelError},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelWarn, true))

	logger.Info("[Test] hidden")
	logger.Warn("[Test] shown", slog.String("path", "config.yaml"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "config.yaml") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestNewLogger_Console(t *testing.T) {
	var console bytes.Buffer
	logger, f, err := newLogger(models.LoggingConfig{Level: "info"}, &console)
	if err != nil || f != nil {
		t.Fatalf("newLogger: file=%v err=%v", f, err)
	}

	logger.Info("[Test] hello")
	if !strings.Contains(console.String(), "hello") {
		t.Fatalf("console = %q", console.String())
	}
	if strings.Contains(console.String(), "\x1b[") {
		t.Fatalf("colour written to a non-terminal: %q", console.String())
	}
}

func TestNewLogger_UnopenableFileFallsBackToConsole(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, f, err := newLogger(models.LoggingConfig{Level: "info", File: dir}, &console)
	if err == nil {
		t.Fatalf("expected error opening directory %q as log file", dir)
	}
	if f != nil {
		t.Fatalf("file returned on failure")
	}

	warning := console.String()
	if !strings.Contains(warning, "Failed to open log file") || !strings.Contains(warning, dir) {
		t.Fatalf("fallback warning missing: %q", warning)
	}

	logger.Info("[Test] after fallback")
	if !strings.Contains(console.String(), "after fallback") {
		t.Fatalf("fallback logger does not write to console: %q", console.String())
	}
}

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentiment.log")
	var console bytes.Buffer

	logger, f, err := newLogger(models.LoggingConfig{Level: "debug", File: path}, &console)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("[Test] to file", slog.String("key", "value"))
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "to file") || !strings.Contains(string(data), "key=value") {
		t.Fatalf("log file = %q", data)
	}
	if console.Len() != 0 {
		t.Fatalf("console written with a file sink: %q", console.String())
	}
}

func TestInitLoggerAndClose(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(t.TempDir(), "run.log")
	var console bytes.Buffer

	InitLogger(models.LoggingConfig{Level: "info", File: path}, &console)
	InitLogger(models.LoggingConfig{Level: "info"}, &console) // ignored until CloseLogger
	slog.Info("[Test] first run")

	if err := CloseLogger(); err != nil {
		t.Fatalf("CloseLogger: %v", err)
	}
	if err := CloseLogger(); err != nil {
		t.Fatalf("second CloseLogger: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "first run") {
		t.Fatalf("log file = %q", data)
	}

	InitLogger(models.LoggingConfig{Level: "info"}, &console)
	slog.Info("[Test] second run")
	if !strings.Contains(console.String(), "second run") {
		t.Fatalf("logger not re-initialised after CloseLogger: %q", console.String())
	}
	if err := CloseLogger(); err != nil {
		t.Fatalf("CloseLogger: %v", err)
	}
}
