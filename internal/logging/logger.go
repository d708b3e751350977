package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spacesedan/sentiment/internal/models"
	"golang.org/x/term"
)

var (
	initOnce sync.Once
	logFile  *os.File
)

// ParseLevel accepts debug, info, warn (or warning) and error in any case.
// Anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewHandler builds the tint handler used by the process logger.
func NewHandler(w io.Writer, level slog.Level, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level <= slog.LevelDebug,
		NoColor:    noColor,
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newLogger builds a logger for cfg. With a log file it returns the opened
// file for the caller to close. If the file cannot be opened it returns a
// console logger that has already logged the failure, together with the
// open error.
func newLogger(cfg models.LoggingConfig, console io.Writer) (*slog.Logger, *os.File, error) {
	level := ParseLevel(cfg.Level)
	consoleLogger := slog.New(NewHandler(console, level, !isTerminal(console)))

	if cfg.File == "" {
		return consoleLogger, nil, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		err = fmt.Errorf("[Logger] open log file: %w", err)
		consoleLogger.Warn("[Logger] Failed to open log file, logging to console",
			slog.String("file", cfg.File),
			slog.String("error", err.Error()))
		return consoleLogger, nil, err
	}

	return slog.New(NewHandler(f, level, true)), f, nil
}

// InitLogger installs the default slog logger, writing to console unless
// cfg names a log file. Only the first call before CloseLogger has any
// effect. A log file that cannot be opened falls back to console.
func InitLogger(cfg models.LoggingConfig, console io.Writer) {
	initOnce.Do(func() {
		logger, f, _ := newLogger(cfg, console)
		logFile = f
		slog.SetDefault(logger)
	})
}

// CloseLogger closes the log file, if one was opened, and ends the logger's
// lifetime so the next InitLogger starts fresh.
func CloseLogger() error {
	initOnce = sync.Once{}

	if logFile == nil {
		return nil
	}
	f := logFile
	logFile = nil
	if err := f.Close(); err != nil {
		return fmt.Errorf("[Logger] close log file: %w", err)
	}
	return nil
}
