// Package util provides common utilities including levelled logging and
// file system helpers.
package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel is the severity of a log message.
type LogLevel string

const (
	LevelDebug LogLevel = "DEBUG"
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

var (
	logMu      sync.Mutex
	minLevel   = LevelInfo
	fileLogger *lumberjack.Logger
)

func init() {
	// The terminal belongs to the TUI; nothing is written until InitLogging
	// points the logger at a file.
	log.SetOutput(io.Discard)
	log.SetFlags(log.LstdFlags)
}

func levelPriority(level LogLevel) int {
	switch level {
	case LevelDebug:
		return 0
	case LevelInfo:
		return 1
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	default:
		return 1
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" to a LogLevel.
// Anything else is info.
func ParseLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// SetLevel sets the minimum level that is written.
func SetLevel(level LogLevel) {
	logMu.Lock()
	defer logMu.Unlock()
	minLevel = level
}

// InitLogging sends log output to a rotating file in dir.
func InitLogging(dir, fileName string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	logMu.Lock()
	defer logMu.Unlock()
	if fileLogger != nil {
		_ = fileLogger.Close()
	}
	fileLogger = &lumberjack.Logger{
		Filename:   filepath.Join(dir, fileName),
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	}
	log.SetOutput(fileLogger)
	return nil
}

// CloseLogging flushes and closes the log file, if any.
func CloseLogging() error {
	logMu.Lock()
	defer logMu.Unlock()
	if fileLogger == nil {
		return nil
	}
	err := fileLogger.Close()
	fileLogger = nil
	log.SetOutput(io.Discard)
	return err
}

func logf(level LogLevel, format string, v ...any) {
	logMu.Lock()
	enabled := levelPriority(level) >= levelPriority(minLevel)
	logMu.Unlock()
	if !enabled {
		return
	}
	log.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
}

func Debugf(format string, v ...any) { logf(LevelDebug, format, v...) }
func Infof(format string, v ...any)  { logf(LevelInfo, format, v...) }
func Warnf(format string, v ...any)  { logf(LevelWarn, format, v...) }
func Errorf(format string, v ...any) { logf(LevelError, format, v...) }

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		Errorf("%s: %v", context, err)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}
