// Package logging wraps logrus with the levels and log-file defaults used by
// every command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	// LogLevelQuiet only records errors
	LogLevelQuiet LogLevel = "quiet"
	// LogLevelNormal records gesture, volume and backup milestones
	LogLevelNormal LogLevel = "normal"
	// LogLevelVerbose adds per-attempt and per-line detail
	LogLevelVerbose LogLevel = "verbose"
	// LogLevelDebug records everything
	LogLevelDebug LogLevel = "debug"
)

const appName = "gesturebackup"

// Logger provides structured logging capabilities
type Logger struct {
	logger *logrus.Logger
	level  LogLevel
	file   *os.File
}

// Config holds logger configuration
type Config struct {
	Level   LogLevel
	Output  io.Writer // nil writes nothing to the console
	Format  string    // "text" or "json"
	LogFile string
}

// NewLogger creates a new logger with the specified configuration
func NewLogger(config Config) (*Logger, error) {
	logger := logrus.New()

	switch config.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			DisableColors:   true,
		})
	}

	l := &Logger{logger: logger}
	l.SetLevel(config.Level)

	var out io.Writer = io.Discard
	if config.Output != nil {
		out = config.Output
	}

	if config.LogFile != "" {
		file, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", config.LogFile, err)
		}
		l.file = file
		if config.Output == nil {
			out = file
		} else {
			out = io.MultiWriter(config.Output, file)
		}
	}
	logger.SetOutput(out)

	return l, nil
}

// FieldLogger exposes the underlying logrus logger for packages that accept a
// logrus.FieldLogger.
func (l *Logger) FieldLogger() logrus.FieldLogger {
	return l.logger
}

// WithField returns a logger with a single additional field
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.logger.WithField(key, value)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() LogLevel {
	return l.level
}

// SetLevel sets the log level. Unknown levels fall back to normal.
func (l *Logger) SetLevel(level LogLevel) {
	switch level {
	case LogLevelQuiet:
		l.logger.SetLevel(logrus.ErrorLevel)
	case LogLevelVerbose:
		l.logger.SetLevel(logrus.DebugLevel)
	case LogLevelDebug:
		l.logger.SetLevel(logrus.TraceLevel)
	default:
		level = LogLevelNormal
		l.logger.SetLevel(logrus.InfoLevel)
	}
	l.level = level
}

// LogOperationStart logs the start of an operation and returns a function to log completion
func (l *Logger) LogOperationStart(operation string, fields logrus.Fields) func(error) {
	startTime := time.Now()

	logFields := logrus.Fields{"operation": operation}
	for k, v := range fields {
		logFields[k] = v
	}
	l.logger.WithFields(logFields).Debug("operation started")

	return func(err error) {
		logFields["duration"] = time.Since(startTime).Round(time.Millisecond).String()
		if err != nil {
			l.logger.WithFields(logFields).WithError(err).Error("operation failed")
			return
		}
		l.logger.WithFields(logFields).Info("operation completed")
	}
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// LevelFromFlags maps the command-line switches to a level. Debug wins over
// verbose, verbose over quiet.
func LevelFromFlags(quiet, verbose, debug bool) LogLevel {
	switch {
	case debug:
		return LogLevelDebug
	case verbose:
		return LogLevelVerbose
	case quiet:
		return LogLevelQuiet
	default:
		return LogLevelNormal
	}
}

// DefaultLogFile returns ~/.cache/gesturebackup/gesturebackup.log for the
// invoking user, creating the directory. It falls back to /tmp when the
// cache directory cannot be created.
func DefaultLogFile() string {
	if home, err := UserHome(); err == nil {
		logDir := filepath.Join(home, ".cache", appName)
		if err := os.MkdirAll(logDir, 0o755); err == nil {
			return filepath.Join(logDir, appName+".log")
		}
	}
	return filepath.Join(os.TempDir(), appName+".log")
}

// UserHome returns the home directory of the user who started the program,
// looking through sudo to the original account.
func UserHome() (string, error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && sudoUser != "root" {
		return filepath.Join("/home", sudoUser), nil
	}
	return os.UserHomeDir()
}
