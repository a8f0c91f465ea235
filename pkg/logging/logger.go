// Package logging is a leveled logger built on logrus. Every entry is written
// to the configured writer and kept in an in-memory store for the UI.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is a central logger that writes to a store and an optional io.Writer.
type Logger struct {
	mu     sync.Mutex
	store  *LogStore
	writer io.Writer
	log    *logrus.Logger
}

// NewLogger creates and initializes a new Logger instance. Output is
// discarded until SetWriter is called.
func NewLogger() *Logger {
	l := &Logger{
		store:  newLogStore(),
		writer: io.Discard,
		log:    logrus.New(),
	}
	l.log.SetOutput(io.Discard)
	l.log.SetLevel(logrus.InfoLevel)
	l.log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		TimestampFormat:  "15:04:05.000",
		DisableQuote:     true,
		PadLevelText:     true,
		QuoteEmptyFields: false,
	})
	l.log.AddHook(storeHook{store: l.store})
	return l
}

// SetWriter sets the output destination for the logger.
func (l *Logger) SetWriter(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	l.writer = w
	l.log.SetOutput(w)
}

// GetWriter returns the current output writer.
func (l *Logger) GetWriter() io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writer
}

// Store returns the internal LogStore.
func (l *Logger) Store() *LogStore {
	return l.store
}

// SetDebug enables or disables debug-level logging.
func (l *Logger) SetDebug(enable bool) {
	if enable {
		l.log.SetLevel(logrus.DebugLevel)
	} else {
		l.log.SetLevel(logrus.InfoLevel)
	}
}

func (l *Logger) IsDebugEnabled() bool {
	return l.log.IsLevelEnabled(logrus.DebugLevel)
}

func (l *Logger) logMsg(level LogLevel, v ...interface{}) {
	// fmt.Sprintln puts spaces between all operands, unlike fmt.Sprint.
	l.log.Log(level.logrusLevel(), strings.TrimSpace(fmt.Sprintln(v...)))
}

func (l *Logger) logf(level LogLevel, format string, v ...interface{}) {
	l.log.Logf(level.logrusLevel(), format, v...)
}

// Info logs an informational message.
func (l *Logger) Info(v ...interface{}) {
	l.logMsg(LevelInfo, v...)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(LevelInfo, format, v...)
}

// Warn logs a warning message.
func (l *Logger) Warn(v ...interface{}) {
	l.logMsg(LevelWarn, v...)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf(LevelWarn, format, v...)
}

// Error logs an error message.
func (l *Logger) Error(v ...interface{}) {
	l.logMsg(LevelError, v...)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(LevelError, format, v...)
}

// Debug logs a debug message.
func (l *Logger) Debug(v ...interface{}) {
	l.logMsg(LevelDebug, v...)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(LevelDebug, format, v...)
}

// ---- Global / Default Logger ----

var defaultLogger = NewLogger()

// SetDefault replaces the default logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

func IsDebugEnabled() bool {
	return defaultLogger.IsDebugEnabled()
}

// Info logs an informational message using the default logger.
func Info(v ...interface{}) {
	defaultLogger.Info(v...)
}

// Infof logs a formatted informational message using the default logger.
func Infof(format string, v ...interface{}) {
	defaultLogger.Infof(format, v...)
}

// Warn logs a warning message using the default logger.
func Warn(v ...interface{}) {
	defaultLogger.Warn(v...)
}

// Warnf logs a formatted warning message using the default logger.
func Warnf(format string, v ...interface{}) {
	defaultLogger.Warnf(format, v...)
}

// Error logs an error message using the default logger.
func Error(v ...interface{}) {
	defaultLogger.Error(v...)
}

// Errorf logs a formatted error message using the default logger.
func Errorf(format string, v ...interface{}) {
	defaultLogger.Errorf(format, v...)
}

// Debug logs a debug message using the default logger.
func Debug(v ...interface{}) {
	defaultLogger.Debug(v...)
}

// Debugf logs a formatted debug message using the default logger.
func Debugf(format string, v ...interface{}) {
	defaultLogger.Debugf(format, v...)
}
