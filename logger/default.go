package logger

import (
	"sync"
)

var (
	defaultLogger = New(Config{})
	defaultMu     sync.RWMutex
)

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log logs a message using the default logger
func Log(msg string, opts ...CallOption) {
	Default().Log(msg, opts...)
}

// Debug logs a debug message using the default logger
func Debug(msg string, opts ...CallOption) {
	Default().Debug(msg, opts...)
}

// Info logs an info message using the default logger
func Info(msg string, opts ...CallOption) {
	Default().Info(msg, opts...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, opts ...CallOption) {
	Default().Warn(msg, opts...)
}

// Error logs an error message using the default logger
func Error(msg string, opts ...CallOption) {
	Default().Error(msg, opts...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// With creates a new logger from the default logger with bound options
func With(opts ...CallOption) *Logger {
	return Default().With(opts...)
}
