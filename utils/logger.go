package utils

import (
	"fmt"
	"log/slog"
)

// Logger .
type Logger interface {
	Debugf(format string, a ...interface{})
	Infof(format string, a ...interface{})
	Warnf(format string, a ...interface{})
	Errorf(format string, a ...interface{})
}

type defaultLogger struct {
	name string
}

// NewLogger a Logger writing through slog.Default, prefixed with the
// module name.
func NewLogger(moduleName string) Logger {
	return &defaultLogger{moduleName}
}

func (l *defaultLogger) Debugf(format string, a ...interface{}) {
	slog.Debug("[" + l.name + "] " + fmt.Sprintf(format, a...))
}

func (l *defaultLogger) Infof(format string, a ...interface{}) {
	slog.Info("[" + l.name + "] " + fmt.Sprintf(format, a...))
}

func (l *defaultLogger) Warnf(format string, a ...interface{}) {
	slog.Warn("[" + l.name + "] " + fmt.Sprintf(format, a...))
}

func (l *defaultLogger) Errorf(format string, a ...interface{}) {
	slog.Error("[" + l.name + "] " + fmt.Sprintf(format, a...))
}

type nopLogger struct{}

// NopLogger .
func NopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Debugf(format string, a ...interface{}) {}
func (nopLogger) Infof(format string, a ...interface{})  {}
func (nopLogger) Warnf(format string, a ...interface{})  {}
func (nopLogger) Errorf(format string, a ...interface{}) {}
