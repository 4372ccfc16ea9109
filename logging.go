package gatt

import "github.com/sirupsen/logrus"

// Logger is the debug-diagnostics sink Server writes to, so a caller can
// route diagnostics into logrus (or anywhere else) instead of stdout.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// nopLogger discards everything; it is the default until SetLogger is
// called.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// LogrusLogger adapts a *logrus.Logger (or *logrus.Entry) to Logger.
type LogrusLogger struct {
	Entry *logrus.Entry
}

// NewLogrusLogger wraps l with a component field identifying the GATT
// core as the log source.
func NewLogrusLogger(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{Entry: l.WithField("component", "gatt")}
}

func (l LogrusLogger) Debugf(format string, args ...interface{}) {
	l.Entry.Debugf(format, args...)
}
