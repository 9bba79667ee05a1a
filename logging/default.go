package logging

import (
	"context"
	"io"
	"maps"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// DefaultLogger is a logrus-backed implementation of Logger
// Debug/Info -> stdout
// Warn/Error/Fatal -> stderr
// Colors are only used when stdout is a terminal.
type DefaultLogger struct {
	stdoutLogger *logrus.Logger
	stderrLogger *logrus.Logger
	fields       Fields
}

// NewDefaultLogger creates a new default logger writing to the process streams
func NewDefaultLogger() *DefaultLogger {
	return NewLogger(os.Stdout, os.Stderr, IsTerminal(os.Stdout))
}

// NewLogger creates a logger with explicit output streams
func NewLogger(stdout, stderr io.Writer, useColors bool) *DefaultLogger {
	d := &DefaultLogger{
		stdoutLogger: newLogrus(stdout),
		stderrLogger: newLogrus(stderr),
		fields:       make(Fields),
	}
	d.setColors(useColors)
	d.SetLevel(InfoLevel)
	return d
}

func newLogrus(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	return l
}

// IsTerminal checks if f is a terminal that supports colors
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (d *DefaultLogger) setColors(enabled bool) {
	formatter := &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceColors:     enabled,
		DisableColors:   !enabled,
	}
	d.stdoutLogger.SetFormatter(formatter)
	d.stderrLogger.SetFormatter(formatter)
}

func toLogrusLevel(level Level) logrus.Level {
	switch level {
	case DebugLevel:
		return logrus.DebugLevel
	case InfoLevel:
		return logrus.InfoLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}

func (d *DefaultLogger) entry(target *logrus.Logger, err error, fields ...Fields) *logrus.Entry {
	allFields := make(logrus.Fields, len(d.fields))
	maps.Copy(allFields, d.fields)
	for _, f := range fields {
		maps.Copy(allFields, f)
	}

	e := target.WithFields(allFields)
	if err != nil {
		e = e.WithError(err)
	}
	return e
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.entry(d.stdoutLogger, nil, fields...).Debug(msg)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.entry(d.stdoutLogger, nil, fields...).Info(msg)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.entry(d.stderrLogger, nil, fields...).Warn(msg)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.entry(d.stderrLogger, err, fields...).Error(msg)
}

// Fatal logs to stderr and exits the process with status 1
func (d *DefaultLogger) Fatal(err error, msg string, fields ...Fields) {
	d.entry(d.stderrLogger, err, fields...).Fatal(msg)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	newFields := make(Fields, len(d.fields)+len(fields))
	maps.Copy(newFields, d.fields)
	maps.Copy(newFields, fields)

	return &DefaultLogger{
		stdoutLogger: d.stdoutLogger,
		stderrLogger: d.stderrLogger,
		fields:       newFields,
	}
}

func (d *DefaultLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := fieldsFromContext(ctx); ok {
		return d.WithFields(fields)
	}
	return d
}

// SetLevel sets the level on the underlying loggers, which are shared with
// every logger derived through WithFields.
func (d *DefaultLogger) SetLevel(level Level) {
	d.stdoutLogger.SetLevel(toLogrusLevel(level))
	d.stderrLogger.SetLevel(toLogrusLevel(level))
}

// NoOpLogger is a logger that does nothing, used when logging is disabled
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, fields ...Fields)            {}
func (n *NoOpLogger) Info(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Warn(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Error(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) Fatal(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) WithFields(fields Fields) Logger               { return n }
func (n *NoOpLogger) WithContext(ctx context.Context) Logger        { return n }
func (n *NoOpLogger) SetLevel(level Level)                          {}
