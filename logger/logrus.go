package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogrusAdapter implements Logger on top of logrus
type LogrusAdapter struct {
	*logrus.Logger
}

type logrusEntryAdapter struct {
	*logrus.Entry
}

// NewLogrus returns a text logger writing to out
func NewLogrus(out io.Writer, level Level) LogrusAdapter {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrusLevel(level))
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return LogrusAdapter{Logger: l}
}

func logrusLevel(l Level) logrus.Level {
	switch l {
	case LevelError:
		return logrus.ErrorLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelDebug:
		return logrus.DebugLevel
	case LevelTrace:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

func (l LogrusAdapter) Logf(level Level, format string, args ...any) {
	l.Logger.Logf(logrusLevel(level), format, args...)
}

func (l LogrusAdapter) Log(level Level, args ...any) {
	l.Logger.Log(logrusLevel(level), args...)
}

func (l LogrusAdapter) With(field string, value any) Logger {
	return logrusEntryAdapter{Entry: l.Logger.WithField(field, value)}
}

func (l LogrusAdapter) WithFields(fields map[string]any) Logger {
	return logrusEntryAdapter{Entry: l.Logger.WithFields(fields)}
}

func (l logrusEntryAdapter) Logf(level Level, format string, args ...any) {
	l.Entry.Logf(logrusLevel(level), format, args...)
}

func (l logrusEntryAdapter) Log(level Level, args ...any) {
	l.Entry.Log(logrusLevel(level), args...)
}

func (l logrusEntryAdapter) With(field string, value any) Logger {
	return logrusEntryAdapter{Entry: l.Entry.WithField(field, value)}
}

func (l logrusEntryAdapter) WithFields(fields map[string]any) Logger {
	return logrusEntryAdapter{Entry: l.Entry.WithFields(fields)}
}

var (
	_ Logger = LogrusAdapter{}
	_ Logger = logrusEntryAdapter{}
)
