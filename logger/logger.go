package logger

import (
	"fmt"
	"strings"
)

type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
	LevelTrace: "trace",
}

func (l Level) MarshalText() (text []byte, err error) {
	if l < 0 || int(l) >= len(levelNames) {
		return nil, fmt.Errorf("unexpected log level: %d", l)
	}
	return []byte(levelNames[l]), nil
}

func (l Level) String() string {
	text, err := l.MarshalText()
	if err != nil {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return string(text)
}

func (l *Level) UnmarshalText(text []byte) error {
	for i, name := range levelNames {
		if strings.EqualFold(string(text), name) {
			*l = Level(i)
			return nil
		}
	}
	return fmt.Errorf("unknown log level: %s", string(text))
}

type Logger interface {
	With(field string, value any) Logger
	WithFields(fields map[string]any) Logger
	Logf(level Level, format string, args ...any)
	Log(level Level, args ...any)
	Errorf(format string, args ...any)
	Error(args ...any)
	Warnf(format string, args ...any)
	Warn(args ...any)
	Infof(format string, args ...any)
	Info(args ...any)
	Debugf(format string, args ...any)
	Debug(args ...any)
	Tracef(format string, args ...any)
	Trace(args ...any)
}
