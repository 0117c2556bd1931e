package logger

import (
	"log/slog"
	"strings"
)

// Level is a settable slog.Leveler.
type Level struct {
	lvl slog.LevelVar
}

func (l *Level) Level() slog.Level { return l.lvl.Level() }

func (l *Level) Enabled(level slog.Level) bool {
	return level >= l.lvl.Level()
}

func (l *Level) Set(level slog.Level) {
	l.lvl.Set(level)
}

// SetByName sets the level from its name and reports whether the name was
// known. Unknown names leave the level unchanged.
func (l *Level) SetByName(name string) bool {
	lvl, ok := ParseLevel(name)
	if ok {
		l.lvl.Set(lvl)
	}
	return ok
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "err", "error":
		return slog.LevelError, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "info", "":
		return slog.LevelInfo, true
	case "debug":
		return slog.LevelDebug, true
	}
	return 0, false
}
