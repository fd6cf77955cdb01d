package logger

import "strings"

// Level is the minimal severity a logger or a log writer lets through.
type Level uint32

// Level constants, ordered by severity.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

type levelNames struct {
	tag  string
	name string
}

var levels = [...]levelNames{
	LevelTrace:    {"TRC", "trace"},
	LevelDebug:    {"DBG", "debug"},
	LevelInfo:     {"INF", "info"},
	LevelWarn:     {"WRN", "warn"},
	LevelError:    {"ERR", "error"},
	LevelCritical: {"CRT", "critical"},
	LevelOff:      {"OFF", "off"},
}

// LevelFromString parses either the full name or the three letter tag of a
// level, case insensitively. Unknown input yields LevelInfo and false.
func LevelFromString(s string) (Level, bool) {
	s = strings.ToLower(s)
	for level, names := range levels {
		if s == names.name || s == strings.ToLower(names.tag) {
			return Level(level), true
		}
	}
	return LevelInfo, false
}

// String returns the tag printed in log lines for l.
func (l Level) String() string {
	if l >= LevelOff {
		return levels[LevelOff].tag
	}
	return levels[l].tag
}
