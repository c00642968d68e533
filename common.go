package conlog

import (
	"errors"
	"strings"
)

const (
	// Log level values from the most verbose to the least. LVL_NONE disables
	// every level when used as a threshold and is never emitted itself.
	LVL_TRACE LogLevel = iota
	LVL_DEBUG
	LVL_INFO
	LVL_WARN
	LVL_ERROR
	LVL_FATAL
	LVL_NONE
	_LVL_MAX_for_checks_only
)

const (
	COLOR_AUTO   ColorMode = iota // colors only on terminals (and without NO_COLOR)
	COLOR_ALWAYS                  // colors on any output
	COLOR_NEVER                   // no colors at all
	_COLOR_MAX_for_checks_only
)

const (
	DEFAULT_LOG_LEVEL   = LVL_INFO              // threshold without any build tag
	DEFAULT_TIME_FORMAT = "2006-01-02 15:04:05" // local time, see https://pkg.go.dev/time#Layout
)

const (
	// ANSI colored text is a sequence like
	// ANSI_COL_PRFX + colorSpec + ANSI_COL_SUFX + text + ANSI_COL_RESET
	ANSI_COL_PRFX  = "\033["
	ANSI_COL_SUFX  = "m"
	ANSI_COL_RESET = ANSI_COL_PRFX + "0" + ANSI_COL_SUFX
)

const (
	_ERROR_MESSAGE_UNKNOWN_LEVEL   = "unknown log level"
	_ERROR_MESSAGE_UNKNOWN_COLOR   = "unknown color mode"
	_ERROR_MESSAGE_MISSING_ARG     = "argument not found"
	_ERROR_MESSAGE_BAD_ARG_INDEX   = "invalid argument index"
	_ERROR_MESSAGE_MIXED_INDEXING  = "cannot switch between automatic and manual argument indexing"
	_ERROR_MESSAGE_BAD_FIELD       = "invalid replacement field"
	_ERROR_MESSAGE_NIL_CONFIG      = "config is nil"
	_ERROR_UNKNOWN_PANIC_TEXT      = "[no panic description]"
	_ERROR_MESSAGE_CONFIG_NOTFOUND = "configuration file not found"
)

/////////////////////////////////////////////////////////////////////////////////////////

// Level tags written between brackets after the timestamp
var LevelNames = &LevelMap{
	"trace", //LVL_TRACE
	"debug", //LVL_DEBUG
	"info",  //LVL_INFO
	"warn",  //LVL_WARN
	"error", //LVL_ERROR
	"fatal", //LVL_FATAL
	"none",  //LVL_NONE
}

// ANSI color specs per level, empty means the level is written untinted
var LevelColors = &LevelMap{
	"34", //LVL_TRACE (blue)
	"32", //LVL_DEBUG (green)
	"",   //LVL_INFO
	"33", //LVL_WARN (yellow)
	"31", //LVL_ERROR (red)
	"31", //LVL_FATAL (red)
	"",   //LVL_NONE
}

var colorModeNames = [_COLOR_MAX_for_checks_only]string{"auto", "always", "never"}

// Generic byte normalization helper.
func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// Ensures a provided LogLevel is within the valid range, anything else is LVL_NONE
func normLevel(level LogLevel) LogLevel {
	return norm_byte(level, _LVL_MAX_for_checks_only, LVL_NONE)
}

func normColor(mode ColorMode) ColorMode {
	return norm_byte(mode, _COLOR_MAX_for_checks_only, COLOR_AUTO)
}

// String returns the lowercase level name used in log lines.
func (level LogLevel) String() string {
	return LevelNames[normLevel(level)]
}

func (mode ColorMode) String() string {
	return colorModeNames[normColor(mode)]
}

// ParseLevel converts a level name (case-insensitive) into a LogLevel.
// "disable" is accepted as an alias of "none".
func ParseLevel(s string) (LogLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "disable" {
		return LVL_NONE, nil
	}
	for level, name := range LevelNames {
		if name == s {
			return LogLevel(level), nil
		}
	}
	return LVL_NONE, errors.New(_ERROR_MESSAGE_UNKNOWN_LEVEL + ": `" + s + "`")
}

// ParseColorMode converts "auto", "always" or "never" into a ColorMode.
// An empty string is COLOR_AUTO.
func ParseColorMode(s string) (ColorMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return COLOR_AUTO, nil
	}
	for mode, name := range colorModeNames {
		if name == s {
			return ColorMode(mode), nil
		}
	}
	return COLOR_AUTO, errors.New(_ERROR_MESSAGE_UNKNOWN_COLOR + ": `" + s + "`")
}

// Converts a panic value into a compact readable string
func panicDesc(panic any) (errtext string) {
	switch v := panic.(type) {
	case string:
		errtext = ": `" + v + "`"
	case error:
		errtext = ": (error) `" + v.Error() + "`"
	default:
		errtext = " " + _ERROR_UNKNOWN_PANIC_TEXT
	}
	return errtext
}
