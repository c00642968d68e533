// A minimal, levelled console logging package for Go. Writes timestamped,
// optionally colorized lines to stdout (trace, debug, info) and stderr (warn,
// error, fatal), either serialized across goroutines or not.
package conlog

import (
	"fmt"
	"io"
	"os"
	"time"
)

var (
	// Default is the serialized logger: statements of concurrent goroutines
	// never interleave.
	Default = New(ActiveLevel)

	// Unsafe skips locking. Concurrent statements may interleave on the
	// streams, in exchange no goroutine ever waits for another one.
	Unsafe = New(ActiveLevel, Unserialized())
)

// New constructs a serialized logger writing to os.Stdout and os.Stderr with
// the given minimal level. Statements below level (and every statement when
// level is LVL_NONE) are inert.
//
// Usage example:
//
//	l := New(LVL_DEBUG, WithColor(COLOR_NEVER))
//	l.Debug().Put("cache size: ", n).End()
func New(level LogLevel, opts ...Option) *Logger {
	l := &Logger{
		lock:   &serialMtx,
		out:    os.Stdout,
		errout: os.Stderr,
		now:    time.Now,
		format: BraceFormat,
		level:  normLevel(level),
		color:  COLOR_AUTO,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.tinted.out = colorEnabled(l.color, l.out)
	l.tinted.errout = colorEnabled(l.color, l.errout)
	return l
}

// Sets the outputs for trace/debug/info and for warn/error/fatal. A nil
// output discards its levels.
func WithOutputs(out, errout OutType) Option {
	return func(l *Logger) {
		l.out = discardNil(out)
		l.errout = discardNil(errout)
	}
}

// Sets when color tokens are written (COLOR_AUTO by default).
func WithColor(mode ColorMode) Option {
	return func(l *Logger) {
		l.color = normColor(mode)
	}
}

// Sets the time source of line timestamps. Timestamps are always formatted
// in the location of the returned time.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// Sets the template renderer used by the Tracet..Fatalt forms (BraceFormat
// by default).
func WithFormatter(f FormatFunc) Option {
	return func(l *Logger) {
		if f != nil {
			l.format = f
		}
	}
}

// Makes the logger write without the shared lock.
func Unserialized() Option {
	return func(l *Logger) {
		l.lock = noLock{}
	}
}

func discardNil(out OutType) OutType {
	if out == nil {
		return io.Discard
	}
	return out
}

// Level returns the minimal level of the logger.
func (l *Logger) Level() LogLevel {
	return l.level
}

// Enabled reports whether statements of the level produce output.
func (l *Logger) Enabled(level LogLevel) bool {
	return level < LVL_NONE && level >= l.level
}

// Lvl opens a statement at the given level. Disabled and invalid levels
// return an inert emitter without touching outputs, clock or lock.
func (l *Logger) Lvl(level LogLevel) Emitter {
	if !l.Enabled(level) {
		return inert
	}
	return l.open(level)
}

// Emit runs fn with a statement at the given level and always ends it, even
// when fn panics. The values put before the panic are written.
func (l *Logger) Emit(level LogLevel, fn func(Emitter)) {
	e := l.Lvl(level)
	defer e.End()
	fn(e)
}

// Log writes vals as one statement at the given level.
func (l *Logger) Log(level LogLevel, vals ...any) {
	if !l.Enabled(level) {
		return
	}
	l.open(level).Put(vals...).End()
}

// Logf writes a fmt.Sprintf formatted statement at the given level. Nothing
// is formatted when the level is disabled.
func (l *Logger) Logf(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.open(level).Put(msg).End()
}

// Logt renders the template with the logger's FormatFunc and writes the
// result as one statement. A rendering error abandons the statement: nothing
// is written and the error is returned.
func (l *Logger) Logt(level LogLevel, template string, args ...any) error {
	if !l.Enabled(level) {
		return nil
	}
	msg, err := l.format(template, args...)
	if err != nil {
		return fmt.Errorf("log %s: %w", level, err)
	}
	l.open(level).Put(msg).End()
	return nil
}

/////////////////////////////////////////////////////////////////////////////////////////
/*
Level-specific entry points. Each level has four call shapes:

	l.Info().Put("a=", a, ", b=", b).End() // streaming
	l.LogInfo("a=", a, ", b=", b)          // direct multi-value
	l.Infof("a=%d, b=%d", a, b)            // fmt template
	err := l.Infot("a={}, b={}", a, b)     // brace template (FormatFunc)

All four produce the same line for equivalent content.
*/

// Trace..Fatal open a streaming statement at their level, ended by End.
func (l *Logger) Trace() Emitter { return l.Lvl(LVL_TRACE) }
func (l *Logger) Debug() Emitter { return l.Lvl(LVL_DEBUG) }
func (l *Logger) Info() Emitter  { return l.Lvl(LVL_INFO) }
func (l *Logger) Warn() Emitter  { return l.Lvl(LVL_WARN) }
func (l *Logger) Error() Emitter { return l.Lvl(LVL_ERROR) }

// Fatal only logs, the process keeps running.
func (l *Logger) Fatal() Emitter { return l.Lvl(LVL_FATAL) }

// LogTrace..LogFatal write vals as one statement at their level.
func (l *Logger) LogTrace(vals ...any) { l.Log(LVL_TRACE, vals...) }
func (l *Logger) LogDebug(vals ...any) { l.Log(LVL_DEBUG, vals...) }
func (l *Logger) LogInfo(vals ...any)  { l.Log(LVL_INFO, vals...) }
func (l *Logger) LogWarn(vals ...any)  { l.Log(LVL_WARN, vals...) }
func (l *Logger) LogError(vals ...any) { l.Log(LVL_ERROR, vals...) }
func (l *Logger) LogFatal(vals ...any) { l.Log(LVL_FATAL, vals...) }

// Tracef..Fatalf write a fmt.Sprintf formatted statement at their level.
func (l *Logger) Tracef(format string, args ...any) { l.Logf(LVL_TRACE, format, args...) }
func (l *Logger) Debugf(format string, args ...any) { l.Logf(LVL_DEBUG, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.Logf(LVL_INFO, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.Logf(LVL_WARN, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.Logf(LVL_ERROR, format, args...) }
func (l *Logger) Fatalf(format string, args ...any) { l.Logf(LVL_FATAL, format, args...) }

// Tracet..Fatalt render the template with the logger's FormatFunc and write
// it at their level. A rendering error is returned and nothing is written.
func (l *Logger) Tracet(template string, args ...any) error {
	return l.Logt(LVL_TRACE, template, args...)
}
func (l *Logger) Debugt(template string, args ...any) error {
	return l.Logt(LVL_DEBUG, template, args...)
}
func (l *Logger) Infot(template string, args ...any) error {
	return l.Logt(LVL_INFO, template, args...)
}
func (l *Logger) Warnt(template string, args ...any) error {
	return l.Logt(LVL_WARN, template, args...)
}
func (l *Logger) Errort(template string, args ...any) error {
	return l.Logt(LVL_ERROR, template, args...)
}
func (l *Logger) Fatalt(template string, args ...any) error {
	return l.Logt(LVL_FATAL, template, args...)
}
