package conlog

/*
Defines the core data types used by the logger:
  - basetype and the LogLevel enum built on it
  - Emitter: the handle of one in-progress log statement
  - Logger: a stream pair plus the locking policy shared by its statements
  - LevelMap: per-level string tables (tags and colors)

Package-wide constants, tables and helpers live in common.go.
*/

import (
	"io"
	"sync"
	"time"
)

type basetype byte // basetype is the underlying byte-sized representation used for enums

type LogLevel basetype // Logger levels (alias for byte)
type ColorMode basetype

type OutType io.Writer // Logger outputs (alias for io.Writer)

// FormatFunc renders a template with arguments into the message text of one
// statement. A non-nil error abandons the statement.
type FormatFunc func(template string, args ...any) (string, error)

// Emitter is one in-progress log statement bound to a single output.
//
// Values are appended in call order without separators and the line is
// written by End in a single output write (further End calls are ignored).
// A statement that is never ended writes nothing.
type Emitter interface {
	io.Writer
	Put(vals ...any) Emitter
	End()
}

// Logger writes statements of levels below WARN to out and the rest to errout.
//
// The threshold level, outputs, colors and locking policy are fixed when the
// logger is constructed (see New).
type Logger struct {
	lock   sync.Locker // serialMtx for serialized loggers, noLock otherwise
	out    OutType     // trace, debug, info
	errout OutType     // warn, error, fatal
	now    func() time.Time
	format FormatFunc // used by the *t forms
	level  LogLevel   // minimal level to emit
	color  ColorMode
	tinted struct {
		out    bool // colors are written to out
		errout bool // colors are written to errout
	}
}

// Option configures a Logger during New.
type Option func(*Logger)

// LevelMap is a fixed-size array with one entry per log level. Used for
// level names and colors.
type LevelMap [_LVL_MAX_for_checks_only]string
