package conlog

import (
	"fmt"
	"io"
	"sync"

	"github.com/valyala/bytebufferpool"
)

/*
Turns a gated call into one write on one output. open() starts a statement
in a pooled buffer with the line prefix

	[color] YYYY-MM-DD HH:MM:SS [level]<space>

and returns a liveEmitter. Everything Put into the emitter is appended to
the buffer. End() adds the color reset (if a color was opened) and the line
terminator, then takes the lock only for the single Write and the flush.

The lock is never held between calls, so a panic while computing a value or
a statement that is never ended leaves other statements unaffected. An
abandoned statement writes nothing.
*/

// flusher is implemented by buffered outputs such as *bufio.Writer.
type flusher interface {
	Flush() error
}

type liveEmitter struct {
	out   OutType
	lock  sync.Locker
	buf   *bytebufferpool.ByteBuffer // nil once ended
	reset string                     // written by End, empty for untinted levels
}

// inertEmitter stands in for statements of disabled levels.
type inertEmitter struct{}

var inert Emitter = inertEmitter{}

func (inertEmitter) Put(...any) Emitter          { return inert }
func (inertEmitter) Write(p []byte) (int, error) { return len(p), nil }
func (inertEmitter) End()                        {}

// open starts a statement of an already gated level.
func (l *Logger) open(level LogLevel) Emitter {
	e := &liveEmitter{out: l.out, lock: l.lock, buf: bytebufferpool.Get()}
	tinted := l.tinted.out
	if level >= LVL_WARN {
		e.out = l.errout
		tinted = l.tinted.errout
	}
	if tinted {
		if token := colorToken(level); token != "" {
			e.buf.WriteString(token)
			e.reset = ANSI_COL_RESET
		}
	}
	e.buf.B = l.now().AppendFormat(e.buf.B, DEFAULT_TIME_FORMAT)
	e.buf.B = append(e.buf.B, " ["...)
	e.buf.B = append(e.buf.B, LevelNames[level]...)
	e.buf.B = append(e.buf.B, "] "...)
	return e
}

// Put appends the text of each value to the statement, without separators.
func (e *liveEmitter) Put(vals ...any) Emitter {
	if e.buf == nil {
		return e
	}
	for _, v := range vals {
		switch v := v.(type) {
		case string:
			e.buf.WriteString(v)
		case []byte:
			e.buf.Write(v)
		default:
			fmt.Fprint(e.buf, v)
		}
	}
	return e
}

// Write appends raw bytes to the statement so the emitter can be used with
// fmt.Fprintf and friends.
func (e *liveEmitter) Write(p []byte) (int, error) {
	if e.buf == nil {
		return 0, io.ErrClosedPipe
	}
	return e.buf.Write(p)
}

// End writes the line under the lock. Only the first call has an effect.
func (e *liveEmitter) End() {
	if e.buf == nil {
		return
	}
	buf := e.buf
	e.buf = nil
	defer bytebufferpool.Put(buf)
	buf.WriteString(e.reset)
	buf.WriteByte('\n')

	e.lock.Lock()
	defer e.lock.Unlock()
	e.out.Write(buf.B)
	if f, ok := e.out.(flusher); ok {
		f.Flush()
	}
}
