// Package logrsink lets code written against go-logr/logr log through a
// conlog.Logger.
//
// Verbosity maps onto conlog levels as V(0) info, V(1) debug, V(2) and above
// trace; Error is logged at error level. Names are joined with "/" and
// prefixed to the message, key/value pairs follow it as plain key=value text:
//
//	2024-05-01 10:00:00 [info] controller/sync: reconciled objects=3
package logrsink

import (
	"github.com/abyssdigger/conlog"
	"github.com/go-logr/logr"
)

// Sink implements logr.LogSink on top of a conlog.Logger.
type Sink struct {
	logger *conlog.Logger
	name   string
	values []any
}

var _ logr.LogSink = (*Sink)(nil)

// New returns a logr.Logger writing through l.
func New(l *conlog.Logger) logr.Logger {
	return logr.New(NewSink(l))
}

// NewSink returns a sink writing through l, conlog.Default when l is nil.
func NewSink(l *conlog.Logger) *Sink {
	if l == nil {
		l = conlog.Default
	}
	return &Sink{logger: l}
}

func (s *Sink) Init(logr.RuntimeInfo) {}

func (s *Sink) Enabled(level int) bool {
	return s.logger.Enabled(verbosityLevel(level))
}

func (s *Sink) Info(level int, msg string, keysAndValues ...any) {
	s.write(verbosityLevel(level), msg, nil, keysAndValues)
}

func (s *Sink) Error(err error, msg string, keysAndValues ...any) {
	s.write(conlog.LVL_ERROR, msg, err, keysAndValues)
}

func (s *Sink) WithValues(keysAndValues ...any) logr.LogSink {
	c := *s
	c.values = append(append([]any(nil), s.values...), keysAndValues...)
	return &c
}

func (s *Sink) WithName(name string) logr.LogSink {
	c := *s
	if c.name == "" {
		c.name = name
	} else {
		c.name = s.name + "/" + name
	}
	return &c
}

func verbosityLevel(v int) conlog.LogLevel {
	switch {
	case v <= 0:
		return conlog.LVL_INFO
	case v == 1:
		return conlog.LVL_DEBUG
	default:
		return conlog.LVL_TRACE
	}
}

func (s *Sink) write(level conlog.LogLevel, msg string, err error, kvs []any) {
	if !s.logger.Enabled(level) {
		return
	}
	s.logger.Emit(level, func(e conlog.Emitter) {
		if s.name != "" {
			e.Put(s.name, ": ")
		}
		e.Put(msg)
		if err != nil {
			e.Put(" error=", err.Error())
		}
		putPairs(e, s.values)
		putPairs(e, kvs)
	})
}

// putPairs writes " key=value" for every pair, a dangling key gets
// "(MISSING)" as its value.
func putPairs(e conlog.Emitter, kvs []any) {
	for i := 0; i < len(kvs); i += 2 {
		e.Put(" ", kvs[i], "=")
		if i+1 < len(kvs) {
			e.Put(kvs[i+1])
		} else {
			e.Put("(MISSING)")
		}
	}
}
