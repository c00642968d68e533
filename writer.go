package conlog

import (
	"bytes"
	"errors"
	"io"
)

/*********************************************************************************
io.Writer interface implementation

Writer(level) returns an io.Writer whose every Write is one complete
statement at that level, so other loggers can be routed through conlog:

	std := log.New(conlog.Default.Writer(conlog.LVL_WARN), "", 0)
	std.Println("disk low") // 2024-05-01 10:00:00 [warn] disk low

One trailing newline is trimmed from each payload because the statement
adds its own.
*/

type levelWriter struct {
	logger *Logger
	level  LogLevel
}

// Writer returns an io.Writer that logs each payload at the given level.
func (l *Logger) Writer(level LogLevel) io.Writer {
	return &levelWriter{logger: l, level: normLevel(level)}
}

// Write implements io.Writer. It returns len(p) for written and for filtered
// payloads. A panic of the underlying output is reported as an error after
// the statement has been ended.
func (w *levelWriter) Write(p []byte) (n int, err error) {
	if p == nil || !w.logger.Enabled(w.level) {
		return len(p), nil
	}
	defer func() {
		if r := recover(); r != nil {
			n = 0
			err = errors.New("panic writing log" + panicDesc(r))
		}
	}()
	w.logger.open(w.level).Put(bytes.TrimSuffix(p, []byte{'\n'})).End()
	return len(p), nil
}
