package conlog

import (
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Logger_Writer(t *testing.T) {
	t.Run("std_log", func(t *testing.T) {
		l, out, errout := newTestLogger(LVL_INFO)
		std := log.New(l.Writer(LVL_WARN), "", 0)
		std.Println("disk low")
		std.Printf("usage %d%%", 93)
		assert.Empty(t, out.buffer)
		assert.Equal(t, []string{testStamp + " [warn] disk low", testStamp + " [warn] usage 93%"}, errout.Lines())
	})
	t.Run("one_newline_trimmed", func(t *testing.T) {
		l, out, _ := newTestLogger(LVL_INFO)
		n, err := fmt.Fprint(l.Writer(LVL_INFO), "two\n\n")
		assert.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, testStamp+" [info] two\n\n", out.String())
	})
	t.Run("filtered", func(t *testing.T) {
		l, out, errout := newTestLogger(LVL_ERROR)
		n, err := l.Writer(LVL_INFO).Write([]byte(testlogstr))
		assert.NoError(t, err)
		assert.Equal(t, len(testlogstr), n)
		n, err = l.Writer(LogLevel(100)).Write([]byte(testlogstr))
		assert.NoError(t, err)
		assert.Equal(t, len(testlogstr), n)
		assert.Empty(t, out.buffer)
		assert.Empty(t, errout.buffer)
	})
	t.Run("nil_payload", func(t *testing.T) {
		l, out, _ := newTestLogger(LVL_INFO)
		n, err := l.Writer(LVL_INFO).Write(nil)
		assert.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, out.buffer)
	})
	t.Run("panicking_output", func(t *testing.T) {
		l := New(LVL_INFO, WithOutputs(&PanicWriter{}, nil))
		n, err := l.Writer(LVL_INFO).Write([]byte(testlogstr))
		assert.Zero(t, n)
		assert.ErrorContains(t, err, "`"+panicStr+"`")
		assertUnlocked(t)
	})
}
