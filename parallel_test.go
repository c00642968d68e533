package conlog

import (
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncWriter makes single writes atomic, but not whole statements.
type syncWriter struct {
	mtx sync.Mutex
	FakeWriter
}

func (s *syncWriter) Write(b []byte) (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.FakeWriter.Write(b)
}

func Test_Parallel_Multithreading(t *testing.T) {
	const (
		_GOROUTINES_ = 128 // Number of simultaneous goroutines logging
		_FRAGMENTS_  = 16  // Number of Put calls per statement
	)
	lineRx := regexp.MustCompile(`^` + testStamp + ` \[info\] Thread-safe log\. (\d+)(?:\.\d+){` + strconv.Itoa(_FRAGMENTS_) + `}\.$`)

	run := func(l *Logger, kind string) {
		var wg sync.WaitGroup
		hold := make(chan int)
		for i := range _GOROUTINES_ {
			wg.Go(func() {
				for range hold { // wait until channel is closed (to start all together)
				}
				e := l.Info().Put(kind, " log. ", i)
				for j := range _FRAGMENTS_ {
					e.Put(".", j)
				}
				e.Put(".")
				e.End()
			})
		}
		close(hold)
		wg.Wait()
	}

	t.Run("serialized", func(t *testing.T) {
		l, out, _ := newTestLogger(LVL_INFO)
		ok := completesWithin(t, 30*time.Second, func() { run(l, "Thread-safe") })
		require.True(t, ok)
		lines := out.Lines()
		require.Len(t, lines, _GOROUTINES_)
		seen := map[int]bool{}
		for _, line := range lines {
			m := lineRx.FindStringSubmatch(line)
			if !assert.NotNil(t, m, "corrupted line %q", line) {
				continue
			}
			n, err := strconv.Atoi(m[1])
			assert.NoError(t, err)
			assert.False(t, seen[n], "duplicated line %d", n)
			seen[n] = true
		}
		assert.Len(t, seen, _GOROUTINES_)
		assertUnlocked(t)
	})

	t.Run("unserialized", func(t *testing.T) {
		out := &syncWriter{}
		l := New(LVL_INFO, WithOutputs(out, nil), WithColor(COLOR_NEVER), Unserialized())
		ok := completesWithin(t, 30*time.Second, func() { run(l, "Thread-unsafe") })
		require.True(t, ok)
		// lines may interleave, but every statement still ends with its own newline
		newlines := 0
		for _, b := range out.buffer {
			if b == '\n' {
				newlines++
			}
		}
		assert.Equal(t, _GOROUTINES_, newlines)
	})
}
