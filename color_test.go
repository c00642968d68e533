package conlog

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_colorEnabled(t *testing.T) {
	t.Run("forced", func(t *testing.T) {
		assert.True(t, colorEnabled(COLOR_ALWAYS, &FakeWriter{}))
		assert.False(t, colorEnabled(COLOR_NEVER, &FakeWriter{}))
		assert.False(t, colorEnabled(COLOR_NEVER, os.Stdout))
	})
	t.Run("auto_not_a_file", func(t *testing.T) {
		assert.False(t, colorEnabled(COLOR_AUTO, &FakeWriter{}))
		assert.False(t, colorEnabled(ColorMode(77), &FakeWriter{}))
	})
	t.Run("auto_not_a_terminal", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		if assert.NoError(t, err) {
			defer f.Close()
			assert.False(t, colorEnabled(COLOR_AUTO, f))
		}
	})
	t.Run("auto_no_color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, colorEnabled(COLOR_AUTO, os.Stdout))
		assert.False(t, colorEnabled(COLOR_AUTO, os.Stderr))
		assert.True(t, colorEnabled(COLOR_ALWAYS, os.Stdout))
	})
}

func Test_New_ColorPerOutput(t *testing.T) {
	l := New(LVL_INFO, WithOutputs(&FakeWriter{}, &FakeWriter{}), WithColor(COLOR_ALWAYS))
	assert.True(t, l.tinted.out)
	assert.True(t, l.tinted.errout)
	l = New(LVL_INFO, WithOutputs(&FakeWriter{}, &FakeWriter{}))
	assert.False(t, l.tinted.out)
	assert.False(t, l.tinted.errout)
}
