package conlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		wants Config
		err   string
	}{
		{"empty", "", Config{}, ""},
		{"full", "level = \"debug\"\ncolor = \"never\"\nunserialized = true\n", Config{"debug", "never", true}, ""},
		{"case", "level = \" WARN \"\ncolor = \"Always\"\n", Config{"warn", "always", false}, ""},
		{"disable", "level = \"disable\"\n", Config{Level: "disable"}, ""},
		{"bad_level", "level = \"verbose\"\n", Config{}, "level: must be one of"},
		{"bad_color", "color = \"rainbow\"\n", Config{}, "color: must be one of"},
		{"bad_toml", "level = \"debug\n", Config{}, "line 1"},
		{"bad_type", "unserialized = \"yes\"\n", Config{}, "failed to parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.data))
			if tt.err != "" {
				assert.ErrorContains(t, err, tt.err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wants, *cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conlog.toml")
	require.NoError(t, os.WriteFile(path, []byte("level = \"trace\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Level)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, _ERROR_MESSAGE_CONFIG_NOTFOUND)
}

func TestNewFromConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		l, err := NewFromConfig(&Config{})
		require.NoError(t, err)
		assert.Equal(t, ActiveLevel, l.Level())
		assert.Equal(t, COLOR_AUTO, l.color)
		assert.True(t, l.Serialized())
	})
	t.Run("configured", func(t *testing.T) {
		out := &FakeWriter{}
		l, err := NewFromConfig(&Config{Level: "trace", Color: "always", Unserialized: true}, WithOutputs(out, nil))
		require.NoError(t, err)
		assert.Equal(t, LVL_TRACE, l.Level())
		assert.False(t, l.Serialized())
		l.LogTrace("x")
		assert.Contains(t, out.String(), "\033[34m")
	})
	t.Run("names_normalized", func(t *testing.T) {
		cfg := &Config{Level: " DEBUG", Color: "Never "}
		l, err := NewFromConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, LVL_DEBUG, l.Level())
		assert.Equal(t, COLOR_NEVER, l.color)
		assert.Equal(t, Config{Level: "debug", Color: "never"}, *cfg)
	})
	t.Run("disable", func(t *testing.T) {
		l, err := NewFromConfig(&Config{Level: "disable"})
		require.NoError(t, err)
		assert.Equal(t, LVL_NONE, l.Level())
	})
	t.Run("options_override", func(t *testing.T) {
		l, err := NewFromConfig(&Config{Color: "always"}, WithColor(COLOR_NEVER))
		require.NoError(t, err)
		assert.Equal(t, COLOR_NEVER, l.color)
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := NewFromConfig(&Config{Level: "loud"})
		assert.ErrorContains(t, err, "invalid config")
		_, err = NewFromConfig(nil)
		assert.ErrorContains(t, err, _ERROR_MESSAGE_NIL_CONFIG)
	})
}
