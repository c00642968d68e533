package conlog

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config is the startup-time counterpart of the build tags, read from TOML:
//
//	level = "debug"      # disable|none|trace|debug|info|warn|error|fatal, empty for ActiveLevel
//	color = "never"      # auto|always|never, empty for auto
//	unserialized = false
type Config struct {
	Level        string `toml:"level" validate:"omitempty,oneof=disable none trace debug info warn error fatal"`
	Color        string `toml:"color" validate:"omitempty,oneof=auto always never"`
	Unserialized bool   `toml:"unserialized"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their toml names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ParseConfig decodes and validates a TOML configuration. Names are
// case-insensitive.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse config at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads and parses a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %s", _ERROR_MESSAGE_CONFIG_NOTFOUND, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(content)
}

// Validate normalizes the names to lower case and checks the field values.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New(_ERROR_MESSAGE_NIL_CONFIG)
	}
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: must be one of: %s (got `%v`)", e.Field(), e.Param(), e.Value()))
		}
		return errors.New("invalid config: " + strings.Join(msgs, "; "))
	}
	return err
}

// NewFromConfig constructs a logger from a validated configuration. The
// options are applied after the configured ones.
func NewFromConfig(cfg *Config, opts ...Option) (*Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level := ActiveLevel
	if cfg.Level != "" {
		parsed, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	mode, err := ParseColorMode(cfg.Color)
	if err != nil {
		return nil, err
	}
	all := []Option{WithColor(mode)}
	if cfg.Unserialized {
		all = append(all, Unserialized())
	}
	return New(level, append(all, opts...)...), nil
}
