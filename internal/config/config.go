// Package config loads the application configuration: embedded defaults,
// then an optional YAML/JSON file, then SNOWFIELD_* environment variables,
// then command-line overrides. The merged result is checked against an
// embedded JSON schema before anything uses it.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/field"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/terminal"
)

const EnvPrefix = "SNOWFIELD"

var (
	//go:embed defaults.yaml
	defaultsYAML []byte
	//go:embed schema.json
	schemaJSON string
)

// ErrInvalid wraps every schema or range violation.
var ErrInvalid = errors.New("invalid configuration")

type LoggerConfig struct {
	Level       string `mapstructure:"level" json:"level" yaml:"level"`
	Format      string `mapstructure:"format" json:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" json:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" json:"add_source" yaml:"add_source"`
	LogFile     string `mapstructure:"log_file" json:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" json:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" json:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" json:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" json:"compress" yaml:"compress"`
}

type WindowConfig struct {
	Title      string `mapstructure:"title" json:"title" yaml:"title"`
	Width      int    `mapstructure:"width" json:"width" yaml:"width"`
	Height     int    `mapstructure:"height" json:"height" yaml:"height"`
	TPS        int    `mapstructure:"tps" json:"tps" yaml:"tps"`
	ShowPanel  bool   `mapstructure:"show_panel" json:"show_panel" yaml:"show_panel"`
	Background string `mapstructure:"background" json:"background" yaml:"background"`
}

type Config struct {
	Seed     uint64                    `mapstructure:"seed" json:"seed" yaml:"seed"`
	Field    field.Config              `mapstructure:"field" json:"field" yaml:"field"`
	Follower simulation.FollowerConfig `mapstructure:"follower" json:"follower" yaml:"follower"`
	Scatter  simulation.ScatterConfig  `mapstructure:"scatter" json:"scatter" yaml:"scatter"`
	Window   WindowConfig              `mapstructure:"window" json:"window" yaml:"window"`
	Terminal terminal.Config           `mapstructure:"terminal" json:"terminal" yaml:"terminal"`
	Logger   LoggerConfig              `mapstructure:"logger" json:"logger" yaml:"logger"`
}

// Loader builds a fresh Config on every Load so a reload never keeps values
// from a previous read.
type Loader struct {
	path      string
	overrides map[string]any
	schema    *jsonschema.Schema
	// used is the config file the last Load read, empty when none.
	used string
}

// NewLoader prepares a loader for path. An empty path looks for an optional
// snowfield.yaml in the working directory.
func NewLoader(path string) (*Loader, error) {
	sch, err := jsonschema.CompileString("schema.json", schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &Loader{path: path, overrides: map[string]any{}, schema: sch}, nil
}

// Override pins key (dotted, e.g. "field.particle_count") above every
// other source.
func (l *Loader) Override(key string, value any) {
	l.overrides[key] = value
}

// ConfigFile is the file the last Load read, empty when defaults and the
// environment were enough.
func (l *Loader) ConfigFile() string { return l.used }

// Load reads and validates the configuration.
func (l *Loader) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return nil, fmt.Errorf("read defaults: %w", err)
	}

	l.used = ""
	if l.path != "" {
		v.SetConfigFile(l.path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		l.used = v.ConfigFileUsed()
	} else {
		v.SetConfigName("snowfield")
		v.AddConfigPath(".")
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			// Config file not found; proceed with defaults/env vars
		} else {
			l.used = v.ConfigFileUsed()
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range l.overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := l.Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against the schema, then the cross-field rules the
// schema cannot express.
func (l *Loader) Validate(cfg *Config) error {
	// Validate the typed values: environment variables reach viper as
	// strings and only become numbers once unmarshalled.
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := l.schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := cfg.Field.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if cfg.Scatter.MaxSize < cfg.Scatter.MinSize {
		return fmt.Errorf("%w: scatter.max_size %v is below scatter.min_size %v",
			ErrInvalid, cfg.Scatter.MaxSize, cfg.Scatter.MinSize)
	}
	if _, err := ParseHexColor(cfg.Window.Background); err != nil {
		return fmt.Errorf("%w: window.background: %v", ErrInvalid, err)
	}
	return nil
}

// Game assembles the window host configuration.
func (c *Config) Game() *simulation.GameConfig {
	bg, err := ParseHexColor(c.Window.Background)
	if err != nil {
		bg = color.RGBA{A: 255}
	}
	return &simulation.GameConfig{
		Field:      c.Field,
		Follower:   c.Follower,
		Scatter:    c.Scatter,
		ShowPanel:  c.Window.ShowPanel,
		Background: bg,
		Seed:       c.Seed,
	}
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseHexColor parses "#rrggbb" into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("want #rrggbb, got %q", s)
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("want #rrggbb, got %q", s)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
}
