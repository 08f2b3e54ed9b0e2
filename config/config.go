// Package config loads and validates routenav settings.
//
// Settings come from a YAML file decoded over Default(); keys the file omits
// keep their default value and unknown keys are rejected. The merged Config is
// validated with struct tags (go-playground/validator) plus a few cross-field
// rules the tags cannot express.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routenav/builder"
)

// Sentinel errors.
var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrReadConfig wraps I/O and YAML decoding failures.
	ErrReadConfig = errors.New("config: cannot read configuration")
)

// validate is the shared validator instance; it caches struct metadata.
var validate = validator.New()

// Config is the root of the configuration tree.
type Config struct {
	Graph  GraphConfig  `yaml:"graph"`
	Route  RouteConfig  `yaml:"route"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// GraphConfig controls road network generation.
// Seed 0 means "seed from the clock".
type GraphConfig struct {
	Nodes   int      `yaml:"nodes" validate:"min=1,max=10000"`
	Width   float64  `yaml:"width" validate:"gt=0"`
	Height  float64  `yaml:"height" validate:"gt=0"`
	Nearest int      `yaml:"nearest" validate:"min=1"`
	Margin  float64  `yaml:"margin" validate:"min=0"`
	Seed    int64    `yaml:"seed"`
	Names   []string `yaml:"names" validate:"dive,required"`
}

// RouteConfig holds route search defaults.
type RouteConfig struct {
	Algorithm string `yaml:"algorithm" validate:"oneof=dijkstra astar"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"min=0"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// Default returns the built-in configuration: 20 named districts on an
// 800×500 canvas, 4 nearest neighbors, Dijkstra, HTTP on :8080.
func Default() Config {
	names := make([]string, len(builder.DefaultNamePool))
	copy(names, builder.DefaultNamePool)

	return Config{
		Graph: GraphConfig{
			Nodes:   20,
			Width:   800,
			Height:  500,
			Nearest: builder.DefaultNearest,
			Margin:  builder.DefaultMargin,
			Names:   names,
		},
		Route: RouteConfig{Algorithm: "dijkstra"},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads the YAML file at path over Default() and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks struct tags and cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	g := c.Graph
	if g.Width <= 2*g.Margin || g.Height <= 2*g.Margin {
		return fmt.Errorf("%w: graph: %gx%g canvas leaves no room inside margin %g",
			ErrInvalidConfig, g.Width, g.Height, g.Margin)
	}

	return nil
}

// SlogLevel maps Log.Level to a slog.Level (info when unrecognized).
func (c Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// formatValidationError reports the first failing field in a readable form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	e := verrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s: field is required", ErrInvalidConfig, field)
	case "min":
		return fmt.Errorf("%w: %s: must be at least %s", ErrInvalidConfig, field, e.Param())
	case "max":
		return fmt.Errorf("%w: %s: must not exceed %s", ErrInvalidConfig, field, e.Param())
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s]", ErrInvalidConfig, field, e.Param())
	default:
		return fmt.Errorf("%w: %s: validation failed (%s)", ErrInvalidConfig, field, e.Tag())
	}
}
