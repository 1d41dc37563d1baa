// Package config loads the opsdeck YAML configuration: render tunables
// for the graph explorer and the node color scheme.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-opsdeck/pkg/graphview"
)

// ErrMissingDefaultSwatch is returned when the color scheme lacks the
// required "default" entry
var ErrMissingDefaultSwatch = errors.New(`color scheme must contain a "default" entry`)

// Swatch configures the draw colors for one node category
type Swatch struct {
	Primary string `yaml:"primary" validate:"required,hexcolor"`
	Glow    string `yaml:"glow" validate:"required,hexcolor"`
	Label   string `yaml:"label" validate:"required,hexcolor"`
}

// Config is the full application configuration
type Config struct {
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	FPS      int    `yaml:"fps" validate:"min=1,max=120"`

	Fullscreen    bool `yaml:"fullscreen"`
	ShowAllLabels bool `yaml:"show_all_labels"`
	ThreeD        bool `yaml:"three_d"`

	DragSensitivity float64 `yaml:"drag_sensitivity" validate:"gt=0"`
	AutoRotateStep  float64 `yaml:"auto_rotate_step" validate:"gte=0"`
	HitThreshold    float64 `yaml:"hit_threshold" validate:"gt=0"`
	BaseRadius      float64 `yaml:"base_radius" validate:"gt=0"`

	Colors map[string]Swatch `yaml:"colors" validate:"dive"`
}

// Default returns the built-in configuration
func Default() Config {
	colors := make(map[string]Swatch, len(graphview.DefaultColorScheme))
	for category, sw := range graphview.DefaultColorScheme {
		colors[category] = Swatch{Primary: sw.Primary, Glow: sw.Glow, Label: sw.Label}
	}
	return Config{
		LogLevel:        "info",
		FPS:             30,
		ThreeD:          true,
		DragSensitivity: graphview.DefaultDragSensitivity,
		AutoRotateStep:  graphview.DefaultAutoRotateStep,
		HitThreshold:    graphview.DefaultHitThreshold,
		BaseRadius:      graphview.DefaultBaseRadius,
		Colors:          colors,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field constraints and the color scheme invariant
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if _, ok := c.Colors["default"]; !ok {
		return ErrMissingDefaultSwatch
	}
	return nil
}

// ColorScheme converts the configured colors for the graph engine
func (c Config) ColorScheme() graphview.ColorScheme {
	scheme := make(graphview.ColorScheme, len(c.Colors))
	for category, sw := range c.Colors {
		scheme[category] = graphview.Swatch{Primary: sw.Primary, Glow: sw.Glow, Label: sw.Label}
	}
	return scheme
}
