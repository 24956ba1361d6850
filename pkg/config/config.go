// Package config loads viewer configuration from YAML, with validated
// fields and engine defaults for anything omitted.
package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/memexia/graphview/pkg/controls"
	"github.com/memexia/graphview/pkg/layout"
)

var validate = validator.New()

// Config is the root viewer configuration.
type Config struct {
	Layout   LayoutConfig   `yaml:"layout"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`

	// FPS is the frame loop rate. Terminal rendering rarely benefits
	// from more than 30.
	FPS int `yaml:"fps" validate:"omitempty,min=1,max=120"`

	// Seed fixes the random source; 0 uses entropy.
	Seed int64 `yaml:"seed"`

	// Stars is the size of the background point cloud; negative
	// disables it.
	Stars int `yaml:"stars"`
}

// LayoutConfig mirrors layout.Config in YAML form.
type LayoutConfig struct {
	Iterations int     `yaml:"iterations" validate:"omitempty,min=1"`
	Repulsion  float64 `yaml:"repulsion" validate:"omitempty,gt=0"`
	Attraction float64 `yaml:"attraction" validate:"omitempty,gt=0"`
	Radius     float64 `yaml:"radius" validate:"omitempty,gt=0"`
	Jitter     float64 `yaml:"jitter" validate:"omitempty,gte=0"`
}

// CameraConfig is the perspective projection setup.
type CameraConfig struct {
	FOVDegrees float64 `yaml:"fov_degrees" validate:"omitempty,min=10,max=170"`
	Near       float64 `yaml:"near" validate:"omitempty,gt=0"`
	Far        float64 `yaml:"far" validate:"omitempty,gt=0"`
}

// ControlsConfig mirrors controls.Config in YAML form. KeyHoldMS is
// plain milliseconds; yaml.v3 has no native duration decoding.
type ControlsConfig struct {
	HitRadius   float64 `yaml:"hit_radius" validate:"omitempty,gt=0"`
	RotateSpeed float64 `yaml:"rotate_speed" validate:"omitempty,gt=0"`
	MoveSpeed   float64 `yaml:"move_speed" validate:"omitempty,gt=0"`
	Damping     float64 `yaml:"damping" validate:"omitempty,gt=0"`
	KeyHoldMS   int     `yaml:"key_hold_ms" validate:"omitempty,min=16"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{FPS: 30, Stars: 120}
}

// Load reads and validates a YAML config file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.FPS == 0 {
		cfg.FPS = 30
	}
	return cfg, nil
}

// LayoutConfig converts to the layout package's config; zero fields
// fall through to the layout defaults.
func (c Config) LayoutConfig() layout.Config {
	return layout.Config{
		Iterations: c.Layout.Iterations,
		Repulsion:  c.Layout.Repulsion,
		Attraction: c.Layout.Attraction,
		Radius:     c.Layout.Radius,
		Jitter:     c.Layout.Jitter,
	}
}

// ControlsConfig converts to the controls package's config.
func (c Config) ControlsConfig() controls.Config {
	return controls.Config{
		HitRadius:   c.Controls.HitRadius,
		RotateSpeed: c.Controls.RotateSpeed,
		MoveSpeed:   c.Controls.MoveSpeed,
		Damping:     c.Controls.Damping,
		KeyHold:     time.Duration(c.Controls.KeyHoldMS) * time.Millisecond,
	}
}

// FOV returns the configured field of view in radians, or 0 when
// unset.
func (c Config) FOV() float64 {
	return c.Camera.FOVDegrees * math.Pi / 180
}

// FrameInterval returns the frame loop tick interval.
func (c Config) FrameInterval() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}
