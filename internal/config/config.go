// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads the swrdemo configuration file.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default:
//
//	window:
//	  width: 1024
//	  height: 768
//	scene: Cube
//	log:
//	  level: debug
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/swr/surface"
)

// Config is the demo configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Scene    string         `yaml:"scene"`
	Device   DeviceConfig   `yaml:"device"`
	Headless HeadlessConfig `yaml:"headless"`
	Log      LogConfig      `yaml:"log"`
}

// WindowConfig configures the demo window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// TPS is the number of updates per second.
	TPS int `yaml:"tps"`
}

// DeviceConfig configures the rendering device.
type DeviceConfig struct {
	ConstantBufferSlots int `yaml:"constant_buffer_slots"`
}

// HeadlessConfig configures rendering without a window.
type HeadlessConfig struct {
	// Frames is the number of frames rendered before writing Output.
	Frames int `yaml:"frames"`
	// FrameTime is the simulated time between frames.
	FrameTime Duration `yaml:"frame_time"`
	// Surface names the surface backend presented to.
	Surface string `yaml:"surface"`
	Output  string `yaml:"output"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level Level `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Software Renderer",
			Width:  800,
			Height: 600,
			TPS:    60,
		},
		Scene: "Triangle",
		Device: DeviceConfig{
			ConstantBufferSlots: 8,
		},
		Headless: HeadlessConfig{
			Frames:    1,
			FrameTime: Duration(time.Second / 60),
			Surface:   "image",
			Output:    "frame.png",
		},
		Log: LogConfig{
			Level: Level(slog.LevelInfo),
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: window.tps %d must be positive", ErrInvalid, c.Window.TPS)
	case c.Scene == "":
		return fmt.Errorf("%w: scene is empty", ErrInvalid)
	case c.Device.ConstantBufferSlots <= 0:
		return fmt.Errorf("%w: device.constant_buffer_slots %d must be positive", ErrInvalid, c.Device.ConstantBufferSlots)
	case c.Headless.Frames <= 0:
		return fmt.Errorf("%w: headless.frames %d must be positive", ErrInvalid, c.Headless.Frames)
	case c.Headless.FrameTime < 0:
		return fmt.Errorf("%w: headless.frame_time %v is negative", ErrInvalid, c.Headless.FrameTime.Duration())
	case c.Headless.Surface == "":
		return fmt.Errorf("%w: headless.surface is empty", ErrInvalid)
	}
	if _, ok := surface.Lookup(c.Headless.Surface); !ok {
		return fmt.Errorf("%w: headless.surface %q is not a surface backend", ErrInvalid, c.Headless.Surface)
	}
	return nil
}

// Duration wraps time.Duration for YAML unmarshaling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Level wraps slog.Level for YAML unmarshaling from names such as "debug"
// or "warn+2".
type Level slog.Level

// UnmarshalYAML implements yaml.Unmarshaler for Level.
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", s, err)
	}
	*l = Level(lvl)
	return nil
}

// Level returns the slog.Level value.
func (l Level) Level() slog.Level {
	return slog.Level(l)
}
