package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leterax/go-flycam/pkg/flycam"
)

// Default is the built-in configuration. User files are layered on top of it.
//
//go:embed default.yaml
var Default []byte

// Window describes the host window
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Config is the startup configuration of the camera and its window.
// Key bindings are kept as names; the input backend resolves them.
type Config struct {
	Window   Window                     `yaml:"window"`
	Movement flycam.MovementSettings    `yaml:"movement"`
	Bindings flycam.KeyBindings[string] `yaml:"bindings"`
}

// Validate checks the values a YAML file cannot constrain by type
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if err := c.Movement.Validate(); err != nil {
		return err
	}

	names := map[string]string{
		"forward":        c.Bindings.Forward,
		"backward":       c.Bindings.Backward,
		"strafe_right":   c.Bindings.StrafeRight,
		"strafe_left":    c.Bindings.StrafeLeft,
		"ascend":         c.Bindings.Ascend,
		"descend":        c.Bindings.Descend,
		"toggle_capture": c.Bindings.ToggleCapture,
	}
	for action, name := range names {
		if name == "" {
			return fmt.Errorf("binding %s is empty", action)
		}
	}
	return nil
}

// Load returns the default configuration overlaid with the file at path.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Parse(nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open config file %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes the defaults and then r, if non-nil, and validates the result.
// Keys missing from r keep their default values; unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	if err := decode(bytes.NewReader(Default), cfg); err != nil {
		return nil, fmt.Errorf("invalid default config: %w", err)
	}

	if r != nil {
		if err := decode(r, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("could not decode yaml: %w", err)
	}
	return nil
}
