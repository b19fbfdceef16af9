package flycam

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidSpeed       = errors.New("movement speed must be a positive finite number")
	ErrInvalidSensitivity = errors.New("look sensitivity must be a positive finite number")
)

// MovementSettings holds the tunables shared by the movement and look controllers.
type MovementSettings struct {
	// Speed is the fly speed in world units per second.
	Speed float32 `yaml:"speed"`
	// Sensitivity scales pointer motion into degrees of rotation per pixel of display size.
	Sensitivity float32 `yaml:"sensitivity"`
}

// DefaultMovementSettings returns the built-in speed and sensitivity
func DefaultMovementSettings() MovementSettings {
	return MovementSettings{
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
	}
}

// Validate reports whether the settings can drive the controllers.
func (s MovementSettings) Validate() error {
	if !positiveFinite(s.Speed) {
		return fmt.Errorf("%w: got %v", ErrInvalidSpeed, s.Speed)
	}
	if !positiveFinite(s.Sensitivity) {
		return fmt.Errorf("%w: got %v", ErrInvalidSensitivity, s.Sensitivity)
	}
	return nil
}

func positiveFinite(v float32) bool {
	f := float64(v)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// KeyBindings maps the logical camera actions onto physical keys of type K.
// Two actions may share a key; an action whose key is never pressed is inert.
type KeyBindings[K comparable] struct {
	Forward       K `yaml:"forward"`
	Backward      K `yaml:"backward"`
	StrafeRight   K `yaml:"strafe_right"`
	StrafeLeft    K `yaml:"strafe_left"`
	Ascend        K `yaml:"ascend"`
	Descend       K `yaml:"descend"`
	ToggleCapture K `yaml:"toggle_capture"`
}

// Registry is the read-only configuration handed to the controllers each frame.
// It is populated once at startup and never written afterwards.
type Registry[K comparable] struct {
	settings MovementSettings
	bindings KeyBindings[K]
}

// NewRegistry validates settings and freezes them together with bindings.
func NewRegistry[K comparable](settings MovementSettings, bindings KeyBindings[K]) (*Registry[K], error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid movement settings: %w", err)
	}
	return &Registry[K]{
		settings: settings,
		bindings: bindings,
	}, nil
}

// Settings returns a copy of the movement settings
func (r *Registry[K]) Settings() MovementSettings {
	return r.settings
}

// Bindings returns a copy of the key bindings
func (r *Registry[K]) Bindings() KeyBindings[K] {
	return r.bindings
}
