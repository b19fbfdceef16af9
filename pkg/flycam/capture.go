package flycam

import (
	"github.com/rs/zerolog"
)

// CaptureState says whether pointer and keyboard input drive the camera.
type CaptureState int

const (
	// Free leaves the pointer to other UI; the camera ignores input.
	Free CaptureState = iota
	// Captured hides and grabs the pointer; the camera follows input.
	Captured
)

func (s CaptureState) String() string {
	switch s {
	case Free:
		return "free"
	case Captured:
		return "captured"
	default:
		return "unknown"
	}
}

// CursorCaptureController toggles pointer capture on a rising edge of the bound key.
type CursorCaptureController[K comparable] struct {
	state       CaptureState
	initialized bool

	// toggle key level seen on the previous frame
	wasHeld bool

	log zerolog.Logger
}

// NewCursorCaptureController creates a controller in the Captured state.
// Visuals are not applied until Initialize.
func NewCursorCaptureController[K comparable](logger zerolog.Logger) *CursorCaptureController[K] {
	return &CursorCaptureController[K]{
		state: Captured,
		log:   logger.With().Str("component", "cursor_capture").Logger(),
	}
}

// State returns the current capture state
func (c *CursorCaptureController[K]) State() CaptureState {
	return c.state
}

// Initialize enters Captured and hides and grabs the cursor. Only the first call
// has any effect.
func (c *CursorCaptureController[K]) Initialize(window CursorWindow) {
	if c.initialized {
		return
	}
	c.initialized = true
	c.state = Captured

	if windowMissing(window) {
		c.log.Warn().Msg("primary window unavailable, cursor visuals not applied")
		return
	}
	applyCursor(window, c.state)
}

// Update flips the state when the toggle key goes from released to held and
// reports whether it did. Holding the key across frames toggles once.
func (c *CursorCaptureController[K]) Update(held HeldKeys[K], bindings KeyBindings[K], window CursorWindow) bool {
	return c.update(held, bindings, window, true)
}

func (c *CursorCaptureController[K]) update(held HeldKeys[K], bindings KeyBindings[K], window CursorWindow, warn bool) bool {
	isHeld := held != nil && held.Pressed(bindings.ToggleCapture)
	rising := isHeld && !c.wasHeld
	c.wasHeld = isHeld

	if windowMissing(window) {
		if warn {
			c.log.Warn().Msg("primary window unavailable, skipping cursor capture update")
		}
		return false
	}
	if !rising {
		return false
	}

	if c.state == Captured {
		c.state = Free
	} else {
		c.state = Captured
	}
	applyCursor(window, c.state)

	c.log.Debug().Stringer("state", c.state).Msg("cursor capture toggled")
	return true
}

func applyCursor(window CursorWindow, state CaptureState) {
	switch state {
	case Captured:
		window.SetCursorGrabbed(true)
		window.SetCursorVisible(false)
	case Free:
		window.SetCursorGrabbed(false)
		window.SetCursorVisible(true)
	}
}
