package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-flycam/pkg/flycam"
)

type keyStater interface {
	GetKeyState(key glfw.Key) glfw.Action
}

// heldKeys samples key levels straight from GLFW for the current frame
func heldKeys(window keyStater) flycam.HeldFunc[glfw.Key] {
	return func(key glfw.Key) bool {
		return window.GetKeyState(key) == glfw.Press
	}
}

// pointerTracker turns absolute cursor positions into motion deltas.
type pointerTracker struct {
	motion *flycam.MotionLog

	lastX      float64
	lastY      float64
	firstMouse bool
}

func newPointerTracker(motion *flycam.MotionLog) *pointerTracker {
	return &pointerTracker{
		motion:     motion,
		firstMouse: true,
	}
}

// HandleMove records the delta since the previous position. The first position after
// a reset only establishes the origin, so switching cursor modes does not jump the view.
func (p *pointerTracker) HandleMove(xpos, ypos float64) {
	if p.firstMouse {
		p.lastX = xpos
		p.lastY = ypos
		p.firstMouse = false
		return
	}

	dx := xpos - p.lastX
	dy := ypos - p.lastY
	p.lastX = xpos
	p.lastY = ypos

	if dx == 0 && dy == 0 {
		return
	}
	p.motion.Push(flycam.MotionEvent{DX: float32(dx), DY: float32(dy)})
}

// Reset forgets the last cursor position
func (p *pointerTracker) Reset() {
	p.firstMouse = true
}
