package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/leterax/go-flycam/pkg/flycam"
)

// Clear colors for the two capture states, so the mode is visible without an overlay
var (
	capturedClearColor = mgl32.Vec4{0.05, 0.05, 0.1, 1.0}
	freeClearColor     = mgl32.Vec4{0.12, 0.1, 0.05, 1.0}
)

// Host owns the window and feeds it to the camera rig once per frame
type Host struct {
	window  *Window
	rig     *flycam.Rig[glfw.Key]
	motion  *flycam.MotionLog
	pointer *pointerTracker
	log     zerolog.Logger

	// Timing
	lastFrameTime float64
	deltaTime     float32
	frames        uint64
}

// NewHost attaches rig to window and installs the input callbacks
func NewHost(window *Window, rig *flycam.Rig[glfw.Key], logger zerolog.Logger) *Host {
	motion := flycam.NewMotionLog()
	h := &Host{
		window:  window,
		rig:     rig,
		motion:  motion,
		pointer: newPointerTracker(motion),
		log:     logger.With().Str("component", "host").Logger(),
	}

	window.GLFWWindow().SetKeyCallback(h.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(h.cursorPosCallback)
	window.GLFWWindow().SetSizeCallback(h.sizeCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(h.framebufferSizeCallback)

	return h
}

// Run starts the main loop and returns once the window is closed
func (h *Host) Run() {
	h.rig.Startup(h.window)
	h.lastFrameTime = glfw.GetTime()

	for !h.window.ShouldClose() {
		currentTime := glfw.GetTime()
		h.deltaTime = float32(currentTime - h.lastFrameTime)
		h.lastFrameTime = currentTime

		// New frame of motion events, then gather this frame's input
		h.motion.Update()
		h.window.PollEvents()

		res := h.rig.Update(flycam.InputSnapshot[glfw.Key]{
			Held:         heldKeys(h.window),
			Motion:       h.motion,
			DeltaSeconds: h.deltaTime,
		}, h.window)
		if res.Toggled {
			h.pointer.Reset()
			h.log.Info().Stringer("state", res.State).Msg("cursor capture toggled")
		}

		h.render(res.State)
		h.window.SwapBuffers()
		h.frames++
	}

	cam := h.rig.Camera()
	h.log.Info().
		Uint64("frames", h.frames).
		Floats32("position", cam.Position[:]).
		Float32("yaw", cam.Yaw).
		Float32("pitch", cam.Pitch).
		Msg("window closed")
}

// render clears the frame. Scene drawing belongs to the embedding application.
func (h *Host) render(state flycam.CaptureState) {
	if state == flycam.Captured {
		h.window.Clear(capturedClearColor)
	} else {
		h.window.Clear(freeClearColor)
	}
}

// Cleanup frees all resources
func (h *Host) Cleanup() {
	h.window.Close()
}

// Callback functions
func (h *Host) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == KeyQuit && action == glfw.Press {
		h.window.RequestClose()
	}
}

func (h *Host) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	h.pointer.HandleMove(xpos, ypos)
}

func (h *Host) sizeCallback(_ *glfw.Window, width, height int) {
	h.window.OnWindowResize(width, height)
}

func (h *Host) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	h.window.OnFramebufferResize(width, height)
}
