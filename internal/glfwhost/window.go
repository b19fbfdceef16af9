package glfwhost

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"

	"github.com/leterax/go-flycam/pkg/flycam"
)

// Window handles GLFW window creation and the cursor state the camera rig drives
type Window struct {
	glfwWindow *glfw.Window
	title      string

	// Window size in screen coordinates, the unit of cursor positions
	width  int
	height int

	// Framebuffer size in pixels, used for the GL viewport only
	fbWidth  int
	fbHeight int

	cursorGrabbed bool
	cursorVisible bool
}

var _ flycam.CursorWindow = &Window{}

// NewWindow creates a new GLFW window with OpenGL context
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfwWindow.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Info().Str("version", gl.GoStr(gl.GetString(gl.VERSION))).Msg("OpenGL context ready")

	// Relative motion without pointer acceleration while the cursor is disabled
	if glfw.RawMouseMotionSupported() {
		glfwWindow.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	// On high-DPI displays the framebuffer is larger than the window
	winWidth, winHeight := glfwWindow.GetSize()
	fbWidth, fbHeight := glfwWindow.GetFramebufferSize()

	return &Window{
		glfwWindow:    glfwWindow,
		title:         title,
		width:         winWidth,
		height:        winHeight,
		fbWidth:       fbWidth,
		fbHeight:      fbHeight,
		cursorVisible: true,
	}, nil
}

// Clear clears the color and depth buffers
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// RequestClose asks the loop to exit after the current frame
func (w *Window) RequestClose() {
	w.glfwWindow.SetShouldClose(true)
}

// Close releases all resources
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the window size in screen coordinates
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// GetKeyState returns the state of the given key
func (w *Window) GetKeyState(key glfw.Key) glfw.Action {
	return w.glfwWindow.GetKey(key)
}

// OnWindowResize is called when the window is resized
func (w *Window) OnWindowResize(width, height int) {
	w.width = width
	w.height = height
}

// OnFramebufferResize is called when the framebuffer is resized
func (w *Window) OnFramebufferResize(width, height int) {
	w.fbWidth = width
	w.fbHeight = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// GLFWWindow returns the underlying GLFW window
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}

// CursorGrabbed reports whether the cursor is confined to the window
func (w *Window) CursorGrabbed() bool {
	return w.cursorGrabbed
}

// SetCursorGrabbed confines or releases the cursor
func (w *Window) SetCursorGrabbed(grabbed bool) {
	w.cursorGrabbed = grabbed
	w.applyCursorMode()
}

// CursorVisible reports whether the cursor is drawn
func (w *Window) CursorVisible() bool {
	return w.cursorVisible
}

// SetCursorVisible shows or hides the cursor
func (w *Window) SetCursorVisible(visible bool) {
	w.cursorVisible = visible
	w.applyCursorMode()
}

func (w *Window) applyCursorMode() {
	w.glfwWindow.SetInputMode(glfw.CursorMode, cursorMode(w.cursorGrabbed, w.cursorVisible))
}

// cursorMode picks the GLFW cursor mode for a grab/visibility pair.
// GLFW 3.3 can only confine a hidden cursor, so grabbing wins over visibility.
func cursorMode(grabbed, visible bool) int {
	switch {
	case grabbed:
		return glfw.CursorDisabled
	case !visible:
		return glfw.CursorHidden
	default:
		return glfw.CursorNormal
	}
}
