package flycam

import "reflect"

// Viewport exposes the drawable size of the primary window.
type Viewport interface {
	// Size returns the window client area in pixels
	Size() (width, height int)
}

// CursorWindow is the platform window surface the capture controller drives.
// Grabbing confines the pointer to the window and reports unbounded relative motion.
type CursorWindow interface {
	Viewport

	CursorGrabbed() bool
	SetCursorGrabbed(grabbed bool)

	CursorVisible() bool
	SetCursorVisible(visible bool)
}

// scaleFactor is the smaller window dimension, so look speed is independent of aspect ratio.
func scaleFactor(v Viewport) float32 {
	w, h := v.Size()
	return float32(min(w, h))
}

// windowMissing reports whether w is nil or an interface holding a nil pointer.
func windowMissing(w Viewport) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
