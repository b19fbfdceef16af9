package flycam

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog"
)

type testKey string

var testBindings = KeyBindings[testKey]{
	Forward:       "w",
	Backward:      "s",
	StrafeRight:   "d",
	StrafeLeft:    "a",
	Ascend:        "space",
	Descend:       "shift",
	ToggleCapture: "c",
}

type fakeWindow struct {
	width, height int
	grabbed       bool
	visible       bool
	cursorWrites  int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{width: 1280, height: 720, visible: true}
}

func (w *fakeWindow) Size() (int, int)    { return w.width, w.height }
func (w *fakeWindow) CursorGrabbed() bool { return w.grabbed }
func (w *fakeWindow) CursorVisible() bool { return w.visible }
func (w *fakeWindow) SetCursorGrabbed(g bool) {
	w.grabbed = g
	w.cursorWrites++
}
func (w *fakeWindow) SetCursorVisible(v bool) {
	w.visible = v
	w.cursorWrites++
}

func bufferLogger() (zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return zerolog.New(buf), buf
}

func countWarnings(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), `"level":"warn"`)
}
