package glfwhost

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-flycam/pkg/flycam"
)

func TestParseKey(t *testing.T) {
	cases := map[string]glfw.Key{
		"W":           glfw.KeyW,
		"a":           glfw.KeyA,
		"z":           glfw.KeyZ,
		" Space ":     glfw.KeySpace,
		"LeftShift":   glfw.KeyLeftShift,
		"leftshift":   glfw.KeyLeftShift,
		"0":           glfw.Key0,
		"9":           glfw.Key9,
		"F12":         glfw.KeyF12,
		"RightAlt":    glfw.KeyRightAlt,
		"GraveAccent": glfw.KeyGraveAccent,
	}
	for name, want := range cases {
		got, err := ParseKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseKey("hyper")
	assert.Error(t, err)
}

func TestKeyNamesSorted(t *testing.T) {
	names := KeyNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "leftshift")
	assert.Contains(t, names, "q")
}

func TestResolveBindings(t *testing.T) {
	bindings, err := ResolveBindings(flycam.KeyBindings[string]{
		Forward:       "W",
		Backward:      "S",
		StrafeRight:   "D",
		StrafeLeft:    "A",
		Ascend:        "Space",
		Descend:       "LeftShift",
		ToggleCapture: "C",
	})
	require.NoError(t, err)

	assert.Equal(t, flycam.KeyBindings[glfw.Key]{
		Forward:       glfw.KeyW,
		Backward:      glfw.KeyS,
		StrafeRight:   glfw.KeyD,
		StrafeLeft:    glfw.KeyA,
		Ascend:        glfw.KeySpace,
		Descend:       glfw.KeyLeftShift,
		ToggleCapture: glfw.KeyC,
	}, bindings)
}

func TestResolveBindingsAllowsSharedKeys(t *testing.T) {
	bindings, err := ResolveBindings(flycam.KeyBindings[string]{
		Forward: "W", Backward: "W", StrafeRight: "W", StrafeLeft: "W",
		Ascend: "W", Descend: "W", ToggleCapture: "W",
	})
	require.NoError(t, err)
	assert.Equal(t, glfw.KeyW, bindings.ToggleCapture)
}

func TestResolveBindingsErrors(t *testing.T) {
	valid := flycam.KeyBindings[string]{
		Forward: "W", Backward: "S", StrafeRight: "D", StrafeLeft: "A",
		Ascend: "Space", Descend: "LeftShift", ToggleCapture: "C",
	}

	unknown := valid
	unknown.Ascend = "jump"
	_, err := ResolveBindings(unknown)
	assert.ErrorContains(t, err, "binding ascend")

	reserved := valid
	reserved.ToggleCapture = "Escape"
	_, err = ResolveBindings(reserved)
	assert.ErrorContains(t, err, "reserved")
}
