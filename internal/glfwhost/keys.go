package glfwhost

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-flycam/pkg/flycam"
)

// KeyQuit closes the window. It is not rebindable.
const KeyQuit = glfw.KeyEscape

// keyNames maps configuration key names onto GLFW keys. Lookup is case-insensitive.
var keyNames = map[string]glfw.Key{
	"space":        glfw.KeySpace,
	"apostrophe":   glfw.KeyApostrophe,
	"comma":        glfw.KeyComma,
	"minus":        glfw.KeyMinus,
	"period":       glfw.KeyPeriod,
	"slash":        glfw.KeySlash,
	"semicolon":    glfw.KeySemicolon,
	"equal":        glfw.KeyEqual,
	"leftbracket":  glfw.KeyLeftBracket,
	"backslash":    glfw.KeyBackslash,
	"rightbracket": glfw.KeyRightBracket,
	"graveaccent":  glfw.KeyGraveAccent,
	"escape":       glfw.KeyEscape,
	"enter":        glfw.KeyEnter,
	"tab":          glfw.KeyTab,
	"backspace":    glfw.KeyBackspace,
	"insert":       glfw.KeyInsert,
	"delete":       glfw.KeyDelete,
	"right":        glfw.KeyRight,
	"left":         glfw.KeyLeft,
	"down":         glfw.KeyDown,
	"up":           glfw.KeyUp,
	"pageup":       glfw.KeyPageUp,
	"pagedown":     glfw.KeyPageDown,
	"home":         glfw.KeyHome,
	"end":          glfw.KeyEnd,
	"capslock":     glfw.KeyCapsLock,
	"leftshift":    glfw.KeyLeftShift,
	"leftcontrol":  glfw.KeyLeftControl,
	"leftalt":      glfw.KeyLeftAlt,
	"rightshift":   glfw.KeyRightShift,
	"rightcontrol": glfw.KeyRightControl,
	"rightalt":     glfw.KeyRightAlt,
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		keyNames[string(c)] = glfw.KeyA + glfw.Key(c-'a')
	}
	for c := '0'; c <= '9'; c++ {
		keyNames[string(c)] = glfw.Key0 + glfw.Key(c-'0')
	}
	for i := 1; i <= 12; i++ {
		keyNames[fmt.Sprintf("f%d", i)] = glfw.KeyF1 + glfw.Key(i-1)
	}
}

// ParseKey resolves a configuration key name such as "W", "Space" or "LeftShift".
func ParseKey(name string) (glfw.Key, error) {
	key, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return glfw.KeyUnknown, fmt.Errorf("unknown key %q", name)
	}
	return key, nil
}

// KeyNames returns every accepted key name in sorted order
func KeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveBindings turns named bindings into GLFW key bindings.
func ResolveBindings(named flycam.KeyBindings[string]) (flycam.KeyBindings[glfw.Key], error) {
	var bindings flycam.KeyBindings[glfw.Key]
	fields := []struct {
		action string
		name   string
		dst    *glfw.Key
	}{
		{"forward", named.Forward, &bindings.Forward},
		{"backward", named.Backward, &bindings.Backward},
		{"strafe_right", named.StrafeRight, &bindings.StrafeRight},
		{"strafe_left", named.StrafeLeft, &bindings.StrafeLeft},
		{"ascend", named.Ascend, &bindings.Ascend},
		{"descend", named.Descend, &bindings.Descend},
		{"toggle_capture", named.ToggleCapture, &bindings.ToggleCapture},
	}
	for _, f := range fields {
		key, err := ParseKey(f.name)
		if err != nil {
			return bindings, fmt.Errorf("binding %s: %w", f.action, err)
		}
		if key == KeyQuit {
			return bindings, fmt.Errorf("binding %s: %q is reserved for quitting", f.action, f.name)
		}
		*f.dst = key
	}
	return bindings, nil
}
