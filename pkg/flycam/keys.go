package flycam

// HeldKeys answers whether a key is held down during the current frame.
// K is whatever key identifier the input backend uses.
type HeldKeys[K comparable] interface {
	Pressed(key K) bool
}

// HeldFunc adapts a plain lookup function to HeldKeys.
type HeldFunc[K comparable] func(key K) bool

// Pressed calls f(key)
func (f HeldFunc[K]) Pressed(key K) bool {
	return f(key)
}

// KeySet is a HeldKeys backed by a set. The zero value is not usable; use NewKeySet.
type KeySet[K comparable] map[K]struct{}

// NewKeySet returns a set with the given keys held.
func NewKeySet[K comparable](keys ...K) KeySet[K] {
	s := make(KeySet[K], len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Press marks key as held
func (s KeySet[K]) Press(key K) {
	s[key] = struct{}{}
}

// Release marks key as not held
func (s KeySet[K]) Release(key K) {
	delete(s, key)
}

// Pressed reports whether key is held
func (s KeySet[K]) Pressed(key K) bool {
	_, ok := s[key]
	return ok
}
