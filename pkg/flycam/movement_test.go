package flycam

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func moveOnce(cam *CameraEntity, dt float32, state CaptureState, keys ...testKey) mgl32.Vec3 {
	var mc MovementController[testKey]
	return mc.Update(cam, NewKeySet(keys...), dt, DefaultMovementSettings(), testBindings, state)
}

func TestMovementForwardAndStrafe(t *testing.T) {
	cam := NewCameraEntity(mgl32.Vec3{})

	d := moveOnce(cam, 1.0, Captured, "w", "d")

	assert.InDelta(t, 5.0, d.Len(), 1e-5)
	want := mgl32.Vec3{1, 0, -1}.Normalize().Mul(5)
	assertVecNear(t, want, d, 1e-5)
	assert.Equal(t, d, cam.Position)
}

func TestMovementOpposingKeysCancel(t *testing.T) {
	for _, keys := range [][]testKey{
		{"w", "s"},
		{"a", "d"},
		{"space", "shift"},
		{"w", "s", "a", "d"},
	} {
		cam := NewCameraEntity(mgl32.Vec3{1, 2, 3})
		cam.SetRotation(0.7, 0.3)

		d := moveOnce(cam, 0.5, Captured, keys...)

		assert.Equal(t, mgl32.Vec3{}, d, "keys %v", keys)
		assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Position, "keys %v", keys)
	}
}

func TestMovementOpposingPairLeavesOtherAxis(t *testing.T) {
	cam := NewCameraEntity(mgl32.Vec3{})

	d := moveOnce(cam, 1.0, Captured, "w", "s", "d")

	assertVecNear(t, mgl32.Vec3{5, 0, 0}, d, 1e-5)
}

func TestMovementDiagonalMatchesSingleKey(t *testing.T) {
	yaws := []float32{0, 0.4, -1.2, 2.9}
	for _, yaw := range yaws {
		single := NewCameraEntity(mgl32.Vec3{})
		single.SetRotation(yaw, 0)
		diagonal := NewCameraEntity(mgl32.Vec3{})
		diagonal.SetRotation(yaw, 0)

		a := moveOnce(single, 0.016, Captured, "w")
		b := moveOnce(diagonal, 0.016, Captured, "w", "a")
		c := moveOnce(NewCameraEntity(mgl32.Vec3{}), 0.016, Captured, "d", "space")

		assert.InDelta(t, a.Len(), b.Len(), 1e-6, "yaw %v", yaw)
		assert.InDelta(t, a.Len(), c.Len(), 1e-6, "yaw %v", yaw)
	}
}

func TestMovementIgnoresPitch(t *testing.T) {
	level := NewCameraEntity(mgl32.Vec3{})
	level.SetRotation(0.9, 0)
	tilted := NewCameraEntity(mgl32.Vec3{})
	tilted.SetRotation(0.9, -1.2)

	a := moveOnce(level, 1, Captured, "w")
	b := moveOnce(tilted, 1, Captured, "w")

	assertVecNear(t, a, b, 1e-6)
	assert.Zero(t, b.Y())
	assert.InDelta(t, 5.0, b.Len(), 1e-5)
}

func TestMovementAscendUsesWorldUp(t *testing.T) {
	cam := NewCameraEntity(mgl32.Vec3{})
	cam.SetRotation(1.0, 1.0)

	d := moveOnce(cam, 2, Captured, "space")

	assertVecNear(t, mgl32.Vec3{0, 10, 0}, d, 1e-6)
}

func TestMovementSuppressedWhileFree(t *testing.T) {
	cam := NewCameraEntity(mgl32.Vec3{4, 5, 6})

	d := moveOnce(cam, 1.0, Free, "w")

	assert.Equal(t, mgl32.Vec3{}, d)
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, cam.Position)
}

func TestMovementDeterministic(t *testing.T) {
	a := moveOnce(NewCameraEntity(mgl32.Vec3{}), 0.033, Captured, "w", "d", "shift")
	b := moveOnce(NewCameraEntity(mgl32.Vec3{}), 0.033, Captured, "w", "d", "shift")
	assert.Equal(t, a, b)
}

func TestMovementRejectsBadDeltaTime(t *testing.T) {
	for _, dt := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		cam := NewCameraEntity(mgl32.Vec3{})
		d := moveOnce(cam, dt, Captured, "w")
		assert.Equal(t, mgl32.Vec3{}, d, "dt %v", dt)
		assert.Equal(t, mgl32.Vec3{}, cam.Position, "dt %v", dt)
	}
}

func TestMovementUnboundKeysAreInert(t *testing.T) {
	cam := NewCameraEntity(mgl32.Vec3{})
	d := moveOnce(cam, 1, Captured, "q", "e")
	assert.Equal(t, mgl32.Vec3{}, d)
}

func TestMovementWithHeldFunc(t *testing.T) {
	var mc MovementController[testKey]
	cam := NewCameraEntity(mgl32.Vec3{})
	held := HeldFunc[testKey](func(k testKey) bool { return k == "s" })

	d := mc.Update(cam, held, 1, DefaultMovementSettings(), testBindings, Captured)

	assertVecNear(t, mgl32.Vec3{0, 0, 5}, d, 1e-6)
}
