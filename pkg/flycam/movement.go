package flycam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MovementController translates held keys into camera displacement.
// It keeps no state between frames.
type MovementController[K comparable] struct{}

// Update moves cam according to the held keys and returns the displacement applied.
//
// Forward and strafe directions come from yaw alone so ground speed does not depend
// on pitch; ascend and descend use world up. The summed direction is normalized once
// so diagonal motion is no faster than straight motion. Nothing moves while the
// cursor is Free.
func (MovementController[K]) Update(
	cam *CameraEntity,
	held HeldKeys[K],
	dt float32,
	settings MovementSettings,
	bindings KeyBindings[K],
	state CaptureState,
) mgl32.Vec3 {
	if state != Captured || cam == nil || held == nil {
		return mgl32.Vec3{}
	}
	if dt <= 0 || math.IsInf(float64(dt), 0) || math.IsNaN(float64(dt)) {
		return mgl32.Vec3{}
	}

	forward, right := horizontalAxes(cam.Yaw)

	var direction mgl32.Vec3
	if held.Pressed(bindings.Forward) {
		direction = direction.Add(forward)
	}
	if held.Pressed(bindings.Backward) {
		direction = direction.Sub(forward)
	}
	if held.Pressed(bindings.StrafeRight) {
		direction = direction.Add(right)
	}
	if held.Pressed(bindings.StrafeLeft) {
		direction = direction.Sub(right)
	}
	if held.Pressed(bindings.Ascend) {
		direction = direction.Add(worldUp)
	}
	if held.Pressed(bindings.Descend) {
		direction = direction.Sub(worldUp)
	}

	displacement := normalizeOrZero(direction).Mul(settings.Speed * dt)
	cam.Position = cam.Position.Add(displacement)
	return displacement
}

// horizontalAxes returns the unit forward and right vectors in the ground plane for yaw.
func horizontalAxes(yaw float32) (forward, right mgl32.Vec3) {
	sin, cos := math.Sincos(float64(yaw))
	s, c := float32(sin), float32(cos)
	forward = mgl32.Vec3{-s, 0, -c}
	right = mgl32.Vec3{c, 0, -s}
	return forward, right
}
