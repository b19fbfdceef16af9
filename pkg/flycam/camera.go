package flycam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraEntity is the free-fly camera state mutated by the controllers.
//
// Only yaw and pitch are stored. The orientation quaternion is rebuilt from them
// on every call, so roll stays at zero and no rotation error accumulates.
type CameraEntity struct {
	Position mgl32.Vec3

	// Euler angles in radians
	Yaw   float32
	Pitch float32
}

// NewCameraEntity creates a camera at position facing -Z
func NewCameraEntity(position mgl32.Vec3) *CameraEntity {
	return &CameraEntity{Position: position}
}

// DefaultCameraEntity creates the startup camera: slightly above and behind the
// origin, looking at it.
func DefaultCameraEntity() *CameraEntity {
	c := NewCameraEntity(DefaultSpawnPosition)
	c.LookAt(DefaultSpawnTarget)
	return c
}

// Orientation composes yaw about world up with pitch about the local right axis.
func (c *CameraEntity) Orientation() mgl32.Quat {
	yaw := mgl32.QuatRotate(c.Yaw, worldUp)
	pitch := mgl32.QuatRotate(c.Pitch, localRight)
	return yaw.Mul(pitch)
}

// Forward returns the unit view direction
func (c *CameraEntity) Forward() mgl32.Vec3 {
	return c.Orientation().Rotate(localFront)
}

// Right returns the unit right vector. It always lies in the horizontal plane.
func (c *CameraEntity) Right() mgl32.Vec3 {
	return c.Orientation().Rotate(localRight)
}

// Up returns the camera's local up vector
func (c *CameraEntity) Up() mgl32.Vec3 {
	return c.Orientation().Rotate(worldUp)
}

// Roll returns the angle between the camera's right vector and the horizontal plane.
func (c *CameraEntity) Roll() float32 {
	r := c.Right()
	return float32(math.Asin(float64(mgl32.Clamp(r.Y(), -1, 1))))
}

// ViewMatrix returns the world-to-view matrix for the renderer
func (c *CameraEntity) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), c.Up())
}

// SetRotation sets the camera angles, constraining pitch short of the poles
func (c *CameraEntity) SetRotation(yaw, pitch float32) {
	c.Yaw = wrapAngle(yaw)
	c.Pitch = clampPitch(pitch)
}

// LookAt turns the camera to face target. It does nothing when target is the
// camera position.
func (c *CameraEntity) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.Position)
	if direction.Len() < mgl32.Epsilon {
		return
	}
	direction = direction.Normalize()

	yaw := float32(math.Atan2(float64(-direction.X()), float64(-direction.Z())))
	pitch := float32(math.Asin(float64(mgl32.Clamp(direction.Y(), -1, 1))))
	c.SetRotation(yaw, pitch)
}

func clampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, MinPitch, MaxPitch)
}

// wrapAngle maps a into (-pi, pi].
func wrapAngle(a float32) float32 {
	if a > -math.Pi && a <= math.Pi {
		return a
	}
	w := math.Mod(float64(a)+math.Pi, 2*math.Pi)
	if w <= 0 {
		w += 2 * math.Pi
	}
	return float32(w - math.Pi)
}

// normalizeOrZero returns v scaled to unit length, or the zero vector when v has no length.
func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < mgl32.Epsilon || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
