package flycam

import "github.com/go-gl/mathgl/mgl32"

// Movement defaults
const (
	DefaultSpeed       = 5.0
	DefaultSensitivity = 0.0001
)

// Orientation constraints
const (
	// MaxPitch is 88 degrees expressed in radians, short of the pole.
	MaxPitch = 1.54
	MinPitch = -MaxPitch
)

// Default spawn transform
var (
	DefaultSpawnPosition = mgl32.Vec3{-2.0, 2.5, 5.0}
	DefaultSpawnTarget   = mgl32.Vec3{0, 0, 0}
)

// Axes of the right-handed, Y-up world. A camera with zero yaw and pitch looks along -Z.
var (
	worldUp    = mgl32.Vec3{0, 1, 0}
	localRight = mgl32.Vec3{1, 0, 0}
	localFront = mgl32.Vec3{0, 0, -1}
)
