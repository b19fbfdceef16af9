package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InputSnapshot is the input gathered by the host for one frame.
type InputSnapshot[K comparable] struct {
	Held         HeldKeys[K]
	Motion       *MotionLog
	DeltaSeconds float32
}

// FrameResult describes what a single Rig.Update did.
type FrameResult struct {
	State        CaptureState
	Toggled      bool
	Displacement mgl32.Vec3
	LookEvents   int
}

// RigOption configures a Rig
type RigOption func(*rigOptions)

type rigOptions struct {
	logger zerolog.Logger
}

// WithLogger sets the logger the controllers report diagnostics to.
func WithLogger(logger zerolog.Logger) RigOption {
	return func(o *rigOptions) {
		o.logger = logger
	}
}

// Rig wires the camera and its three controllers into one per-frame update.
// It is not safe for concurrent use; the host drives it from the frame loop.
type Rig[K comparable] struct {
	registry *Registry[K]
	camera   *CameraEntity

	capture  *CursorCaptureController[K]
	movement MovementController[K]
	look     *LookController

	log zerolog.Logger
}

// NewRig creates a rig driving camera with the configuration in registry.
func NewRig[K comparable](registry *Registry[K], camera *CameraEntity, options ...RigOption) *Rig[K] {
	opts := rigOptions{logger: log.Logger}
	for _, option := range options {
		option(&opts)
	}

	return &Rig[K]{
		registry: registry,
		camera:   camera,
		capture:  NewCursorCaptureController[K](opts.logger),
		look:     NewLookController(opts.logger),
		log:      opts.logger.With().Str("component", "rig").Logger(),
	}
}

// Camera returns the camera the rig drives
func (r *Rig[K]) Camera() *CameraEntity {
	return r.camera
}

// CaptureState returns the current capture state
func (r *Rig[K]) CaptureState() CaptureState {
	return r.capture.State()
}

// Startup captures the cursor. Call once after the window exists.
func (r *Rig[K]) Startup(window CursorWindow) {
	r.capture.Initialize(window)
}

// Update runs one frame: the capture toggle first, so movement and look see this
// frame's state, then movement and look. A frame without a window logs a single
// warning; movement still applies.
func (r *Rig[K]) Update(in InputSnapshot[K], window CursorWindow) FrameResult {
	settings := r.registry.Settings()
	bindings := r.registry.Bindings()

	// The controllers only see an untyped nil, and stay quiet about it.
	var viewport Viewport
	if windowMissing(window) {
		window = nil
		r.log.Warn().Msg("primary window unavailable, skipping cursor capture and look")
	} else {
		viewport = window
	}

	toggled := r.capture.update(in.Held, bindings, window, false)
	state := r.capture.State()

	displacement := r.movement.Update(r.camera, in.Held, in.DeltaSeconds, settings, bindings, state)

	consumed := r.look.update(r.camera, in.Motion, settings, state, viewport, false)

	return FrameResult{
		State:        state,
		Toggled:      toggled,
		Displacement: displacement,
		LookEvents:   consumed,
	}
}
