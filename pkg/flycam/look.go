package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// LookController turns pointer motion into yaw and pitch.
type LookController struct {
	// sequence number of the next unread motion event
	cursor uint64

	// motion read while the window was unavailable, summed
	pending      MotionEvent
	pendingCount int

	log zerolog.Logger
}

// NewLookController creates a controller reading from the start of a fresh log
func NewLookController(logger zerolog.Logger) *LookController {
	return &LookController{
		log: logger.With().Str("component", "look").Logger(),
	}
}

// Update consumes the motion events queued since the last call and returns how many
// it consumed. While Free the events are consumed without rotating the camera, so
// they are not replayed once capture resumes. Without a window nothing is consumed:
// the events are held back and applied on the first frame that has a window again.
func (lc *LookController) Update(
	cam *CameraEntity,
	motion *MotionLog,
	settings MovementSettings,
	state CaptureState,
	window Viewport,
) int {
	return lc.update(cam, motion, settings, state, window, true)
}

func (lc *LookController) update(
	cam *CameraEntity,
	motion *MotionLog,
	settings MovementSettings,
	state CaptureState,
	window Viewport,
	warn bool,
) int {
	if motion == nil {
		return 0
	}

	events, next, missed := motion.Read(lc.cursor)
	lc.cursor = next
	if missed > 0 {
		lc.log.Debug().Uint64("missed", missed).Msg("motion events discarded before they were read")
	}

	if windowMissing(window) {
		if warn {
			lc.log.Warn().Msg("primary window unavailable, skipping look update")
		}
		// The log drops events after two frames, so keep them here instead.
		for _, ev := range events {
			lc.pending.DX += ev.DX
			lc.pending.DY += ev.DY
		}
		lc.pendingCount += len(events)
		return 0
	}

	held, count := lc.pending, lc.pendingCount
	lc.pending, lc.pendingCount = MotionEvent{}, 0
	consumed := count + len(events)
	if state != Captured || cam == nil || consumed == 0 {
		return consumed
	}

	scale := scaleFactor(window)
	if count > 0 {
		lc.rotate(cam, held, settings.Sensitivity, scale)
	}
	for _, ev := range events {
		lc.rotate(cam, ev, settings.Sensitivity, scale)
	}
	cam.Pitch = clampPitch(cam.Pitch)
	cam.Yaw = wrapAngle(cam.Yaw)

	return consumed
}

// rotate applies one delta without clamping; callers clamp once per batch.
func (lc *LookController) rotate(cam *CameraEntity, ev MotionEvent, sensitivity, scale float32) {
	cam.Pitch -= mgl32.DegToRad(sensitivity * ev.DY * scale)
	cam.Yaw -= mgl32.DegToRad(sensitivity * ev.DX * scale)
}
