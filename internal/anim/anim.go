package anim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SpinPhase is the length of each animation phase in seconds: one full
// revolution at 1 rad/s.
const SpinPhase = 2 * math.Pi

// State carries the animation between frames. Only the world transform
// persists; projection and view are rebuilt from it every frame.
type State struct {
	Elapsed float64 // seconds since the first frame
	World   mgl32.Mat4
}

// NewState returns the initial state: identity world transform at t=0.
func NewState() State {
	return State{World: mgl32.Ident4()}
}

// Advance applies one frame worth of animation and returns the new state.
// dt is the time in seconds since the previous frame and is used directly
// as the radian increment, so each active axis turns at 1 rad/s.
//
// The phase is selected by the timestamp of the current frame; a frame
// landing exactly on a boundary belongs to the later phase:
//   - before SpinPhase: spin about Z only
//   - before 2*SpinPhase: tumble about Z, then Y, then X, in that order
//   - afterwards: the world transform stays frozen at its last value
func Advance(s State, dt float64) State {
	t := s.Elapsed + dt
	angle := float32(dt)

	switch {
	case t < SpinPhase:
		s.World = s.World.Mul4(mgl32.HomogRotate3DZ(angle))
	case t < 2*SpinPhase:
		// Right-multiply one axis at a time; the order is part of the
		// contract since rotation composition does not commute.
		s.World = s.World.Mul4(mgl32.HomogRotate3DZ(angle))
		s.World = s.World.Mul4(mgl32.HomogRotate3DY(angle))
		s.World = s.World.Mul4(mgl32.HomogRotate3DX(angle))
	}

	s.Elapsed = t
	return s
}

// View returns the model-view matrix for the current state: the world
// transform right-multiplied onto an identity base.
func (s State) View() mgl32.Mat4 {
	return mgl32.Ident4().Mul4(s.World)
}

// StaticView is the fixed eye of the non-animated variant: the quad pushed
// six units into the scene.
func StaticView() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -6)
}
