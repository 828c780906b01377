package camera

import (
	"github.com/Carmen-Shannon/oxy-orbits/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode is the kind of camera drag locked in when a trackball session begins.
type Mode int

const (
	ModeRotate Mode = iota
	ModeZoom
	ModePan
)

func (m Mode) String() string {
	switch m {
	case ModeRotate:
		return "rotate"
	case ModeZoom:
		return "zoom"
	case ModePan:
		return "pan"
	}
	return "unknown"
}

// ModeFor maps a pressed mouse button and the held modifiers to a drag mode.
// Left with no modifier rotates, right or shift+left zooms, middle or ctrl+left pans.
// Any other combination starts no session.
//
// Parameters:
//   - button: the pressed button
//   - mods: modifier keys held at press time
//
// Returns:
//   - Mode: the selected mode
//   - bool: false when the combination starts no session
func ModeFor(button input.Button, mods input.Modifier) (Mode, bool) {
	switch button {
	case input.ButtonLeft:
		switch {
		case mods == input.ModNone:
			return ModeRotate, true
		case mods.Has(input.ModShift):
			return ModeZoom, true
		case mods.Has(input.ModControl):
			return ModePan, true
		}
	case input.ButtonRight:
		return ModeZoom, true
	case input.ButtonMiddle:
		return ModePan, true
	}
	return 0, false
}

// Trackball defines the interface for the virtual-trackball camera controller.
// A session starts with Begin, is driven by cursor updates and ends with End. Every update
// recomputes the camera pose from the pose captured at Begin and the total cursor delta,
// never from the previous update.
type Trackball interface {
	// Begin starts a drag session. The camera pose is snapshotted and the mode is locked
	// until End. A session already in progress is replaced.
	//
	// Parameters:
	//   - cam: the camera to drive (not owned)
	//   - mode: the drag mode
	//   - ndc: cursor position in normalized device coordinates
	Begin(cam Camera, mode Mode, ndc mgl32.Vec2)

	// Update forwards the cursor position to the update matching the locked mode.
	//
	// Parameters:
	//   - ndc: cursor position in normalized device coordinates
	Update(ndc mgl32.Vec2)

	// UpdateRotate applies an arcball rotation. Ignored unless a rotate session is active.
	//
	// Parameters:
	//   - ndc: cursor position in normalized device coordinates
	UpdateRotate(ndc mgl32.Vec2)

	// UpdateZoom moves the eye along the view direction. Ignored unless a zoom session is active.
	//
	// Parameters:
	//   - ndc: cursor position in normalized device coordinates
	UpdateZoom(ndc mgl32.Vec2)

	// UpdatePan translates eye and target together. Ignored unless a pan session is active.
	//
	// Parameters:
	//   - ndc: cursor position in normalized device coordinates
	UpdatePan(ndc mgl32.Vec2)

	// End discards the current session. Safe to call while idle.
	End()

	// Active reports whether a session is in progress. A session begun before a camera
	// Reset reports false.
	//
	// Returns:
	//   - bool: true while tracking
	Active() bool

	// Mode returns the locked mode of the current session.
	//
	// Returns:
	//   - Mode: the locked mode, meaningful only while Active
	Mode() Mode
}
