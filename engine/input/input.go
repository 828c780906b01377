// Package input defines the platform-neutral input events produced by a window and consumed
// by the application state. Positions are raw framebuffer pixels with the origin at the top left.
package input

import (
	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Key is a virtual key code (see the Key* constants in package common).
type Key int

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft   Button = common.MouseButtonLeft
	ButtonRight  Button = common.MouseButtonRight
	ButtonMiddle Button = common.MouseButtonMiddle
)

// Modifier is a bit set of held modifier keys.
type Modifier int

const (
	ModNone    Modifier = 0
	ModShift   Modifier = common.ModShift
	ModControl Modifier = common.ModControl
	ModAlt     Modifier = common.ModAlt
	ModSuper   Modifier = common.ModSuper
)

// Has reports whether all bits of flag are set in m.
func (m Modifier) Has(flag Modifier) bool {
	return m&flag == flag
}

// Action is the state transition of a button.
type Action int

const (
	Release Action = iota
	Press
)

// Event is one queued input event. The concrete types are Resize, KeyDown, ButtonDown,
// ButtonUp and CursorMove.
type Event interface {
	isEvent()
}

// Resize reports a new framebuffer size in pixels.
type Resize struct {
	Width, Height int
}

// KeyDown reports a key press. Repeats are not reported.
type KeyDown struct {
	Key Key
}

// ButtonDown reports a mouse button press at the given cursor position.
type ButtonDown struct {
	Button Button
	Mods   Modifier
	X, Y   float64
}

// ButtonUp reports a mouse button release at the given cursor position.
type ButtonUp struct {
	Button Button
	Mods   Modifier
	X, Y   float64
}

// CursorMove reports the cursor position.
type CursorMove struct {
	X, Y float64
}

func (Resize) isEvent()     {}
func (KeyDown) isEvent()    {}
func (ButtonDown) isEvent() {}
func (ButtonUp) isEvent()   {}
func (CursorMove) isEvent() {}

// NormalizeCursor maps a pixel position to normalized device coordinates in [-1, 1] with +Y up.
// Pixel (0, 0) maps to (-1, 1) and pixel (w-1, h-1) maps to (1, -1).
//
// Parameters:
//   - x, y: cursor position in pixels
//   - width, height: viewport size in pixels
//
// Returns:
//   - mgl32.Vec2: the NDC position
func NormalizeCursor(x, y float64, width, height int) mgl32.Vec2 {
	w := float64(max(width-1, 1))
	h := float64(max(height-1, 1))
	return mgl32.Vec2{
		float32(x/w*2 - 1),
		float32(1 - y/h*2),
	}
}

// ScaleCursor converts a cursor position in screen coordinates to framebuffer pixels.
// On high-DPI displays the framebuffer is larger than the window. A zero window size
// leaves the position unchanged.
//
// Parameters:
//   - x, y: cursor position in screen coordinates
//   - winW, winH: window size in screen coordinates
//   - fbW, fbH: framebuffer size in pixels
//
// Returns:
//   - float64, float64: the position in pixels
func ScaleCursor(x, y float64, winW, winH, fbW, fbH int) (float64, float64) {
	if winW > 0 {
		x *= float64(fbW) / float64(winW)
	}
	if winH > 0 {
		y *= float64(fbH) / float64(winH)
	}
	return x, y
}

// Queue collects events between polls. Platform callbacks push; the run loop drains.
// Coalesces consecutive CursorMove and Resize events since only the latest position or
// size matters for either.
type Queue struct {
	events []Event
}

// Push appends ev to the queue.
func (q *Queue) Push(ev Event) {
	if n := len(q.events); n > 0 {
		switch ev.(type) {
		case CursorMove:
			if _, ok := q.events[n-1].(CursorMove); ok {
				q.events[n-1] = ev
				return
			}
		case Resize:
			if _, ok := q.events[n-1].(Resize); ok {
				q.events[n-1] = ev
				return
			}
		}
	}
	q.events = append(q.events, ev)
}

// Drain returns the queued events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}
