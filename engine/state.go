package engine

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbits/engine/frame"
	"github.com/Carmen-Shannon/oxy-orbits/engine/input"
	"github.com/Carmen-Shannon/oxy-orbits/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// HelpText lists the controls.
const HelpText = `[help]
- press ESC or 'q' to terminate the program
- press F1 or 'h' to see help
- press Home to reset camera
- press 'd' to change color type
- press 'w' to toggle wireframe
- press Pause or Space to pause the animation
- drag left to rotate, right or shift+left to zoom, middle or ctrl+left to pan
`

// Viewport is the framebuffer size in pixels.
type Viewport struct {
	Width, Height int
}

// Aspect returns Width/Height.
func (v Viewport) Aspect() float32 {
	return float32(v.Width) / float32(v.Height)
}

// ApplicationState is everything the run loop mutates: the camera and its trackball, the
// scene registry and the display toggles. Event handlers are methods on it.
type ApplicationState struct {
	Camera    camera.Camera
	Trackball camera.Trackball
	Scene     scene.Scene
	Viewport  Viewport

	ColorMode frame.ColorMode
	Wireframe bool
	Paused    bool
	ShowHelp  bool
	Quit      bool

	// HelpOut receives the help text when help is toggled on. Defaults to os.Stdout.
	HelpOut io.Writer

	models []mgl32.Mat4
	colors []mgl32.Vec4
}

// NewApplicationState wires a camera, trackball and scene for a viewport of the given size.
// The camera aspect is set from the viewport.
//
// Parameters:
//   - cam: the camera
//   - tb: the trackball driving the camera
//   - sc: the scene registry
//   - width, height: initial viewport size in pixels
//
// Returns:
//   - *ApplicationState: the state
func NewApplicationState(cam camera.Camera, tb camera.Trackball, sc scene.Scene, width, height int) *ApplicationState {
	s := &ApplicationState{
		Camera:    cam,
		Trackball: tb,
		Scene:     sc,
		HelpOut:   os.Stdout,
	}
	s.OnResize(width, height)
	return s
}

// OnResize records the new viewport and updates the camera aspect. Sizes with a zero
// dimension (minimized window) are ignored.
//
// Parameters:
//   - width, height: framebuffer size in pixels
func (s *ApplicationState) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Viewport = Viewport{Width: width, Height: height}
	s.Camera.SetAspect(s.Viewport.Aspect())
}

// OnKey handles a key press.
//
// Parameters:
//   - key: the pressed key
func (s *ApplicationState) OnKey(key input.Key) {
	switch key {
	case common.KeyEsc, common.KeyQ:
		s.Quit = true
	case common.KeyH, common.KeyF1:
		s.ShowHelp = !s.ShowHelp
		if s.ShowHelp {
			s.PrintHelp()
		}
	case common.KeyHome:
		s.Trackball.End()
		s.Camera.Reset()
		log.Printf("[Engine] camera reset")
	case common.KeyD:
		s.ColorMode = s.ColorMode.Next()
		log.Printf("[Engine] using color type: %d", s.ColorMode)
	case common.KeyW:
		s.Wireframe = !s.Wireframe
		if s.Wireframe {
			log.Printf("[Engine] using wireframe mode")
		} else {
			log.Printf("[Engine] using solid mode")
		}
	case common.KeyPause, common.KeySpace:
		s.Paused = !s.Paused
		if s.Paused {
			log.Printf("[Engine] animation paused")
		} else {
			log.Printf("[Engine] animation resumed")
		}
	}
}

// OnButton starts or ends a trackball session.
// A press selects the mode from the button and modifiers; a release of any trackball
// button ends the session.
//
// Parameters:
//   - button: the mouse button
//   - mods: modifier keys held
//   - action: Press or Release
//   - ndc: cursor position in normalized device coordinates
func (s *ApplicationState) OnButton(button input.Button, mods input.Modifier, action input.Action, ndc mgl32.Vec2) {
	switch action {
	case input.Press:
		if mode, ok := camera.ModeFor(button, mods); ok {
			s.Trackball.Begin(s.Camera, mode, ndc)
		}
	case input.Release:
		switch button {
		case input.ButtonLeft, input.ButtonRight, input.ButtonMiddle:
			s.Trackball.End()
		}
	}
}

// OnCursorMove drives the active trackball session, if any.
//
// Parameters:
//   - ndc: cursor position in normalized device coordinates
func (s *ApplicationState) OnCursorMove(ndc mgl32.Vec2) {
	if s.Trackball.Active() {
		s.Trackball.Update(ndc)
	}
}

// Apply dispatches one input event to the matching handler, converting pixel positions
// to normalized device coordinates with the current viewport.
//
// Parameters:
//   - ev: the event
func (s *ApplicationState) Apply(ev input.Event) {
	switch e := ev.(type) {
	case input.Resize:
		s.OnResize(e.Width, e.Height)
	case input.KeyDown:
		s.OnKey(e.Key)
	case input.ButtonDown:
		s.OnButton(e.Button, e.Mods, input.Press, s.ndc(e.X, e.Y))
	case input.ButtonUp:
		s.OnButton(e.Button, e.Mods, input.Release, s.ndc(e.X, e.Y))
	case input.CursorMove:
		s.OnCursorMove(s.ndc(e.X, e.Y))
	}
}

// Tick advances every object by dt and returns the frame to draw.
// The returned slices are reused by the next Tick.
//
// Parameters:
//   - dt: elapsed simulation time in seconds
//
// Returns:
//   - frame.Descriptor: the frame
func (s *ApplicationState) Tick(dt float32) frame.Descriptor {
	s.Scene.Update(dt)
	s.models = s.Scene.ModelMatrices(s.models[:0])
	s.colors = s.Scene.Colors(s.colors[:0])

	return frame.Descriptor{
		Width:      s.Viewport.Width,
		Height:     s.Viewport.Height,
		View:       s.Camera.ViewMatrix(),
		Projection: s.Camera.ProjectionMatrix(),
		Eye:        s.Camera.Pose().Eye,
		Models:     s.models,
		Colors:     s.colors,
		ColorMode:  s.ColorMode,
		Wireframe:  s.Wireframe,
	}
}

// PrintHelp writes HelpText to HelpOut.
func (s *ApplicationState) PrintHelp() {
	if s.HelpOut == nil {
		return
	}
	fmt.Fprint(s.HelpOut, HelpText)
}

func (s *ApplicationState) ndc(x, y float64) mgl32.Vec2 {
	return input.NormalizeCursor(x, y, s.Viewport.Width, s.Viewport.Height)
}
