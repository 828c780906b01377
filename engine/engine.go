package engine

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-orbits/engine/frame"
	"github.com/Carmen-Shannon/oxy-orbits/engine/input"
	"github.com/Carmen-Shannon/oxy-orbits/engine/profiler"
)

// DefaultTimeScale converts wall-clock seconds to simulation seconds.
const DefaultTimeScale float32 = 0.4

// FrameDescriptor is the frame handed to a FrameSubmitter each iteration.
type FrameDescriptor = frame.Descriptor

// InputSource produces the ordered input events of one loop iteration.
// engine/window implements it on top of glfw.
type InputSource interface {
	// PollInput pumps the platform queue and returns the events received since the last call.
	PollInput() []input.Event

	// IsRunning reports whether the source is still open.
	IsRunning() bool

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int
}

// FrameSubmitter draws a frame. engine/renderer implements it with webgpu.
type FrameSubmitter interface {
	SubmitFrame(FrameDescriptor) error
}

// engine implements the Engine interface.
// Runs poll, apply, tick and submit on the calling goroutine.
type engine struct {
	input     InputSource
	submitter FrameSubmitter
	state     *ApplicationState

	profiler         *profiler.Profiler
	profilingEnabled bool

	now       func() time.Time
	lastFrame time.Time
	started   bool
	timeScale float32

	lastSubmitErr string

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for the engine.
// It owns the application state and drives the single-threaded frame loop.
type Engine interface {
	// State returns the application state the loop mutates.
	//
	// Returns:
	//   - *ApplicationState: the state
	State() *ApplicationState

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTimeScale sets how many simulation seconds pass per wall-clock second.
	//
	// Parameters:
	//   - scale: the time scale (negative values are treated as 0)
	SetTimeScale(scale float32)

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Step runs one loop iteration: poll input, apply every event in order, advance the
	// simulation and submit the frame.
	//
	// Returns:
	//   - bool: false once the input source closed or a quit was requested
	Step() bool

	// Run calls Step until it returns false (blocks until the window closes).
	Run()

	// Quit requests the loop to stop after the current iteration.
	// Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine driving the given state.
// The time scale defaults to DefaultTimeScale.
//
// Parameters:
//   - state: the application state to drive
//   - options: functional options for engine configuration (input, submitter, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(state *ApplicationState, options ...EngineBuilderOption) Engine {
	e := &engine{
		state:            state,
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		now:              time.Now,
		timeScale:        DefaultTimeScale,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) State() *ApplicationState {
	return e.state
}

func (e *engine) Run() {
	for e.Step() {
	}
	log.Printf("[Engine] stopped")
}

func (e *engine) Quit() {
	e.state.Quit = true
}

func (e *engine) Step() bool {
	if e.state.Quit {
		return false
	}
	if e.input != nil && !e.input.IsRunning() {
		return false
	}
	frameStart := e.now()

	if e.input != nil {
		for _, ev := range e.input.PollInput() {
			e.state.Apply(ev)
		}
	}
	if e.state.Quit {
		return false
	}

	desc := e.state.Tick(e.advance(frameStart))

	if e.submitter != nil {
		e.submit(desc)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(len(desc.Models))
	}

	// Frame rate limiting
	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(frameStart); remaining > 0 {
			time.Sleep(remaining)
		}
	}
	return true
}

// advance returns the simulation step for a frame starting at now.
// The first frame and paused frames yield 0; the clock keeps running while paused.
func (e *engine) advance(now time.Time) float32 {
	if !e.started {
		e.started = true
		e.lastFrame = now
		return 0
	}
	dt := float32(now.Sub(e.lastFrame).Seconds()) * e.timeScale
	e.lastFrame = now
	if e.state.Paused || dt < 0 {
		return 0
	}
	return dt
}

// submit hands desc to the submitter. A failure is logged once until it changes or clears.
func (e *engine) submit(desc FrameDescriptor) {
	err := e.submitter.SubmitFrame(desc)
	if err == nil {
		e.lastSubmitErr = ""
		return
	}
	if msg := err.Error(); msg != e.lastSubmitErr {
		log.Printf("[Engine] submit frame: %v", err)
		e.lastSubmitErr = msg
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTimeScale(scale float32) {
	e.timeScale = max(scale, 0)
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
