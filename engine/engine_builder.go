package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-orbits/engine/profiler"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler to tick each frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithInput sets the source of input events, usually the window.
//
// Parameters:
//   - in: the input source
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithInput(in InputSource) EngineBuilderOption {
	return func(e *engine) {
		e.input = in
	}
}

// WithSubmitter sets the renderer that receives each frame.
//
// Parameters:
//   - s: the frame submitter
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSubmitter(s FrameSubmitter) EngineBuilderOption {
	return func(e *engine) {
		e.submitter = s
	}
}

// WithTimeScale sets how many simulation seconds pass per wall-clock second.
// Negative values are treated as 0.
//
// Parameters:
//   - scale: the time scale (default 0.4)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTimeScale(scale float32) EngineBuilderOption {
	return func(e *engine) {
		e.timeScale = max(scale, 0)
	}
}

// WithClock replaces time.Now as the loop's time source.
//
// Parameters:
//   - now: clock function
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(now func() time.Time) EngineBuilderOption {
	return func(e *engine) {
		e.now = now
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
