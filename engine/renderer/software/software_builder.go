package software

// RendererBuilderOption is a functional option for configuring a software Renderer.
type RendererBuilderOption func(*softwareRenderer)

// WithSupersample renders at n times the output size and downscales with Catmull-Rom.
//
// Parameters:
//   - n: supersampling factor (values < 1 become 1)
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithSupersample(n int) RendererBuilderOption {
	return func(r *softwareRenderer) {
		r.supersample = max(n, 1)
	}
}

// WithCulling enables or disables frustum culling. Enabled by default.
//
// Parameters:
//   - enabled: false draws every object
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithCulling(enabled bool) RendererBuilderOption {
	return func(r *softwareRenderer) {
		r.culling = enabled
	}
}

// WithLineWidth sets the wireframe line width in output pixels.
//
// Parameters:
//   - width: line width (values <= 0 become 1)
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithLineWidth(width float64) RendererBuilderOption {
	return func(r *softwareRenderer) {
		if width <= 0 {
			width = 1
		}
		r.lineWidth = width
	}
}
