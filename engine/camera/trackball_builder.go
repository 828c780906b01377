package camera

// TrackballBuilderOption is a functional option for configuring a Trackball.
type TrackballBuilderOption func(*trackballImpl)

// WithSphereRadius sets the radius of the virtual hemisphere in NDC units.
//
// Parameters:
//   - radius: hemisphere radius (> 0)
//
// Returns:
//   - TrackballBuilderOption: option function to apply
func WithSphereRadius(radius float32) TrackballBuilderOption {
	return func(tb *trackballImpl) {
		tb.radius = radius
	}
}

// WithRotationScale multiplies the arcball angle.
//
// Parameters:
//   - scale: angle multiplier
//
// Returns:
//   - TrackballBuilderOption: option function to apply
func WithRotationScale(scale float32) TrackballBuilderOption {
	return func(tb *trackballImpl) {
		tb.rotationScale = scale
	}
}

// WithZoomSensitivity sets the exponential zoom rate per NDC unit of vertical drag.
//
// Parameters:
//   - sensitivity: zoom rate
//
// Returns:
//   - TrackballBuilderOption: option function to apply
func WithZoomSensitivity(sensitivity float32) TrackballBuilderOption {
	return func(tb *trackballImpl) {
		tb.zoomSensitivity = sensitivity
	}
}

// WithPanSensitivity sets how far the camera pans per NDC unit, as a fraction of the
// eye-to-target distance.
//
// Parameters:
//   - sensitivity: pan rate
//
// Returns:
//   - TrackballBuilderOption: option function to apply
func WithPanSensitivity(sensitivity float32) TrackballBuilderOption {
	return func(tb *trackballImpl) {
		tb.panSensitivity = sensitivity
	}
}

// WithMinDistance sets the closest the eye may zoom to the target.
//
// Parameters:
//   - distance: minimum distance (> 0)
//
// Returns:
//   - TrackballBuilderOption: option function to apply
func WithMinDistance(distance float32) TrackballBuilderOption {
	return func(tb *trackballImpl) {
		tb.minDistance = distance
	}
}
