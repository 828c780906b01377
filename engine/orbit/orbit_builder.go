package orbit

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ObjectBuilderOption is a functional option for configuring an Object during construction.
type ObjectBuilderOption func(*Object)

// WithCenter sets the body center relative to the revolution axis.
//
// Parameters:
//   - center: the center position
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithCenter(center mgl32.Vec3) ObjectBuilderOption {
	return func(o *Object) {
		o.Center = center
	}
}

// WithRadius sets the body radius.
//
// Parameters:
//   - radius: uniform scale of the unit sphere
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithRadius(radius float32) ObjectBuilderOption {
	return func(o *Object) {
		o.Radius = radius
	}
}

// WithColor sets the body color.
//
// Parameters:
//   - color: RGBA in [0, 1]
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithColor(color mgl32.Vec4) ObjectBuilderOption {
	return func(o *Object) {
		o.Color = color
	}
}

// WithRotationSpeed sets the self-rotation rate (before SelfRotationGain).
//
// Parameters:
//   - speed: radians per second
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithRotationSpeed(speed float32) ObjectBuilderOption {
	return func(o *Object) {
		o.RotationSpeed = speed
	}
}

// WithRevolutionSpeed sets the revolution rate.
//
// Parameters:
//   - speed: radians per second
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithRevolutionSpeed(speed float32) ObjectBuilderOption {
	return func(o *Object) {
		o.RevolutionSpeed = speed
	}
}

// WithAngles sets the starting self-rotation and revolution angles.
//
// Parameters:
//   - theta: self-rotation angle in radians
//   - phi: revolution angle in radians
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithAngles(theta, phi float32) ObjectBuilderOption {
	return func(o *Object) {
		o.Theta = theta
		o.Phi = phi
	}
}
