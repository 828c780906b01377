// Package orbit animates bodies that spin about their own +Z axis while revolving about the
// world +Z axis.
package orbit

import (
	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/go-gl/mathgl/mgl32"
)

// SelfRotationGain multiplies RotationSpeed when advancing Theta. Revolution has no gain.
const SelfRotationGain float32 = 5.0

// Object is one orbiting, self-rotating body. Theta and Phi are unbounded angles in radians.
type Object struct {
	// Center is the position of the body relative to the revolution axis.
	Center mgl32.Vec3
	// Radius is the uniform scale applied to the unit mesh.
	Radius float32
	// Theta is the self-rotation angle.
	Theta float32
	// Phi is the revolution angle.
	Phi float32
	// Color is the RGBA tint in [0, 1].
	Color mgl32.Vec4
	// RotationSpeed is the self-rotation rate before SelfRotationGain, in radians per second.
	RotationSpeed float32
	// RevolutionSpeed is the revolution rate in radians per second.
	RevolutionSpeed float32

	model   mgl32.Mat4
	updated bool
}

// NewObject creates an Object with unit radius, opaque white color and zero speeds, then
// applies the options in order. The model matrix is computed once so it is valid immediately.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - *Object: the configured object
func NewObject(options ...ObjectBuilderOption) *Object {
	o := &Object{
		Radius: 1,
		Color:  mgl32.Vec4{1, 1, 1, 1},
	}
	for _, opt := range options {
		opt(o)
	}
	o.Update(0)
	return o
}

// Update advances both angles by dt seconds and recomputes the model matrix as
// RotationZ(phi) * Translation(center) * RotationZ(theta) * Scale(radius).
// A dt of zero recomputes the same matrix.
//
// Parameters:
//   - dt: elapsed simulation time in seconds
func (o *Object) Update(dt float32) {
	o.Theta += dt * o.RotationSpeed * SelfRotationGain
	o.Phi += dt * o.RevolutionSpeed

	o.model = common.RotationZ(o.Phi).
		Mul4(common.Translation(o.Center)).
		Mul4(common.RotationZ(o.Theta)).
		Mul4(common.Scale(o.Radius))
	o.updated = true
}

// ModelMatrix returns the model matrix as of the last Update.
func (o *Object) ModelMatrix() mgl32.Mat4 {
	return o.model
}

// Updated reports whether Update has run at least once.
func (o *Object) Updated() bool {
	return o.updated
}

// WorldCenter returns the current world position of the body center.
func (o *Object) WorldCenter() mgl32.Vec3 {
	return o.model.Col(3).Vec3()
}
