// Package frame holds the per-frame draw description handed from the application state
// to a renderer.
package frame

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ColorMode selects how the debug shader colors a fragment from its texture coordinate.
type ColorMode int

const (
	// ColorTexCoord colors by (u, v, 0).
	ColorTexCoord ColorMode = iota
	// ColorU colors by (u, u, u).
	ColorU
	// ColorV colors by (v, v, v).
	ColorV

	colorModeCount
)

// Next returns the following mode, wrapping after ColorV.
func (m ColorMode) Next() ColorMode {
	return (m + 1) % colorModeCount
}

// Shade returns the color for a texture coordinate under this mode.
func (m ColorMode) Shade(uv mgl32.Vec2) mgl32.Vec4 {
	switch m {
	case ColorU:
		return mgl32.Vec4{uv[0], uv[0], uv[0], 1}
	case ColorV:
		return mgl32.Vec4{uv[1], uv[1], uv[1], 1}
	default:
		return mgl32.Vec4{uv[0], uv[1], 0, 1}
	}
}

// Descriptor is everything a renderer needs to draw one frame. Models and Colors are
// parallel slices in draw order. Width and Height are the viewport size in pixels.
type Descriptor struct {
	Width      int
	Height     int
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	Models     []mgl32.Mat4
	Colors     []mgl32.Vec4
	ColorMode  ColorMode
	Wireframe  bool
}

// ViewProjection returns Projection * View.
func (d *Descriptor) ViewProjection() mgl32.Mat4 {
	return d.Projection.Mul4(d.View)
}
