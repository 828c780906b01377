package model

import (
	"github.com/chewxy/math32"
)

const (
	// DefaultStacks is the latitude resolution of the default sphere.
	DefaultStacks = 36
	// DefaultSlices is the longitude resolution of the default sphere.
	DefaultSlices = 72
)

// UVSphere generates a unit sphere around the Z axis. Vertex (i, j) sits at polar angle
// θ = π·i/stacks and azimuth φ = 2π·j/slices, with position = normal =
// (sinθ·cosφ, sinθ·sinφ, cosθ) and texcoord (φ/2π, 1-θ/π). The seam column is duplicated
// so texcoords do not wrap. Triangles touching a pole are emitted once per slice, so the
// list holds (stacks-1)·slices·6 indices, wound counter-clockwise seen from outside.
//
// Parameters:
//   - stacks: latitude segments (>= 2)
//   - slices: longitude segments (>= 3)
//
// Returns:
//   - []GPUVertex: (stacks+1)·(slices+1) vertices
//   - []uint32: triangle-list indices
func UVSphere(stacks, slices int) ([]GPUVertex, []uint32) {
	if stacks < 2 || slices < 3 {
		return nil, nil
	}

	vertices := make([]GPUVertex, 0, (stacks+1)*(slices+1))
	for i := 0; i <= stacks; i++ {
		theta := math32.Pi * float32(i) / float32(stacks)
		st, ct := math32.Sin(theta), math32.Cos(theta)
		for j := 0; j <= slices; j++ {
			phi := 2 * math32.Pi * float32(j) / float32(slices)
			p := [3]float32{st * math32.Cos(phi), st * math32.Sin(phi), ct}
			vertices = append(vertices, GPUVertex{
				Position: p,
				Normal:   p,
				TexCoord: [2]float32{float32(j) / float32(slices), 1 - float32(i)/float32(stacks)},
			})
		}
	}

	row := uint32(slices + 1)
	indices := make([]uint32, 0, (stacks-1)*slices*6)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			k := uint32(i)*row + uint32(j)
			if i != 0 {
				indices = append(indices, k, k+row, k+1)
			}
			if i != stacks-1 {
				indices = append(indices, k+1, k+row, k+row+1)
			}
		}
	}
	return vertices, indices
}

// NewSphere creates the default 36x72 unit sphere model.
//
// Returns:
//   - Model: the sphere mesh
func NewSphere() Model {
	return NewModel(WithName("uv_sphere"), WithUVSphere(DefaultStacks, DefaultSlices))
}
