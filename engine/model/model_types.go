package model

import (
	"github.com/pkg/errors"
)

// ErrEmptyVertices is returned when a mesh with no vertices is prepared for upload.
var ErrEmptyVertices = errors.New("vertices is empty")

// Edge is an undirected mesh edge stored with A < B.
type Edge struct {
	A, B uint32
}

// newEdge orders the endpoints so that each undirected edge has a single representation.
func newEdge(a, b uint32) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// EdgeList returns the unique edges of a triangle list as a line-list index buffer,
// in order of first appearance.
//
// Parameters:
//   - indices: triangle-list indices (length must be a multiple of 3)
//
// Returns:
//   - []uint32: pairs of vertex indices, one pair per unique edge
func EdgeList(indices []uint32) []uint32 {
	seen := make(map[Edge]struct{}, len(indices))
	lines := make([]uint32, 0, len(indices))
	for t := 0; t+2 < len(indices); t += 3 {
		tri := [3]uint32{indices[t], indices[t+1], indices[t+2]}
		for k := range 3 {
			e := newEdge(tri[k], tri[(k+1)%3])
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			lines = append(lines, e.A, e.B)
		}
	}
	return lines
}
