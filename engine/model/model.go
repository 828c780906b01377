package model

import (
	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// model is the implementation of the Model interface.
type model struct {
	name           string
	vertices       []GPUVertex
	indices        []uint32
	lineIndices    []uint32
	boundingRadius float32
}

// Model defines the interface for a CPU-side indexed triangle mesh.
// The mesh also carries a line-list index buffer of its unique edges for wireframe drawing.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices returns the mesh vertices.
	//
	// Returns:
	//   - []GPUVertex: the vertices (shared, do not modify)
	Vertices() []GPUVertex

	// Indices returns the triangle-list indices.
	//
	// Returns:
	//   - []uint32: three indices per triangle (shared, do not modify)
	Indices() []uint32

	// LineIndices returns the line-list indices of the unique mesh edges.
	//
	// Returns:
	//   - []uint32: two indices per edge (shared, do not modify)
	LineIndices() []uint32

	// VertexData returns the raw vertex data for GPU upload.
	//
	// Returns:
	//   - []byte: the vertex data, nil when the mesh is empty
	VertexData() []byte

	// IndexData returns the raw triangle index data for GPU upload.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// LineIndexData returns the raw line index data for GPU upload.
	//
	// Returns:
	//   - []byte: the line index data
	LineIndexData() []byte

	// IndexCount returns the number of triangle indices.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// LineIndexCount returns the number of line indices.
	//
	// Returns:
	//   - int: the line index count
	LineIndexCount() int

	// BoundingRadius returns the bounding sphere radius for this model, measured as
	// the maximum vertex distance from the origin. Used by frustum culling.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// Validate checks that the mesh can be uploaded.
	//
	// Returns:
	//   - error: ErrEmptyVertices for an empty mesh, or an error naming the first
	//     out-of-range index
	Validate() error
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
// The edge list and bounding radius are derived from the final vertices and indices.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	m.lineIndices = EdgeList(m.indices)
	for i := range m.vertices {
		m.boundingRadius = max(m.boundingRadius, mgl32.Vec3(m.vertices[i].Position).Len())
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) LineIndices() []uint32 {
	return m.lineIndices
}

func (m *model) VertexData() []byte {
	return common.SliceToBytes(m.vertices)
}

func (m *model) IndexData() []byte {
	return common.SliceToBytes(m.indices)
}

func (m *model) LineIndexData() []byte {
	return common.SliceToBytes(m.lineIndices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) LineIndexCount() int {
	return len(m.lineIndices)
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) Validate() error {
	if len(m.vertices) == 0 {
		return ErrEmptyVertices
	}
	n := uint32(len(m.vertices))
	for i, idx := range m.indices {
		if idx >= n {
			return errors.Errorf("model %q: index %d at position %d exceeds vertex count %d", m.name, idx, i, n)
		}
	}
	return nil
}
