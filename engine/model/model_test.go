package model

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestUVSphereCounts(t *testing.T) {
	v, idx := UVSphere(DefaultStacks, DefaultSlices)
	if got, want := len(v), 37*73; got != want {
		t.Fatalf("vertices: got %d want %d", got, want)
	}
	if got, want := len(idx), 35*72*6; got != want {
		t.Fatalf("indices: got %d want %d", got, want)
	}
}

func TestUVSphereVertices(t *testing.T) {
	v, _ := UVSphere(8, 12)
	for i, vert := range v {
		p := mgl32.Vec3(vert.Position)
		if math32.Abs(p.Len()-1) > 1e-5 {
			t.Fatalf("vertex %d not on unit sphere: %v", i, p)
		}
		if vert.Normal != vert.Position {
			t.Fatalf("vertex %d normal %v differs from position %v", i, vert.Normal, vert.Position)
		}
		u, w := vert.TexCoord[0], vert.TexCoord[1]
		if u < 0 || u > 1 || w < 0 || w > 1 {
			t.Fatalf("vertex %d texcoord out of range: %v", i, vert.TexCoord)
		}
	}
	if v[0].Position[2] != 1 || v[0].TexCoord[1] != 1 {
		t.Fatalf("first vertex must be the +Z pole with v=1: %+v", v[0])
	}
	last := v[len(v)-1]
	if last.Position[2] != -1 || last.TexCoord != [2]float32{1, 0} {
		t.Fatalf("last vertex must be the -Z pole seam with uv=(1,0): %+v", last)
	}
}

func TestUVSphereTrianglesFaceOutward(t *testing.T) {
	v, idx := UVSphere(DefaultStacks, DefaultSlices)
	for tri := 0; tri < len(idx); tri += 3 {
		a := mgl32.Vec3(v[idx[tri]].Position)
		b := mgl32.Vec3(v[idx[tri+1]].Position)
		c := mgl32.Vec3(v[idx[tri+2]].Position)
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Len() == 0 {
			t.Fatalf("triangle %d is degenerate: %v %v %v", tri/3, a, b, c)
		}
		if n.Dot(a.Add(b).Add(c)) <= 0 {
			t.Fatalf("triangle %d is wound clockwise from outside", tri/3)
		}
	}
}

func TestUVSphereRejectsTinyResolution(t *testing.T) {
	v, idx := UVSphere(1, 72)
	if v != nil || idx != nil {
		t.Fatalf("expected no geometry for a single stack")
	}
}

func TestEdgeListIsUnique(t *testing.T) {
	// Two triangles sharing the edge 1-2.
	lines := EdgeList([]uint32{0, 1, 2, 2, 1, 3})
	if len(lines) != 10 {
		t.Fatalf("got %d line indices want 10: %v", len(lines), lines)
	}
	seen := map[Edge]bool{}
	for i := 0; i < len(lines); i += 2 {
		e := newEdge(lines[i], lines[i+1])
		if seen[e] {
			t.Fatalf("duplicate edge %v", e)
		}
		seen[e] = true
	}
	if !seen[Edge{1, 2}] {
		t.Fatalf("shared edge missing: %v", lines)
	}
}

func TestSphereModel(t *testing.T) {
	m := NewSphere()
	if err := m.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if m.IndexCount() != 35*72*6 {
		t.Fatalf("index count: got %d", m.IndexCount())
	}
	if len(m.VertexData()) != 37*73*32 {
		t.Fatalf("vertex bytes: got %d want %d", len(m.VertexData()), 37*73*32)
	}
	if len(m.IndexData()) != m.IndexCount()*4 {
		t.Fatalf("index bytes: got %d", len(m.IndexData()))
	}
	if m.LineIndexCount() == 0 || m.LineIndexCount()%2 != 0 {
		t.Fatalf("line index count: got %d", m.LineIndexCount())
	}
	if len(m.LineIndexData()) != m.LineIndexCount()*4 {
		t.Fatalf("line index bytes: got %d", len(m.LineIndexData()))
	}
	if math32.Abs(m.BoundingRadius()-1) > 1e-5 {
		t.Fatalf("bounding radius: got %v want 1", m.BoundingRadius())
	}
}

func TestValidateEmpty(t *testing.T) {
	m := NewModel(WithName("empty"))
	if err := m.Validate(); !errors.Is(err, ErrEmptyVertices) {
		t.Fatalf("got %v want ErrEmptyVertices", err)
	}
	if m.VertexData() != nil {
		t.Fatalf("empty mesh must have no vertex data")
	}
}

func TestValidateIndexRange(t *testing.T) {
	m := NewModel(
		WithVertices([]GPUVertex{{}, {}, {}}),
		WithIndices([]uint32{0, 1, 3}),
	)
	if err := m.Validate(); err == nil || errors.Is(err, ErrEmptyVertices) {
		t.Fatalf("expected an index range error, got %v", err)
	}
}

func TestGPUVertexMarshal(t *testing.T) {
	v := GPUVertex{Position: [3]float32{1, 2, 3}, Normal: [3]float32{4, 5, 6}, TexCoord: [2]float32{7, 8}}
	if v.Size() != 32 {
		t.Fatalf("size: got %d want 32", v.Size())
	}
	buf := v.Marshal()
	raw := (&model{vertices: []GPUVertex{v}}).VertexData()
	if string(buf) != string(raw) {
		t.Fatalf("marshal disagrees with in-memory layout:\n%v\n%v", buf, raw)
	}
}
