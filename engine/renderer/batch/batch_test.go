package batch

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/frame"
	"github.com/go-gl/mathgl/mgl32"
)

func testFrame(models ...mgl32.Mat4) frame.Descriptor {
	colors := make([]mgl32.Vec4, len(models))
	for i := range colors {
		colors[i] = mgl32.Vec4{float32(i), 0.5, 0.25, 1}
	}
	return frame.Descriptor{
		Width:      640,
		Height:     480,
		View:       common.LookAt(mgl32.Vec3{0, 0, 100}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
		Projection: common.Perspective(math.Pi/4, 4.0/3.0, 1, 1000),
		Models:     models,
		Colors:     colors,
	}
}

func readFloat(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestGPUObjectUniformLayout(t *testing.T) {
	u := GPUObjectUniform{Model: mgl32.Translate3D(1, 2, 3), Color: [4]float32{0.1, 0.2, 0.3, 0.4}}
	if u.Size() != 80 {
		t.Fatalf("size: got %d want 80", u.Size())
	}
	buf := u.Marshal()
	if got := readFloat(buf, 12*4); got != 1 {
		t.Fatalf("translation x at element 12: got %v", got)
	}
	if got := readFloat(buf, 64+3*4); got != 0.4 {
		t.Fatalf("alpha: got %v", got)
	}
}

func TestBuildCullsOutsideFrustum(t *testing.T) {
	b := NewBatch(WithWorkers(2))
	defer b.Release()

	d := testFrame(
		mgl32.Translate3D(0, 0, 0),
		mgl32.Translate3D(0, 0, 200).Mul4(common.Scale(2)),
		mgl32.Translate3D(5000, 0, 0),
		mgl32.Translate3D(10, 0, 0).Mul4(common.Scale(0.5)),
	)
	n := b.Build(d, 1)
	if n != 2 {
		t.Fatalf("visible: got %d want 2 (%v)", n, b.Visible())
	}
	if b.Visible()[0] != 0 || b.Visible()[1] != 3 {
		t.Fatalf("visible order: %v", b.Visible())
	}
	if b.Offsets()[1] != UniformStride || len(b.Data()) != 2*UniformStride {
		t.Fatalf("offsets %v data %d", b.Offsets(), len(b.Data()))
	}
	if got := readFloat(b.Data(), UniformStride+12*4); got != 10 {
		t.Fatalf("second slot translation: got %v want 10", got)
	}
}

func TestBuildSphereStraddlingPlaneIsKept(t *testing.T) {
	b := NewBatch(WithWorkers(1))
	defer b.Release()

	// Center just past the far plane, radius reaching back inside.
	d := testFrame(mgl32.Translate3D(0, 0, -905).Mul4(common.Scale(10)))
	if n := b.Build(d, 1); n != 1 {
		t.Fatalf("straddling sphere culled")
	}
}

func TestBuildWithoutCulling(t *testing.T) {
	b := NewBatch(WithWorkers(1), WithCulling(false))
	defer b.Release()

	d := testFrame(mgl32.Translate3D(5000, 0, 0), mgl32.Translate3D(0, 0, 500))
	if n := b.Build(d, 1); n != 2 {
		t.Fatalf("got %d want 2", n)
	}
}

func TestBuildParallelMatchesInline(t *testing.T) {
	models := make([]mgl32.Mat4, 300)
	for i := range models {
		models[i] = mgl32.Translate3D(float32(i%20)-10, float32(i/20)-7, 0)
	}
	d := testFrame(models...)

	inline := NewBatch(WithWorkers(1), WithChunkSize(1000))
	defer inline.Release()
	parallel := NewBatch(WithWorkers(4), WithChunkSize(16))
	defer parallel.Release()

	n1 := inline.Build(d, 0.5)
	n2 := parallel.Build(d, 0.5)
	if n1 != len(models) || n2 != n1 {
		t.Fatalf("visible: inline %d parallel %d want %d", n1, n2, len(models))
	}
	a, b := inline.Data(), parallel.Data()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("byte %d differs (object %d)", i, i/UniformStride)
		}
	}
	for k := range n2 {
		if got := readFloat(b, k*UniformStride+64); got != float32(k) {
			t.Fatalf("object %d color red: got %v", k, got)
		}
	}

	// Reuse across frames shrinks the block.
	if n := parallel.Build(testFrame(models[:3]...), 0.5); n != 3 || len(parallel.Data()) != 3*UniformStride {
		t.Fatalf("rebuild: n %d len %d", n, len(parallel.Data()))
	}
}
