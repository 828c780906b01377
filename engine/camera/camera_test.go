package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= eps
}

func approxVec3(a, b mgl32.Vec3) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

func approxPose(a, b Pose) bool {
	return approxVec3(a.Eye, b.Eye) && approxVec3(a.At, b.At) && approxVec3(a.Up, b.Up)
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	want := Pose{Eye: mgl32.Vec3{0, 0, 100}, Up: mgl32.Vec3{0, 1, 0}}
	if c.Pose() != want {
		t.Fatalf("pose: got %s want %s", spew.Sdump(c.Pose()), spew.Sdump(want))
	}
	if c.Fov() != math32.Pi/4 || c.Aspect() != 16.0/9.0 || c.Near() != 1 || c.Far() != 1000 {
		t.Fatalf("perspective: fov %v aspect %v near %v far %v", c.Fov(), c.Aspect(), c.Near(), c.Far())
	}
	if d := c.Pose().Distance(); d != 100 {
		t.Fatalf("distance: got %v want 100", d)
	}
}

func TestViewMatrixFollowsPose(t *testing.T) {
	c := NewCamera()
	c.SetPose(Pose{Eye: mgl32.Vec3{10, 20, 30}, At: mgl32.Vec3{1, 2, 3}, Up: mgl32.Vec3{0, 1, 0}})

	v := c.ViewMatrix()
	eye := v.Mul4x1(mgl32.Vec4{10, 20, 30, 1}).Vec3()
	if !approxVec3(eye, mgl32.Vec3{}) {
		t.Fatalf("eye in view space: got %v want origin", eye)
	}
	at := v.Mul4x1(mgl32.Vec4{1, 2, 3, 1}).Vec3()
	if !approx(at[0], 0) || !approx(at[1], 0) || at[2] >= 0 {
		t.Fatalf("target in view space: got %v want on -Z", at)
	}
}

func TestSetAspectOnlyChangesAspectTerm(t *testing.T) {
	c := NewCamera()
	wide := c.ProjectionMatrix()
	c.SetAspect(4.0 / 3.0)
	narrow := c.ProjectionMatrix()

	for i := 1; i < 16; i++ {
		if wide[i] != narrow[i] {
			t.Fatalf("element %d changed: %v -> %v", i, wide[i], narrow[i])
		}
	}
	if !approx(wide[0]*16/9, narrow[0]*4/3) {
		t.Fatalf("f mismatch: %v vs %v", wide[0]*16/9, narrow[0]*4/3)
	}
}

func TestProjectionParametersRecompute(t *testing.T) {
	c := NewCamera()
	before := c.ProjectionMatrix()
	c.SetFov(math32.Pi / 2)
	if c.ProjectionMatrix() == before {
		t.Fatalf("projection unchanged after SetFov")
	}
	before = c.ProjectionMatrix()
	c.SetNear(0.5)
	if c.ProjectionMatrix() == before {
		t.Fatalf("projection unchanged after SetNear")
	}
	before = c.ProjectionMatrix()
	c.SetFar(50)
	if c.ProjectionMatrix() == before {
		t.Fatalf("projection unchanged after SetFar")
	}
}

func TestResetRestoresBuildValues(t *testing.T) {
	c := NewCamera(WithEye(mgl32.Vec3{0, -50, 50}), WithFov(1))
	built := c.Pose()
	builtView := c.ViewMatrix()

	c.SetPose(Pose{Eye: mgl32.Vec3{3, 3, 3}, Up: mgl32.Vec3{0, 0, 1}})
	c.SetFov(0.2)
	c.SetAspect(2)
	c.Reset()

	if c.Pose() != built {
		t.Fatalf("pose: got %s want %s", spew.Sdump(c.Pose()), spew.Sdump(built))
	}
	if c.Fov() != 1 {
		t.Fatalf("fov: got %v want 1", c.Fov())
	}
	if c.Aspect() != 2 {
		t.Fatalf("aspect follows the viewport: got %v want 2", c.Aspect())
	}
	if c.ViewMatrix() != builtView {
		t.Fatalf("view matrix not restored")
	}
	if c.Epoch() != 1 {
		t.Fatalf("epoch: got %d want 1", c.Epoch())
	}
}

func TestPoseBasisIsOrthonormal(t *testing.T) {
	p := Pose{Eye: mgl32.Vec3{4, 5, 6}, At: mgl32.Vec3{-1, 0, 2}, Up: mgl32.Vec3{0.2, 1, 0}}
	r, u, b := p.Basis()
	for name, v := range map[string]mgl32.Vec3{"right": r, "up": u, "back": b} {
		if !approx(v.Len(), 1) {
			t.Fatalf("%s not unit: %v", name, v)
		}
	}
	if !approx(r.Dot(u), 0) || !approx(r.Dot(b), 0) || !approx(u.Dot(b), 0) {
		t.Fatalf("basis not orthogonal: %v %v %v", r, u, b)
	}
	if !approxVec3(r.Cross(u), b) {
		t.Fatalf("basis not right-handed: %v x %v != %v", r, u, b)
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	c := NewCamera()
	u := GPUCameraUniform{
		View:       c.ViewMatrix(),
		Projection: c.ProjectionMatrix(),
		Eye:        c.Pose().Eye,
		ColorMode:  2,
	}
	if u.Size() != 144 {
		t.Fatalf("size: got %d want 144", u.Size())
	}
	buf := u.Marshal()
	if len(buf) != 144 {
		t.Fatalf("marshaled length: got %d want 144", len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[64:])); got != u.Projection[0] {
		t.Fatalf("projection[0]: got %v want %v", got, u.Projection[0])
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[136:])); got != 100 {
		t.Fatalf("eye.z: got %v want 100", got)
	}
	if got := binary.LittleEndian.Uint32(buf[140:]); got != 2 {
		t.Fatalf("color mode: got %d want 2", got)
	}
}
