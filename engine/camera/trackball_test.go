package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbits/engine/input"
	"github.com/chewxy/math32"
	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/mathgl/mgl32"
)

func TestModeFor(t *testing.T) {
	cases := []struct {
		button input.Button
		mods   input.Modifier
		want   Mode
		ok     bool
	}{
		{input.ButtonLeft, input.ModNone, ModeRotate, true},
		{input.ButtonLeft, input.ModShift, ModeZoom, true},
		{input.ButtonLeft, input.ModControl, ModePan, true},
		{input.ButtonLeft, input.ModShift | input.ModControl, ModeZoom, true},
		{input.ButtonLeft, input.ModAlt, 0, false},
		{input.ButtonRight, input.ModNone, ModeZoom, true},
		{input.ButtonRight, input.ModControl, ModeZoom, true},
		{input.ButtonMiddle, input.ModNone, ModePan, true},
		{input.Button(5), input.ModNone, 0, false},
	}
	for _, c := range cases {
		got, ok := ModeFor(c.button, c.mods)
		if ok != c.ok || (ok && got != c.want) {
			t.Fatalf("button %d mods %b: got %v,%v want %v,%v", c.button, c.mods, got, ok, c.want, c.ok)
		}
	}
}

func TestProjectToSphere(t *testing.T) {
	if p := ProjectToSphere(mgl32.Vec2{0, 0}, 1); p != (mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("center: got %v", p)
	}
	p := ProjectToSphere(mgl32.Vec2{3, 4}, 1)
	if !approxVec3(p, mgl32.Vec3{0.6, 0.8, 0}) {
		t.Fatalf("outside disc: got %v want rim point", p)
	}
	p = ProjectToSphere(mgl32.Vec2{0.3, -0.4}, 1)
	if !approx(p.Len(), 1) || p[2] <= 0 {
		t.Fatalf("inside disc: got %v want front hemisphere", p)
	}
}

func TestArcballHorizontalDragIsYaw(t *testing.T) {
	axis, angle := ArcballRotation(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, 1)
	if !approxVec3(axis, mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("axis: got %v want +Y", axis)
	}
	if !approx(angle, math32.Pi/2) {
		t.Fatalf("angle: got %v want π/2", angle)
	}
}

func TestArcballOppositeRimPointsIsHalfTurn(t *testing.T) {
	axis, angle := ArcballRotation(mgl32.Vec2{-1, 0}, mgl32.Vec2{1, 0}, 1)
	if !approx(angle, math32.Pi) {
		t.Fatalf("angle: got %v want π", angle)
	}
	if !approx(axis.Len(), 1) || !approx(axis.Dot(mgl32.Vec3{1, 0, 0}), 0) {
		t.Fatalf("axis: got %v want unit and perpendicular to X", axis)
	}
	if !approxVec3(axis, mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("axis: got %v want +Y", axis)
	}
}

func TestRotateEdgeToEdgeDoesNotSnapBack(t *testing.T) {
	near := func(a, b mgl32.Vec3) bool { return a.Sub(b).Len() < 0.05 }

	for _, x := range []float32{1, 1.5} {
		c := NewCamera()
		tb := NewTrackball()
		tb.Begin(c, ModeRotate, mgl32.Vec2{-1, 0})
		tb.UpdateRotate(mgl32.Vec2{0.999, 0})
		almost := c.Pose().Eye
		tb.UpdateRotate(mgl32.Vec2{x, 0})
		eye := c.Pose().Eye

		if !near(eye, mgl32.Vec3{0, 0, -100}) {
			t.Fatalf("x=%v: eye got %v want (0,0,-100)", x, eye)
		}
		if eye.Sub(almost).Len() > 10 {
			t.Fatalf("x=%v: eye jumped from %v to %v", x, almost, eye)
		}
	}
}

func TestRotateIdentityWhenCursorUnmoved(t *testing.T) {
	c := NewCamera()
	before := c.Pose()
	tb := NewTrackball()

	tb.Begin(c, ModeRotate, mgl32.Vec2{0.2, 0.3})
	tb.UpdateRotate(mgl32.Vec2{0.2, 0.3})

	if c.Pose() != before {
		t.Fatalf("pose changed: %s", spew.Sdump(c.Pose()))
	}
}

func TestRotateHorizontalDragYawsAboutCameraUp(t *testing.T) {
	c := NewCamera()
	before := c.Pose()
	tb := NewTrackball()

	tb.Begin(c, ModeRotate, mgl32.Vec2{0, 0})
	tb.UpdateRotate(mgl32.Vec2{1, 0})
	after := c.Pose()

	if !approxVec3(after.Up, before.Up) {
		t.Fatalf("up changed: %v -> %v", before.Up, after.Up)
	}
	if !approx(after.Distance(), before.Distance()) {
		t.Fatalf("distance: got %v want %v", after.Distance(), before.Distance())
	}
	if d := after.Eye.Sub(after.At).Dot(after.Up); !approx(d, 0) {
		t.Fatalf("eye left the yaw plane: offset·up = %v", d)
	}
	if !approxVec3(after.Eye, mgl32.Vec3{-100, 0, 0}) {
		t.Fatalf("eye: got %v want (-100,0,0)", after.Eye)
	}
}

func TestRotateIsComputedFromSnapshot(t *testing.T) {
	c := NewCamera()
	before := c.Pose()
	tb := NewTrackball()

	tb.Begin(c, ModeRotate, mgl32.Vec2{-0.1, 0.1})
	tb.UpdateRotate(mgl32.Vec2{0.5, -0.4})
	tb.UpdateRotate(mgl32.Vec2{0.9, 0.6})
	tb.UpdateRotate(mgl32.Vec2{-0.1, 0.1})

	if !approxPose(c.Pose(), before) {
		t.Fatalf("returning to the start point did not restore the pose: %s", spew.Sdump(c.Pose()))
	}
}

func TestRotatePreservesDistance(t *testing.T) {
	c := NewCamera(WithEye(mgl32.Vec3{30, -20, 60}), WithTarget(mgl32.Vec3{5, 5, 5}))
	d0 := c.Pose().Distance()
	tb := NewTrackball()

	tb.Begin(c, ModeRotate, mgl32.Vec2{0.1, -0.2})
	for _, p := range []mgl32.Vec2{{0.4, 0.2}, {-0.7, 0.9}, {1.5, -1.5}} {
		tb.UpdateRotate(p)
		if d := c.Pose().Distance(); math32.Abs(d-d0) > 1e-3 {
			t.Fatalf("at %v distance %v want %v", p, d, d0)
		}
		if c.Pose().At != (mgl32.Vec3{5, 5, 5}) {
			t.Fatalf("target moved: %v", c.Pose().At)
		}
	}
}

func TestZoomPositiveAndMonotonic(t *testing.T) {
	c := NewCamera()
	tb := NewTrackball()
	tb.Begin(c, ModeZoom, mgl32.Vec2{0, 0})

	prev := float32(math.MaxFloat32)
	for _, y := range []float32{-1, -0.5, 0, 0.25, 0.5, 1, 2} {
		tb.UpdateZoom(mgl32.Vec2{0.3, y})
		d := c.Pose().Distance()
		if d <= 0 {
			t.Fatalf("y=%v: distance %v not positive", y, d)
		}
		if d >= prev {
			t.Fatalf("y=%v: distance %v not below previous %v", y, d, prev)
		}
		prev = d
	}

	tb.UpdateZoom(mgl32.Vec2{0, 1})
	want := 100 * math32.Exp(-1.5)
	if d := c.Pose().Distance(); !approx(d, want) {
		t.Fatalf("distance: got %v want %v", d, want)
	}
}

func TestZoomClampsToMinDistance(t *testing.T) {
	c := NewCamera()
	tb := NewTrackball(WithMinDistance(0.5))
	tb.Begin(c, ModeZoom, mgl32.Vec2{0, -1})
	tb.UpdateZoom(mgl32.Vec2{0, 100})

	if d := c.Pose().Distance(); !approx(d, 0.5) {
		t.Fatalf("distance: got %v want 0.5", d)
	}
	dir := c.Pose().Eye.Sub(c.Pose().At).Normalize()
	if !approxVec3(dir, mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("view direction changed: %v", dir)
	}
}

func TestPanPreservesViewDirection(t *testing.T) {
	c := NewCamera()
	before := c.Pose()
	tb := NewTrackball()

	tb.Begin(c, ModePan, mgl32.Vec2{0, 0})
	tb.UpdatePan(mgl32.Vec2{0.2, -0.1})
	after := c.Pose()

	dirBefore := before.At.Sub(before.Eye).Normalize()
	dirAfter := after.At.Sub(after.Eye).Normalize()
	if !approxVec3(dirBefore, dirAfter) {
		t.Fatalf("direction: %v -> %v", dirBefore, dirAfter)
	}
	if !approx(after.Distance(), before.Distance()) {
		t.Fatalf("distance: %v -> %v", before.Distance(), after.Distance())
	}
	if !approxVec3(after.At, mgl32.Vec3{-10, 5, 0}) {
		t.Fatalf("target: got %v want (-10,5,0)", after.At)
	}
}

func TestEndThenUpdateIsNoOp(t *testing.T) {
	c := NewCamera()
	tb := NewTrackball()
	tb.Begin(c, ModePan, mgl32.Vec2{0, 0})
	tb.End()
	before := c.Pose()

	tb.Update(mgl32.Vec2{0.5, 0.5})
	tb.UpdatePan(mgl32.Vec2{0.5, 0.5})
	tb.UpdateRotate(mgl32.Vec2{0.5, 0.5})
	tb.UpdateZoom(mgl32.Vec2{0.5, 0.5})

	if c.Pose() != before {
		t.Fatalf("pose changed after End: %s", spew.Sdump(c.Pose()))
	}
	if tb.Active() {
		t.Fatalf("still active after End")
	}
}

func TestUpdateWhileIdleIsNoOp(t *testing.T) {
	tb := NewTrackball()
	tb.Update(mgl32.Vec2{1, 1})
	tb.UpdateRotate(mgl32.Vec2{1, 1})
	tb.End()
	if tb.Active() {
		t.Fatalf("idle trackball reports active")
	}
}

func TestMismatchedUpdateIsIgnored(t *testing.T) {
	c := NewCamera()
	before := c.Pose()
	tb := NewTrackball()

	tb.Begin(c, ModeZoom, mgl32.Vec2{0, 0})
	tb.UpdateRotate(mgl32.Vec2{0.8, 0})
	tb.UpdatePan(mgl32.Vec2{0.8, 0})

	if c.Pose() != before {
		t.Fatalf("pose changed by a mismatched update: %s", spew.Sdump(c.Pose()))
	}
	if tb.Mode() != ModeZoom {
		t.Fatalf("mode: got %v want zoom", tb.Mode())
	}
}

func TestResetInvalidatesSession(t *testing.T) {
	c := NewCamera()
	tb := NewTrackball()
	tb.Begin(c, ModeRotate, mgl32.Vec2{0, 0})
	tb.UpdateRotate(mgl32.Vec2{0.5, 0})

	c.Reset()
	reset := c.Pose()
	tb.UpdateRotate(mgl32.Vec2{0.9, 0})

	if c.Pose() != reset {
		t.Fatalf("stale session moved the camera: %s", spew.Sdump(c.Pose()))
	}
	if tb.Active() {
		t.Fatalf("session survived Reset")
	}
}

func TestSnapshotIsIndependentOfLaterPoseChanges(t *testing.T) {
	c := NewCamera()
	before := c.Pose()
	tb := NewTrackball()

	tb.Begin(c, ModePan, mgl32.Vec2{0.1, 0.1})
	c.SetPose(Pose{Eye: mgl32.Vec3{1, 2, 3}, Up: mgl32.Vec3{0, 1, 0}})
	tb.UpdatePan(mgl32.Vec2{0.1, 0.1})

	if c.Pose() != before {
		t.Fatalf("pan with zero delta should restore the snapshot: %s", spew.Sdump(c.Pose()))
	}
}
