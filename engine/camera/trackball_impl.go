package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// trackballImpl is the single implementation of Trackball.
type trackballImpl struct {
	cam      Camera
	active   bool
	mode     Mode
	start    mgl32.Vec2
	snapshot Pose
	epoch    uint64

	// Tuning
	radius          float32
	rotationScale   float32
	zoomSensitivity float32
	panSensitivity  float32
	minDistance     float32
}

// Compile-time interface compliance check
var _ Trackball = &trackballImpl{}

// NewTrackball creates an idle trackball with a unit hemisphere, unit rotation scale,
// zoom sensitivity 1.5, pan sensitivity 0.5 and a minimum eye distance of 0.01.
//
// Parameters:
//   - options: functional options to configure the trackball
//
// Returns:
//   - Trackball: the newly created trackball
func NewTrackball(options ...TrackballBuilderOption) Trackball {
	tb := &trackballImpl{
		radius:          1.0,
		rotationScale:   1.0,
		zoomSensitivity: 1.5,
		panSensitivity:  0.5,
		minDistance:     0.01,
	}
	for _, option := range options {
		option(tb)
	}
	return tb
}

func (tb *trackballImpl) Begin(cam Camera, mode Mode, ndc mgl32.Vec2) {
	if cam == nil {
		return
	}
	tb.cam = cam
	tb.mode = mode
	tb.start = ndc
	tb.snapshot = cam.Pose()
	tb.epoch = cam.Epoch()
	tb.active = true
}

func (tb *trackballImpl) Update(ndc mgl32.Vec2) {
	switch tb.mode {
	case ModeRotate:
		tb.UpdateRotate(ndc)
	case ModeZoom:
		tb.UpdateZoom(ndc)
	case ModePan:
		tb.UpdatePan(ndc)
	}
}

func (tb *trackballImpl) UpdateRotate(ndc mgl32.Vec2) {
	if !tb.tracking(ModeRotate) {
		return
	}
	s := tb.snapshot
	axis, angle := ArcballRotation(tb.start, ndc, tb.radius)
	if angle == 0 {
		tb.cam.SetPose(s)
		return
	}
	angle *= tb.rotationScale

	right, up, back := s.Basis()
	worldAxis := right.Mul(axis[0]).Add(up.Mul(axis[1])).Add(back.Mul(axis[2]))
	if worldAxis.Len() == 0 {
		tb.cam.SetPose(s)
		return
	}

	// The camera moves opposite to the cursor so the scene appears to follow it.
	q := mgl32.QuatRotate(-angle, worldAxis.Normalize())
	tb.cam.SetPose(Pose{
		Eye: s.At.Add(q.Rotate(s.Eye.Sub(s.At))),
		At:  s.At,
		Up:  q.Rotate(s.Up),
	})
}

func (tb *trackballImpl) UpdateZoom(ndc mgl32.Vec2) {
	if !tb.tracking(ModeZoom) {
		return
	}
	s := tb.snapshot
	_, _, back := s.Basis()
	d := s.Distance() * math32.Exp(-(ndc[1]-tb.start[1])*tb.zoomSensitivity)
	d = max(d, tb.minDistance)

	tb.cam.SetPose(Pose{
		Eye: s.At.Add(back.Mul(d)),
		At:  s.At,
		Up:  s.Up,
	})
}

func (tb *trackballImpl) UpdatePan(ndc mgl32.Vec2) {
	if !tb.tracking(ModePan) {
		return
	}
	s := tb.snapshot
	right, up, _ := s.Basis()
	delta := ndc.Sub(tb.start)
	offset := right.Mul(delta[0]).Add(up.Mul(delta[1])).Mul(-s.Distance() * tb.panSensitivity)

	tb.cam.SetPose(Pose{
		Eye: s.Eye.Add(offset),
		At:  s.At.Add(offset),
		Up:  s.Up,
	})
}

func (tb *trackballImpl) End() {
	tb.active = false
	tb.cam = nil
}

func (tb *trackballImpl) Active() bool {
	if tb.active && tb.cam.Epoch() != tb.epoch {
		tb.End()
	}
	return tb.active
}

func (tb *trackballImpl) Mode() Mode {
	return tb.mode
}

// tracking reports whether an update of the given kind should be applied.
func (tb *trackballImpl) tracking(mode Mode) bool {
	return tb.Active() && tb.mode == mode
}

// ProjectToSphere lifts an NDC point onto a hemisphere of the given radius facing +Z.
// Points outside the disc of that radius are pulled onto its rim with z = 0.
//
// Parameters:
//   - ndc: point in normalized device coordinates
//   - radius: hemisphere radius
//
// Returns:
//   - mgl32.Vec3: the point on the hemisphere
func ProjectToSphere(ndc mgl32.Vec2, radius float32) mgl32.Vec3 {
	x, y := ndc[0], ndc[1]
	d2 := x*x + y*y
	r2 := radius * radius
	if d2 <= r2 {
		return mgl32.Vec3{x, y, math32.Sqrt(r2 - d2)}
	}
	s := radius / math32.Sqrt(d2)
	return mgl32.Vec3{x * s, y * s, 0}
}

// ArcballRotation returns the camera-space rotation taking the hemisphere point under
// start to the one under cur. Identical points give a zero angle. Opposite points on the
// rim give a half turn about the axis p0 x +Z, which is the limit of nearby drags.
//
// Parameters:
//   - start, cur: drag endpoints in normalized device coordinates
//   - radius: hemisphere radius
//
// Returns:
//   - axis: unit rotation axis in camera space (zero when angle is zero)
//   - angle: rotation angle in radians
func ArcballRotation(start, cur mgl32.Vec2, radius float32) (axis mgl32.Vec3, angle float32) {
	p0 := ProjectToSphere(start, radius)
	p1 := ProjectToSphere(cur, radius)
	c := p0.Cross(p1)
	if c.Len() < 1e-7 {
		if p0.Dot(p1) >= 0 {
			return mgl32.Vec3{}, 0
		}
		return halfTurnAxis(p0), math32.Pi
	}
	dot := p0.Normalize().Dot(p1.Normalize())
	dot = mgl32.Clamp(dot, -1, 1)
	return c.Normalize(), math32.Acos(dot)
}

// halfTurnAxis picks a unit axis perpendicular to p.
func halfTurnAxis(p mgl32.Vec3) mgl32.Vec3 {
	if a := p.Cross(mgl32.Vec3{0, 0, 1}); a.Len() >= 1e-7 {
		return a.Normalize()
	}
	return p.Cross(mgl32.Vec3{1, 0, 0}).Normalize()
}
