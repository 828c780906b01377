package camera

import (
	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the camera placement: eye position, look-at target and up hint.
type Pose struct {
	Eye mgl32.Vec3
	At  mgl32.Vec3
	Up  mgl32.Vec3
}

// Distance returns |Eye - At|.
func (p Pose) Distance() float32 {
	return p.Eye.Sub(p.At).Len()
}

// Basis computes the camera's local axes consistent with the view matrix.
// back points from the target towards the eye. If eye and target coincide all three are zero.
//
// Returns:
//   - right, up, back: orthonormal camera-space axes expressed in world space
func (p Pose) Basis() (right, up, back mgl32.Vec3) {
	b := p.Eye.Sub(p.At)
	if b.Len() < 1e-8 {
		return
	}
	back = b.Normalize()
	r := p.Up.Cross(back)
	if r.Len() < 1e-8 {
		return mgl32.Vec3{}, mgl32.Vec3{}, back
	}
	right = r.Normalize()
	up = back.Cross(right)
	return right, up, back
}

type cameraImpl struct {
	pose Pose

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4

	// defaults are the construction-time values restored by Reset.
	defaults cameraDefaults
	epoch    uint64
}

// cameraDefaults is the resettable part of a camera.
type cameraDefaults struct {
	pose           Pose
	fov, near, far float32
}

// Camera defines the interface for the camera model.
// The camera holds a pose and perspective settings and keeps its view and projection
// matrices in sync with them.
type Camera interface {
	// Pose returns the current eye, target and up vectors.
	//
	// Returns:
	//   - Pose: the current pose
	Pose() Pose

	// SetPose replaces the pose and recomputes the view matrix.
	//
	// Parameters:
	//   - p: the new pose
	SetPose(p Pose)

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current world-to-view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix (WebGPU depth range).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns Projection * View.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// SetFov sets the field of view in radians and recomputes the projection.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes the projection.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes the projection.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes the projection.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// Reset restores the pose, field of view and clip planes the camera was built with.
	// The aspect ratio follows the viewport and is kept. Trackball sessions begun before
	// the reset are invalidated.
	Reset()

	// Epoch returns a counter incremented by every Reset.
	//
	// Returns:
	//   - uint64: the reset count
	Epoch() uint64
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera looking from (0, 0, 100) at the origin with +Y up,
// a 45 degree field of view, 16:9 aspect and clip planes at 1 and 1000.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		pose: Pose{
			Eye: mgl32.Vec3{0, 0, 100},
			At:  mgl32.Vec3{0, 0, 0},
			Up:  mgl32.Vec3{0, 1, 0},
		},
		fov:    math32.Pi / 4,
		aspect: 16.0 / 9.0,
		near:   1,
		far:    1000,
	}
	for _, option := range options {
		option(c)
	}
	c.defaults = cameraDefaults{pose: c.pose, fov: c.fov, near: c.near, far: c.far}
	c.updateView()
	c.updateProjection()
	return c
}

func (c *cameraImpl) Pose() Pose {
	return c.pose
}

func (c *cameraImpl) SetPose(p Pose) {
	c.pose = p
	c.updateView()
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	return c.projectionMatrix.Mul4(c.viewMatrix)
}

func (c *cameraImpl) SetFov(fov float32) {
	c.fov = fov
	c.updateProjection()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.aspect = aspect
	c.updateProjection()
}

func (c *cameraImpl) SetNear(near float32) {
	c.near = near
	c.updateProjection()
}

func (c *cameraImpl) SetFar(far float32) {
	c.far = far
	c.updateProjection()
}

func (c *cameraImpl) Reset() {
	d := c.defaults
	c.pose = d.pose
	c.fov, c.near, c.far = d.fov, d.near, d.far
	c.epoch++
	c.updateView()
	c.updateProjection()
}

func (c *cameraImpl) Epoch() uint64 {
	return c.epoch
}

func (c *cameraImpl) updateView() {
	c.viewMatrix = common.LookAt(c.pose.Eye, c.pose.At, c.pose.Up)
}

func (c *cameraImpl) updateProjection() {
	c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
}
