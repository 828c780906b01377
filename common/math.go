package common

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Scale builds a uniform scale matrix.
//
// Parameters:
//   - s: scale factor applied to all three axes
//
// Returns:
//   - mgl32.Mat4: diag(s, s, s, 1)
func Scale(s float32) mgl32.Mat4 {
	return mgl32.Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}
}

// RotationZ builds a right-handed rotation about +Z (counter-clockwise looking down -Z).
// The matrix is stored in column-major order.
//
// Parameters:
//   - angle: rotation angle in radians
//
// Returns:
//   - mgl32.Mat4: the rotation matrix
func RotationZ(angle float32) mgl32.Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return mgl32.Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation builds a translation matrix. The offset lives in the fourth column.
//
// Parameters:
//   - t: translation vector
//
// Returns:
//   - mgl32.Mat4: the translation matrix
func Translation(t mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		t[0], t[1], t[2], 1,
	}
}

// Perspective creates a perspective projection matrix.
// Compatible with WebGPU clip space, where depth maps to [0, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / math32.Tan(fovY/2.0)
	var out mgl32.Mat4

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// LookAt creates a view matrix that positions and orients the camera.
// A degenerate eye/center or up/forward pair falls back to unit length instead of NaN.
//
// Parameters:
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation
//
// Returns:
//   - mgl32.Mat4: world-to-view transform
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	z := safeNormalize(eye.Sub(center))
	x := safeNormalize(up.Cross(z))
	y := z.Cross(x)

	return mgl32.Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// RowMajor returns the 16 elements of m in row-major order, the layout fauxgl and most
// textbooks print matrices in.
func RowMajor(m mgl32.Mat4) [16]float32 {
	t := m.Transpose()
	return [16]float32(t)
}

func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}
