package batch

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// UniformStride is the distance in bytes between consecutive object uniforms in the
// per-object buffer. Dynamic uniform offsets must be multiples of
// minUniformBufferOffsetAlignment, which WebGPU caps at 256.
const UniformStride = 256

// GPUObjectUniformSource is the canonical WGSL definition of the ObjectUniform struct.
// Matches GPUObjectUniform layout exactly (80 bytes).
//
//go:embed assets/object_uniform.wgsl
var GPUObjectUniformSource string

// GPUObjectUniform is the GPU-aligned representation of one object's draw data.
// Size: 80 bytes.
type GPUObjectUniform struct {
	Model [16]float32 // offset  0: model-to-world matrix, column-major (mat4x4<f32>)
	Color [4]float32  // offset 64: RGBA color (vec4<f32>)
}

// Size returns the size of the GPUObjectUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUObjectUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUObjectUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUObjectUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	g.MarshalInto(buf)
	return buf
}

// MarshalInto serializes into dst, which must hold at least Size() bytes.
//
// Parameters:
//   - dst: destination buffer
func (g *GPUObjectUniform) MarshalInto(dst []byte) {
	for i := range 16 {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(g.Model[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(dst[64+i*4:], math.Float32bits(g.Color[i]))
	}
}
