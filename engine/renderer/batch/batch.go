// Package batch prepares the per-object uniform block of a frame: it culls objects whose
// bounding sphere lies outside the view frustum and packs the survivors at UniformStride
// intervals, fanning the packing out over a worker pool.
package batch

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/frame"
)

// batch is the implementation of the Batch interface.
type batch struct {
	pool      worker.DynamicWorkerPool
	workers   int
	chunkSize int
	culling   bool

	data    []byte
	visible []int
	offsets []uint32
}

// Batch packs the per-object uniforms of a frame.
type Batch interface {
	// Build culls and packs the objects of d. boundingRadius is the mesh radius in model
	// space; each object's world radius is that times the length of its model X axis.
	//
	// Parameters:
	//   - d: the frame
	//   - boundingRadius: model-space bounding sphere radius of the shared mesh
	//
	// Returns:
	//   - int: number of objects that survived culling
	Build(d frame.Descriptor, boundingRadius float32) int

	// Data returns the packed uniforms of the last Build, UniformStride bytes per object.
	//
	// Returns:
	//   - []byte: the packed block, valid until the next Build
	Data() []byte

	// Visible returns the descriptor indices that survived culling, in draw order.
	//
	// Returns:
	//   - []int: the indices, valid until the next Build
	Visible() []int

	// Offsets returns the dynamic uniform offset of each visible object.
	//
	// Returns:
	//   - []uint32: byte offsets into Data, valid until the next Build
	Offsets() []uint32

	// Release stops the worker pool.
	Release()
}

var _ Batch = &batch{}

// NewBatch creates a Batch. Culling is on, the pool has one worker per CPU and packing is
// split into chunks of 64 objects.
//
// Parameters:
//   - options: functional options to configure the batch
//
// Returns:
//   - Batch: the batch
func NewBatch(options ...BatchBuilderOption) Batch {
	b := &batch{
		workers:   runtime.NumCPU(),
		chunkSize: 64,
		culling:   true,
	}
	for _, opt := range options {
		opt(b)
	}
	// Queue size of 256 leaves headroom for large registries at the default chunk size.
	b.pool = worker.NewDynamicWorkerPool(b.workers, 256, 1*time.Second)
	return b
}

func (b *batch) Build(d frame.Descriptor, boundingRadius float32) int {
	b.visible = b.visible[:0]
	b.offsets = b.offsets[:0]

	var frustum common.Frustum
	if b.culling {
		frustum = common.ExtractFrustumFromMatrix(d.ViewProjection())
	}
	for i, m := range d.Models {
		if b.culling {
			center := m.Col(3).Vec3()
			radius := m.Col(0).Vec3().Len() * boundingRadius
			if !frustum.ContainsSphere(center, radius) {
				continue
			}
		}
		b.visible = append(b.visible, i)
		b.offsets = append(b.offsets, uint32(len(b.offsets)*UniformStride))
	}

	n := len(b.visible)
	if need := n * UniformStride; cap(b.data) < need {
		b.data = make([]byte, need)
	} else {
		b.data = b.data[:need]
	}

	if n <= b.chunkSize {
		b.pack(d, 0, n)
		return n
	}

	// Per-frame barrier: pool.Wait blocks until workers idle out, so a WaitGroup is used.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < n; start += b.chunkSize {
		end := min(start+b.chunkSize, n)
		wg.Add(1)
		s, e := start, end
		b.pool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				b.pack(d, s, e)
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()
	return n
}

// pack marshals visible objects [start, end) into their slots.
func (b *batch) pack(d frame.Descriptor, start, end int) {
	for k := start; k < end; k++ {
		i := b.visible[k]
		u := GPUObjectUniform{Model: d.Models[i]}
		if i < len(d.Colors) {
			u.Color = d.Colors[i]
		}
		u.MarshalInto(b.data[k*UniformStride:])
	}
}

func (b *batch) Data() []byte {
	return b.data
}

func (b *batch) Visible() []int {
	return b.visible
}

func (b *batch) Offsets() []uint32 {
	return b.offsets
}

func (b *batch) Release() {
	if b.pool != nil {
		b.pool.Stop()
		b.pool = nil
	}
}
