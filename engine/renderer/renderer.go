package renderer

import (
	_ "embed"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbits/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbits/engine/frame"
	"github.com/Carmen-Shannon/oxy-orbits/engine/model"
	"github.com/Carmen-Shannon/oxy-orbits/engine/renderer/batch"
	"github.com/Carmen-Shannon/oxy-orbits/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/pkg/errors"
)

//go:embed assets/orbits.wgsl
var orbitsShaderSource string

const (
	// SolidPipelineKey draws the mesh as filled, back-face culled triangles.
	SolidPipelineKey = "orbits_solid"

	// WireframePipelineKey draws the mesh edge list as lines.
	WireframePipelineKey = "orbits_wireframe"

	// minObjectCapacity is the number of object slots allocated up front.
	minObjectCapacity = 16
)

// ErrNotReady is returned by SubmitFrame when the renderer has no mesh to draw.
var ErrNotReady = errors.New("renderer not ready")

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline

	backend RendererBackend
	mesh    model.Model
	batch   batch.Batch
	ready   bool

	width  int
	height int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	workers              int
	culling              bool

	vertexBuffer    *wgpu.Buffer
	indexBuffer     *wgpu.Buffer
	lineIndexBuffer *wgpu.Buffer

	cameraUniform camera.GPUCameraUniform
	cameraBuffer  *wgpu.Buffer
	cameraLayout  *wgpu.BindGroupLayout
	cameraGroup   *wgpu.BindGroup

	objectBuffer   *wgpu.Buffer
	objectLayout   *wgpu.BindGroupLayout
	objectGroup    *wgpu.BindGroup
	objectCapacity int

	groups  []*wgpu.BindGroup
	offsets [][]uint32
}

// Renderer draws frame descriptors onto a window surface with WebGPU.
//
// Every object shares one mesh. The camera uniform lives in bind group 0 and the per-object
// uniform block in bind group 1, addressed per draw with a dynamic offset.
type Renderer interface {
	// SubmitFrame draws one frame and presents it.
	//
	// Parameters:
	//   - d: the frame to draw
	//
	// Returns:
	//   - error: ErrNotReady when the renderer has no mesh, or an error if the frame could not be acquired
	SubmitFrame(d frame.Descriptor) error

	// Resize configures the underlying backend to handle a new surface size.
	// Sizes with a zero dimension are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: an error if the surface attachments could not be recreated
	Resize(width, height int) error

	// Ready reports whether the renderer has GPU buffers to draw from.
	//
	// Returns:
	//   - bool: true when SubmitFrame will draw
	Ready() bool

	// Pipeline retrieves the cached Pipeline associated with the given key.
	// If the Pipeline does not exist, this will return nil.
	//
	// Parameters:
	//   - key: the unique identifier for the Pipeline to retrieve
	//
	// Returns:
	//   - pipeline.Pipeline: the Pipeline associated with the key, or nil if not found
	Pipeline(key string) pipeline.Pipeline

	// Release releases every GPU object and stops the uniform workers.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer for the given surface and mesh.
// The surface descriptor is platform-specific and is typically obtained from Window.SurfaceDescriptor().
// A mesh without vertices is logged and leaves the renderer in a non-drawing state rather than
// failing.
//
// Parameters:
//   - surfaceDescriptor: the platform-specific surface descriptor for WebGPU surface creation
//   - width: initial surface width in pixels
//   - height: initial surface height in pixels
//   - mesh: the mesh drawn for every object
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the renderer
//   - error: an error if the GPU device, surface, buffers or pipelines could not be created
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, mesh model.Model, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		mesh:          mesh,
		culling:       true,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x // default
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	backend, err := newWGPURendererBackend(surfaceDescriptor, r.forceFallbackAdapter, msaa)
	if err != nil {
		return nil, errors.Wrap(err, "create renderer backend")
	}
	r.backend = backend

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	if err := r.Resize(width, height); err != nil {
		r.Release()
		return nil, err
	}

	batchOpts := []batch.BatchBuilderOption{batch.WithCulling(r.culling)}
	if r.workers > 0 {
		batchOpts = append(batchOpts, batch.WithWorkers(r.workers))
	}
	r.batch = batch.NewBatch(batchOpts...)

	if err := r.initResources(); err != nil {
		if errors.Is(err, model.ErrEmptyVertices) {
			log.Printf("[Renderer] %v, drawing disabled", err)
			return r, nil
		}
		r.Release()
		return nil, err
	}
	r.ready = true

	return r, nil
}

func (r *renderer) initResources() error {
	if r.mesh == nil {
		return model.ErrEmptyVertices
	}
	if err := r.mesh.Validate(); err != nil {
		return err
	}

	var err error
	vertexData := r.mesh.VertexData()
	r.vertexBuffer, err = r.backend.CreateBuffer("Mesh Vertices", uint64(len(vertexData)), wgpu.BufferUsageVertex, vertexData)
	if err != nil {
		return err
	}
	indexData := r.mesh.IndexData()
	r.indexBuffer, err = r.backend.CreateBuffer("Mesh Indices", uint64(len(indexData)), wgpu.BufferUsageIndex, indexData)
	if err != nil {
		return err
	}
	lineData := r.mesh.LineIndexData()
	r.lineIndexBuffer, err = r.backend.CreateBuffer("Mesh Edges", uint64(len(lineData)), wgpu.BufferUsageIndex, lineData)
	if err != nil {
		return err
	}

	cameraSize := uint64(r.cameraUniform.Size())
	r.cameraLayout, err = r.backend.CreateUniformLayout("Camera Layout", cameraSize, false)
	if err != nil {
		return err
	}
	r.cameraBuffer, err = r.backend.CreateBuffer("Camera Uniform", cameraSize, wgpu.BufferUsageUniform, nil)
	if err != nil {
		return err
	}
	r.cameraGroup, err = r.backend.CreateUniformBindGroup("Camera Bind Group", r.cameraLayout, r.cameraBuffer, cameraSize)
	if err != nil {
		return err
	}

	var obj batch.GPUObjectUniform
	r.objectLayout, err = r.backend.CreateUniformLayout("Object Layout", uint64(obj.Size()), true)
	if err != nil {
		return err
	}
	if err := r.ensureObjectCapacity(minObjectCapacity); err != nil {
		return err
	}

	layouts := []*wgpu.BindGroupLayout{r.cameraLayout, r.objectLayout}
	source := camera.GPUCameraUniformSource + "\n" + batch.GPUObjectUniformSource + "\n" + model.GPUVertexSource + "\n" + orbitsShaderSource
	for _, p := range orbitPipelines(source) {
		if err := r.backend.RegisterRenderPipeline(p, layouts); err != nil {
			return err
		}
		r.pipelineCache[p.PipelineKey()] = p
	}

	r.groups = []*wgpu.BindGroup{r.cameraGroup, r.objectGroup}
	r.offsets = [][]uint32{nil, {0}}
	return nil
}

// orbitPipelines describes the solid pass, back-face culled with counter-clockwise fronts,
// and the wireframe pass drawing the mesh edge list.
func orbitPipelines(source string) []pipeline.Pipeline {
	vertexLayout := meshVertexLayout()
	solid := pipeline.NewPipeline(SolidPipelineKey,
		pipeline.WithSource(source),
		pipeline.WithVertexLayouts(vertexLayout),
		pipeline.WithCullMode(wgpu.CullModeBack),
		pipeline.WithFrontFace(wgpu.FrontFaceCCW),
	)
	wire := pipeline.NewPipeline(WireframePipelineKey,
		pipeline.WithSource(source),
		pipeline.WithVertexLayouts(vertexLayout),
		pipeline.WithTopology(wgpu.PrimitiveTopologyLineList),
	)
	return []pipeline.Pipeline{solid, wire}
}

// ensureObjectCapacity grows the object uniform buffer to hold at least n slots, doubling so
// that steady-state frames never reallocate.
func (r *renderer) ensureObjectCapacity(n int) error {
	if n <= r.objectCapacity {
		return nil
	}
	capacity := max(r.objectCapacity, minObjectCapacity)
	for capacity < n {
		capacity *= 2
	}

	var obj batch.GPUObjectUniform
	buf, err := r.backend.CreateBuffer("Object Uniforms", uint64(capacity*batch.UniformStride), wgpu.BufferUsageUniform, nil)
	if err != nil {
		return err
	}
	group, err := r.backend.CreateUniformBindGroup("Object Bind Group", r.objectLayout, buf, uint64(obj.Size()))
	if err != nil {
		buf.Release()
		return err
	}

	if r.objectGroup != nil {
		r.objectGroup.Release()
	}
	if r.objectBuffer != nil {
		r.objectBuffer.Release()
	}
	r.objectBuffer = buf
	r.objectGroup = group
	r.objectCapacity = capacity
	if len(r.groups) == 2 {
		r.groups[1] = group
	}
	return nil
}

func (r *renderer) SubmitFrame(d frame.Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ready {
		return ErrNotReady
	}
	if (d.Width != r.width || d.Height != r.height) && d.Width > 0 && d.Height > 0 {
		if err := r.resize(d.Width, d.Height); err != nil {
			return err
		}
	}

	r.cameraUniform.View = d.View
	r.cameraUniform.Projection = d.Projection
	r.cameraUniform.Eye = d.Eye
	r.cameraUniform.ColorMode = uint32(d.ColorMode)
	r.backend.WriteBuffer(r.cameraBuffer, 0, r.cameraUniform.Marshal())

	visible := r.batch.Build(d, r.mesh.BoundingRadius())
	if err := r.ensureObjectCapacity(visible); err != nil {
		return err
	}
	r.backend.WriteBuffer(r.objectBuffer, 0, r.batch.Data())

	p := r.pipelineCache[SolidPipelineKey]
	indices, count := r.indexBuffer, uint32(r.mesh.IndexCount())
	if d.Wireframe {
		p = r.pipelineCache[WireframePipelineKey]
		indices, count = r.lineIndexBuffer, uint32(r.mesh.LineIndexCount())
	}

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	for _, off := range r.batch.Offsets() {
		r.offsets[1][0] = off
		r.backend.DrawIndexed(p, r.vertexBuffer, indices, count, r.groups, r.offsets)
	}
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resize(width, height)
}

func (r *renderer) resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		return errors.Wrapf(err, "configure surface %dx%d", width, height)
	}
	r.width = width
	r.height = height
	return nil
}

func (r *renderer) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ready
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.pipelineCache[key]; ok {
		return p
	}
	return nil
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ready = false
	if r.batch != nil {
		r.batch.Release()
		r.batch = nil
	}
	for key, p := range r.pipelineCache {
		p.Release()
		delete(r.pipelineCache, key)
	}
	for _, g := range []*wgpu.BindGroup{r.cameraGroup, r.objectGroup} {
		if g != nil {
			g.Release()
		}
	}
	for _, l := range []*wgpu.BindGroupLayout{r.cameraLayout, r.objectLayout} {
		if l != nil {
			l.Release()
		}
	}
	for _, b := range []*wgpu.Buffer{r.vertexBuffer, r.indexBuffer, r.lineIndexBuffer, r.cameraBuffer, r.objectBuffer} {
		if b != nil {
			b.Release()
		}
	}
	r.cameraGroup, r.objectGroup = nil, nil
	r.cameraLayout, r.objectLayout = nil, nil
	r.vertexBuffer, r.indexBuffer, r.lineIndexBuffer, r.cameraBuffer, r.objectBuffer = nil, nil, nil, nil, nil
	r.groups = nil

	if r.backend != nil {
		r.backend.Release()
		r.backend = nil
	}
}

// meshVertexLayout describes model.GPUVertex: position, normal, texcoord.
func meshVertexLayout() wgpu.VertexBufferLayout {
	var v model.GPUVertex
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(v.Size()),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
		},
	}
}
