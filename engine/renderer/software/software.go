// Package software rasterizes frame descriptors on the CPU with fauxgl. It draws the same
// scene as the GPU renderer and is used for headless snapshots and tests.
package software

import (
	"image"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/frame"
	"github.com/Carmen-Shannon/oxy-orbits/engine/model"
	"github.com/Carmen-Shannon/oxy-orbits/engine/renderer/batch"
	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// ClearColor is the background, (39, 40, 34) / 255.
var ClearColor = fauxgl.Color{R: 39.0 / 255.0, G: 40.0 / 255.0, B: 34.0 / 255.0, A: 1}

// softwareRenderer is the implementation of the Renderer interface.
type softwareRenderer struct {
	mesh      model.Model
	triangles []*fauxgl.Triangle
	lines     []*fauxgl.Line

	context     *fauxgl.Context
	batch       batch.Batch
	culling     bool
	supersample int
	lineWidth   float64

	width  int
	height int
	image  *image.NRGBA
	frames int
}

// Renderer draws frames into an in-memory image.
type Renderer interface {
	// SubmitFrame rasterizes one frame. The output is sized d.Width x d.Height.
	//
	// Parameters:
	//   - d: the frame to draw
	//
	// Returns:
	//   - error: an error if the descriptor has no viewport
	SubmitFrame(d frame.Descriptor) error

	// Image returns the last rasterized frame, downscaled when supersampling. Without
	// supersampling the image shares the color buffer and is valid until the next SubmitFrame.
	//
	// Returns:
	//   - *image.NRGBA: the frame, or nil before the first SubmitFrame
	Image() *image.NRGBA

	// Frames returns how many frames have been rasterized.
	//
	// Returns:
	//   - int: the frame count
	Frames() int

	// Release stops the culling workers.
	Release()
}

var _ Renderer = &softwareRenderer{}

// NewRenderer creates a software Renderer drawing mesh for every object.
//
// Parameters:
//   - mesh: the mesh drawn for every object
//   - options: variadic list of RendererBuilderOption functions
//
// Returns:
//   - Renderer: the renderer
//   - error: the mesh validation error, if any
func NewRenderer(mesh model.Model, options ...RendererBuilderOption) (Renderer, error) {
	if mesh == nil {
		return nil, model.ErrEmptyVertices
	}
	if err := mesh.Validate(); err != nil {
		return nil, errors.Wrapf(err, "software renderer mesh %q", mesh.Name())
	}

	r := &softwareRenderer{
		mesh:        mesh,
		culling:     true,
		supersample: 1,
		lineWidth:   1,
	}
	for _, opt := range options {
		opt(r)
	}
	r.batch = batch.NewBatch(batch.WithCulling(r.culling), batch.WithWorkers(1))

	verts := make([]fauxgl.Vertex, len(mesh.Vertices()))
	for i, v := range mesh.Vertices() {
		verts[i] = toVertex(v)
	}
	idx := mesh.Indices()
	r.triangles = make([]*fauxgl.Triangle, 0, len(idx)/3)
	for i := 0; i+2 < len(idx); i += 3 {
		r.triangles = append(r.triangles, &fauxgl.Triangle{V1: verts[idx[i]], V2: verts[idx[i+1]], V3: verts[idx[i+2]]})
	}
	edges := mesh.LineIndices()
	r.lines = make([]*fauxgl.Line, 0, len(edges)/2)
	for i := 0; i+1 < len(edges); i += 2 {
		r.lines = append(r.lines, &fauxgl.Line{V1: verts[edges[i]], V2: verts[edges[i+1]]})
	}

	return r, nil
}

func (r *softwareRenderer) SubmitFrame(d frame.Descriptor) error {
	if d.Width <= 0 || d.Height <= 0 {
		return errors.Errorf("invalid viewport %dx%d", d.Width, d.Height)
	}
	if r.context == nil || d.Width != r.width || d.Height != r.height {
		r.context = fauxgl.NewContext(d.Width*r.supersample, d.Height*r.supersample)
		r.width = d.Width
		r.height = d.Height
	}

	ctx := r.context
	ctx.ClearColorBufferWith(ClearColor)
	ctx.ClearDepthBuffer()
	ctx.Cull = fauxgl.CullNone
	ctx.LineWidth = r.lineWidth * float64(r.supersample)

	viewProjection := d.ViewProjection()
	r.batch.Build(d, r.mesh.BoundingRadius())
	for _, i := range r.batch.Visible() {
		ctx.Shader = &orbitShader{
			matrix: toMatrix(viewProjection.Mul4(d.Models[i])),
			mode:   d.ColorMode,
		}
		if d.Wireframe {
			ctx.DrawLines(r.lines)
		} else {
			ctx.DrawTriangles(r.triangles)
		}
	}

	r.image = r.resolve(ctx.Image())
	r.frames++
	return nil
}

// resolve converts the color buffer to NRGBA at the output size.
func (r *softwareRenderer) resolve(src image.Image) *image.NRGBA {
	if r.supersample == 1 {
		if img, ok := src.(*image.NRGBA); ok {
			return img
		}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	if r.supersample == 1 {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func (r *softwareRenderer) Image() *image.NRGBA {
	return r.image
}

func (r *softwareRenderer) Frames() int {
	return r.frames
}

func (r *softwareRenderer) Release() {
	if r.batch != nil {
		r.batch.Release()
		r.batch = nil
	}
}

// orbitShader transforms by one object's model-view-projection and colors by texture
// coordinate.
type orbitShader struct {
	matrix fauxgl.Matrix
	mode   frame.ColorMode
}

func (s *orbitShader) Vertex(v fauxgl.Vertex) fauxgl.Vertex {
	v.Output = s.matrix.MulPositionW(v.Position)
	return v
}

func (s *orbitShader) Fragment(v fauxgl.Vertex) fauxgl.Color {
	c := s.mode.Shade(mgl32.Vec2{float32(v.Texture.X), float32(v.Texture.Y)})
	return fauxgl.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])}
}

func toVertex(v model.GPUVertex) fauxgl.Vertex {
	return fauxgl.Vertex{
		Position: fauxgl.Vector{X: float64(v.Position[0]), Y: float64(v.Position[1]), Z: float64(v.Position[2])},
		Normal:   fauxgl.Vector{X: float64(v.Normal[0]), Y: float64(v.Normal[1]), Z: float64(v.Normal[2])},
		Texture:  fauxgl.Vector{X: float64(v.TexCoord[0]), Y: float64(v.TexCoord[1])},
		Color:    fauxgl.Gray(1),
	}
}

// toMatrix converts a column-major mgl32 matrix to fauxgl's row-major Matrix.
func toMatrix(m mgl32.Mat4) fauxgl.Matrix {
	e := common.RowMajor(m)
	return fauxgl.Matrix{
		X00: float64(e[0]), X01: float64(e[1]), X02: float64(e[2]), X03: float64(e[3]),
		X10: float64(e[4]), X11: float64(e[5]), X12: float64(e[6]), X13: float64(e[7]),
		X20: float64(e[8]), X21: float64(e[9]), X22: float64(e[10]), X23: float64(e[11]),
		X30: float64(e[12]), X31: float64(e[13]), X32: float64(e[14]), X33: float64(e[15]),
	}
}
