package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("solid", WithSource("// wgsl"))

	if p.PipelineKey() != "solid" || p.Source() != "// wgsl" {
		t.Fatalf("key %q source %q", p.PipelineKey(), p.Source())
	}
	if p.VertexEntryPoint() != "vs_main" || p.FragmentEntryPoint() != "fs_main" {
		t.Fatalf("entry points %q %q", p.VertexEntryPoint(), p.FragmentEntryPoint())
	}
	if p.Topology() != wgpu.PrimitiveTopologyTriangleList || p.CullMode() != wgpu.CullModeNone || p.FrontFace() != wgpu.FrontFaceCCW {
		t.Fatalf("topology %v cull %v front %v", p.Topology(), p.CullMode(), p.FrontFace())
	}
	if p.Pipeline() != nil {
		t.Fatalf("render pipeline set before registration")
	}
	p.Release()
}

func TestPipelineOptions(t *testing.T) {
	layout := wgpu.VertexBufferLayout{ArrayStride: 32}
	p := NewPipeline("wire",
		WithVertexLayouts(layout),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithCullMode(wgpu.CullModeBack),
		WithFrontFace(wgpu.FrontFaceCW),
	)

	if len(p.VertexLayouts()) != 1 || p.VertexLayouts()[0].ArrayStride != 32 {
		t.Fatalf("layouts %+v", p.VertexLayouts())
	}
	if p.Topology() != wgpu.PrimitiveTopologyLineList || p.CullMode() != wgpu.CullModeBack || p.FrontFace() != wgpu.FrontFaceCW {
		t.Fatalf("topology %v cull %v front %v", p.Topology(), p.CullMode(), p.FrontFace())
	}
}
