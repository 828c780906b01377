package frame

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestColorModeNextWraps(t *testing.T) {
	m := ColorTexCoord
	seq := []ColorMode{ColorU, ColorV, ColorTexCoord, ColorU}
	for i, want := range seq {
		m = m.Next()
		if m != want {
			t.Fatalf("step %d: got %d want %d", i, m, want)
		}
	}
}

func TestColorModeShade(t *testing.T) {
	uv := mgl32.Vec2{0.25, 0.75}
	cases := []struct {
		mode ColorMode
		want mgl32.Vec4
	}{
		{ColorTexCoord, mgl32.Vec4{0.25, 0.75, 0, 1}},
		{ColorU, mgl32.Vec4{0.25, 0.25, 0.25, 1}},
		{ColorV, mgl32.Vec4{0.75, 0.75, 0.75, 1}},
	}
	for _, c := range cases {
		if got := c.mode.Shade(uv); got != c.want {
			t.Fatalf("mode %d: got %v want %v", c.mode, got, c.want)
		}
	}
}
