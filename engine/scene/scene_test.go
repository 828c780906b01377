package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbits/engine/orbit"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestSolarSystem(t *testing.T) {
	s, err := NewSolarSystem()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Name() != "solar" {
		t.Fatalf("name: got %q want solar", s.Name())
	}
	if s.Count() != 9 {
		t.Fatalf("count: got %d want 9", s.Count())
	}

	sun := s.Get(0)
	if sun.Radius != 2 || sun.Center != (mgl32.Vec3{}) {
		t.Fatalf("sun: radius %v center %v", sun.Radius, sun.Center)
	}
	if math32.Abs(sun.RotationSpeed-1/25.3) > 1e-7 || sun.RevolutionSpeed != 0 {
		t.Fatalf("sun speeds: rot %v rev %v", sun.RotationSpeed, sun.RevolutionSpeed)
	}

	neptune := s.Get(8)
	if neptune.Center != (mgl32.Vec3{35, 0, 0}) || neptune.Radius != 0.76 {
		t.Fatalf("neptune: center %v radius %v", neptune.Center, neptune.Radius)
	}
	if math32.Abs(neptune.RevolutionSpeed-0.1) > 1e-7 {
		t.Fatalf("neptune revolution: got %v want 0.1", neptune.RevolutionSpeed)
	}

	for i := 0; i < s.Count(); i++ {
		c := s.Get(i).Color
		if c[0] != 1 || math32.Abs(c[1]-0.5) > 0.01 || math32.Abs(c[2]-0.5) > 0.01 || c[3] != 1 {
			t.Fatalf("body %d color: got %v", i, c)
		}
		if !s.Get(i).Updated() {
			t.Fatalf("body %d has no model matrix", i)
		}
	}
}

func TestUpdateAdvancesAllInOrder(t *testing.T) {
	s := NewScene("test", WithObjects(
		orbit.NewObject(orbit.WithRotationSpeed(1)),
		orbit.NewObject(orbit.WithRotationSpeed(2)),
	))
	s.Update(0.5)

	for i, want := range []float32{0.5 * 1 * orbit.SelfRotationGain, 0.5 * 2 * orbit.SelfRotationGain} {
		if got := s.Get(i).Theta; got != want {
			t.Fatalf("object %d theta: got %v want %v", i, got, want)
		}
	}

	models := s.ModelMatrices(nil)
	colors := s.Colors(nil)
	if len(models) != 2 || len(colors) != 2 {
		t.Fatalf("got %d models %d colors", len(models), len(colors))
	}
	if models[1] != s.Get(1).ModelMatrix() {
		t.Fatalf("model order mismatch")
	}
}

func TestAddGetClear(t *testing.T) {
	s := NewScene("test")
	if s.Get(0) != nil {
		t.Fatalf("empty scene returned an object")
	}
	i := s.Add(*orbit.NewObject(orbit.WithRadius(3)))
	if i != 0 || s.Get(0).Radius != 3 {
		t.Fatalf("add: index %d radius %v", i, s.Get(0).Radius)
	}
	if s.Get(-1) != nil || s.Get(1) != nil {
		t.Fatalf("out of range index returned an object")
	}
	s.Clear()
	if s.Count() != 0 {
		t.Fatalf("count after clear: %d", s.Count())
	}
}

func TestParseColors(t *testing.T) {
	doc, err := Parse([]byte(`
name: colors
bodies:
  - name: hex
    color: "#0000ff"
  - name: rgb
    color: [0.1, 0.2, 0.3]
  - name: rgba
    color: [0.1, 0.2, 0.3, 0.4]
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Color{{0, 0, 1, 1}, {0.1, 0.2, 0.3, 1}, {0.1, 0.2, 0.3, 0.4}}
	for i, w := range want {
		if doc.Bodies[i].Color != w {
			t.Fatalf("body %d: got %v want %v", i, doc.Bodies[i].Color, w)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad hex":         "bodies:\n  - color: \"#zz\"\n",
		"short color":     "bodies:\n  - color: [1, 2]\n",
		"negative radius": "bodies:\n  - radius: -1\n",
		"negative period": "bodies:\n  - rotation_period: -2\n",
		"not yaml":        "bodies: [",
	}
	for name, src := range cases {
		if _, err := Parse([]byte(src)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestZeroPeriodMeansStill(t *testing.T) {
	b := Body{Radius: 1, RotationPeriod: 0, RevolutionPeriod: 4}
	o := b.Object()
	if o.RotationSpeed != 0 || o.RevolutionSpeed != 0.25 {
		t.Fatalf("speeds: rot %v rev %v", o.RotationSpeed, o.RevolutionSpeed)
	}
}
