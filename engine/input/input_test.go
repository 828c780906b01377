package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNormalizeCursor(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		w, h int
		want mgl32.Vec2
	}{
		{"top left", 0, 0, 801, 601, mgl32.Vec2{-1, 1}},
		{"bottom right", 800, 600, 801, 601, mgl32.Vec2{1, -1}},
		{"center", 400, 300, 801, 601, mgl32.Vec2{0, 0}},
		{"degenerate viewport", 0, 0, 1, 1, mgl32.Vec2{-1, 1}},
	}
	for _, c := range cases {
		got := NormalizeCursor(c.x, c.y, c.w, c.h)
		if !got.ApproxEqualThreshold(c.want, 1e-6) {
			t.Fatalf("%s: got %v want %v", c.name, got, c.want)
		}
	}
}

func TestScaleCursorHighDPI(t *testing.T) {
	x, y := ScaleCursor(400, 300, 800, 600, 1600, 1200)
	if x != 800 || y != 600 {
		t.Fatalf("scaled: got (%v, %v) want (800, 600)", x, y)
	}
	ndc := NormalizeCursor(x, y, 1601, 1201)
	if ndc[0] != 0 || ndc[1] != 0 {
		t.Fatalf("window center: got %v want (0, 0)", ndc)
	}
	x, y = ScaleCursor(800, 600, 800, 600, 1600, 1200)
	ndc = NormalizeCursor(x, y, 1600, 1200)
	if ndc[0] < 0.99 || ndc[1] > -0.99 {
		t.Fatalf("window corner: got %v want near (1, -1)", ndc)
	}

	if x, y := ScaleCursor(12, 34, 0, 0, 1600, 1200); x != 12 || y != 34 {
		t.Fatalf("zero window: got (%v, %v)", x, y)
	}
}

func TestModifierHas(t *testing.T) {
	m := ModShift | ModControl
	if !m.Has(ModShift) || !m.Has(ModControl) {
		t.Fatalf("expected shift and control in %b", m)
	}
	if m.Has(ModAlt) {
		t.Fatalf("did not expect alt in %b", m)
	}
	if !ModNone.Has(ModNone) {
		t.Fatalf("empty set must contain the empty flag")
	}
}

func TestQueueKeepsOrderAndCoalescesMoves(t *testing.T) {
	var q Queue
	q.Push(Resize{Width: 10, Height: 10})
	q.Push(Resize{Width: 20, Height: 10})
	q.Push(ButtonDown{Button: ButtonLeft, X: 1, Y: 1})
	q.Push(CursorMove{X: 2, Y: 2})
	q.Push(CursorMove{X: 3, Y: 3})
	q.Push(KeyDown{Key: 87})
	q.Push(CursorMove{X: 4, Y: 4})

	want := []Event{
		Resize{Width: 20, Height: 10},
		ButtonDown{Button: ButtonLeft, X: 1, Y: 1},
		CursorMove{X: 3, Y: 3},
		KeyDown{Key: 87},
		CursorMove{X: 4, Y: 4},
	}
	got := q.Drain()
	if len(got) != len(want) {
		t.Fatalf("got %d events want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: got %#v want %#v", i, got[i], want[i])
		}
	}
	if q.Len() != 0 || len(q.Drain()) != 0 {
		t.Fatalf("queue not emptied")
	}
}
