package scene

import (
	"github.com/Carmen-Shannon/oxy-orbits/engine/orbit"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is the ordered registry of orbiting objects. Draw order is insertion order.
// Not safe for concurrent use; the run loop owns it.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Count returns the number of objects in the registry.
	//
	// Returns:
	//   - int: object count
	Count() int

	// Add appends a copy of the object and returns its index.
	//
	// Parameters:
	//   - obj: the object to copy in
	//
	// Returns:
	//   - int: the object's index in draw order
	Add(obj orbit.Object) int

	// Get returns the object at index i, or nil if out of range. The pointer stays valid
	// until the next Add or Clear.
	//
	// Parameters:
	//   - i: the object index
	//
	// Returns:
	//   - *orbit.Object: the stored object
	Get(i int) *orbit.Object

	// Clear removes every object.
	Clear()

	// Update advances every object by dt seconds, in order.
	//
	// Parameters:
	//   - dt: elapsed simulation time in seconds
	Update(dt float32)

	// ModelMatrices appends every object's model matrix to dst in draw order.
	//
	// Parameters:
	//   - dst: destination slice, may be nil
	//
	// Returns:
	//   - []mgl32.Mat4: dst with the matrices appended
	ModelMatrices(dst []mgl32.Mat4) []mgl32.Mat4

	// Colors appends every object's color to dst in draw order.
	//
	// Parameters:
	//   - dst: destination slice, may be nil
	//
	// Returns:
	//   - []mgl32.Vec4: dst with the colors appended
	Colors(dst []mgl32.Vec4) []mgl32.Vec4
}

type scene struct {
	name    string
	objects []orbit.Object
}

var _ Scene = &scene{}

// NewScene creates an empty registry and applies the options in order.
//
// Parameters:
//   - name: the scene identifier
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the configured scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{name: name}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Count() int {
	return len(s.objects)
}

func (s *scene) Add(obj orbit.Object) int {
	s.objects = append(s.objects, obj)
	return len(s.objects) - 1
}

func (s *scene) Get(i int) *orbit.Object {
	if i < 0 || i >= len(s.objects) {
		return nil
	}
	return &s.objects[i]
}

func (s *scene) Clear() {
	s.objects = s.objects[:0]
}

func (s *scene) Update(dt float32) {
	for i := range s.objects {
		s.objects[i].Update(dt)
	}
}

func (s *scene) ModelMatrices(dst []mgl32.Mat4) []mgl32.Mat4 {
	for i := range s.objects {
		dst = append(dst, s.objects[i].ModelMatrix())
	}
	return dst
}

func (s *scene) Colors(dst []mgl32.Vec4) []mgl32.Vec4 {
	for i := range s.objects {
		dst = append(dst, s.objects[i].Color)
	}
	return dst
}
