package scene

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-orbits/engine/orbit"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SolarSystemSource is the built-in nine-body scene.
//
//go:embed assets/solar.yaml
var SolarSystemSource []byte

// Document is the YAML layout of a scene description.
type Document struct {
	Name   string `yaml:"name"`
	Bodies []Body `yaml:"bodies"`
}

// Body describes one orbiting object. Periods are converted to speeds as 1/period;
// a zero period means no motion.
type Body struct {
	Name             string     `yaml:"name"`
	Center           [3]float32 `yaml:"center"`
	Radius           float32    `yaml:"radius"`
	Color            Color      `yaml:"color"`
	RotationPeriod   float32    `yaml:"rotation_period"`
	RevolutionPeriod float32    `yaml:"revolution_period"`
}

// Color is an RGBA color in [0, 1]. In YAML it is either a hex string ("#ff8080") or a
// list of three or four numbers.
type Color mgl32.Vec4

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		hex, err := colorful.Hex(value.Value)
		if err != nil {
			return errors.Wrapf(err, "line %d: color %q", value.Line, value.Value)
		}
		*c = Color{float32(hex.R), float32(hex.G), float32(hex.B), 1}
		return nil
	case yaml.SequenceNode:
		var parts []float32
		if err := value.Decode(&parts); err != nil {
			return errors.Wrapf(err, "line %d: color", value.Line)
		}
		switch len(parts) {
		case 3:
			*c = Color{parts[0], parts[1], parts[2], 1}
		case 4:
			*c = Color{parts[0], parts[1], parts[2], parts[3]}
		default:
			return errors.Errorf("line %d: color needs 3 or 4 components, got %d", value.Line, len(parts))
		}
		return nil
	}
	return errors.Errorf("line %d: color must be a hex string or a list", value.Line)
}

// speed converts a period to an angular speed multiplier.
func speed(period float32) float32 {
	if period == 0 {
		return 0
	}
	return 1 / period
}

// Object builds the orbit object described by the body.
//
// Returns:
//   - *orbit.Object: the object with its model matrix computed
func (b Body) Object() *orbit.Object {
	return orbit.NewObject(
		orbit.WithCenter(mgl32.Vec3(b.Center)),
		orbit.WithRadius(b.Radius),
		orbit.WithColor(mgl32.Vec4(b.Color)),
		orbit.WithRotationSpeed(speed(b.RotationPeriod)),
		orbit.WithRevolutionSpeed(speed(b.RevolutionPeriod)),
	)
}

// Parse decodes a scene description.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Document: the decoded document
//   - error: decoding or validation error
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrap(err, "parse scene")
	}
	for i, b := range doc.Bodies {
		if b.Radius < 0 {
			return Document{}, errors.Errorf("body %d (%s): negative radius %v", i, b.Name, b.Radius)
		}
		if b.RotationPeriod < 0 || b.RevolutionPeriod < 0 {
			return Document{}, errors.Errorf("body %d (%s): negative period", i, b.Name)
		}
	}
	return doc, nil
}

// Load decodes a scene description into a Scene.
//
// Parameters:
//   - data: YAML document
//   - options: additional scene options applied after the decoded bodies
//
// Returns:
//   - Scene: the populated scene
//   - error: decoding or validation error
func Load(data []byte, options ...SceneBuilderOption) (Scene, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	objects := make([]*orbit.Object, len(doc.Bodies))
	for i, b := range doc.Bodies {
		objects[i] = b.Object()
	}
	opts := append([]SceneBuilderOption{WithObjects(objects...)}, options...)
	return NewScene(doc.Name, opts...), nil
}

// NewSolarSystem loads the built-in nine-body scene.
//
// Returns:
//   - Scene: the populated scene
//   - error: decoding error (only if the embedded document is broken)
func NewSolarSystem(options ...SceneBuilderOption) (Scene, error) {
	return Load(SolarSystemSource, options...)
}
