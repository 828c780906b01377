// Command snapshot advances the solar system scene headlessly and writes the final frame,
// rasterized on the CPU, as a WebP or PNG image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-orbits/engine"
	"github.com/Carmen-Shannon/oxy-orbits/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbits/engine/frame"
	"github.com/Carmen-Shannon/oxy-orbits/engine/model"
	"github.com/Carmen-Shannon/oxy-orbits/engine/renderer/software"
	"github.com/Carmen-Shannon/oxy-orbits/engine/scene"
	"github.com/HugoSmits86/nativewebp"
	"github.com/pkg/errors"
)

func main() {
	frames := flag.Int("frames", 1, "Number of simulation ticks before the snapshot")
	dt := flag.Float64("dt", 1.0/60.0, "Simulation seconds per tick (after time scale)")
	width := flag.Int("width", 1280, "Image width in pixels")
	height := flag.Int("height", 720, "Image height in pixels")
	supersample := flag.Int("supersample", 2, "Render at N times the size and downscale")
	colorMode := flag.Int("color", 0, "Color mode: 0 = tex coord, 1 = u, 2 = v")
	wireframe := flag.Bool("wireframe", false, "Draw the mesh edges instead of filled triangles")
	out := flag.String("out", "orbits.webp", "Output file")
	format := flag.String("format", "", "Output format: webp or png (default: from -out extension)")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -width and -height must be positive")
		os.Exit(1)
	}

	sc, err := scene.NewSolarSystem()
	if err != nil {
		log.Fatalf("scene: %v", err)
	}
	state := engine.NewApplicationState(camera.NewCamera(), camera.NewTrackball(), sc, *width, *height)
	state.ColorMode = frame.ColorMode((*colorMode%3 + 3) % 3)
	state.Wireframe = *wireframe

	r, err := software.NewRenderer(model.NewSphere(), software.WithSupersample(*supersample))
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	defer r.Release()

	d := state.Tick(0)
	for range *frames {
		d = state.Tick(float32(*dt))
	}
	if err := r.SubmitFrame(d); err != nil {
		log.Fatalf("render: %v", err)
	}

	if err := writeImage(*out, *format, r.Image()); err != nil {
		log.Fatalf("write: %v", err)
	}
	log.Printf("[Snapshot] wrote %s (%dx%d, %d objects, %d ticks)", *out, *width, *height, sc.Count(), *frames)
}

// writeImage encodes img to path as WebP or PNG.
//
// Parameters:
//   - path: output file
//   - format: "webp", "png", or empty to use the file extension
//   - img: the image to encode
//
// Returns:
//   - error: an error if the file could not be written
func writeImage(path, format string, img image.Image) (err error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	if format != "png" && format != "webp" && format != "" {
		return errors.Errorf("unknown format %q", format)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create output directory")
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close output file")
		}
	}()

	if format == "png" {
		err = png.Encode(f, img)
	} else {
		err = nativewebp.Encode(f, img, nil)
	}
	if err != nil {
		return errors.Wrapf(err, "%s encode", format)
	}
	return nil
}
