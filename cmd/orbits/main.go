// Command orbits opens a window and animates the solar system scene with a trackball camera.
package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/Carmen-Shannon/oxy-orbits/engine"
	"github.com/Carmen-Shannon/oxy-orbits/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbits/engine/model"
	"github.com/Carmen-Shannon/oxy-orbits/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbits/engine/scene"
	"github.com/Carmen-Shannon/oxy-orbits/engine/window"
)

func init() {
	// glfw and the wgpu surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	width := flag.Int("width", 1280, "Window width in pixels")
	height := flag.Int("height", 720, "Window height in pixels")
	minWidth := flag.Int("min-width", 320, "Smallest window width when resizing")
	minHeight := flag.Int("min-height", 200, "Smallest window height when resizing")
	maxWidth := flag.Int("max-width", 3840, "Largest window width when resizing")
	maxHeight := flag.Int("max-height", 2160, "Largest window height when resizing")
	vsync := flag.Bool("vsync", true, "Wait for vertical blank when presenting")
	msaa := flag.Int("msaa", 4, "MSAA sample count (1, 4, 8 or 16)")
	softwareAdapter := flag.Bool("software-adapter", false, "Force the WebGPU fallback (CPU) adapter")
	profile := flag.Bool("profile", false, "Log FPS and object counts")
	timeScale := flag.Float64("timescale", float64(engine.DefaultTimeScale), "Simulation seconds per wall-clock second")
	flag.Parse()

	// ── Window ──────────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle(window.DefaultTitle),
		window.WithSize(*width, *height),
		window.WithMinSize(*minWidth, *minHeight),
		window.WithMaxSize(*maxWidth, *maxHeight),
	)
	if err != nil {
		log.Fatalf("window: %v", err)
	}
	defer win.Close()

	// ── Renderer ────────────────────────────────────────────────────────
	presentMode := renderer.PresentModeUncapped
	if *vsync {
		presentMode = renderer.PresentModeVSync
	}
	r, err := renderer.NewRenderer(win.SurfaceDescriptor(), win.Width(), win.Height(), model.NewSphere(),
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(renderer.ParseMSAA(*msaa)),
		renderer.WithForceSoftwareRenderer(*softwareAdapter),
	)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	defer r.Release()

	// ── Scene ───────────────────────────────────────────────────────────
	sc, err := scene.NewSolarSystem()
	if err != nil {
		log.Fatalf("scene: %v", err)
	}

	state := engine.NewApplicationState(camera.NewCamera(), camera.NewTrackball(), sc, win.Width(), win.Height())
	eng := engine.NewEngine(state,
		engine.WithInput(win),
		engine.WithSubmitter(r),
		engine.WithProfiling(*profile),
		engine.WithTimeScale(float32(*timeScale)),
	)

	state.PrintHelp()
	log.Printf("[Engine] rendering %d objects", sc.Count())
	eng.Run()
}
