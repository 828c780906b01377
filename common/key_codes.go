package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII)
	KeyD     = 68  // D key (ASCII)
	KeyQ     = 81  // Q key (ASCII)
	KeyH     = 72  // H key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)

// Additional non-printable keys
const (
	KeyHome  = 268 // Home (GLFW)
	KeyPause = 284 // Pause/Break (GLFW)
	KeyF1    = 290 // F1 (GLFW)
)

// Mouse buttons, matching glfw.MouseButton values.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// Modifier bits, matching glfw.ModifierKey values.
const (
	ModShift   = 0x0001
	ModControl = 0x0002
	ModAlt     = 0x0004
	ModSuper   = 0x0008
)
