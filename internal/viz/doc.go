// Package viz renders the running simulation in the terminal.
//
// The package implements a live view using the Bubble Tea framework:
//
//   - [Model]: live simulation view stepping by wall-clock time
//   - [Canvas]: Braille-based pixel canvas bodies are drawn into
//   - [Camera]: 3D-to-canvas projection with rotation and zoom
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial state
//	T     - Cycle color themes
//	X/Y/Z - Rotate camera (shifted: opposite direction)
//	+/-   - Zoom
//	?     - Show help overlay
package viz
