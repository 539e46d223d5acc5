// Package viz draws cube frames in the terminal.
//
// The package implements a live view using the Bubble Tea framework:
//
//   - [Canvas]: Braille-based pixel canvas (2x4 dots per cell)
//   - [Render]: centre axes, corner dots and the twelve edges of a frame
//   - [Model]: live view ticking a [scene.Player] at a fixed frame rate
//
// # Key Bindings
//
//	Space - Pause/Resume
//	T     - Cycle color themes
//	Q     - Quit
package viz
