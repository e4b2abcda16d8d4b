// Package viz renders live rocket flights in the terminal.
//
// The package implements an interactive view on the Bubble Tea framework:
//
//   - [Model]: event loop bridging engine frames, key input, and plan requests
//   - [Canvas]: Braille-based pixel canvas the scene is drawn on
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume the flight
//	T     - Cycle color themes
//	Q     - Quit
//
// # Frame Pacing
//
// Frames are paced by the terminal timer. Each frame advances the
// simulation by the wall-clock time since the previous one, so a slow
// terminal drops visual detail without slowing the flight down.
package viz
