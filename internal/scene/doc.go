// Package scene assembles the rotating wireframe cube.
//
// A [Scene] holds the eight cube corners, the rotation pipeline (Y, then Z,
// then X) and a [camera.Camera]. [Scene.Frame] turns a time value into eight
// projected points plus the fixed edge list.
//
// # Time
//
// A [Clock] is the only mutable state. [Player] is its single writer: each
// call to [Player.Next] ticks the clock once and builds that frame. Hosts
// call Next from their own frame callback and draw whatever it returns.
//
// # Failures
//
// A frame that cannot be built (degenerate camera, non-finite coordinates)
// is reported as a [*FrameError]. Player logs it and tells the host to skip
// the frame; the next tick is tried normally.
package scene
