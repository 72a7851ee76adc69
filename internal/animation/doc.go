// Package animation models the animated trajectory as a pure function from
// frame index to frame state.
//
// An Animation samples the flight once, at a density tied to the wall-clock
// animation settings rather than to the simulated flight time:
//
//	samples = floor(flightDuration · frameRate / compression)
//
// Short flights can therefore end up with very few samples and long flights
// with many. Frames run for floor(duration · frameRate) ticks; frames past
// the last sample hold the projectile at its landing position.
//
// Hosts (PNG/GIF export in package render, the terminal player in package
// player) only decide how to draw a FrameState, never what to draw.
package animation
