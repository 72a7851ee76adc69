// Package render draws trajectories with gonum/plot.
//
// Plot builds the static figure: the full flight as a dotted curve on fixed
// kilometre axes (x 0–1000, y 0–500 by default) with equal scale on both
// axes. DrawFrame builds one animation frame from an animation.FrameState,
// and WriteGIF / WriteFrames export a whole animation.
//
// Errors raised by gonum/plot or the image encoders are returned wrapped
// with %w; nothing here validates the physical parameters.
package render
