// Package kinematics provides closed-form ballistic motion under constant
// gravity: flight duration, positions over a time grid, and the shared
// trajectory build step used by every renderer.
//
// All functions are pure. Gravity is passed explicitly to each computation;
// there is no package-level mutable state. Distances are in metres, speeds in
// m/s, times in seconds and angles in radians unless a Trajectory was built
// with a scale divisor (see Build).
//
// No input validation is performed. Zero or negative speeds and angles
// outside [0, π] produce degenerate but well-defined results.
package kinematics
