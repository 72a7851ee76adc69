// Package config loads optional trajectory settings from a YAML file.
//
// Files are decoded strictly (unknown keys are rejected) on top of the
// defaults, then unified with an embedded CUE schema that enforces positive
// gravity, frame rate, compression and durations, and ordered axis bounds.
//
// Example file:
//
//	gravity: 9.81
//	samples: 100
//	launch:
//	  speed: 2000
//	  angle_deg: 45
//	plot:
//	  x_max: 1000
//	  y_max: 500
//	animation:
//	  duration: 5
//	  frame_rate: 24
//	  compression: 300
package config
