// Package player plays an animation live in a terminal through tcell.
//
// The player owns a single piece of state, the current frame index, which
// advances once per frame interval from 0 to TotalFrames-1. There is no
// pause or seek. Playback ends after the last frame, when the context is
// cancelled, or when the user quits with Esc, q or Ctrl-C.
package player
