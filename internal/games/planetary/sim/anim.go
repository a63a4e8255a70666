package sim

// Animation is a looping frame counter. The simulation uses it both to
// request visuals from the renderer and to time edge-triggered effects.
type Animation struct {
	Frames     int // Frames per cycle
	FrameTicks int // Ticks each frame is shown

	frame int
	ticks int
}

// NewAnimation creates an animation positioned at frame 0.
func NewAnimation(frames, frameTicks int) Animation {
	if frames < 1 {
		frames = 1
	}
	if frameTicks < 1 {
		frameTicks = 1
	}
	return Animation{Frames: frames, FrameTicks: frameTicks}
}

// Advance moves the animation forward one tick.
// It returns true on the tick a new frame begins.
func (a *Animation) Advance() bool {
	a.ticks++
	if a.ticks < a.FrameTicks {
		return false
	}
	a.ticks = 0
	a.frame = (a.frame + 1) % a.Frames
	return true
}

// Frame returns the current frame index.
func (a *Animation) Frame() int {
	return a.frame
}

// Reset rewinds to frame 0.
func (a *Animation) Reset() {
	a.frame = 0
	a.ticks = 0
}
