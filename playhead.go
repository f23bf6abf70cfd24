package movieclip

import "math"

// Playhead is the time/frame cursor shared by MovieClip and BitmapClip.
// It only produces a target frame; it never reads or mutates children.
//
// With a framerate above zero the playhead is time based: Advance accumulates
// elapsed seconds and derives the frame from them. With a zero framerate it is
// tick based and moves one frame per advance.
type Playhead struct {
	Paused bool
	Loop   bool
	// AdvanceDuringTicks controls whether Advance moves time forward. When
	// false the clip must be driven externally through SetElapsedTime or Seek.
	AdvanceDuringTicks bool

	framerate float64
	duration  float64
	elapsed   float64

	position int
	valid    bool // position has been produced by an advance or seek

	length int // frames covered by duration
	last   int // highest frame the playhead may produce
}

func newPlayhead(loop bool) Playhead {
	return Playhead{Loop: loop, AdvanceDuringTicks: true}
}

// SetLength sets the number of frames the duration covers and the highest
// frame index the playhead may report. The duration is recomputed.
func (p *Playhead) SetLength(length, last int) {
	if length < 0 {
		length = 0
	}
	if last < 0 {
		last = 0
	}
	p.length = length
	p.last = last
	if p.framerate > 0 {
		p.duration = float64(p.length) / p.framerate
	}
}

// SetFramerate switches to time-based advancement at fps frames per second.
// Zero or negative values switch to tick-based advancement.
func (p *Playhead) SetFramerate(fps float64) {
	if fps > 0 {
		p.framerate = fps
		p.duration = float64(p.length) / fps
		return
	}
	p.framerate = 0
	p.duration = 0
}

// Framerate returns the target framerate, or 0 when tick based.
func (p *Playhead) Framerate() float64 {
	return p.framerate
}

// Duration returns the timeline length in seconds, or 0 when tick based.
func (p *Playhead) Duration() float64 {
	return p.duration
}

// ElapsedTime returns the time in seconds since frame 0.
func (p *Playhead) ElapsedTime() float64 {
	return p.elapsed
}

// SetElapsedTime sets the time in seconds since frame 0. The frame is derived
// from it on the next advance.
func (p *Playhead) SetElapsedTime(seconds float64) {
	p.elapsed = seconds
}

// Position returns the current target frame; 0 if none was produced yet.
func (p *Playhead) Position() int {
	if !p.valid {
		return 0
	}
	return p.position
}

// Valid reports whether the playhead has produced a frame since the last reset.
func (p *Playhead) Valid() bool {
	return p.valid
}

// Advance moves the playhead by ms milliseconds (time based) or one frame
// (tick based). It reports whether a new target was produced; paused
// playheads produce nothing.
func (p *Playhead) Advance(ms float64) bool {
	if p.Paused {
		return false
	}
	if p.framerate > 0 {
		p.AdvanceByTime(ms)
		return true
	}
	if p.AdvanceDuringTicks {
		p.AdvanceByTick()
		return true
	}
	return false
}

// AdvanceByTime adds ms milliseconds to the elapsed time and derives the
// target frame from it.
func (p *Playhead) AdvanceByTime(ms float64) {
	if p.AdvanceDuringTicks {
		p.elapsed += ms * 0.001
	}
	if p.elapsed < 0 {
		p.elapsed = 0
	}
	if p.Loop {
		if p.duration > 0 && p.elapsed >= p.duration {
			p.elapsed = math.Mod(p.elapsed, p.duration)
		}
	} else if p.elapsed > p.duration {
		p.elapsed = p.duration
	}
	p.position = p.clamp(int(math.Floor(p.elapsed * p.framerate)))
	p.valid = true
}

// AdvanceByTick moves to the next frame, or to frame 0 if no frame has been
// produced since the last reset.
func (p *Playhead) AdvanceByTick() {
	if !p.valid {
		p.position = 0
		p.valid = true
		return
	}
	next := p.position + 1
	if next > p.last && p.Loop {
		next = 0
	}
	p.position = p.clamp(next)
}

// Seek moves directly to frame. The elapsed time follows the frame when time
// based. Seek ignores Paused.
func (p *Playhead) Seek(frame int) {
	p.position = frame
	p.valid = true
	if p.framerate > 0 {
		p.elapsed = float64(frame) / p.framerate
	} else {
		p.elapsed = 0
	}
}

// Reset returns to frame 0 with no frame produced.
func (p *Playhead) Reset() {
	p.position = 0
	p.valid = false
	p.elapsed = 0
}

// settle records the frame the timeline actually resolved so tick-based
// advancement continues from it.
func (p *Playhead) settle(frame int) {
	p.position = frame
	p.valid = true
}

func (p *Playhead) clamp(frame int) int {
	if frame < 0 {
		return 0
	}
	if frame > p.last {
		return p.last
	}
	return frame
}
