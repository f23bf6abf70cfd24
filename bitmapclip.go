package movieclip

import (
	"encoding/json"
	"fmt"
)

// FrameSet names a run of numbered atlas frames, e.g. "walk#" 1..20 with
// 4 digits for walk0001..walk0020.
type FrameSet struct {
	Name   string `json:"name"`
	Min    int    `json:"min"`
	Max    int    `json:"max"`
	Digits int    `json:"digits,omitempty"`
}

// BitmapClipData describes a BitmapClip animation.
type BitmapClipData struct {
	// FPS > 0 plays time based; 0 keeps the clip's current framerate.
	FPS    float64        `json:"fps,omitempty"`
	Labels map[string]int `json:"labels,omitempty"`
	Origin Vec2           `json:"origin"`
	Frames []FrameSet     `json:"frames"`
	// Scale is the factor the art was exported at; the frame sprite is drawn
	// at 1/Scale.
	Scale float64 `json:"scale,omitempty"`
}

// ParseBitmapClipData decodes BitmapClipData from JSON.
func ParseBitmapClipData(jsonData []byte) (BitmapClipData, error) {
	var data BitmapClipData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return BitmapClipData{}, fmt.Errorf("movieclip: failed to parse clip JSON: %w", err)
	}
	return data, nil
}

// BitmapClip plays a flat sequence of atlas frames on a single sprite child.
// It shares MovieClip's playback API without a tween timeline.
type BitmapClip struct {
	node     *Node
	sprite   *Node
	playhead Playhead

	frames []TextureRegion
	labels []Label
	origin Vec2
	scale  float64

	currentFrame int
	shown        TextureRegion
	hasShown     bool
}

// NewBitmapClip creates a bitmap clip node playing frames from atlas. The
// clip is reachable through the returned node's Bitmap field.
func NewBitmapClip(name string, atlas *Atlas, data BitmapClipData) (*Node, error) {
	n := &Node{Name: name, Type: NodeTypeBitmapClip}
	nodeDefaults(n)
	b := &BitmapClip{
		node:     n,
		sprite:   NewSprite(name+"_frame", TextureRegion{}),
		playhead: newPlayhead(true),
		scale:    1,
	}
	n.AddChild(b.sprite)
	if err := b.Init(atlas, data); err != nil {
		return nil, err
	}
	n.Bitmap = b
	return n, nil
}

// Init loads labels and frames from data. On error the clip keeps its
// previous frames.
func (b *BitmapClip) Init(atlas *Atlas, data BitmapClipData) error {
	if atlas == nil {
		return fmt.Errorf("%w: nil atlas", ErrInvalidFrameSet)
	}
	if len(data.Frames) == 0 {
		return fmt.Errorf("%w: no frame sets", ErrInvalidFrameSet)
	}
	var frames []TextureRegion
	for _, set := range data.Frames {
		f, err := atlas.Frames(set.Name, set.Min, set.Max, set.Digits)
		if err != nil {
			return err
		}
		frames = append(frames, f...)
	}

	labels := make([]Label, 0, len(data.Labels))
	for name, pos := range data.Labels {
		labels = append(labels, Label{Name: name, Position: pos})
	}
	sortLabels(labels)

	b.frames = frames
	b.labels = labels
	b.hasShown = false
	b.syncLength()
	if data.FPS > 0 {
		b.playhead.SetFramerate(data.FPS)
	}

	b.scale = 1
	if data.Scale > 0 {
		b.scale = 1 / data.Scale
	}
	b.sprite.ScaleX = b.scale
	b.sprite.ScaleY = b.scale
	b.origin = Vec2{X: data.Origin.X * b.scale, Y: data.Origin.Y * b.scale}
	b.update()
	return nil
}

// CopyFrom shares other's frames, labels, origin, scale and framerate. The
// frame and label slices are shared by reference.
func (b *BitmapClip) CopyFrom(other *BitmapClip) {
	b.frames = other.frames
	b.labels = other.labels
	b.origin = other.origin
	b.scale = other.scale
	b.sprite.ScaleX = b.scale
	b.sprite.ScaleY = b.scale
	b.syncLength()
	b.playhead.SetFramerate(other.playhead.Framerate())
	b.hasShown = false
	b.update()
}

// Node returns the clip's container node.
func (b *BitmapClip) Node() *Node { return b.node }

// Sprite returns the child sprite showing the current frame.
func (b *BitmapClip) Sprite() *Node { return b.sprite }

// NumFrames returns the number of frames in the sequence.
func (b *BitmapClip) NumFrames() int { return len(b.frames) }

// CurrentFrame returns the displayed frame index.
func (b *BitmapClip) CurrentFrame() int { return b.currentFrame }

// Paused reports whether the clip is stopped.
func (b *BitmapClip) Paused() bool { return b.playhead.Paused }

// Loop reports whether playback wraps at the end of the sequence.
func (b *BitmapClip) Loop() bool { return b.playhead.Loop }

// SetLoop sets whether playback wraps at the end of the sequence.
func (b *BitmapClip) SetLoop(loop bool) { b.playhead.Loop = loop }

// SetAdvanceDuringTicks sets whether Advance moves the playhead.
func (b *BitmapClip) SetAdvanceDuringTicks(enabled bool) {
	b.playhead.AdvanceDuringTicks = enabled
}

// Framerate returns the target framerate, 0 when tick based.
func (b *BitmapClip) Framerate() float64 { return b.playhead.Framerate() }

// SetFramerate sets the target framerate; values <= 0 switch to one frame
// per advance.
func (b *BitmapClip) SetFramerate(fps float64) {
	b.syncLength()
	b.playhead.SetFramerate(fps)
}

// Duration returns the sequence length in seconds, 0 when tick based.
func (b *BitmapClip) Duration() float64 { return b.playhead.Duration() }

// ElapsedTime returns the seconds elapsed since frame 0.
func (b *BitmapClip) ElapsedTime() float64 { return b.playhead.ElapsedTime() }

// SetElapsedTime sets the seconds elapsed since frame 0.
func (b *BitmapClip) SetElapsedTime(seconds float64) { b.playhead.SetElapsedTime(seconds) }

// Play resumes playback.
func (b *BitmapClip) Play() { b.playhead.Paused = false }

// Stop pauses playback.
func (b *BitmapClip) Stop() { b.playhead.Paused = true }

// GotoAndPlay moves to pos and resumes playback.
func (b *BitmapClip) GotoAndPlay(pos Position) {
	b.playhead.Paused = false
	b.gotoPosition(pos)
}

// GotoAndStop moves to pos and pauses playback.
func (b *BitmapClip) GotoAndStop(pos Position) {
	b.playhead.Paused = true
	b.gotoPosition(pos)
}

// Advance moves the playhead by ms milliseconds, or one frame when tick
// based, and swaps the displayed frame if it changed.
func (b *BitmapClip) Advance(ms float64) {
	if b.playhead.Advance(ms) {
		b.update()
	}
}

// Labels returns the labels sorted by position.
func (b *BitmapClip) Labels() []Label { return b.labels }

// CurrentLabel returns the label at or immediately before the current frame.
func (b *BitmapClip) CurrentLabel() (string, bool) {
	return labelBefore(b.labels, b.currentFrame)
}

// Dispose disposes the clip's node and its frame sprite.
func (b *BitmapClip) Dispose() {
	b.node.Dispose()
}

func (b *BitmapClip) gotoPosition(pos Position) {
	frame, found := 0, false
	if name, ok := pos.Label(); ok {
		for _, l := range b.labels {
			if l.Name == name {
				frame, found = l.Position, true
				break
			}
		}
	} else {
		frame, _ = pos.Frame()
		found = frame >= 0 && frame < len(b.frames)
	}
	if !found {
		if globalDebug {
			logger.Debug("goto ignored", "clip", b.node.Name, "frames", len(b.frames))
		}
		return
	}
	b.playhead.Seek(frame)
	b.update()
}

func (b *BitmapClip) syncLength() {
	b.playhead.SetLength(len(b.frames), len(b.frames)-1)
}

// update clamps the playhead into the frame list and swaps the sprite's
// region when the frame descriptor differs from the one displayed.
func (b *BitmapClip) update() {
	if len(b.frames) == 0 {
		return
	}
	frame := b.playhead.Position()
	if frame < 0 {
		frame = 0
	} else if frame >= len(b.frames) {
		frame = len(b.frames) - 1
	}
	b.currentFrame = frame
	tex := b.frames[frame]
	if b.hasShown && tex == b.shown {
		return
	}
	b.shown = tex
	b.hasShown = true
	b.sprite.TextureRegion = tex
	b.sprite.X = -b.origin.X + float64(tex.OffsetX)*b.sprite.ScaleX
	b.sprite.Y = -b.origin.Y + float64(tex.OffsetY)*b.sprite.ScaleY
}

func (b *BitmapClip) release() {
	b.frames = nil
	b.labels = nil
	b.sprite = nil
}
