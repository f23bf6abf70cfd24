package movieclip

import (
	"sort"
)

// Timeline is the collaborator a MovieClip drives. It owns the authoritative
// frame: after SetPosition the clip reads Position back and only reconciles
// its children when that value moved.
type Timeline interface {
	// Resolve maps a frame number or label to a frame. It reports false for
	// unknown labels and frames outside [0, Duration()].
	Resolve(pos Position) (int, bool)
	// SetPosition moves the timeline to frame, applying tweened properties
	// and, unless skipActions is set, firing frame actions.
	SetPosition(frame int, skipActions bool)
	// Position returns the frame the timeline resolved on the last SetPosition.
	Position() int
	// Duration returns the timeline length in frames.
	Duration() int
	Loop() bool
	SetLoop(loop bool)
	// Active returns the entries that apply at the current position, in
	// declaration order.
	Active() []Entry
	// Labels returns the labels sorted by position.
	Labels() []Label
	// CurrentLabel returns the label at or immediately before the current position.
	CurrentLabel() (string, bool)
}

// Entry is one timeline item active at the current frame: a MotionEntry or a
// StateEntry.
type Entry interface {
	isEntry()
}

// MotionEntry places a single display object. Offset is the position within
// the tween's current step and becomes the sync offset of a clip target.
type MotionEntry struct {
	Target  *Node
	Offset  int
	Passive bool
}

// StateEntry applies property lists to a set of targets, then places each
// target like a MotionEntry with the same Offset.
type StateEntry struct {
	States  []State
	Offset  int
	Passive bool
}

// State is one target of a StateEntry with the properties to copy onto it.
type State struct {
	Target *Node
	Props  []Prop
}

func (MotionEntry) isEntry() {}
func (StateEntry) isEntry()  {}

// --- TweenTimeline ---

type frameAction struct {
	frame int
	fn    func()
}

// TweenTimeline is the built-in Timeline: a set of Tweens sharing one
// position, a label table and frame actions.
type TweenTimeline struct {
	tweens  []*Tween
	labels  []Label
	actions []frameAction

	loop     bool
	duration int
	position int
	resolved bool

	active []Entry // reused between SetPosition calls
}

// NewTimeline creates an empty timeline with the given labels.
func NewTimeline(labels map[string]int) *TweenTimeline {
	tl := &TweenTimeline{loop: true}
	for name, pos := range labels {
		tl.labels = append(tl.labels, Label{Name: name, Position: pos})
	}
	sortLabels(tl.labels)
	return tl
}

// sortLabels orders labels by position, breaking ties by name so the order is
// deterministic regardless of map iteration.
func sortLabels(labels []Label) {
	sort.SliceStable(labels, func(i, j int) bool {
		if labels[i].Position != labels[j].Position {
			return labels[i].Position < labels[j].Position
		}
		return labels[i].Name < labels[j].Name
	})
}

// AddTween appends tw to the timeline. The timeline duration grows to cover
// the longest tween.
func (tl *TweenTimeline) AddTween(tw *Tween) *TweenTimeline {
	tl.tweens = append(tl.tweens, tw)
	if tw.duration > tl.duration {
		tl.duration = tw.duration
	}
	return tl
}

// AddLabel adds or moves a label.
func (tl *TweenTimeline) AddLabel(name string, position int) {
	for i := range tl.labels {
		if tl.labels[i].Name == name {
			tl.labels[i].Position = position
			sortLabels(tl.labels)
			return
		}
	}
	tl.labels = append(tl.labels, Label{Name: name, Position: position})
	sortLabels(tl.labels)
}

// AddAction registers fn to run when the timeline reaches frame. Actions do
// not run while a clip is synchronized or has actions disabled.
func (tl *TweenTimeline) AddAction(frame int, fn func()) {
	tl.actions = append(tl.actions, frameAction{frame: frame, fn: fn})
	if frame > tl.duration {
		tl.duration = frame
	}
}

// SetDuration extends the timeline to at least frames frames.
func (tl *TweenTimeline) SetDuration(frames int) {
	if frames > tl.duration {
		tl.duration = frames
	}
}

func (tl *TweenTimeline) Duration() int     { return tl.duration }
func (tl *TweenTimeline) Loop() bool        { return tl.loop }
func (tl *TweenTimeline) SetLoop(loop bool) { tl.loop = loop }
func (tl *TweenTimeline) Position() int     { return tl.position }

// Resolve implements Timeline.
func (tl *TweenTimeline) Resolve(pos Position) (int, bool) {
	if name, ok := pos.Label(); ok {
		for _, l := range tl.labels {
			if l.Name == name {
				return l.Position, true
			}
		}
		return 0, false
	}
	frame, _ := pos.Frame()
	if frame < 0 || frame > tl.duration {
		return 0, false
	}
	return frame, true
}

// SetPosition implements Timeline. Looping timelines wrap frame into
// [0, Duration()); others clamp it into [0, Duration()].
func (tl *TweenTimeline) SetPosition(frame int, skipActions bool) {
	t := frame
	if t < 0 {
		t = 0
	}
	if tl.loop && tl.duration > 0 {
		t %= tl.duration
	} else if t > tl.duration {
		t = tl.duration
	}
	if tl.resolved && t == tl.position {
		return
	}
	prev, wasResolved := tl.position, tl.resolved
	tl.position = t
	tl.resolved = true

	tl.active = tl.active[:0]
	for _, tw := range tl.tweens {
		tl.active = append(tl.active, tw.apply(t))
	}
	if !skipActions {
		tl.runActions(prev, t, wasResolved)
	}
}

// runActions fires actions passed while moving forward from prev to t, or the
// actions on t itself after a backward jump or the first resolve.
func (tl *TweenTimeline) runActions(prev, t int, wasResolved bool) {
	from := t
	if wasResolved && t > prev {
		from = prev + 1
	}
	for _, a := range tl.actions {
		if a.frame >= from && a.frame <= t {
			a.fn()
		}
	}
}

// Active implements Timeline. The returned slice is reused by the next
// SetPosition call.
func (tl *TweenTimeline) Active() []Entry {
	return tl.active
}

// Labels implements Timeline.
func (tl *TweenTimeline) Labels() []Label {
	return tl.labels
}

// CurrentLabel implements Timeline.
func (tl *TweenTimeline) CurrentLabel() (string, bool) {
	return labelBefore(tl.labels, tl.position)
}

// labelBefore returns the last label with a position at or before frame.
// labels must be sorted ascending.
func labelBefore(labels []Label, frame int) (string, bool) {
	name, found := "", false
	for _, l := range labels {
		if l.Position > frame {
			break
		}
		name, found = l.Name, true
	}
	return name, found
}

// labelAt returns the label placed exactly on frame.
func labelAt(labels []Label, frame int) (string, bool) {
	for _, l := range labels {
		if l.Position == frame {
			return l.Name, true
		}
	}
	return "", false
}
