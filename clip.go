package movieclip

// maxDeferredSeeks bounds how many seeks issued by frame actions are chained
// after one sync pass.
const maxDeferredSeeks = 16

// ClipConfig configures a MovieClip created by NewMovieClip.
type ClipConfig struct {
	Timeline      Timeline
	Mode          Mode
	StartPosition int
	// Framerate > 0 plays time based; 0 inherits from the nearest
	// independent ancestor clip, falling back to one frame per advance.
	Framerate float64
	// DisableLoop stops the clip on its last frame instead of wrapping.
	DisableLoop bool
	// Paused starts the clip stopped.
	Paused bool
	// DisableActions suppresses timeline frame actions.
	DisableActions bool
	// DisableAutoReset keeps the clip's frame when a parent timeline re-adds it.
	DisableAutoReset bool
}

// FrameContext carries frame change data to OnFrameChange.
type FrameContext struct {
	Node  *Node
	Frame int
	Prev  int
	Label string // label placed exactly on Frame, if any
}

// MovieClip plays a Timeline on a Node and keeps the node's managed children
// in line with the timeline's active entries.
type MovieClip struct {
	Mode          Mode
	StartPosition int
	Loop          bool
	// ActionsEnabled controls whether timeline frame actions fire while the
	// clip plays independently.
	ActionsEnabled bool
	// AutoReset rewinds an independent clip to frame 0 whenever a parent
	// timeline adds it back onto the display list.
	AutoReset bool

	// FrameBounds holds authored bounds per frame, usually tool output.
	FrameBounds []Rect

	// OnFrameChange is called after the clip lands on a new frame and its
	// children are reconciled.
	OnFrameChange func(FrameContext)

	node     *Node
	timeline Timeline
	playhead Playhead

	framerateSet bool

	currentFrame int
	lastApplied  int
	applied      bool
	forceResolve bool

	syncOffset int
	managed    map[uint32]managedTag

	updating    bool
	pendingSeek bool
	pendingPos  int
}

// NewMovieClip creates a movie clip node. The clip is reachable through
// the returned node's Clip field.
func NewMovieClip(name string, cfg ClipConfig) *Node {
	n := &Node{Name: name, Type: NodeTypeMovieClip}
	nodeDefaults(n)
	c := &MovieClip{
		Mode:           cfg.Mode,
		StartPosition:  cfg.StartPosition,
		Loop:           !cfg.DisableLoop,
		ActionsEnabled: !cfg.DisableActions,
		AutoReset:      !cfg.DisableAutoReset,
		node:           n,
		timeline:       cfg.Timeline,
		playhead:       newPlayhead(!cfg.DisableLoop),
		managed:        make(map[uint32]managedTag),
	}
	if c.timeline == nil {
		c.timeline = NewTimeline(nil)
	}
	c.playhead.Paused = cfg.Paused
	c.syncLength()
	if cfg.Framerate > 0 {
		c.SetFramerate(cfg.Framerate)
	}
	n.Clip = c
	return n
}

// Node returns the node the clip drives.
func (c *MovieClip) Node() *Node {
	return c.node
}

// Timeline returns the clip's timeline.
func (c *MovieClip) Timeline() Timeline {
	return c.timeline
}

// CurrentFrame returns the frame the clip last resolved.
func (c *MovieClip) CurrentFrame() int {
	return c.currentFrame
}

// Paused reports whether the clip is stopped.
func (c *MovieClip) Paused() bool {
	return c.playhead.Paused
}

// AdvanceDuringTicks reports whether Advance moves the playhead.
func (c *MovieClip) AdvanceDuringTicks() bool {
	return c.playhead.AdvanceDuringTicks
}

// SetAdvanceDuringTicks sets whether Advance moves the playhead. When false
// the clip must be driven through SetElapsedTime or the goto methods.
func (c *MovieClip) SetAdvanceDuringTicks(enabled bool) {
	c.playhead.AdvanceDuringTicks = enabled
}

// Framerate returns the target framerate, 0 when tick based.
func (c *MovieClip) Framerate() float64 {
	return c.playhead.Framerate()
}

// SetFramerate sets the target framerate. Values <= 0 switch the clip to one
// frame per advance and stop framerate inheritance.
func (c *MovieClip) SetFramerate(fps float64) {
	c.framerateSet = true
	c.syncLength()
	c.playhead.SetFramerate(fps)
}

// Duration returns the timeline length in seconds, 0 when tick based.
func (c *MovieClip) Duration() float64 {
	return c.playhead.Duration()
}

// ElapsedTime returns the seconds elapsed since frame 0.
func (c *MovieClip) ElapsedTime() float64 {
	return c.playhead.ElapsedTime()
}

// SetElapsedTime sets the seconds elapsed since frame 0.
func (c *MovieClip) SetElapsedTime(seconds float64) {
	c.playhead.SetElapsedTime(seconds)
}

// Play resumes playback.
func (c *MovieClip) Play() {
	c.playhead.Paused = false
}

// Stop pauses playback.
func (c *MovieClip) Stop() {
	c.playhead.Paused = true
}

// GotoAndPlay moves to pos and resumes playback. Unknown labels and
// out-of-range frames leave the position unchanged.
func (c *MovieClip) GotoAndPlay(pos Position) {
	c.playhead.Paused = false
	c.gotoPosition(pos)
}

// GotoAndStop moves to pos and pauses playback. Unknown labels and
// out-of-range frames leave the position unchanged.
func (c *MovieClip) GotoAndStop(pos Position) {
	c.playhead.Paused = true
	c.gotoPosition(pos)
}

// Advance moves an independent clip's playhead by ms milliseconds, or by one
// frame when the clip is tick based, then syncs the timeline. A clip that is
// paused still resolves its first frame and any pending reset. Single-frame
// and synchronized clips only resync to their assigned position.
func (c *MovieClip) Advance(ms float64) {
	if c.Mode != ModeIndependent {
		c.update()
		return
	}
	if !c.framerateSet && c.playhead.Framerate() == 0 {
		c.inheritFramerate()
	}
	c.syncLength()
	c.playhead.Loop = c.Loop
	if c.playhead.Advance(ms) || !c.applied || c.forceResolve {
		c.update()
	}
}

// Labels returns the timeline labels sorted by position.
func (c *MovieClip) Labels() []Label {
	return c.timeline.Labels()
}

// CurrentLabel returns the label at or immediately before the current frame.
func (c *MovieClip) CurrentLabel() (string, bool) {
	c.update()
	return c.timeline.CurrentLabel()
}

// Bounds returns the authored bounds for the current frame.
func (c *MovieClip) Bounds() (Rect, bool) {
	c.update()
	if c.currentFrame < 0 || c.currentFrame >= len(c.FrameBounds) {
		return Rect{}, false
	}
	return c.FrameBounds[c.currentFrame], true
}

// Clone always fails with ErrCloneUnsupported.
func (c *MovieClip) Clone() (*MovieClip, error) {
	return nil, ErrCloneUnsupported
}

// String returns a short description of the clip.
func (c *MovieClip) String() string {
	return "[MovieClip (name=" + c.node.Name + ")]"
}

// --- internals ---

func (c *MovieClip) gotoPosition(pos Position) {
	frame, ok := c.timeline.Resolve(pos)
	if !ok {
		if globalDebug {
			name, isLabel := pos.Label()
			f, _ := pos.Frame()
			logger.Debug("goto ignored", "clip", c.node.Name, "label", name, "isLabel", isLabel, "frame", f)
		}
		return
	}
	if c.updating {
		c.pendingSeek = true
		c.pendingPos = frame
		return
	}
	c.seek(frame)
	c.update()
}

func (c *MovieClip) seek(frame int) {
	c.playhead.Seek(frame)
	c.forceResolve = true
}

// reset rewinds the clip as if newly placed.
func (c *MovieClip) reset() {
	c.playhead.Reset()
	c.currentFrame = 0
	c.forceResolve = true
}

// inheritFramerate adopts the framerate of the nearest independent ancestor
// clip that has one. The value is cached on the playhead and not revisited.
func (c *MovieClip) inheritFramerate() {
	for p := c.node.Parent; p != nil; p = p.Parent {
		if p.Clip == nil || p.Clip.Mode != ModeIndependent {
			continue
		}
		if fps := p.Clip.playhead.Framerate(); fps > 0 {
			c.syncLength()
			c.playhead.SetFramerate(fps)
			return
		}
	}
}

func (c *MovieClip) syncLength() {
	if c.timeline == nil {
		return
	}
	d := c.timeline.Duration()
	c.playhead.SetLength(d, d)
}

// update pushes the effective position into the timeline and, when the
// timeline lands on a different frame, reconciles the managed children.
func (c *MovieClip) update() {
	if c.timeline == nil || c.updating {
		return
	}
	c.updating = true
	c.syncTimeline()
	for i := 0; c.pendingSeek && i < maxDeferredSeeks; i++ {
		c.pendingSeek = false
		c.seek(c.pendingPos)
		c.syncTimeline()
	}
	c.pendingSeek = false
	c.updating = false
}

func (c *MovieClip) syncTimeline() {
	tl := c.timeline
	tl.SetLoop(c.Loop)

	switch c.Mode {
	case ModeSingleFrame:
		tl.SetPosition(c.StartPosition, true)
	case ModeSynchronized:
		tl.SetPosition(c.StartPosition+c.syncOffset, true)
	default:
		tl.SetPosition(c.playhead.Position(), !c.ActionsEnabled)
	}

	frame := tl.Position()
	if c.Mode == ModeIndependent {
		c.playhead.settle(frame)
	}
	if c.applied && frame == c.lastApplied && !c.forceResolve {
		return
	}
	prev := c.currentFrame
	c.forceResolve = false
	c.applied = true
	c.lastApplied = frame
	c.currentFrame = frame

	c.reconcile(tl.Active())

	if c.OnFrameChange != nil {
		label, _ := labelAt(tl.Labels(), frame)
		c.OnFrameChange(FrameContext{Node: c.node, Frame: frame, Prev: prev, Label: label})
	}
}

func (c *MovieClip) release() {
	c.managed = nil
	c.OnFrameChange = nil
	c.timeline = nil
}
