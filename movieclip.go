package movieclip

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets and origins.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// NodeType distinguishes the role of a Node.
type NodeType uint8

const (
	NodeTypeContainer  NodeType = iota // group node with no visual output
	NodeTypeSprite                     // renders a TextureRegion
	NodeTypeMovieClip                  // container driven by a Timeline
	NodeTypeBitmapClip                 // container swapping atlas frames on one sprite
)

// Mode controls how a MovieClip computes the position it hands to its timeline.
type Mode uint8

const (
	ModeIndependent  Mode = iota // advances from its own playhead (default)
	ModeSingleFrame              // always shows StartPosition
	ModeSynchronized             // StartPosition plus the offset assigned by the parent
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeIndependent:
		return "independent"
	case ModeSingleFrame:
		return "single"
	case ModeSynchronized:
		return "synchronized"
	default:
		return "unknown"
	}
}

// Position addresses a timeline frame either by number or by label name.
// Build one with AtFrame or AtLabel.
type Position struct {
	label   string
	frame   int
	isLabel bool
}

// AtFrame returns a Position for the given frame number.
func AtFrame(frame int) Position {
	return Position{frame: frame}
}

// AtLabel returns a Position for the given label name.
func AtLabel(name string) Position {
	return Position{label: name, isLabel: true}
}

// Label reports the label name and whether the position is label-based.
func (p Position) Label() (string, bool) {
	return p.label, p.isLabel
}

// Frame reports the frame number and whether the position is frame-based.
func (p Position) Frame() (int, bool) {
	return p.frame, !p.isLabel
}

// Label is a named frame position.
type Label struct {
	Name     string
	Position int
}

// ClipEventType identifies a kind of playback event.
type ClipEventType uint8

const (
	EventFrameChange ClipEventType = iota // fires when a clip lands on a new frame
	EventLabel                            // fires when the new frame carries a label
)
