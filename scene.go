package movieclip

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, clip playback events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event ClipEvent)
}

// ClipEvent carries playback data for the ECS bridge.
type ClipEvent struct {
	Type     ClipEventType
	NodeID   uint32
	EntityID uint32
	Name     string
	Frame    int
	Prev     int
	Label    string // valid for EventLabel
}

// Scene owns the node tree and ticks every clip in it once per update.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	pages    []*ebiten.Image
	nextPage int // next available page index for LoadAtlas
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update advances every clip by one Ebitengine tick.
func (s *Scene) Update() {
	s.Advance(1000.0 / float64(ebiten.TPS()))
}

// Advance advances every clip in the tree by ms milliseconds. The tree is
// walked parent first, so a clip reconciles its children before any of them
// advance and synchronized children see the offsets assigned this tick.
func (s *Scene) Advance(ms float64) {
	s.advanceNode(s.root, ms)
}

func (s *Scene) advanceNode(n *Node, ms float64) {
	switch {
	case n.Clip != nil:
		c := n.Clip
		prev, applied := c.currentFrame, c.applied
		c.Advance(ms)
		if n.Clip != nil && (!applied || c.currentFrame != prev) {
			label, _ := labelAt(c.Labels(), c.currentFrame)
			s.emitFrameChange(n, c.currentFrame, prev, label)
		}
	case n.Bitmap != nil:
		b := n.Bitmap
		prev := b.currentFrame
		b.Advance(ms)
		if n.Bitmap != nil && b.currentFrame != prev {
			label, _ := labelAt(b.labels, b.currentFrame)
			s.emitFrameChange(n, b.currentFrame, prev, label)
		}
	}
	// Index loop: a child may be disposed by a frame action of its sibling.
	for i := 0; i < len(n.children); i++ {
		s.advanceNode(n.children[i], ms)
	}
}

func (s *Scene) emitFrameChange(n *Node, frame, prev int, label string) {
	if s.debug {
		logger.Debug("frame", "node", n.Name, "frame", frame, "prev", prev, "label", label)
	}
	if s.store == nil {
		return
	}
	ev := ClipEvent{
		Type:     EventFrameChange,
		NodeID:   n.ID,
		EntityID: n.EntityID,
		Name:     n.Name,
		Frame:    frame,
		Prev:     prev,
	}
	s.store.EmitEvent(ev)
	if label != "" {
		ev.Type = EventLabel
		ev.Label = label
		s.store.EmitEvent(ev)
	}
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and the
// package logger drops to debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// RegisterPage stores an atlas page image at the given index.
func (s *Scene) RegisterPage(index int, img *ebiten.Image) {
	for len(s.pages) <= index {
		s.pages = append(s.pages, nil)
	}
	s.pages[index] = img
}

// Page returns the atlas page registered at index, or nil. The placeholder
// page used for missing regions resolves to a 1x1 magenta image.
func (s *Scene) Page(index uint16) *ebiten.Image {
	if index == magentaPlaceholderPage {
		return ensureMagentaImage()
	}
	if int(index) >= len(s.pages) {
		return nil
	}
	return s.pages[index]
}

// LoadAtlas parses TexturePacker JSON, registers atlas pages with the scene,
// and returns the Atlas for region and frame lookups. Pages are registered
// starting at the next available page index.
func (s *Scene) LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	atlas, err := LoadAtlas(jsonData, pages)
	if err != nil {
		return nil, err
	}
	startIndex := s.nextPage
	for i, page := range pages {
		s.RegisterPage(startIndex+i, page)
	}
	s.nextPage = startIndex + len(pages)
	// Remap region page indices to account for startIndex offset.
	if startIndex > 0 {
		for name, r := range atlas.regions {
			r.Page += uint16(startIndex)
			atlas.regions[name] = r
		}
	}
	return atlas, nil
}
