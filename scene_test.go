package movieclip

import "testing"

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.root.Type != NodeTypeContainer {
		t.Errorf("root.Type = %d, want NodeTypeContainer", s.root.Type)
	}
}

func TestSceneRoot(t *testing.T) {
	s := NewScene()
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
}

func TestSceneSetEntityStore(t *testing.T) {
	s := NewScene()
	s.SetEntityStore(nil) // should not panic
	if s.store != nil {
		t.Error("store should be nil")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug {
		t.Error("debug should be false")
	}
}

func TestSceneRegisterPage(t *testing.T) {
	s := NewScene()
	s.RegisterPage(0, nil)
	s.RegisterPage(2, nil)
	if len(s.pages) != 3 {
		t.Errorf("pages len = %d, want 3", len(s.pages))
	}
}

func TestScenePagePlaceholder(t *testing.T) {
	s := NewScene()
	if s.Page(3) != nil {
		t.Error("unregistered page should be nil")
	}
	if s.Page(magentaPlaceholderPage) != ensureMagentaImage() {
		t.Error("placeholder page should resolve to the magenta image")
	}
}

type recordingStore struct {
	events []ClipEvent
}

func (r *recordingStore) EmitEvent(ev ClipEvent) {
	r.events = append(r.events, ev)
}

func TestSceneAdvanceEmitsFrameEvents(t *testing.T) {
	s := NewScene()
	store := &recordingStore{}
	s.SetEntityStore(store)

	tl := NewTimeline(map[string]int{"hit": 1})
	tl.SetDuration(3)
	n := NewMovieClip("hero", ClipConfig{Timeline: tl})
	n.EntityID = 7
	s.Root().AddChild(n)

	s.Advance(16)
	s.Advance(16)

	want := []ClipEvent{
		{Type: EventFrameChange, NodeID: n.ID, EntityID: 7, Name: "hero", Frame: 0, Prev: 0},
		{Type: EventFrameChange, NodeID: n.ID, EntityID: 7, Name: "hero", Frame: 1, Prev: 0},
		{Type: EventLabel, NodeID: n.ID, EntityID: 7, Name: "hero", Frame: 1, Prev: 0, Label: "hit"},
	}
	if len(store.events) != len(want) {
		t.Fatalf("events = %+v, want %+v", store.events, want)
	}
	for i := range want {
		if store.events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, store.events[i], want[i])
		}
	}
}

func TestSceneAdvanceNoEventWhenFrameHolds(t *testing.T) {
	s := NewScene()
	store := &recordingStore{}
	s.SetEntityStore(store)

	tl := NewTimeline(nil)
	tl.SetDuration(3)
	n := NewMovieClip("still", ClipConfig{Timeline: tl, Mode: ModeSingleFrame, StartPosition: 2})
	s.Root().AddChild(n)

	for i := 0; i < 4; i++ {
		s.Advance(16)
	}
	if len(store.events) != 1 {
		t.Errorf("events = %d, want 1 for the first placement only", len(store.events))
	}
}

func TestSceneAdvanceParentBeforeChild(t *testing.T) {
	s := NewScene()

	childTL := NewTimeline(nil)
	childTL.SetDuration(20)
	child := NewMovieClip("child", ClipConfig{Timeline: childTL, Mode: ModeSynchronized})

	parentTL := NewTimeline(nil)
	parentTL.AddTween(NewTween(child).Wait(10))
	parent := NewMovieClip("parent", ClipConfig{Timeline: parentTL})
	s.Root().AddChild(parent)

	for i := 0; i < 4; i++ {
		s.Advance(16)
		if child.Clip.CurrentFrame() != parent.Clip.CurrentFrame() {
			t.Fatalf("tick %d: child frame %d, parent frame %d", i, child.Clip.CurrentFrame(), parent.Clip.CurrentFrame())
		}
	}
	if parent.Clip.CurrentFrame() != 3 {
		t.Errorf("parent CurrentFrame = %d, want 3", parent.Clip.CurrentFrame())
	}
}

func TestSceneUpdateUsesTickDuration(t *testing.T) {
	s := NewScene()
	tl := NewTimeline(nil)
	tl.SetDuration(600)
	n := NewMovieClip("timed", ClipConfig{Timeline: tl, Framerate: 60})
	s.Root().AddChild(n)

	s.Update()
	if e := n.Clip.ElapsedTime(); e <= 0 {
		t.Errorf("ElapsedTime = %v, want > 0 after one Update", e)
	}
}
