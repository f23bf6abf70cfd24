package movieclip

import "testing"

func TestNewTimelineSortsLabels(t *testing.T) {
	tl := NewTimeline(map[string]int{"c": 20, "a": 0, "b": 15})
	labels := tl.Labels()
	want := []Label{{"a", 0}, {"b", 15}, {"c", 20}}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %v, want %v", i, labels[i], want[i])
		}
	}
}

func TestTimelineAddLabelMoves(t *testing.T) {
	tl := NewTimeline(map[string]int{"a": 0, "b": 5})
	tl.AddLabel("a", 9)
	tl.AddLabel("z", 2)
	labels := tl.Labels()
	if labels[0].Name != "z" || labels[1].Name != "b" || labels[2] != (Label{"a", 9}) {
		t.Errorf("labels = %v", labels)
	}
}

func TestTimelineResolve(t *testing.T) {
	tl := NewTimeline(map[string]int{"mid": 20})
	tl.SetDuration(30)

	tests := []struct {
		name  string
		pos   Position
		frame int
		ok    bool
	}{
		{"label", AtLabel("mid"), 20, true},
		{"unknown label", AtLabel("nope"), 0, false},
		{"label is case sensitive", AtLabel("MID"), 0, false},
		{"frame", AtFrame(7), 7, true},
		{"last frame", AtFrame(30), 30, true},
		{"past end", AtFrame(31), 0, false},
		{"negative", AtFrame(-1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, ok := tl.Resolve(tt.pos)
			if ok != tt.ok || frame != tt.frame {
				t.Errorf("Resolve = (%d, %v), want (%d, %v)", frame, ok, tt.frame, tt.ok)
			}
		})
	}
}

func TestTimelineSetPositionLoopAndClamp(t *testing.T) {
	tl := NewTimeline(nil)
	tl.SetDuration(10)

	tl.SetPosition(13, true)
	if tl.Position() != 3 {
		t.Errorf("looping Position = %d, want 3", tl.Position())
	}
	tl.SetLoop(false)
	tl.SetPosition(13, true)
	if tl.Position() != 10 {
		t.Errorf("clamped Position = %d, want 10", tl.Position())
	}
	tl.SetPosition(-4, true)
	if tl.Position() != 0 {
		t.Errorf("negative Position = %d, want 0", tl.Position())
	}
}

func TestTimelineDurationCoversLongestTween(t *testing.T) {
	tl := NewTimeline(nil)
	tl.AddTween(NewTween(NewContainer("a")).Wait(4))
	tl.AddTween(NewTween(NewContainer("b")).Wait(12))
	if tl.Duration() != 12 {
		t.Errorf("Duration = %d, want 12", tl.Duration())
	}
}

func TestTimelineActiveInDeclarationOrder(t *testing.T) {
	a, b := NewContainer("a"), NewContainer("b")
	tl := NewTimeline(nil)
	tl.AddTween(NewTween(a).Wait(5))
	tl.AddTween(NewTween(b).Wait(5))
	tl.SetPosition(2, true)

	active := tl.Active()
	if len(active) != 2 {
		t.Fatalf("len(Active) = %d, want 2", len(active))
	}
	if active[0].(MotionEntry).Target != a || active[1].(MotionEntry).Target != b {
		t.Error("Active should follow declaration order")
	}
}

func TestTimelineActions(t *testing.T) {
	tl := NewTimeline(nil)
	tl.SetDuration(10)
	var fired []int
	for _, f := range []int{0, 2, 3, 7} {
		tl.AddAction(f, func() { fired = append(fired, f) })
	}

	tl.SetPosition(0, false)
	tl.SetPosition(3, false)
	tl.SetPosition(3, false)
	tl.SetPosition(5, true)
	tl.SetPosition(2, false)

	want := []int{0, 2, 3, 2}
	if len(fired) != len(want) {
		t.Fatalf("fired = %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired = %v, want %v", fired, want)
			break
		}
	}
}

func TestTimelineCurrentLabel(t *testing.T) {
	tl := NewTimeline(map[string]int{"A": 0, "B": 15})
	tl.SetDuration(30)

	tests := []struct {
		frame int
		want  string
	}{
		{0, "A"}, {10, "A"}, {15, "B"}, {20, "B"},
	}
	for _, tt := range tests {
		tl.SetPosition(tt.frame, true)
		got, ok := tl.CurrentLabel()
		if !ok || got != tt.want {
			t.Errorf("frame %d: CurrentLabel = (%q, %v), want %q", tt.frame, got, ok, tt.want)
		}
	}
}

func TestTimelineCurrentLabelNone(t *testing.T) {
	tl := NewTimeline(map[string]int{"late": 5})
	tl.SetDuration(10)
	tl.SetPosition(2, true)
	if _, ok := tl.CurrentLabel(); ok {
		t.Error("CurrentLabel before first label should report none")
	}
}
