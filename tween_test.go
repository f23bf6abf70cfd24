package movieclip

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenInterpolatesPosition(t *testing.T) {
	node := NewContainer("pos")
	node.X = 10
	node.Y = 20

	tw := NewTween(node).To(10, ease.Linear, P("x", 110.0), P("y", 220.0))
	if tw.Duration() != 10 {
		t.Fatalf("Duration = %d, want 10", tw.Duration())
	}

	tw.apply(5)
	if math.Abs(node.X-60) > 0.01 {
		t.Errorf("X at 5 = %f, want ~60", node.X)
	}
	if math.Abs(node.Y-120) > 0.01 {
		t.Errorf("Y at 5 = %f, want ~120", node.Y)
	}

	tw.apply(10)
	if node.X != 110 || node.Y != 220 {
		t.Errorf("end = (%v, %v), want (110, 220)", node.X, node.Y)
	}

	tw.apply(0)
	if node.X != 10 || node.Y != 20 {
		t.Errorf("start = (%v, %v), want (10, 20)", node.X, node.Y)
	}
}

func TestTweenEasing(t *testing.T) {
	node := NewContainer("ease")
	tw := NewTween(node).To(10, ease.InQuad, P("alpha", 0.0)).To(10, ease.InQuad, P("alpha", 1.0))
	tw.apply(15)
	// InQuad at half way is a quarter of the distance.
	if math.Abs(node.Alpha-0.25) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.25", node.Alpha)
	}
}

func TestTweenDiscreteValuesJumpAtStepEnd(t *testing.T) {
	node := NewContainer("discrete")
	tw := NewTween(node).Set(P("visible", true)).To(4, nil, P("visible", false))

	tw.apply(3)
	if !node.Visible {
		t.Error("visible should hold its start value mid-step")
	}
	tw.apply(4)
	if node.Visible {
		t.Error("visible should take the end value when the step completes")
	}
}

func TestTweenIntValuesDoNotInterpolate(t *testing.T) {
	clip := NewMovieClip("mc", ClipConfig{})
	tw := NewTween(clip).Set(P("startPosition", 0)).To(10, nil, P("startPosition", 8))
	tw.apply(5)
	if clip.Clip.StartPosition != 0 {
		t.Errorf("StartPosition mid-step = %d, want 0", clip.Clip.StartPosition)
	}
	tw.apply(10)
	if clip.Clip.StartPosition != 8 {
		t.Errorf("StartPosition at end = %d, want 8", clip.Clip.StartPosition)
	}
}

func TestTweenLatePropertyBackfillsEarlierSteps(t *testing.T) {
	node := NewContainer("late")
	node.Rotation = 0.5
	tw := NewTween(node).To(5, nil, P("x", 5.0)).To(5, nil, P("rotation", 1.5))

	node.Rotation = 99
	tw.apply(2)
	if node.Rotation != 0.5 {
		t.Errorf("Rotation in first step = %v, want initial 0.5", node.Rotation)
	}
}

func TestTweenStepOffset(t *testing.T) {
	node := NewContainer("offset")
	tw := NewTween(node).Wait(4).Wait(6)

	tests := []struct {
		frame, offset int
	}{
		{0, 0}, {3, 3}, {4, 0}, {7, 3}, {10, 6}, {25, 6},
	}
	for _, tt := range tests {
		e, ok := tw.apply(tt.frame).(MotionEntry)
		if !ok {
			t.Fatalf("frame %d: entry is not a MotionEntry", tt.frame)
		}
		if e.Offset != tt.offset {
			t.Errorf("frame %d: Offset = %d, want %d", tt.frame, e.Offset, tt.offset)
		}
		if e.Target != node {
			t.Errorf("frame %d: Target mismatch", tt.frame)
		}
	}
}

func TestStateTweenSwitchesStates(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	tw := NewStateTween().
		States(0, State{Target: a}).
		States(5, State{Target: b})

	e := tw.apply(4).(StateEntry)
	if len(e.States) != 1 || e.States[0].Target != a {
		t.Errorf("frame 4 states = %+v, want [a]", e.States)
	}
	e = tw.apply(5).(StateEntry)
	if len(e.States) != 1 || e.States[0].Target != b {
		t.Errorf("frame 5 states = %+v, want [b]", e.States)
	}
}

func TestTweenPassiveFlagCarried(t *testing.T) {
	tw := NewTween(NewContainer("p")).Wait(1)
	tw.Passive = true
	if e := tw.apply(0).(MotionEntry); !e.Passive {
		t.Error("entry should be passive")
	}
}
