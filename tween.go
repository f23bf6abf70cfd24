package movieclip

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween is a track of steps on one TweenTimeline. A motion tween animates the
// properties of one target node; a state tween switches between sets of nodes.
// Durations are in frames.
//
// Float end values interpolate through the step's easing function. Other
// values (bools, ints) keep their start value until the step
// completes, then jump to the end value.
type Tween struct {
	// Passive tweens are evaluated but never place their targets.
	Passive bool

	target   *Node
	state    bool
	steps    []tweenStep
	duration int

	current []Prop  // values at the end of the last step
	states  []State // states at the end of the last step
}

type tweenStep struct {
	start, duration int
	fn              ease.TweenFunc

	from, to []Prop

	fromStates, toStates []State
}

// NewTween creates a motion tween for target.
func NewTween(target *Node) *Tween {
	return &Tween{target: target}
}

// NewStateTween creates a state tween. Use States to add steps.
func NewStateTween() *Tween {
	return &Tween{state: true}
}

// Target returns the motion target, or nil for state tweens.
func (tw *Tween) Target() *Node {
	return tw.target
}

// Duration returns the total length of the tween in frames.
func (tw *Tween) Duration() int {
	return tw.duration
}

// Set adds a zero-length step that assigns props immediately.
func (tw *Tween) Set(props ...Prop) *Tween {
	return tw.To(0, nil, props...)
}

// To adds a step animating props to the given values over duration frames.
// A nil fn means linear easing.
func (tw *Tween) To(duration int, fn ease.TweenFunc, props ...Prop) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	if duration < 0 {
		duration = 0
	}
	for _, p := range props {
		if propIndex(tw.current, p.Name) >= 0 {
			continue
		}
		initial := p.Value
		if tw.target != nil {
			if v, ok := tw.target.Property(p.Name); ok {
				initial = v
			}
		}
		tw.current = append(tw.current, Prop{Name: p.Name, Value: initial})
		for i := range tw.steps {
			tw.steps[i].from = append(tw.steps[i].from, Prop{Name: p.Name, Value: initial})
			tw.steps[i].to = append(tw.steps[i].to, Prop{Name: p.Name, Value: initial})
		}
	}
	from := append([]Prop(nil), tw.current...)
	for _, p := range props {
		tw.current[propIndex(tw.current, p.Name)].Value = p.Value
	}
	to := append([]Prop(nil), tw.current...)
	tw.steps = append(tw.steps, tweenStep{
		start:    tw.duration,
		duration: duration,
		fn:       fn,
		from:     from,
		to:       to,
	})
	tw.duration += duration
	return tw
}

// Wait adds a step that holds the current values for duration frames.
func (tw *Tween) Wait(duration int) *Tween {
	if tw.state {
		return tw.States(duration, tw.states...)
	}
	return tw.To(duration, nil)
}

// States adds a state step: the previous states hold for duration frames,
// then states take over.
func (tw *Tween) States(duration int, states ...State) *Tween {
	if duration < 0 {
		duration = 0
	}
	tw.steps = append(tw.steps, tweenStep{
		start:      tw.duration,
		duration:   duration,
		fromStates: tw.states,
		toStates:   states,
	})
	tw.states = states
	tw.duration += duration
	return tw
}

// apply evaluates the tween at frame t, writes motion values onto the target
// and returns the entry describing what the tween places.
func (tw *Tween) apply(t int) Entry {
	if t > tw.duration {
		t = tw.duration
	}
	step := tw.stepAt(t)
	offset := 0
	if step != nil {
		offset = t - step.start
	}

	if tw.state {
		var states []State
		if step != nil {
			states = step.toStates
			if offset < step.duration {
				states = step.fromStates
			}
		}
		return StateEntry{States: states, Offset: offset, Passive: tw.Passive}
	}

	if step != nil && tw.target != nil {
		ratio := 1.0
		if step.duration > 0 && offset < step.duration {
			ratio = float64(offset) / float64(step.duration)
		}
		for i, end := range step.to {
			v := interpolate(step.from[i].Value, end.Value, ratio, step.fn)
			if err := tw.target.SetProperty(end.Name, v); err != nil && globalDebug {
				logger.Debug("tween property not applied", "node", tw.target.Name, "err", err)
			}
		}
	}
	return MotionEntry{Target: tw.target, Offset: offset, Passive: tw.Passive}
}

// stepAt returns the last step starting at or before t.
func (tw *Tween) stepAt(t int) *tweenStep {
	for i := len(tw.steps) - 1; i >= 0; i-- {
		if tw.steps[i].start <= t {
			return &tw.steps[i]
		}
	}
	return nil
}

func interpolate(from, to any, ratio float64, fn ease.TweenFunc) any {
	if ratio >= 1 {
		return to
	}
	var b float64
	switch x := to.(type) {
	case float64:
		b = x
	case float32:
		b = float64(x)
	default:
		return from
	}
	a, ok := toFloat(from)
	if !ok {
		return from
	}
	if ratio <= 0 {
		return a
	}
	v, _ := gween.New(float32(a), float32(b), 1, fn).Set(float32(ratio))
	return float64(v)
}

func propIndex(props []Prop, name string) int {
	for i, p := range props {
		if p.Name == name {
			return i
		}
	}
	return -1
}
