package movieclip

import "fmt"

// Prop is a named property value applied to a Node by a timeline.
type Prop struct {
	Name  string
	Value any
}

// P is shorthand for constructing a Prop.
func P(name string, value any) Prop {
	return Prop{Name: name, Value: value}
}

// SetProperty assigns a property by name. Numeric properties accept float64,
// float32 or int values; "visible" and "off" take a bool; "startPosition"
// takes an int and only applies to MovieClip nodes; "tint" takes a Color.
func (n *Node) SetProperty(name string, value any) error {
	if f := n.floatField(name); f != nil {
		v, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("%w: %s=%T", ErrPropertyType, name, value)
		}
		*f = v
		return nil
	}
	switch name {
	case "tint":
		c, ok := value.(Color)
		if !ok {
			return fmt.Errorf("%w: %s=%T", ErrPropertyType, name, value)
		}
		n.Color = c
		return nil
	case "visible", "off":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s=%T", ErrPropertyType, name, value)
		}
		if name == "visible" {
			n.Visible = b
		} else {
			n.Off = b
		}
		return nil
	case "zIndex", "startPosition":
		v, ok := toInt(value)
		if !ok {
			return fmt.Errorf("%w: %s=%T", ErrPropertyType, name, value)
		}
		if name == "zIndex" {
			n.ZIndex = v
			return nil
		}
		if n.Clip == nil {
			return fmt.Errorf("%w: startPosition on %q", ErrUnknownProperty, n.Name)
		}
		n.Clip.StartPosition = v
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownProperty, name)
}

// Property returns the current value of a named property.
func (n *Node) Property(name string) (any, bool) {
	if f := n.floatField(name); f != nil {
		return *f, true
	}
	switch name {
	case "tint":
		return n.Color, true
	case "visible":
		return n.Visible, true
	case "off":
		return n.Off, true
	case "zIndex":
		return n.ZIndex, true
	case "startPosition":
		if n.Clip != nil {
			return n.Clip.StartPosition, true
		}
	}
	return nil, false
}

func (n *Node) floatField(name string) *float64 {
	switch name {
	case "x":
		return &n.X
	case "y":
		return &n.Y
	case "scaleX":
		return &n.ScaleX
	case "scaleY":
		return &n.ScaleY
	case "rotation":
		return &n.Rotation
	case "skewX":
		return &n.SkewX
	case "skewY":
		return &n.SkewY
	case "pivotX":
		return &n.PivotX
	case "pivotY":
		return &n.PivotY
	case "alpha":
		return &n.Alpha
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		return int(x), true
	}
	return 0, false
}
