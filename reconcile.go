package movieclip

// managedTag is the reconciliation state of a managed child. Children that
// are not in the managed map were added by hand and are never touched.
type managedTag uint8

const (
	tagPendingRemoval managedTag = 1
	tagConfirmed      managedTag = 2
)

// reconcile runs one mark-and-sweep pass over the clip's managed children:
// every tracked child is marked for removal, every child an active entry still
// places is confirmed (and added if missing), and whatever is still marked is
// detached.
func (c *MovieClip) reconcile(entries []Entry) {
	for id := range c.managed {
		c.managed[id] = tagPendingRemoval
	}

	for _, e := range entries {
		switch e := e.(type) {
		case MotionEntry:
			if e.Passive || e.Target == nil || e.Target == c.node {
				continue
			}
			c.addManagedChild(e.Target, e.Offset)
		case StateEntry:
			if e.Passive {
				continue
			}
			c.applyStates(e.States, e.Offset)
		}
	}

	kids := c.node.children
	for i := len(kids) - 1; i >= 0; i-- {
		id := kids[i].ID
		if c.managed[id] == tagPendingRemoval {
			c.node.RemoveChildAt(i)
			delete(c.managed, id)
		}
	}
	// Drop tags of children that were detached by someone else.
	for id, tag := range c.managed {
		if tag == tagPendingRemoval {
			delete(c.managed, id)
		}
	}
}

// applyStates copies each state's properties onto its target and places the
// target. States are walked last to first, so the first state ends up lowest.
func (c *MovieClip) applyStates(states []State, offset int) {
	for i := len(states) - 1; i >= 0; i-- {
		s := states[i]
		if s.Target == nil || s.Target == c.node {
			continue
		}
		for _, p := range s.Props {
			if err := s.Target.SetProperty(p.Name, p.Value); err != nil && globalDebug {
				logger.Debug("state property not applied", "clip", c.node.Name, "node", s.Target.Name, "err", err)
			}
		}
		c.addManagedChild(s.Target, offset)
	}
}

// addManagedChild makes child present and confirmed. New children go to the
// bottom of the child order; existing ones keep their index. Clip children
// take offset as their sync offset, and independent auto-reset clips that
// were not tracked before this pass restart from frame 0.
func (c *MovieClip) addManagedChild(child *Node, offset int) {
	if child.Off {
		return
	}
	if child.Parent != c.node {
		c.node.AddChildAt(child, 0)
	}

	if mc := child.Clip; mc != nil {
		mc.syncOffset = offset
		_, tracked := c.managed[child.ID]
		if mc.Mode == ModeIndependent && mc.AutoReset && !tracked {
			mc.reset()
		}
	}
	c.managed[child.ID] = tagConfirmed
}

// IsManaged reports whether child was placed by the clip's timeline.
func (c *MovieClip) IsManaged(child *Node) bool {
	_, ok := c.managed[child.ID]
	return ok
}

// SyncOffset returns the offset the parent timeline assigned to this clip.
func (c *MovieClip) SyncOffset() int {
	return c.syncOffset
}
