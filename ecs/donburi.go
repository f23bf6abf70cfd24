package ecs

import (
	"github.com/phanxgames/movieclip"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ClipEventType is the Donburi event type for clip playback events.
// Subscribe to this in your ECS systems to receive frame and label events.
var ClipEventType = events.NewEventType[movieclip.ClipEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Clip events are published to ClipEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) movieclip.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event movieclip.ClipEvent) {
	ClipEventType.Publish(s.world, event)
}

// LabelHandler returns a subscriber that calls fn only for label events
// matching name.
func LabelHandler(name string, fn func(w donburi.World, e movieclip.ClipEvent)) func(donburi.World, movieclip.ClipEvent) {
	return func(w donburi.World, e movieclip.ClipEvent) {
		if e.Type == movieclip.EventLabel && e.Label == name {
			fn(w, e)
		}
	}
}
