// Package ecs provides ECS adapters for movieclip playback events.
//
// The primary adapter is [NewDonburiStore], which forwards clip frame and
// label events into a [Donburi] world as typed events. Subscribe to
// [ClipEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
