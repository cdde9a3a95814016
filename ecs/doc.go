// Package ecs provides ECS adapters for easel's render events.
//
// The primary adapter is [NewDonburiSink], which bridges easel render events
// (direct renders, render passes, cycle ends) into a [Donburi] world as typed
// events. Subscribe to [RenderEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
