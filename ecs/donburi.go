package ecs

import (
	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RenderEventType is the Donburi event type for easel render events.
// Subscribe to this in your ECS systems to react to frames and direct renders.
var RenderEventType = events.NewEventType[easel.RenderEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Render events are published to RenderEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) easel.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitRenderEvent(event easel.RenderEvent) {
	RenderEventType.Publish(s.world, event)
}
