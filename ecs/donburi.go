package ecs

import (
	"github.com/phanxgames/screenspace"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for screenspace input events.
// Type-switch on the received screenspace.Event to read its payload.
var InputEventType = events.NewEventType[screenspace.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to InputEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) screenspace.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event screenspace.Event) {
	InputEventType.Publish(s.world, event)
}
