package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for recognized gestures.
var GestureEventType = events.NewEventType[gesture.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Gestures are
// queued on GestureEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) gesture.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event gesture.Event) {
	GestureEventType.Publish(s.world, event)
}
