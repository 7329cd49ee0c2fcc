package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []gesture.Event
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(gesture.Event{Type: gesture.EventSwipe, Direction: gesture.DirectionLeft})
	sink.EmitEvent(gesture.Event{Type: gesture.EventPinch, Scale: 2.0, Pinch: gesture.PinchOut})

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != gesture.EventSwipe || received[0].Direction != gesture.DirectionLeft {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != gesture.EventPinch || received[1].Scale != 2.0 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_FromRecognizer(t *testing.T) {
	world := donburi.NewWorld()
	sched := gesture.NewManualScheduler(time.Unix(0, 0))
	rec := gesture.New(gesture.Options{Scheduler: sched}, gesture.Handlers{})
	rec.SetEventSink(NewDonburiSink(world))

	surf := gesture.NewInjectSurface()
	gesture.NewBinding(rec, true).Attach(surf)

	var types []gesture.EventType
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.Event) {
		types = append(types, e.Type)
	})

	surf.InjectStart(gesture.Contact{ID: 1, X: 0, Y: 0})
	surf.InjectMove(gesture.Contact{ID: 1, X: 0, Y: 100})
	surf.InjectEnd()
	GestureEventType.ProcessEvents(world)

	if len(types) != 2 || types[0] != gesture.EventSwipe || types[1] != gesture.EventTap {
		t.Errorf("types = %v, want [swipe tap]", types)
	}
}
