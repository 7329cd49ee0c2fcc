// Package ecs forwards recognized gestures into a [Donburi] world as typed
// events.
//
// The adapter is [NewDonburiSink], an EventSink that publishes every gesture
// to [GestureEventType]. Subscribe to it in your ECS systems and call
// ProcessEvents once per frame.
//
// Usage:
//
//	rec.SetEventSink(ecs.NewDonburiSink(world))
//	ecs.GestureEventType.Subscribe(world, onGesture)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
