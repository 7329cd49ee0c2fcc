// Package gesture recognizes touch gestures from a stream of low-level touch
// notifications.
//
// A [Recognizer] consumes start, move and end notifications, each carrying
// every active [Contact], and reports swipes, pinches, rotations, taps,
// double-taps and long-presses through [Handlers] callbacks, removable
// per-kind callbacks, an optional [EventSink], and an observable [State]
// snapshot.
//
// # Quick start
//
// With Ebitengine, poll an [EbitenSurface] and the recognizer each frame:
//
//	surface := gesture.NewEbitenSurface(gesture.EbitenSurfaceConfig{})
//	rec := gesture.New(gesture.Options{}, gesture.Handlers{
//		OnSwipe: func(dir gesture.Direction, raw any) { log.Println("swipe", dir) },
//		OnTap:   func(raw any) { log.Println("tap") },
//	})
//	binding := gesture.NewBinding(rec, true)
//	binding.Attach(surface)
//
//	func (g *Game) Update() error {
//		g.surface.Update()
//		g.rec.Update()
//		return nil
//	}
//
// # Threading
//
// Everything runs on the goroutine that delivers notifications. The
// long-press timer is scheduled on a cooperative [TimerQueue] whose due
// callbacks run from [Recognizer.Update], never from another goroutine.
// Tests and replays use a [ManualScheduler] instead.
//
// # Surfaces
//
// A [Surface] is anything listeners can be attached to. Besides
// [EbitenSurface] and [InjectSurface] in this package, sub-packages provide
// surfaces for gomobile touch events (gesture/mobile), terminal mouse input
// (gesture/term) and browser clients over WebSocket (gesture/wsbridge).
// A [Binding] attaches one recognizer to one surface at a time and is inert
// when the host reports no touch capability.
//
// # Recognition rules
//
// Swipe fires once per session when the primary contact moves more than
// SwipeThreshold pixels from where the session started. Pinch and rotate
// compare the first two contacts with the baseline captured when the second
// finger joined, and fire on every move while their thresholds are exceeded.
// All three may fire from the same move. A session shorter than
// [TapMaxDuration] is a tap; two taps closer than DoubleTapDelay also fire a
// double-tap. Any move cancels a pending long-press.
package gesture
