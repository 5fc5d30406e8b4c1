// Package screenspace turns raw pointer and touch notifications into a
// small, uniform set of input events for [Ebitengine] games and other 2D
// surfaces.
//
// A [Host] delivers raw notifications: mouse press and release, cursor
// moves, host double-clicks, wheel rotation and multi-touch contacts. A
// [Handler] feeds them through a [Tracker], which produces normalized
// events, and invokes the [Action] registered for each event's kind and
// modifier.
//
// # Quick start
//
// Create a host, a handler, and register actions:
//
//	cfg := screenspace.DefaultConfig()
//	host := screenspace.NewEbitenHost(cfg)
//	input := screenspace.NewHandler(host, cfg)
//
//	input.SetAction(screenspace.LeftClick, screenspace.ModNone,
//		screenspace.PointAction(func(e screenspace.PointEvent) {
//			fmt.Println("clicked at", e.Position)
//		}))
//
//	// in your game's Update:
//	host.Update()
//
// Hosts for Gio and tcell live in the giohost and tcellhost packages. An
// [InjectHost] feeds synthetic events, optionally from a JSON script run by
// a [TestRunner].
//
// # Events
//
// Each mouse button produces down, up, click and double-click kinds. A
// release fires a click when the pointer travelled less than
// [Config.ClickTolerance] pixels since the press, summed over every move.
// The first touch contact acts as the left button. A second contact ends
// that press without a click and starts a pinch, whose updates carry the
// contact distance, angle and vertical midpoint before and after each move.
//
// Once a touch has been seen, mouse press, release and move notifications
// are ignored for the rest of the tracker's life. Touch devices emulate
// mouse events and would otherwise double every gesture.
//
// # Modifiers
//
// Every event is dispatched under exactly one [Modifier]. When several keys
// are held, Shift wins over Ctrl, which wins over Alt. Meta is ignored.
//
// # Surfaces
//
// Host coordinates are made local to [Config.Surface] by subtracting its
// top-left corner. Any [Rect] is a Surface; use [SurfaceFunc] for areas
// that move with layout.
//
// # ECS
//
// The screenspace/ecs module publishes every event to a [Donburi] world
// through an [EventSink].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package screenspace
