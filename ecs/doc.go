// Package ecs provides ECS adapters for screenspace's input events.
//
// The primary adapter is [NewDonburiSink], which bridges normalized input
// events (press, click, move, wheel, pinch) into a [Donburi] world as typed
// events. Subscribe to [InputEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	handler.SetSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
