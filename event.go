package screenspace

// Event is a normalized input event delivered to an Action. The concrete
// type depends on Kind:
//
//	LeftDown ... RightDoubleClick  PointEvent
//	MouseMove                      MoveEvent
//	Wheel                          WheelEvent
//	PinchStart                     PinchStartEvent
//	PinchMove                      PinchMoveEvent
//	PinchEnd                       PinchEndEvent
type Event interface {
	Kind() EventKind
	Modifier() Modifier
}

// Action is a callback registered for one (EventKind, Modifier) pair.
type Action func(Event)

// eventHeader carries the dispatch key shared by every event type.
type eventHeader struct {
	kind EventKind
	mod  Modifier
}

// Kind returns the event kind.
func (h eventHeader) Kind() EventKind { return h.kind }

// Modifier returns the modifier the event was dispatched under.
func (h eventHeader) Modifier() Modifier { return h.mod }

// PointEvent carries the surface-local position of a press, release, click
// or double-click.
type PointEvent struct {
	eventHeader
	Position Vec2
}

// MoveEvent carries the pointer motion between two consecutive notifications.
type MoveEvent struct {
	eventHeader
	StartPosition Vec2
	EndPosition   Vec2
	// Motion is reserved and always zero.
	Motion Vec2
}

// WheelEvent carries a wheel rotation on the legacy 120-per-detent scale,
// positive when the wheel rotates away from the user. See NormalizeWheel.
type WheelEvent struct {
	eventHeader
	Delta float64
}

// PinchStartEvent carries the positions of the two contacts that started a pinch.
type PinchStartEvent struct {
	eventHeader
	Position1 Vec2
	Position2 Vec2
}

// ScalarChange is a value before and after one pinch update.
type ScalarChange struct {
	Start, End float64
}

// Delta returns End - Start.
func (c ScalarChange) Delta() float64 { return c.End - c.Start }

// PinchMoveEvent carries the change of a two-contact configuration.
// Distance is the distance between the contacts, Angle the atan2 angle of
// the vector from contact 1 to contact 2 in radians, and Height the vertical
// midpoint of the contacts. Position1 and Position2 are the current contact
// positions, matched to the contacts that started the pinch.
type PinchMoveEvent struct {
	eventHeader
	Distance  ScalarChange
	Angle     ScalarChange
	Height    ScalarChange
	Position1 Vec2
	Position2 Vec2
}

// PinchEndEvent signals the end of a pinch. It has no payload.
type PinchEndEvent struct {
	eventHeader
}

// --- Typed action adapters ---

// PointAction adapts fn to an Action. Events of other types are ignored.
func PointAction(fn func(PointEvent)) Action {
	return func(e Event) {
		if p, ok := e.(PointEvent); ok {
			fn(p)
		}
	}
}

// MoveAction adapts fn to an Action. Events of other types are ignored.
func MoveAction(fn func(MoveEvent)) Action {
	return func(e Event) {
		if m, ok := e.(MoveEvent); ok {
			fn(m)
		}
	}
}

// WheelAction adapts fn to an Action that receives the wheel delta.
// Events of other types are ignored.
func WheelAction(fn func(delta float64)) Action {
	return func(e Event) {
		if w, ok := e.(WheelEvent); ok {
			fn(w.Delta)
		}
	}
}

// PinchStartAction adapts fn to an Action. Events of other types are ignored.
func PinchStartAction(fn func(PinchStartEvent)) Action {
	return func(e Event) {
		if p, ok := e.(PinchStartEvent); ok {
			fn(p)
		}
	}
}

// PinchMoveAction adapts fn to an Action. Events of other types are ignored.
func PinchMoveAction(fn func(PinchMoveEvent)) Action {
	return func(e Event) {
		if p, ok := e.(PinchMoveEvent); ok {
			fn(p)
		}
	}
}

// PinchEndAction adapts fn to an Action. Events of other types are ignored.
func PinchEndAction(fn func()) Action {
	return func(e Event) {
		if _, ok := e.(PinchEndEvent); ok {
			fn()
		}
	}
}
