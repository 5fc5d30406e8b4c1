package screenspace

import "math"

const defaultClickTolerance = 5.0 // pixels

// --- Session state ---

type phase uint8

const (
	phaseIdle     phase = iota // nothing held
	phasePressed               // one or more buttons held; touch holds ButtonLeft
	phasePinching              // two tracked touch contacts
)

type buttonMask uint8

func (m buttonMask) has(b Button) bool { return m&(1<<b) != 0 }

// sessionState is the per-tracker interaction state. Pressed and pinching
// are distinct phases, so a button can never be held during a pinch.
type sessionState struct {
	phase   phase
	buttons buttonMask // non-zero iff phase == phasePressed
	touch1  TouchID    // valid in phasePinching
	touch2  TouchID    // valid in phasePinching, never equal to touch1

	seenTouch bool    // sticky: mouse press/release/move are ignored once set
	last      Vec2    // primary pointer or first contact
	last2     Vec2    // second contact, valid in phasePinching
	travel    float64 // accumulated travel since the last press
}

func (st *sessionState) press(b Button) {
	if st.phase != phasePressed {
		st.phase = phasePressed
		st.buttons = 0
	}
	st.buttons |= 1 << b
}

func (st *sessionState) release(b Button) {
	if st.phase != phasePressed {
		return
	}
	st.buttons &^= 1 << b
	if st.buttons == 0 {
		st.phase = phaseIdle
	}
}

func (st *sessionState) pressed(b Button) bool {
	return st.phase == phasePressed && st.buttons.has(b)
}

func (st *sessionState) startPinch(id1, id2 TouchID) {
	st.phase = phasePinching
	st.buttons = 0
	st.touch1 = id1
	st.touch2 = id2
}

func (st *sessionState) endPinch() {
	if st.phase == phasePinching {
		st.phase = phaseIdle
	}
}

// --- Tracker ---

// Tracker converts raw host notifications into normalized events. It holds
// the session state for one interaction surface and invokes nothing itself;
// see Handler for dispatch to registered actions.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	state          sessionState
	clickTolerance float64
	surface        Surface
}

// NewTracker creates a tracker. clickTolerance is the accumulated travel in
// pixels below which a release also counts as a click; values <= 0 use the
// default of 5. A nil surface leaves coordinates unchanged.
func NewTracker(clickTolerance float64, surface Surface) *Tracker {
	if clickTolerance <= 0 {
		clickTolerance = defaultClickTolerance
	}
	return &Tracker{clickTolerance: clickTolerance, surface: surface}
}

// ClickTolerance returns the click tolerance in pixels.
func (t *Tracker) ClickTolerance() float64 { return t.clickTolerance }

// SeenTouch reports whether any touch notification has been processed.
func (t *Tracker) SeenTouch() bool { return t.state.seenTouch }

// Pressed reports whether b is currently held.
func (t *Tracker) Pressed(b Button) bool { return t.state.pressed(b) }

// Pinching reports whether a two-contact pinch is in progress.
func (t *Tracker) Pinching() bool { return t.state.phase == phasePinching }

// Travel returns the travel accumulated since the last press.
func (t *Tracker) Travel() float64 { return t.state.travel }

// LastPosition returns the last resolved primary pointer position.
func (t *Tracker) LastPosition() Vec2 { return t.state.last }

// Reset discards all session state, including the sticky touch flag.
func (t *Tracker) Reset() { t.state = sessionState{} }

// AppendEvents processes ev, appends the events it produces to dst in
// dispatch order and returns the extended slice. The boolean reports
// whether the host's default handling of ev should be suppressed.
//
// Wheel events never request suppression here; Handler suppresses them
// only when a wheel action is registered.
func (t *Tracker) AppendEvents(dst []Event, ev RawEvent) ([]Event, bool) {
	mod := ResolveModifier(ev.Keys)
	switch ev.Kind {
	case RawMouseDown:
		return t.mouseDown(dst, ev, mod), false
	case RawMouseUp:
		return t.mouseUp(dst, ev, mod), false
	case RawMouseMove:
		return t.mouseMove(dst, ev, mod)
	case RawDoubleClick:
		return t.doubleClick(dst, ev, mod), false
	case RawWheel:
		return append(dst, WheelEvent{
			eventHeader: eventHeader{Wheel, mod},
			Delta:       NormalizeWheel(ev.WheelDelta, ev.WheelUnit),
		}), false
	case RawTouchStart:
		return t.touchStart(dst, ev, mod)
	case RawTouchMove:
		return t.touchMove(dst, ev, mod)
	case RawTouchEnd:
		return t.touchEnd(dst, ev, mod, true)
	case RawTouchCancel:
		return t.touchEnd(dst, ev, mod, false)
	}
	return dst, false
}

func (t *Tracker) resolve(x, y float64) Vec2 {
	return ResolvePosition(x, y, t.surface)
}

// accumulate adds the distance from the last position to pos to the
// travel total. The last position is not moved.
func (t *Tracker) accumulate(pos Vec2) {
	t.state.travel += distance(t.state.last, pos)
}

func (t *Tracker) press(dst []Event, b Button, pos Vec2, mod Modifier) []Event {
	t.state.last = pos
	t.state.travel = 0
	t.state.press(b)
	return append(dst, PointEvent{eventHeader{b.DownKind(), mod}, pos})
}

func (t *Tracker) release(dst []Event, b Button, pos Vec2, mod Modifier, clickTest bool) []Event {
	t.accumulate(pos)
	t.state.release(b)
	dst = append(dst, PointEvent{eventHeader{b.UpKind(), mod}, pos})
	if clickTest && t.state.travel < t.clickTolerance {
		dst = append(dst, PointEvent{eventHeader{b.ClickKind(), mod}, pos})
	}
	return dst
}

func (t *Tracker) move(dst []Event, pos Vec2, mod Modifier) []Event {
	t.accumulate(pos)
	dst = append(dst, MoveEvent{
		eventHeader:   eventHeader{MouseMove, mod},
		StartPosition: t.state.last,
		EndPosition:   pos,
	})
	t.state.last = pos
	return dst
}

// --- Mouse ---

func (t *Tracker) mouseDown(dst []Event, ev RawEvent, mod Modifier) []Event {
	if t.state.seenTouch || !ev.Button.valid() {
		return dst
	}
	return t.press(dst, ev.Button, t.resolve(ev.X, ev.Y), mod)
}

// mouseUp ignores releases of buttons that were never pressed here, such as
// a press that landed outside the surface.
func (t *Tracker) mouseUp(dst []Event, ev RawEvent, mod Modifier) []Event {
	if t.state.seenTouch || !ev.Button.valid() || !t.state.pressed(ev.Button) {
		return dst
	}
	return t.release(dst, ev.Button, t.resolve(ev.X, ev.Y), mod, true)
}

func (t *Tracker) mouseMove(dst []Event, ev RawEvent, mod Modifier) ([]Event, bool) {
	if t.state.seenTouch {
		return dst, false
	}
	dst = t.move(dst, t.resolve(ev.X, ev.Y), mod)
	return dst, t.state.phase == phasePressed
}

func (t *Tracker) doubleClick(dst []Event, ev RawEvent, mod Modifier) []Event {
	if !ev.Button.valid() {
		return dst
	}
	pos := t.resolve(ev.X, ev.Y)
	return append(dst, PointEvent{eventHeader{ev.Button.DoubleClickKind(), mod}, pos})
}

// --- Touch ---

func (t *Tracker) touchStart(dst []Event, ev RawEvent, mod Modifier) ([]Event, bool) {
	t.state.seenTouch = true
	n := len(ev.Touches)
	if n == 0 {
		return dst, false
	}
	wasPinching := t.state.phase == phasePinching
	suppress := false

	first := ev.Touches[0]
	pos := t.resolve(first.X, first.Y)
	if n == 1 {
		dst = t.press(dst, ButtonLeft, pos, mod)
		suppress = true
	} else if t.state.pressed(ButtonLeft) {
		// Another contact arrived: end the synthetic press without a click.
		t.state.release(ButtonLeft)
		dst = append(dst, PointEvent{eventHeader{LeftUp, mod}, pos})
	}

	if n == 2 && ev.Touches[1].ID != first.ID {
		second := ev.Touches[1]
		pos2 := t.resolve(second.X, second.Y)
		t.state.startPinch(first.ID, second.ID)
		t.state.last = pos
		t.state.last2 = pos2
		dst = append(dst, PinchStartEvent{
			eventHeader: eventHeader{PinchStart, mod},
			Position1:   pos,
			Position2:   pos2,
		})
	} else if wasPinching {
		t.state.endPinch()
		dst = append(dst, PinchEndEvent{eventHeader{PinchEnd, mod}})
	}
	return dst, suppress
}

func (t *Tracker) touchEnd(dst []Event, ev RawEvent, mod Modifier, clickTest bool) ([]Event, bool) {
	t.state.seenTouch = true
	if t.state.pressed(ButtonLeft) {
		if len(ev.Changed) > 0 {
			c := ev.Changed[0]
			dst = t.release(dst, ButtonLeft, t.resolve(c.X, c.Y), mod, clickTest)
		} else {
			t.state.release(ButtonLeft)
		}
	}
	if t.state.phase == phasePinching {
		t.state.endPinch()
		dst = append(dst, PinchEndEvent{eventHeader{PinchEnd, mod}})
	}
	// Surviving contacts start over as a fresh press or pinch.
	if n := len(ev.Touches); n == 1 || n == 2 {
		return t.touchStart(dst, ev, mod)
	}
	return dst, false
}

func (t *Tracker) touchMove(dst []Event, ev RawEvent, mod Modifier) ([]Event, bool) {
	t.state.seenTouch = true
	n := len(ev.Touches)
	switch {
	case n == 1 && t.state.pressed(ButtonLeft):
		c := ev.Touches[0]
		return t.move(dst, t.resolve(c.X, c.Y), mod), true

	case n == 2 && t.state.phase == phasePinching:
		a, b := ev.Touches[0], ev.Touches[1]
		if a.ID == t.state.touch2 {
			a, b = b, a
		}
		p1 := t.resolve(a.X, a.Y)
		p2 := t.resolve(b.X, b.Y)
		prev1, prev2 := t.state.last, t.state.last2
		dst = append(dst, PinchMoveEvent{
			eventHeader: eventHeader{PinchMove, mod},
			Distance:    ScalarChange{Start: distance(prev1, prev2), End: distance(p1, p2)},
			Angle:       ScalarChange{Start: angle(prev1, prev2), End: angle(p1, p2)},
			Height:      ScalarChange{Start: midY(prev1, prev2), End: midY(p1, p2)},
			Position1:   p1,
			Position2:   p2,
		})
		t.state.last = p1
		t.state.last2 = p2
	}
	return dst, false
}

// --- Geometry ---

func distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// angle returns the direction of the vector from a to b in radians.
func angle(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

func midY(a, b Vec2) float64 {
	return (a.Y + b.Y) / 2
}
