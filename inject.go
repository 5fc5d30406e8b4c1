package screenspace

// InjectHost is a Host fed with synthetic raw events. Events are queued by
// the Inject methods and forwarded one per Update call, like one host
// notification per frame, or all at once by Flush. It backs automated
// input scripts (see TestRunner) and tests that need no live window.
type InjectHost struct {
	emit    func(RawEvent)
	queue   []RawEvent
	keys    KeyFlags
	touches []Touch
	runner  *TestRunner

	// suppressed counts PreventDefault requests from the handler.
	suppressed int
}

// NewInjectHost creates an empty synthetic host.
func NewInjectHost() *InjectHost {
	return &InjectHost{}
}

// Attach implements Host.
func (h *InjectHost) Attach(fn func(RawEvent)) {
	h.emit = fn
}

// Detach implements Host. Queued events are discarded.
func (h *InjectHost) Detach() {
	h.emit = nil
	h.queue = h.queue[:0]
	h.touches = h.touches[:0]
}

// SetKeys sets the modifier keys held for events queued afterwards.
func (h *InjectHost) SetKeys(keys KeyFlags) {
	h.keys = keys
}

// Pending returns the number of queued events.
func (h *InjectHost) Pending() int {
	return len(h.queue)
}

// Suppressed returns how many forwarded events had their default handling
// suppressed.
func (h *InjectHost) Suppressed() int {
	return h.suppressed
}

// Inject queues ev as is. The held keys set by SetKeys are not applied.
func (h *InjectHost) Inject(ev RawEvent) {
	h.queue = append(h.queue, ev)
}

func (h *InjectHost) enqueue(ev RawEvent) {
	ev.Keys = h.keys
	h.queue = append(h.queue, ev)
}

// InjectPress queues a press of b at (x, y).
func (h *InjectHost) InjectPress(x, y float64, b Button) {
	h.enqueue(RawEvent{Kind: RawMouseDown, X: x, Y: y, Button: b})
}

// InjectMove queues a cursor move to (x, y).
func (h *InjectHost) InjectMove(x, y float64) {
	h.enqueue(RawEvent{Kind: RawMouseMove, X: x, Y: y})
}

// InjectRelease queues a release of b at (x, y).
func (h *InjectHost) InjectRelease(x, y float64, b Button) {
	h.enqueue(RawEvent{Kind: RawMouseUp, X: x, Y: y, Button: b})
}

// InjectClick queues a press followed by a release at (x, y).
func (h *InjectHost) InjectClick(x, y float64, b Button) {
	h.InjectPress(x, y, b)
	h.InjectRelease(x, y, b)
}

// InjectDoubleClick queues two clicks followed by the double-click
// notification a browser-like host would deliver.
func (h *InjectHost) InjectDoubleClick(x, y float64, b Button) {
	h.InjectClick(x, y, b)
	h.InjectClick(x, y, b)
	h.enqueue(RawEvent{Kind: RawDoubleClick, X: x, Y: y, Button: b})
}

// InjectDrag queues a full drag of b: press at (fromX, fromY), frames-2
// linearly interpolated moves, then a move and release at (toX, toY).
// Minimum frames is 2.
func (h *InjectHost) InjectDrag(fromX, fromY, toX, toY float64, frames int, b Button) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY, b)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectMove(toX, toY)
	h.InjectRelease(toX, toY, b)
}

// InjectWheel queues a wheel rotation at (x, y).
func (h *InjectHost) InjectWheel(x, y, delta float64, unit WheelUnit) {
	h.enqueue(RawEvent{Kind: RawWheel, X: x, Y: y, WheelDelta: delta, WheelUnit: unit})
}

// InjectTouchDown queues a new contact id at (x, y).
func (h *InjectHost) InjectTouchDown(id TouchID, x, y float64) {
	t := Touch{ID: id, X: x, Y: y}
	h.touches = append(h.touches, t)
	h.enqueue(RawEvent{Kind: RawTouchStart, Touches: copyTouches(h.touches), Changed: []Touch{t}})
}

// InjectTouchMove queues a move of contact id to (x, y). Unknown ids are
// ignored.
func (h *InjectHost) InjectTouchMove(id TouchID, x, y float64) {
	i := indexTouch(h.touches, id)
	if i < 0 {
		return
	}
	h.touches[i].X, h.touches[i].Y = x, y
	h.enqueue(RawEvent{Kind: RawTouchMove, Touches: copyTouches(h.touches), Changed: []Touch{h.touches[i]}})
}

// InjectTouchFrame replaces the active contacts with touches, in the given
// order, and queues a single move listing them. Use it to reorder contacts
// the way some hosts do between notifications.
func (h *InjectHost) InjectTouchFrame(touches ...Touch) {
	h.touches = append(h.touches[:0], touches...)
	h.enqueue(RawEvent{Kind: RawTouchMove, Touches: copyTouches(h.touches), Changed: copyTouches(h.touches)})
}

// InjectTouchUp queues the lift of contact id. Unknown ids are ignored.
func (h *InjectHost) InjectTouchUp(id TouchID) {
	i := indexTouch(h.touches, id)
	if i < 0 {
		return
	}
	t := h.touches[i]
	h.touches = append(h.touches[:i], h.touches[i+1:]...)
	h.enqueue(RawEvent{Kind: RawTouchEnd, Touches: copyTouches(h.touches), Changed: []Touch{t}})
}

// InjectTouchCancel queues the interruption of every active contact.
func (h *InjectHost) InjectTouchCancel() {
	changed := copyTouches(h.touches)
	h.touches = h.touches[:0]
	h.enqueue(RawEvent{Kind: RawTouchCancel, Changed: changed})
}

// InjectPinch queues a two-finger gesture: contacts 1 and 2 touch down at
// a1 and b1, move through frames-2 interpolated steps and a final step to
// a2 and b2, then lift in order. Minimum frames is 2.
func (h *InjectHost) InjectPinch(a1, b1, a2, b2 Vec2, frames int) {
	const id1, id2 TouchID = 1, 2
	if frames < 2 {
		frames = 2
	}
	h.InjectTouchDown(id1, a1.X, a1.Y)
	h.InjectTouchDown(id2, b1.X, b1.Y)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectTouchFrame(
			Touch{ID: id1, X: a1.X + (a2.X-a1.X)*t, Y: a1.Y + (a2.Y-a1.Y)*t},
			Touch{ID: id2, X: b1.X + (b2.X-b1.X)*t, Y: b1.Y + (b2.Y-b1.Y)*t},
		)
	}
	h.InjectTouchFrame(Touch{ID: id1, X: a2.X, Y: a2.Y}, Touch{ID: id2, X: b2.X, Y: b2.Y})
	h.InjectTouchUp(id2)
	h.InjectTouchUp(id1)
}

// Update advances an attached TestRunner, then forwards one queued event.
// It reports whether an event was forwarded.
func (h *InjectHost) Update() bool {
	if h.runner != nil {
		h.runner.step(h)
	}
	if len(h.queue) == 0 || h.emit == nil {
		return false
	}
	ev := h.queue[0]
	copy(h.queue, h.queue[1:])
	h.queue = h.queue[:len(h.queue)-1]
	h.forward(ev)
	return true
}

// Flush forwards every queued event in order.
func (h *InjectHost) Flush() {
	for len(h.queue) > 0 && h.emit != nil {
		ev := h.queue[0]
		h.queue = h.queue[1:]
		h.forward(ev)
	}
	if len(h.queue) == 0 {
		h.queue = nil
	}
}

func (h *InjectHost) forward(ev RawEvent) {
	if ev.PreventDefault == nil {
		ev.PreventDefault = func() { h.suppressed++ }
	}
	h.emit(ev)
}
