package screenspace

// Host delivers raw notifications from a UI surface. Attach starts
// forwarding notifications to fn; Detach stops it.
type Host interface {
	Attach(fn func(RawEvent))
	Detach()
}

// EventSink receives every event a Handler produces, whether or not an
// action is registered for it. See the ecs package for a Donburi sink.
type EventSink interface {
	EmitEvent(event Event)
}

// Handler owns a Tracker and an action table, and dispatches the events
// the tracker produces to registered actions.
//
// Actions run synchronously on the goroutine that delivered the raw event.
// A Handler is not safe for concurrent use.
type Handler struct {
	host     Host
	tracker  *Tracker
	registry actionRegistry
	sink     EventSink
	buf      []Event
	debug    bool
	disposed bool
}

// NewHandler creates a handler and attaches it to host. A nil host is
// allowed; raw events are then fed with Dispatch.
func NewHandler(host Host, cfg Config) *Handler {
	cfg = cfg.withDefaults()
	h := &Handler{
		host:    host,
		tracker: NewTracker(cfg.ClickTolerance, cfg.Surface),
		buf:     make([]Event, 0, 4),
		debug:   cfg.Debug,
	}
	if host != nil {
		host.Attach(h.forward)
	}
	return h
}

func (h *Handler) forward(ev RawEvent) {
	if err := h.Dispatch(ev); err != nil {
		h.debugf("dropped %s: %v", ev.Kind, err)
	}
}

// SetAction registers action for (kind, mod), replacing any previous one.
func (h *Handler) SetAction(kind EventKind, mod Modifier, action Action) error {
	if h.disposed {
		return ErrIllegalState
	}
	return h.registry.set(kind, mod, action)
}

// GetAction returns the action registered for (kind, mod), or nil.
func (h *Handler) GetAction(kind EventKind, mod Modifier) (Action, error) {
	if h.disposed {
		return nil, ErrIllegalState
	}
	return h.registry.get(kind, mod)
}

// RemoveAction unregisters the action for (kind, mod). Removing an
// unregistered pair is a no-op.
func (h *Handler) RemoveAction(kind EventKind, mod Modifier) error {
	if h.disposed {
		return ErrIllegalState
	}
	return h.registry.remove(kind, mod)
}

// SetSink sets the sink that receives every produced event. Nil disables it.
func (h *Handler) SetSink(sink EventSink) error {
	if h.disposed {
		return ErrIllegalState
	}
	h.sink = sink
	return nil
}

// SetDebug enables or disables debug logging to stderr.
func (h *Handler) SetDebug(enabled bool) error {
	if h.disposed {
		return ErrIllegalState
	}
	h.debug = enabled
	return nil
}

// Dispatch processes one raw event and invokes the matching actions in
// order. If an action disposes the handler, the remaining events of ev
// are dropped.
func (h *Handler) Dispatch(ev RawEvent) error {
	if h.disposed {
		return ErrIllegalState
	}
	events, suppress := h.tracker.AppendEvents(h.buf[:0], ev)
	// A nested Dispatch from an action gets its own buffer.
	h.buf = nil
	for _, e := range events {
		action := h.registry.lookup(e.Kind(), e.Modifier())
		h.debugEvent(e, action != nil)
		if action != nil {
			action(e)
			if e.Kind() == Wheel {
				suppress = true
			}
		}
		if h.disposed {
			break
		}
		if h.sink != nil {
			h.sink.EmitEvent(e)
		}
	}
	if !h.disposed {
		h.buf = events[:0]
	}
	if suppress && ev.PreventDefault != nil {
		ev.PreventDefault()
	}
	return nil
}

// Dispose detaches the handler from its host and discards all state and
// actions. Every later call except IsDisposed returns ErrIllegalState,
// including a second Dispose.
func (h *Handler) Dispose() error {
	if h.disposed {
		return ErrIllegalState
	}
	if h.host != nil {
		h.host.Detach()
	}
	h.disposed = true
	h.registry.clear()
	h.tracker.Reset()
	h.sink = nil
	h.buf = nil
	return nil
}

// IsDisposed reports whether Dispose has been called.
func (h *Handler) IsDisposed() bool {
	return h.disposed
}
