// Package tcellhost adapts tcell terminal mouse events to screenspace raw
// events. Coordinates are terminal cells, so a click tolerance of 1 or 2
// is usually more useful than the pixel default.
//
//	screen.EnableMouse()
//	host := tcellhost.New(cfg)
//	handler := screenspace.NewHandler(host, cfg)
//	for {
//		ev := screen.PollEvent()
//		if host.HandleEvent(ev) {
//			continue
//		}
//		...
//	}
package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/screenspace"
)

const buttonMask = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

var tcellButtons = [...]struct {
	tb tcell.ButtonMask
	b  screenspace.Button
}{
	{tcell.ButtonPrimary, screenspace.ButtonLeft},
	{tcell.ButtonMiddle, screenspace.ButtonMiddle},
	{tcell.ButtonSecondary, screenspace.ButtonRight},
}

// Host is a screenspace.Host fed by tcell events. Terminals report the
// set of held buttons with every mouse event, so presses and releases are
// derived from changes to that set.
type Host struct {
	emit    func(screenspace.RawEvent)
	clicks  *screenspace.ClickCounter
	buttons tcell.ButtonMask
	x, y    int
	known   bool
}

// New creates a host. cfg supplies the double-click interval and distance.
func New(cfg screenspace.Config) *Host {
	return &Host{clicks: screenspace.NewClickCounter(cfg)}
}

// Attach implements screenspace.Host.
func (h *Host) Attach(fn func(screenspace.RawEvent)) {
	h.emit = fn
}

// Detach implements screenspace.Host.
func (h *Host) Detach() {
	h.emit = nil
	h.buttons = 0
	h.known = false
	h.clicks.Reset()
}

func (h *Host) send(ev screenspace.RawEvent) {
	if h.emit != nil {
		h.emit(ev)
	}
}

// HandleEvent translates ev if it is a mouse event and reports whether it
// was one. Other events are left to the caller.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	me, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}
	if h.emit == nil {
		return true
	}

	cx, cy := me.Position()
	x, y := float64(cx), float64(cy)
	keys := keyFlags(me.Modifiers())
	btns := me.Buttons()

	if h.known && (cx != h.x || cy != h.y) {
		h.send(screenspace.RawEvent{Kind: screenspace.RawMouseMove, X: x, Y: y, Keys: keys})
	}
	h.x, h.y, h.known = cx, cy, true

	held := btns & buttonMask
	pressed := held &^ h.buttons
	released := h.buttons &^ held
	h.buttons = held
	for _, tb := range tcellButtons {
		if pressed&tb.tb != 0 {
			h.send(screenspace.RawEvent{Kind: screenspace.RawMouseDown, X: x, Y: y, Button: tb.b, Keys: keys})
		}
		if released&tb.tb != 0 {
			h.send(screenspace.RawEvent{Kind: screenspace.RawMouseUp, X: x, Y: y, Button: tb.b, Keys: keys})
			if h.clicks.Record(tb.b, screenspace.Vec2{X: x, Y: y}, me.When()) == 2 {
				h.send(screenspace.RawEvent{Kind: screenspace.RawDoubleClick, X: x, Y: y, Button: tb.b, Keys: keys})
			}
		}
	}

	var notches float64
	if btns&tcell.WheelUp != 0 {
		notches++
	}
	if btns&tcell.WheelDown != 0 {
		notches--
	}
	if notches != 0 {
		h.send(screenspace.RawEvent{
			Kind:       screenspace.RawWheel,
			X:          x,
			Y:          y,
			Keys:       keys,
			WheelDelta: notches,
			WheelUnit:  screenspace.WheelNotches,
		})
	}
	return true
}

func keyFlags(m tcell.ModMask) screenspace.KeyFlags {
	var keys screenspace.KeyFlags
	if m&tcell.ModShift != 0 {
		keys |= screenspace.KeyShift
	}
	if m&tcell.ModCtrl != 0 {
		keys |= screenspace.KeyCtrl
	}
	if m&tcell.ModAlt != 0 {
		keys |= screenspace.KeyAlt
	}
	if m&tcell.ModMeta != 0 {
		keys |= screenspace.KeyMeta
	}
	return keys
}
