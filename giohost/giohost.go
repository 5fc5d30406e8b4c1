// Package giohost adapts Gio pointer events to screenspace raw events.
//
// Each frame, register the host's input handler inside the clip area that
// should receive pointer input, then drain its events:
//
//	host := giohost.New(screenspace.DefaultConfig())
//	handler := screenspace.NewHandler(host, screenspace.DefaultConfig())
//	...
//	host.Update(gtx)   // or any event.Queue
//	host.Add(gtx.Ops)
//
// Gio reports positions relative to the current transformation, so a
// Handler used with this host normally needs no Surface.
package giohost

import (
	"image"
	"time"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/op"

	"github.com/phanxgames/screenspace"
)

// scrollRange bounds the scroll distance requested from Gio per axis.
const scrollRange = 1 << 16

var gioButtons = [...]struct {
	gb pointer.Buttons
	b  screenspace.Button
}{
	{pointer.ButtonPrimary, screenspace.ButtonLeft},
	{pointer.ButtonTertiary, screenspace.ButtonMiddle},
	{pointer.ButtonSecondary, screenspace.ButtonRight},
}

// Host is a screenspace.Host fed by Gio pointer events.
//
// Suppressing default handling makes the host request a pointer grab the
// next time Add is called, so that no other handler, such as an enclosing
// scrollable list, takes over the gesture. The grab is dropped once all
// buttons and contacts are released.
type Host struct {
	emit    func(screenspace.RawEvent)
	clicks  *screenspace.ClickCounter
	buttons pointer.Buttons
	touches []screenspace.Touch
	grab    bool
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
	h.touches = h.touches[:0]
	h.grab = false
	h.clicks.Reset()
}

// Grabbing reports whether the next Add requests a pointer grab.
func (h *Host) Grabbing() bool {
	return h.grab
}

// Add registers the host for pointer input in the current clip area.
func (h *Host) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:          h,
		Grab:         h.grab,
		Types:        pointer.Press | pointer.Release | pointer.Move | pointer.Drag | pointer.Scroll | pointer.Cancel,
		ScrollBounds: image.Rect(-scrollRange, -scrollRange, scrollRange, scrollRange),
	}.Add(ops)
}

// Update drains the host's events from q.
func (h *Host) Update(q event.Queue) {
	for _, e := range q.Events(h) {
		if pe, ok := e.(pointer.Event); ok {
			h.Handle(pe)
		}
	}
}

// Handle translates a single pointer event.
func (h *Host) Handle(e pointer.Event) {
	if h.emit == nil {
		return
	}
	if e.Source == pointer.Touch {
		h.handleTouch(e)
	} else {
		h.handleMouse(e)
	}
	if h.buttons == 0 && len(h.touches) == 0 {
		h.grab = false
	}
}

func (h *Host) send(ev screenspace.RawEvent) {
	if h.emit == nil {
		return
	}
	ev.PreventDefault = h.requestGrab
	h.emit(ev)
}

func (h *Host) requestGrab() {
	h.grab = true
}

func (h *Host) handleMouse(e pointer.Event) {
	keys := keyFlags(e.Modifiers)
	x, y := float64(e.Position.X), float64(e.Position.Y)

	switch e.Type {
	case pointer.Press:
		pressed := e.Buttons &^ h.buttons
		h.buttons |= pressed
		for _, gb := range gioButtons {
			if pressed&gb.gb != 0 {
				h.send(screenspace.RawEvent{Kind: screenspace.RawMouseDown, X: x, Y: y, Button: gb.b, Keys: keys})
			}
		}
	case pointer.Release:
		released := h.buttons &^ e.Buttons
		if released == 0 && e.Buttons == 0 {
			// Some backends report a release without button state.
			released = pointer.ButtonPrimary
		}
		h.buttons &^= released
		at := time.Time{}.Add(e.Time)
		for _, gb := range gioButtons {
			if released&gb.gb == 0 {
				continue
			}
			h.send(screenspace.RawEvent{Kind: screenspace.RawMouseUp, X: x, Y: y, Button: gb.b, Keys: keys})
			if h.clicks.Record(gb.b, screenspace.Vec2{X: x, Y: y}, at) == 2 {
				h.send(screenspace.RawEvent{Kind: screenspace.RawDoubleClick, X: x, Y: y, Button: gb.b, Keys: keys})
			}
		}
	case pointer.Move, pointer.Drag:
		h.send(screenspace.RawEvent{Kind: screenspace.RawMouseMove, X: x, Y: y, Keys: keys})
	case pointer.Scroll:
		if e.Scroll.Y != 0 {
			h.send(screenspace.RawEvent{
				Kind:       screenspace.RawWheel,
				X:          x,
				Y:          y,
				Keys:       keys,
				WheelDelta: float64(e.Scroll.Y),
				WheelUnit:  screenspace.WheelPixels,
			})
		}
	case pointer.Cancel:
		h.buttons = 0
	}
}

func (h *Host) handleTouch(e pointer.Event) {
	keys := keyFlags(e.Modifiers)
	t := screenspace.Touch{
		ID: screenspace.TouchID(e.PointerID),
		X:  float64(e.Position.X),
		Y:  float64(e.Position.Y),
	}

	switch e.Type {
	case pointer.Press:
		if indexTouch(h.touches, t.ID) >= 0 {
			return
		}
		h.touches = append(h.touches, t)
		h.send(screenspace.RawEvent{Kind: screenspace.RawTouchStart, Keys: keys, Touches: snapshot(h.touches), Changed: []screenspace.Touch{t}})
	case pointer.Move, pointer.Drag:
		i := indexTouch(h.touches, t.ID)
		if i < 0 {
			return
		}
		h.touches[i] = t
		h.send(screenspace.RawEvent{Kind: screenspace.RawTouchMove, Keys: keys, Touches: snapshot(h.touches), Changed: []screenspace.Touch{t}})
	case pointer.Release:
		i := indexTouch(h.touches, t.ID)
		if i < 0 {
			return
		}
		h.touches = append(h.touches[:i], h.touches[i+1:]...)
		h.send(screenspace.RawEvent{Kind: screenspace.RawTouchEnd, Keys: keys, Touches: snapshot(h.touches), Changed: []screenspace.Touch{t}})
	case pointer.Cancel:
		// Gio cancels every pointer of the gesture at once.
		if len(h.touches) == 0 {
			return
		}
		changed := snapshot(h.touches)
		h.touches = h.touches[:0]
		h.send(screenspace.RawEvent{Kind: screenspace.RawTouchCancel, Keys: keys, Changed: changed})
	}
}

func keyFlags(m key.Modifiers) screenspace.KeyFlags {
	var keys screenspace.KeyFlags
	if m.Contain(key.ModShift) {
		keys |= screenspace.KeyShift
	}
	if m.Contain(key.ModCtrl) {
		keys |= screenspace.KeyCtrl
	}
	if m.Contain(key.ModAlt) {
		keys |= screenspace.KeyAlt
	}
	if m.Contain(key.ModCommand) || m.Contain(key.ModSuper) {
		keys |= screenspace.KeyMeta
	}
	return keys
}

func indexTouch(touches []screenspace.Touch, id screenspace.TouchID) int {
	for i := range touches {
		if touches[i].ID == id {
			return i
		}
	}
	return -1
}

func snapshot(touches []screenspace.Touch) []screenspace.Touch {
	if len(touches) == 0 {
		return nil
	}
	return append([]screenspace.Touch(nil), touches...)
}
