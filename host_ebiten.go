package screenspace

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenButtons = [...]struct {
	eb ebiten.MouseButton
	b  Button
}{
	{ebiten.MouseButtonLeft, ButtonLeft},
	{ebiten.MouseButtonMiddle, ButtonMiddle},
	{ebiten.MouseButtonRight, ButtonRight},
}

// EbitenHost polls Ebitengine input once per frame and forwards it as raw
// events. Call Update from your game's Update method. Ebitengine has no
// default handling to suppress, so PreventDefault is always nil.
//
// When cfg.Surface is set, presses, wheel rotations and new touch contacts
// outside its bounds are not forwarded. Moves and releases still are, so a
// drag that leaves the surface keeps reporting until it ends.
type EbitenHost struct {
	emit    func(RawEvent)
	clicks  *ClickCounter
	surface Surface

	cursorX, cursorY int
	cursorKnown      bool

	// touches holds active contacts in the order they touched down.
	touches  []Touch
	touchBuf []ebiten.TouchID
	justBuf  []ebiten.TouchID
}

// NewEbitenHost creates a host. cfg supplies the double-click interval
// and distance.
func NewEbitenHost(cfg Config) *EbitenHost {
	return &EbitenHost{clicks: NewClickCounter(cfg), surface: cfg.Surface}
}

// accepts reports whether a press at the absolute point (x, y) lands on
// the host's surface.
func (h *EbitenHost) accepts(x, y float64) bool {
	if h.surface == nil {
		return true
	}
	return h.surface.Bounds().Contains(x, y)
}

// Attach implements Host.
func (h *EbitenHost) Attach(fn func(RawEvent)) {
	h.emit = fn
}

// Detach implements Host.
func (h *EbitenHost) Detach() {
	h.emit = nil
	h.touches = h.touches[:0]
	h.cursorKnown = false
	h.clicks.Reset()
}

// send forwards ev if the host is still attached. An action may detach the
// host in the middle of a frame.
func (h *EbitenHost) send(ev RawEvent) {
	if h.emit != nil {
		h.emit(ev)
	}
}

// Update polls the mouse, wheel and touch state for this frame.
func (h *EbitenHost) Update() {
	if h.emit == nil {
		return
	}
	keys := readKeyFlags()
	h.pollMouse(keys)
	h.pollWheel(keys)
	h.pollTouches(keys)
}

// readKeyFlags reads the current keyboard modifier state.
func readKeyFlags() KeyFlags {
	var keys KeyFlags
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		keys |= KeyShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		keys |= KeyCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		keys |= KeyAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		keys |= KeyMeta
	}
	return keys
}

func (h *EbitenHost) pollMouse(keys KeyFlags) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	// The first frame only records the cursor; there is no previous
	// position to move from.
	if h.cursorKnown && (mx != h.cursorX || my != h.cursorY) {
		h.send(RawEvent{Kind: RawMouseMove, X: x, Y: y, Keys: keys})
	}
	h.cursorX, h.cursorY, h.cursorKnown = mx, my, true

	now := time.Now()
	for _, mb := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) && h.accepts(x, y) {
			h.send(RawEvent{Kind: RawMouseDown, X: x, Y: y, Button: mb.b, Keys: keys})
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			h.send(RawEvent{Kind: RawMouseUp, X: x, Y: y, Button: mb.b, Keys: keys})
			if h.clicks.Record(mb.b, Vec2{X: x, Y: y}, now) == 2 {
				h.send(RawEvent{Kind: RawDoubleClick, X: x, Y: y, Button: mb.b, Keys: keys})
			}
		}
	}
}

func (h *EbitenHost) pollWheel(keys KeyFlags) {
	_, dy := ebiten.Wheel()
	if dy == 0 || !h.accepts(float64(h.cursorX), float64(h.cursorY)) {
		return
	}
	h.send(RawEvent{
		Kind:       RawWheel,
		X:          float64(h.cursorX),
		Y:          float64(h.cursorY),
		Keys:       keys,
		WheelDelta: dy,
		WheelUnit:  WheelNotches,
	})
}

func (h *EbitenHost) pollTouches(keys KeyFlags) {
	h.touchBuf = ebiten.AppendTouchIDs(h.touchBuf[:0])

	// Lifted contacts: anything we track that ebiten no longer reports.
	for i := 0; i < len(h.touches); {
		t := h.touches[i]
		if containsTouchID(h.touchBuf, ebiten.TouchID(t.ID)) {
			i++
			continue
		}
		h.touches = append(h.touches[:i], h.touches[i+1:]...)
		h.send(RawEvent{Kind: RawTouchEnd, Keys: keys, Touches: copyTouches(h.touches), Changed: []Touch{t}})
	}

	var moved []Touch
	for i := range h.touches {
		t := &h.touches[i]
		tx, ty := ebiten.TouchPosition(ebiten.TouchID(t.ID))
		if x, y := float64(tx), float64(ty); x != t.X || y != t.Y {
			t.X, t.Y = x, y
			moved = append(moved, *t)
		}
	}
	if len(moved) > 0 {
		h.send(RawEvent{Kind: RawTouchMove, Keys: keys, Touches: copyTouches(h.touches), Changed: moved})
	}

	h.justBuf = inpututil.AppendJustPressedTouchIDs(h.justBuf[:0])
	for _, id := range h.justBuf {
		if indexTouch(h.touches, TouchID(id)) >= 0 {
			continue
		}
		tx, ty := ebiten.TouchPosition(id)
		t := Touch{ID: TouchID(id), X: float64(tx), Y: float64(ty)}
		if !h.accepts(t.X, t.Y) {
			continue
		}
		h.touches = append(h.touches, t)
		h.send(RawEvent{Kind: RawTouchStart, Keys: keys, Touches: copyTouches(h.touches), Changed: []Touch{t}})
	}
}

func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// indexTouch returns the index of the contact with id, or -1.
func indexTouch(touches []Touch, id TouchID) int {
	for i := range touches {
		if touches[i].ID == id {
			return i
		}
	}
	return -1
}

// copyTouches snapshots a contact list so later host updates do not alias
// events already delivered.
func copyTouches(touches []Touch) []Touch {
	if len(touches) == 0 {
		return nil
	}
	return append([]Touch(nil), touches...)
}
