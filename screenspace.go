package screenspace

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The zero value is an empty rectangle at the origin.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft   Button = iota // primary (left) button; touch contacts act as this button
	ButtonMiddle               // auxiliary (middle) button
	ButtonRight                // secondary (right) button
	buttonCount
)

func (b Button) valid() bool { return b < buttonCount }

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// Modifier is the single keyboard qualifier an event is registered under.
// At most one modifier applies to an event; see ResolveModifier.
type Modifier uint8

const (
	ModNone  Modifier = iota // no modifier held
	ModShift                 // Shift key
	ModCtrl                  // Control key
	ModAlt                   // Alt / Option key
	modifierCount
)

// Valid reports whether m is one of the recognized modifiers.
func (m Modifier) Valid() bool {
	return m < modifierCount
}

// String returns a string representation of the modifier.
func (m Modifier) String() string {
	switch m {
	case ModNone:
		return "none"
	case ModShift:
		return "shift"
	case ModCtrl:
		return "ctrl"
	case ModAlt:
		return "alt"
	default:
		return "unknown"
	}
}

// KeyFlags is a bitmask of keyboard modifier keys held during a raw event.
// Values can be combined with bitwise OR (e.g. KeyShift | KeyCtrl).
type KeyFlags uint8

const (
	KeyShift KeyFlags = 1 << iota // Shift key
	KeyCtrl                       // Control key
	KeyAlt                        // Alt / Option key
	KeyMeta                       // Meta / Command / Windows key
)

// EventKind identifies a kind of normalized input event.
type EventKind uint8

const (
	LeftDown          EventKind = iota // left button pressed or first touch contact
	LeftUp                             // left button released or touch contact lifted
	LeftClick                          // left press then release within the click tolerance
	LeftDoubleClick                    // left double-click
	MiddleDown                         // middle button pressed
	MiddleUp                           // middle button released
	MiddleClick                        // middle press then release within the click tolerance
	MiddleDoubleClick                  // middle double-click
	RightDown                          // right button pressed
	RightUp                            // right button released
	RightClick                         // right press then release within the click tolerance
	RightDoubleClick                   // right double-click
	MouseMove                          // pointer moved (hover or drag)
	Wheel                              // wheel rotated
	PinchStart                         // second touch contact arrived
	PinchMove                          // two tracked contacts moved
	PinchEnd                           // contact count dropped below two while pinching
	eventKindCount
)

var eventKindNames = [eventKindCount]string{
	"left-down", "left-up", "left-click", "left-double-click",
	"middle-down", "middle-up", "middle-click", "middle-double-click",
	"right-down", "right-up", "right-click", "right-double-click",
	"mouse-move", "wheel", "pinch-start", "pinch-move", "pinch-end",
}

// Valid reports whether k is one of the recognized event kinds.
func (k EventKind) Valid() bool {
	return k < eventKindCount
}

// String returns a string representation of the event kind.
func (k EventKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return eventKindNames[k]
}

// buttonKinds holds the down, up, click and double-click kinds per button.
var buttonKinds = [buttonCount][4]EventKind{
	ButtonLeft:   {LeftDown, LeftUp, LeftClick, LeftDoubleClick},
	ButtonMiddle: {MiddleDown, MiddleUp, MiddleClick, MiddleDoubleClick},
	ButtonRight:  {RightDown, RightUp, RightClick, RightDoubleClick},
}

// DownKind returns the press event kind for b. b must be a known button.
func (b Button) DownKind() EventKind { return buttonKinds[b][0] }

// UpKind returns the release event kind for b.
func (b Button) UpKind() EventKind { return buttonKinds[b][1] }

// ClickKind returns the click event kind for b.
func (b Button) ClickKind() EventKind { return buttonKinds[b][2] }

// DoubleClickKind returns the double-click event kind for b.
func (b Button) DoubleClickKind() EventKind { return buttonKinds[b][3] }

// RawKind identifies a raw host notification.
type RawKind uint8

const (
	RawMouseDown   RawKind = iota // a mouse button was pressed
	RawMouseUp                    // a mouse button was released
	RawMouseMove                  // the cursor moved
	RawDoubleClick                // the host reported a double-click
	RawWheel                      // the wheel or touchpad scrolled
	RawTouchStart                 // one or more contacts touched down
	RawTouchMove                  // one or more contacts moved
	RawTouchEnd                   // one or more contacts lifted
	RawTouchCancel                // the host interrupted one or more contacts
)

// String returns a string representation of the raw kind.
func (k RawKind) String() string {
	switch k {
	case RawMouseDown:
		return "mousedown"
	case RawMouseUp:
		return "mouseup"
	case RawMouseMove:
		return "mousemove"
	case RawDoubleClick:
		return "dblclick"
	case RawWheel:
		return "wheel"
	case RawTouchStart:
		return "touchstart"
	case RawTouchMove:
		return "touchmove"
	case RawTouchEnd:
		return "touchend"
	case RawTouchCancel:
		return "touchcancel"
	default:
		return "unknown"
	}
}

// TouchID identifies a touch contact for as long as it stays down.
type TouchID int

// Touch is one active touch contact in absolute host coordinates.
type Touch struct {
	ID   TouchID
	X, Y float64
}

// RawEvent is a single notification delivered by a Host.
//
// Coordinates are absolute in the host's coordinate space; the Handler's
// Surface translates them to surface-local space. For touch kinds, Touches
// lists the contacts that remain down after the notification in host order
// and Changed lists the contacts the notification is about.
type RawEvent struct {
	Kind   RawKind
	X, Y   float64
	Button Button
	Keys   KeyFlags

	Touches []Touch
	Changed []Touch

	WheelDelta float64
	WheelUnit  WheelUnit

	// PreventDefault suppresses the host's built-in handling of the
	// notification. Nil when the host has no default handling.
	PreventDefault func()
}
