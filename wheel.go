package screenspace

// WheelUnit describes how a host encodes RawEvent.WheelDelta.
type WheelUnit uint8

const (
	WheelNotches WheelUnit = iota // detents, positive away from the user (ebiten, tcell)
	WheelPixels                   // pixels, positive toward the user (DOM deltaY, gio Scroll.Y)
	WheelLines                    // lines, positive toward the user
	WheelPages                    // pages, positive toward the user
	WheelDetail                   // legacy click count, positive toward the user
)

// Delta scale used by the legacy mousewheel encoding, in which one detent
// reports 120. Kept for compatibility with callers tuned to that scale.
const (
	wheelNotchDelta = 120
	wheelLineDelta  = 40
	wheelPageDelta  = 300
)

// NormalizeWheel converts a host wheel delta to the legacy signed scale:
// 120 per detent, positive when the wheel rotates away from the user.
func NormalizeWheel(delta float64, unit WheelUnit) float64 {
	switch unit {
	case WheelNotches:
		return delta * wheelNotchDelta
	case WheelPixels:
		return -delta
	case WheelLines:
		return -delta * wheelLineDelta
	case WheelPages:
		return -delta * wheelPageDelta
	case WheelDetail:
		return -delta * wheelNotchDelta
	default:
		return 0
	}
}
