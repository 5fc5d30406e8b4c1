package screenspace

import "testing"

func TestResolvePosition(t *testing.T) {
	tests := []struct {
		name string
		s    Surface
		x, y float64
		want Vec2
	}{
		{"global surface", nil, 12, 34, Vec2{12, 34}},
		{"offset rect", Rect{X: 10, Y: 20, Width: 100, Height: 100}, 15, 25, Vec2{5, 5}},
		{"outside surface", Rect{X: 10, Y: 20}, 0, 0, Vec2{-10, -20}},
		{"surface func", SurfaceFunc(func() Rect { return Rect{X: -5, Y: 5} }), 0, 0, Vec2{5, -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePosition(tt.x, tt.y, tt.s); got != tt.want {
				t.Errorf("ResolvePosition(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestResolveModifier(t *testing.T) {
	tests := []struct {
		name string
		keys KeyFlags
		want Modifier
	}{
		{"none", 0, ModNone},
		{"shift", KeyShift, ModShift},
		{"ctrl", KeyCtrl, ModCtrl},
		{"alt", KeyAlt, ModAlt},
		{"shift over ctrl", KeyShift | KeyCtrl, ModShift},
		{"ctrl over alt", KeyCtrl | KeyAlt, ModCtrl},
		{"all", KeyShift | KeyCtrl | KeyAlt | KeyMeta, ModShift},
		{"meta ignored", KeyMeta, ModNone},
		{"meta with alt", KeyMeta | KeyAlt, ModAlt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveModifier(tt.keys); got != tt.want {
				t.Errorf("ResolveModifier(%b) = %v, want %v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	if got := LeftDoubleClick.String(); got != "left-double-click" {
		t.Errorf("LeftDoubleClick.String() = %q", got)
	}
	if got := PinchEnd.String(); got != "pinch-end" {
		t.Errorf("PinchEnd.String() = %q", got)
	}
	if got := EventKind(200).String(); got != "unknown" {
		t.Errorf("EventKind(200).String() = %q, want unknown", got)
	}
	if got := ModCtrl.String(); got != "ctrl" {
		t.Errorf("ModCtrl.String() = %q", got)
	}
	if got := RawTouchCancel.String(); got != "touchcancel" {
		t.Errorf("RawTouchCancel.String() = %q", got)
	}
	if got := ButtonMiddle.String(); got != "middle" {
		t.Errorf("ButtonMiddle.String() = %q", got)
	}
	if EventKind(eventKindCount).Valid() || Modifier(modifierCount).Valid() {
		t.Error("count sentinels should not be valid")
	}
}
