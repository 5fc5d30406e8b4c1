package screenspace

import (
	"bytes"
	"strings"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOutput
	debugOutput = &buf
	t.Cleanup(func() { debugOutput = prev })
	return &buf
}

func TestDebugLogsEvents(t *testing.T) {
	buf := captureDebug(t)
	h := NewHandler(nil, Config{Debug: true})
	h.SetAction(LeftClick, ModNone, func(Event) {})

	h.Dispatch(RawEvent{Kind: RawMouseDown, X: 1, Y: 2, Button: ButtonLeft})
	h.Dispatch(RawEvent{Kind: RawMouseUp, X: 1, Y: 2, Button: ButtonLeft, Keys: KeyShift})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"[screenspace] left-down mod=none pos=(1,2) handled=false",
		"[screenspace] left-up mod=shift pos=(1,2) handled=false",
		"[screenspace] left-click mod=shift pos=(1,2) handled=false",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDebugHandledFlag(t *testing.T) {
	buf := captureDebug(t)
	h := NewHandler(nil, Config{Debug: true})
	h.SetAction(Wheel, ModNone, WheelAction(func(float64) {}))
	h.Dispatch(RawEvent{Kind: RawWheel, WheelDelta: 1})
	if got := buf.String(); !strings.Contains(got, "wheel mod=none delta=120 handled=true") {
		t.Errorf("debug output = %q", got)
	}
}

func TestDebugOff(t *testing.T) {
	buf := captureDebug(t)
	h := NewHandler(nil, Config{})
	h.Dispatch(RawEvent{Kind: RawMouseDown, Button: ButtonLeft})
	if buf.Len() != 0 {
		t.Errorf("unexpected debug output: %q", buf.String())
	}

	h.SetDebug(true)
	h.Dispatch(RawEvent{Kind: RawMouseMove, X: 3, Y: 4})
	if got := buf.String(); !strings.Contains(got, "mouse-move mod=none from=(0,0) to=(3,4)") {
		t.Errorf("debug output = %q", got)
	}
}

func TestDebugForwardError(t *testing.T) {
	buf := captureDebug(t)
	host := NewInjectHost()
	h := NewHandler(host, Config{Debug: true})
	emit := host.emit
	h.Dispose()

	// A host that keeps its callback after Detach gets its events dropped.
	emit(RawEvent{Kind: RawMouseDown})
	if got := buf.String(); !strings.Contains(got, "[screenspace] dropped mousedown: "+ErrIllegalState.Error()) {
		t.Errorf("debug output = %q", got)
	}
}

func TestDescribeEvent(t *testing.T) {
	tests := []struct {
		e    Event
		want string
	}{
		{PinchStartEvent{eventHeader{PinchStart, ModNone}, Vec2{1, 2}, Vec2{3, 4}}, "p1=(1,2) p2=(3,4)"},
		{PinchMoveEvent{
			eventHeader: eventHeader{PinchMove, ModNone},
			Distance:    ScalarChange{10, 20},
			Height:      ScalarChange{5, 6},
		}, "dist=10->20 angle=0.000->0.000 height=5->6"},
		{PinchEndEvent{eventHeader{PinchEnd, ModNone}}, ""},
	}
	for _, tt := range tests {
		if got := describeEvent(tt.e); got != tt.want {
			t.Errorf("describeEvent(%s) = %q, want %q", tt.e.Kind(), got, tt.want)
		}
	}
}
