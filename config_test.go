package screenspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.ClickTolerance != 5 {
		t.Errorf("ClickTolerance = %v, want 5", c.ClickTolerance)
	}
	if c.DoubleClickInterval != 500*time.Millisecond {
		t.Errorf("DoubleClickInterval = %v, want 500ms", c.DoubleClickInterval)
	}
	if c.DoubleClickDistance != 4 {
		t.Errorf("DoubleClickDistance = %v, want 4", c.DoubleClickDistance)
	}
	if c != (Config{}).withDefaults() {
		t.Error("zero Config with defaults should equal DefaultConfig()")
	}
}

func TestDecodeConfig(t *testing.T) {
	data := []byte(`
click_tolerance = 2.5
double_click_ms = 300
debug = true
`)
	c, err := DecodeConfig(data)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if c.ClickTolerance != 2.5 {
		t.Errorf("ClickTolerance = %v, want 2.5", c.ClickTolerance)
	}
	if c.DoubleClickInterval != 300*time.Millisecond {
		t.Errorf("DoubleClickInterval = %v, want 300ms", c.DoubleClickInterval)
	}
	if c.DoubleClickDistance != defaultDoubleClickDistance {
		t.Errorf("DoubleClickDistance = %v, want default", c.DoubleClickDistance)
	}
	if !c.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", `click_tolerance = `, "parse config"},
		{"unknown key", `click_tolerence = 3`, "unknown key"},
		{"wrong type", `click_tolerance = "big"`, "parse config"},
		{"negative tolerance", `click_tolerance = -1.0`, "click_tolerance"},
		{"negative interval", `double_click_ms = -5`, "double_click_ms"},
		{"negative distance", `double_click_distance = -2.0`, "double_click_distance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.toml")
	if err := os.WriteFile(path, []byte("double_click_distance = 8.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.DoubleClickDistance != 8 {
		t.Errorf("DoubleClickDistance = %v, want 8", c.DoubleClickDistance)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestHandlerUsesConfigTolerance(t *testing.T) {
	h := NewHandler(nil, Config{ClickTolerance: 20})
	clicked := false
	h.SetAction(LeftClick, ModNone, func(Event) { clicked = true })
	h.Dispatch(RawEvent{Kind: RawMouseDown, Button: ButtonLeft})
	h.Dispatch(RawEvent{Kind: RawMouseUp, X: 15, Button: ButtonLeft})
	if !clicked {
		t.Error("release within a 20px tolerance should click")
	}
}
