package screenspace

import (
	"encoding/json"
	"fmt"
	"strings"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string   `json:"action"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Frames int      `json:"frames,omitempty"`
	Button string   `json:"button,omitempty"`
	Keys   []string `json:"keys,omitempty"`
	ID     int      `json:"id,omitempty"`
	Delta  float64  `json:"delta,omitempty"`

	button Button
	keys   KeyFlags
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input across frames for automated testing.
// Attach to an InjectHost via SetTestRunner; each InjectHost.Update
// advances the script by at most one step.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

var stepActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true,
	"doubleclick": true, "drag": true, "wheel": true, "keys": true,
	"touchdown": true, "touchmove": true, "touchup": true, "wait": true,
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to an InjectHost via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		if !stepActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		b, err := parseButton(st.Button)
		if err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
		keys, err := parseKeys(st.Keys)
		if err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
		st.button = b
		st.keys = keys
	}
	return &TestRunner{steps: script.Steps}, nil
}

func parseButton(name string) (Button, error) {
	switch strings.ToLower(name) {
	case "", "left":
		return ButtonLeft, nil
	case "middle":
		return ButtonMiddle, nil
	case "right":
		return ButtonRight, nil
	default:
		return 0, fmt.Errorf("unknown button %q", name)
	}
}

func parseKeys(names []string) (KeyFlags, error) {
	var keys KeyFlags
	for _, n := range names {
		switch strings.ToLower(n) {
		case "shift":
			keys |= KeyShift
		case "ctrl", "control":
			keys |= KeyCtrl
		case "alt":
			keys |= KeyAlt
		case "meta":
			keys |= KeyMeta
		default:
			return 0, fmt.Errorf("unknown key %q", n)
		}
	}
	return keys, nil
}

// SetTestRunner attaches a TestRunner to the host. The runner's step method
// is called from Update before the next queued event is forwarded.
func (h *InjectHost) SetTestRunner(runner *TestRunner) {
	h.runner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from InjectHost.Update.
func (r *TestRunner) step(h *InjectHost) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.queue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "keys":
		h.SetKeys(st.keys)
	case "press":
		h.InjectPress(st.X, st.Y, st.button)
	case "move":
		h.InjectMove(st.X, st.Y)
	case "release":
		h.InjectRelease(st.X, st.Y, st.button)
	case "click":
		h.InjectClick(st.X, st.Y, st.button)
	case "doubleclick":
		h.InjectDoubleClick(st.X, st.Y, st.button)
	case "drag":
		h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames, st.button)
	case "wheel":
		h.InjectWheel(st.X, st.Y, st.Delta, WheelNotches)
	case "touchdown":
		h.InjectTouchDown(TouchID(st.ID), st.X, st.Y)
	case "touchmove":
		h.InjectTouchMove(TouchID(st.ID), st.X, st.Y)
	case "touchup":
		h.InjectTouchUp(TouchID(st.ID))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.queue) == 0 {
		r.done = true
	}
}
