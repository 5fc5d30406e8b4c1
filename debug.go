package screenspace

import (
	"fmt"
	"io"
	"os"
)

// debugOutput is where debug lines are written. Replaced in tests.
var debugOutput io.Writer = os.Stderr

// debugf prints one "[screenspace]" line when debug logging is on.
func (h *Handler) debugf(format string, args ...any) {
	if !h.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[screenspace] "+format+"\n", args...)
}

// debugEvent logs a produced event and whether an action will receive it.
func (h *Handler) debugEvent(e Event, handled bool) {
	if !h.debug {
		return
	}
	h.debugf("%s mod=%s %s handled=%t", e.Kind(), e.Modifier(), describeEvent(e), handled)
}

// describeEvent formats the payload of e for debug output.
func describeEvent(e Event) string {
	switch ev := e.(type) {
	case PointEvent:
		return fmt.Sprintf("pos=(%g,%g)", ev.Position.X, ev.Position.Y)
	case MoveEvent:
		return fmt.Sprintf("from=(%g,%g) to=(%g,%g)",
			ev.StartPosition.X, ev.StartPosition.Y, ev.EndPosition.X, ev.EndPosition.Y)
	case WheelEvent:
		return fmt.Sprintf("delta=%g", ev.Delta)
	case PinchStartEvent:
		return fmt.Sprintf("p1=(%g,%g) p2=(%g,%g)",
			ev.Position1.X, ev.Position1.Y, ev.Position2.X, ev.Position2.Y)
	case PinchMoveEvent:
		return fmt.Sprintf("dist=%g->%g angle=%.3f->%.3f height=%g->%g",
			ev.Distance.Start, ev.Distance.End, ev.Angle.Start, ev.Angle.End,
			ev.Height.Start, ev.Height.End)
	default:
		return ""
	}
}
