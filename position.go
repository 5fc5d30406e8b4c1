package screenspace

// Surface is the area raw coordinates are made local to. Bounds is queried
// on every notification so surfaces that move with layout stay accurate.
type Surface interface {
	Bounds() Rect
}

// Bounds returns r, so a fixed Rect can be used as a Surface.
func (r Rect) Bounds() Rect { return r }

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func() Rect

// Bounds calls f.
func (f SurfaceFunc) Bounds() Rect { return f() }

// ResolvePosition translates an absolute host coordinate into surface-local
// space by subtracting the surface's top-left corner. A nil surface is the
// default global surface and returns the coordinate unchanged.
func ResolvePosition(x, y float64, s Surface) Vec2 {
	if s == nil {
		return Vec2{X: x, Y: y}
	}
	b := s.Bounds()
	return Vec2{X: x - b.X, Y: y - b.Y}
}
