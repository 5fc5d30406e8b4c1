package screenspace

// ResolveModifier maps held keys to the single modifier an event is
// dispatched under. Shift wins over Ctrl, which wins over Alt. Meta is not
// a recognized modifier and is ignored.
func ResolveModifier(keys KeyFlags) Modifier {
	switch {
	case keys&KeyShift != 0:
		return ModShift
	case keys&KeyCtrl != 0:
		return ModCtrl
	case keys&KeyAlt != 0:
		return ModAlt
	default:
		return ModNone
	}
}
