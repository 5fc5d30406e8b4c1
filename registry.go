package screenspace

import "fmt"

// actionRegistry holds at most one Action per (EventKind, Modifier) pair.
// The table is indexed by the closed enumerations directly.
type actionRegistry struct {
	actions [eventKindCount][modifierCount]Action
}

func checkKey(kind EventKind, mod Modifier) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown event kind %d", ErrInvalidArgument, kind)
	}
	if !mod.Valid() {
		return fmt.Errorf("%w: unknown modifier %d", ErrInvalidArgument, mod)
	}
	return nil
}

// set replaces the action stored for (kind, mod).
func (r *actionRegistry) set(kind EventKind, mod Modifier, a Action) error {
	if err := checkKey(kind, mod); err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("%w: nil action for %s", ErrInvalidArgument, kind)
	}
	r.actions[kind][mod] = a
	return nil
}

// get returns the action stored for (kind, mod), or nil.
func (r *actionRegistry) get(kind EventKind, mod Modifier) (Action, error) {
	if err := checkKey(kind, mod); err != nil {
		return nil, err
	}
	return r.actions[kind][mod], nil
}

// remove deletes the action stored for (kind, mod). Removing an absent
// entry is a no-op.
func (r *actionRegistry) remove(kind EventKind, mod Modifier) error {
	if err := checkKey(kind, mod); err != nil {
		return err
	}
	r.actions[kind][mod] = nil
	return nil
}

// lookup is the unchecked form of get used on the dispatch path, where keys
// always come from the tracker.
func (r *actionRegistry) lookup(kind EventKind, mod Modifier) Action {
	return r.actions[kind][mod]
}

// clear drops every action.
func (r *actionRegistry) clear() {
	r.actions = [eventKindCount][modifierCount]Action{}
}
