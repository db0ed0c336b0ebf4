package wm

import (
	"github.com/BurntSushi/xgb/xproto"
)

// SentinelNone is the "above_sibling" value meaning "place at the top
// of the stack", matching the X protocol's None window id.
const SentinelNone = xproto.Window(0)

// List is the ordered, bottom-to-top set of tracked top-level windows
// (spec.md §3 invariants). The zero value is ready to use.
type List struct {
	order []*Window
	byID  map[xproto.Window]*Window
}

// NewList returns an empty List.
func NewList() *List {
	return &List{byID: map[xproto.Window]*Window{}}
}

// Len returns the number of tracked windows.
func (l *List) Len() int { return len(l.order) }

// Lookup returns the record for id, or nil if none is tracked.
func (l *List) Lookup(id xproto.Window) *Window {
	return l.byID[id]
}

// Windows returns the current stacking order, bottom to top. The
// returned slice is owned by List; callers must not mutate it.
func (l *List) Windows() []*Window { return l.order }

// Append adds w at the top of the stack. It is the caller's
// responsibility to ensure w.ID isn't already tracked; Append panics
// otherwise, since that would violate the "no duplicates by id"
// invariant (spec.md §8).
func (l *List) Append(w *Window) {
	if _, ok := l.byID[w.ID]; ok {
		panic("wm: Append of already-tracked window id")
	}
	if l.byID == nil {
		l.byID = map[xproto.Window]*Window{}
	}
	l.order = append(l.order, w)
	l.byID[w.ID] = w
}

// Remove deletes the record for id, if any, and reports whether it was
// present. GPU-handle release is the caller's responsibility (owned by
// internal/compositor), matching the scoped-resource discipline of §5.
func (l *List) Remove(id xproto.Window) (*Window, bool) {
	w, ok := l.byID[id]
	if !ok {
		return nil, false
	}
	delete(l.byID, id)
	for i, c := range l.order {
		if c.ID == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return w, true
}

// Restack removes the record for id, then re-inserts it immediately
// above the record whose id equals aboveSibling (spec.md §4.1). If
// aboveSibling is SentinelNone, the window is appended at the top. If
// aboveSibling is not tracked, the window is appended at the top and
// ok is false, matching the "log and append" inconsistency policy of
// §7.
func (l *List) Restack(id, aboveSibling xproto.Window) (ok bool) {
	w, present := l.byID[id]
	if !present {
		return false
	}
	for i, c := range l.order {
		if c.ID == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}

	if aboveSibling == SentinelNone {
		l.order = append(l.order, w)
		return true
	}

	for i, c := range l.order {
		if c.ID == aboveSibling {
			l.order = append(l.order, nil)
			copy(l.order[i+2:], l.order[i+1:])
			l.order[i+1] = w
			return true
		}
	}

	// above_sibling not found: append at top and report !ok so the
	// caller logs it (§7).
	l.order = append(l.order, w)
	return false
}

// RaiseToTop moves id to the top of the stack (CIRCULATE_NOTIFY
// PlaceOnTop, spec.md §4.3). No-op if id is not tracked.
func (l *List) RaiseToTop(id xproto.Window) {
	l.moveTo(id, len(l.order))
}

// LowerToBottom moves id to the bottom of the stack (CIRCULATE_NOTIFY
// PlaceOnBottom).
func (l *List) LowerToBottom(id xproto.Window) {
	l.moveTo(id, 0)
}

func (l *List) moveTo(id xproto.Window, pos int) {
	w, ok := l.byID[id]
	if !ok {
		return
	}
	for i, c := range l.order {
		if c.ID == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			if i < pos {
				pos--
			}
			break
		}
	}
	if pos > len(l.order) {
		pos = len(l.order)
	}
	l.order = append(l.order, nil)
	copy(l.order[pos+1:], l.order[pos:])
	l.order[pos] = w
}

// Mapped returns every tracked window whose Mapped field is true, in
// stacking order. Compositing traverses exactly this sequence
// (spec.md §3 invariants).
func (l *List) Mapped() []*Window {
	out := make([]*Window, 0, len(l.order))
	for _, w := range l.order {
		if w.Mapped {
			out = append(out, w)
		}
	}
	return out
}
