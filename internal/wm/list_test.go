package wm

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func ids(ws []*Window) []xproto.Window {
	out := make([]xproto.Window, len(ws))
	for i, w := range ws {
		out[i] = w.ID
	}
	return out
}

func TestAppendOrder(t *testing.T) {
	l := NewList()
	l.Append(NewUnmapped(1)) // A
	l.Append(NewUnmapped(2)) // B

	got := ids(l.Windows())
	want := []xproto.Window{1, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("initial order mismatch (-want +got):\n%s", diff)
	}
}

func TestRestackAboveSibling(t *testing.T) {
	l := NewList()
	l.Append(NewUnmapped(1)) // A
	l.Append(NewUnmapped(2)) // B
	l.Append(NewUnmapped(3)) // C

	// ConfigureNotify(B, above_sibling=C): [A, C, B]
	if ok := l.Restack(2, 3); !ok {
		t.Fatalf("Restack reported not-ok for a present sibling")
	}
	got := ids(l.Windows())
	want := []xproto.Window{1, 3, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("restack order mismatch (-want +got):\n%s", diff)
	}
}

func TestRestackNoneAppendsAtTop(t *testing.T) {
	l := NewList()
	l.Append(NewUnmapped(1))
	l.Append(NewUnmapped(2))

	l.Restack(1, SentinelNone)
	got := ids(l.Windows())
	want := []xproto.Window{2, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("restack-to-top order mismatch (-want +got):\n%s", diff)
	}
}

func TestRestackMissingSiblingAppendsAndReportsNotOK(t *testing.T) {
	l := NewList()
	l.Append(NewUnmapped(1))
	l.Append(NewUnmapped(2))

	ok := l.Restack(1, 99)
	if ok {
		t.Fatalf("expected Restack against a missing sibling to report not-ok")
	}
	got := ids(l.Windows())
	want := []xproto.Window{2, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fallback order mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveReturnsListToPriorLength(t *testing.T) {
	l := NewList()
	l.Append(NewUnmapped(1))
	before := l.Len()

	l.Append(NewUnmapped(2))
	if _, ok := l.Remove(2); !ok {
		t.Fatalf("Remove reported missing record for a tracked id")
	}
	if l.Len() != before {
		t.Fatalf("list length %d, want %d", l.Len(), before)
	}
	if w := l.Lookup(2); w != nil {
		t.Fatalf("removed window still present: %+v", w)
	}
}

func TestNoDuplicateIDs(t *testing.T) {
	l := NewList()
	l.Append(NewUnmapped(1))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate id append")
		}
	}()
	l.Append(NewUnmapped(1))
}

func TestCirculate(t *testing.T) {
	l := NewList()
	l.Append(NewUnmapped(1))
	l.Append(NewUnmapped(2))
	l.Append(NewUnmapped(3))

	l.RaiseToTop(1)
	if diff := cmp.Diff([]xproto.Window{2, 3, 1}, ids(l.Windows())); diff != "" {
		t.Fatalf("raise-to-top mismatch (-want +got):\n%s", diff)
	}

	l.LowerToBottom(1)
	if diff := cmp.Diff([]xproto.Window{1, 2, 3}, ids(l.Windows())); diff != "" {
		t.Fatalf("lower-to-bottom mismatch (-want +got):\n%s", diff)
	}
}

func TestMappedFiltersUnmapped(t *testing.T) {
	l := NewList()
	a := NewUnmapped(1)
	a.Mapped = true
	b := NewUnmapped(2)
	l.Append(a)
	l.Append(b)

	got := ids(l.Mapped())
	if diff := cmp.Diff([]xproto.Window{1}, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("mapped filter mismatch (-want +got):\n%s", diff)
	}
}
