package events

import (
	"testing"
	"time"

	"github.com/BurntSushi/xgb/damage"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rottencandy/rcomp/internal/wm"
)

// fakeBackend is a no-GL, no-X recording stand-in for
// internal/compositor.Backend, satisfying the Backend seam so the
// dispatcher can be exercised without a real connection.
type fakeBackend struct {
	drawn      []xproto.Window
	rendered   int
	released   []xproto.Window
	pixmapErr  error
	textureErr error
}

func (f *fakeBackend) InitWindow(w *wm.Window)    { w.Context.VBO = uint32(w.ID) + 1000 }
func (f *fakeBackend) UpdatePos(w *wm.Window)      {}
func (f *fakeBackend) UpdatePixmap(w *wm.Window) error {
	if f.pixmapErr != nil {
		return f.pixmapErr
	}
	w.Context.GLPixmap = uintptr(w.ID) + 2000
	return nil
}
func (f *fakeBackend) UpdateTexture(w *wm.Window) error {
	if f.textureErr != nil {
		return f.textureErr
	}
	w.Context.Texture = uint32(w.ID) + 3000
	return nil
}
func (f *fakeBackend) UpdateRootTexture(pixmap xproto.Pixmap, visual xproto.Visualid) error {
	return nil
}
func (f *fakeBackend) DrawWindow(w *wm.Window) { f.drawn = append(f.drawn, w.ID) }
func (f *fakeBackend) Render()                 { f.rendered++ }
func (f *fakeBackend) ReleaseWindow(w *wm.Window) {
	f.released = append(f.released, w.ID)
	w.Context = wm.Context{}
}
func (f *fakeBackend) SubtractDamage(w *wm.Window) {}

const root = xproto.Window(1)

func newTestDispatcher(fb *fakeBackend, list *wm.List) *Dispatcher {
	return NewDispatcher(nil, list, fb, nil, root, 0, RootAtoms{}, NewFrameClock(0))
}

// TestInitialTwoWindowStartup covers spec.md §8 scenario 1: two mapped
// windows present at startup both end up drawn, in stacking order.
func TestInitialTwoWindowStartup(t *testing.T) {
	list := wm.NewList()
	a := wm.NewUnmapped(10)
	a.Mapped = true
	b := wm.NewUnmapped(11)
	b.Mapped = true
	list.Append(a)
	list.Append(b)

	fb := &fakeBackend{}
	d := newTestDispatcher(fb, list)
	d.redrawAndRender()

	if diff := cmp.Diff([]xproto.Window{10, 11}, fb.drawn); diff != "" {
		t.Fatalf("drawn order mismatch (-want +got):\n%s", diff)
	}
	if fb.rendered != 1 {
		t.Fatalf("rendered = %d, want 1", fb.rendered)
	}
}

// TestCreateAndMapSequence covers spec.md §8 scenario 2: an unmapped
// record, pre-seeded to stand in for what CreateNotify would add
// (handling CreateNotify itself needs a live connection), followed by
// a MapNotify results in GPU handles being initialized and the window
// marked mapped.
func TestCreateAndMapSequence(t *testing.T) {
	list := wm.NewList()
	w := wm.NewUnmapped(20)
	list.Append(w)

	fb := &fakeBackend{}
	d := newTestDispatcher(fb, list)

	d.Dispatch(xproto.MapNotifyEvent{Window: 20})

	if !w.Mapped {
		t.Fatal("window not marked mapped after MapNotify")
	}
	if !w.Context.Valid() {
		t.Fatalf("GPU context not initialized after MapNotify: %+v", w.Context)
	}
	if fb.rendered != 1 {
		t.Fatalf("rendered = %d, want 1", fb.rendered)
	}
}

// TestConfigureRestack covers spec.md §8 scenario 3: Restack(B above
// C) on [A,B,C] yields [A,C,B].
func TestConfigureRestack(t *testing.T) {
	list := wm.NewList()
	a, b, c := wm.NewUnmapped(1), wm.NewUnmapped(2), wm.NewUnmapped(3)
	list.Append(a)
	list.Append(b)
	list.Append(c)

	fb := &fakeBackend{}
	d := newTestDispatcher(fb, list)
	d.root = 999 // keep root id distinct from test window ids

	d.Dispatch(xproto.ConfigureNotifyEvent{
		Window:       2,
		AboveSibling: 3,
		X: b.X, Y: b.Y, Width: b.Width, Height: b.Height, BorderWidth: b.BorderWidth,
	})

	got := make([]xproto.Window, 0, 3)
	for _, w := range list.Windows() {
		got = append(got, w.ID)
	}
	want := []xproto.Window{1, 3, 2}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("stacking order mismatch (-want +got):\n%s", diff)
	}
}

// TestConfigureIgnoresRoot covers spec.md §4.3: "Configure events for
// the root are currently ignored."
func TestConfigureIgnoresRoot(t *testing.T) {
	list := wm.NewList()
	fb := &fakeBackend{}
	d := newTestDispatcher(fb, list)

	d.Dispatch(xproto.ConfigureNotifyEvent{Window: root})

	if fb.rendered != 0 {
		t.Fatalf("rendered = %d, want 0 for root configure", fb.rendered)
	}
}

// TestGeometryChangeRefreshesPixmap covers spec.md §4.3: geometry
// change on a mapped window re-runs update_pixmap/update_texture
// before applying the new geometry.
func TestGeometryChangeRefreshesPixmap(t *testing.T) {
	list := wm.NewList()
	w := wm.NewUnmapped(5)
	w.Mapped = true
	w.Width, w.Height = 100, 100
	w.Context.GLPixmap = 1
	w.Context.Texture = 1
	list.Append(w)

	fb := &fakeBackend{}
	d := newTestDispatcher(fb, list)
	d.root = 999

	d.Dispatch(xproto.ConfigureNotifyEvent{Window: 5, Width: 200, Height: 150})

	if w.Width != 200 || w.Height != 150 {
		t.Fatalf("geometry not applied: got %dx%d", w.Width, w.Height)
	}
	if w.Context.GLPixmap != 2005 || w.Context.Texture != 3005 {
		t.Fatalf("pixmap/texture not refreshed: %+v", w.Context)
	}
}

// TestDamageBurstRespectsFrameClock covers spec.md §8 scenario 4: a
// burst of damage notifications is rate-limited to at most one render
// per frame interval. A zero-interval clock (used above) always
// emits; here we use a clock that never emits after its first tick to
// assert the ShouldEmit gate is actually consulted.
func TestDamageBurstRespectsFrameClock(t *testing.T) {
	list := wm.NewList()
	w := wm.NewUnmapped(30)
	w.Mapped = true
	list.Append(w)

	fb := &fakeBackend{}
	clock := &FrameClock{Interval: 1 << 62, Now: time.Now} // effectively never re-emits after first
	d := NewDispatcher(nil, list, fb, nil, root, 0, RootAtoms{}, clock)

	for i := 0; i < 100; i++ {
		d.Dispatch(damage.NotifyEvent{Drawable: xproto.Drawable(30)})
	}

	if fb.rendered != 1 {
		t.Fatalf("rendered = %d, want 1 for a damage burst under one frame interval", fb.rendered)
	}
}

// TestUnmapThenDestroyReleasesExactlyOnce covers spec.md §8's "GPU
// handles released exactly once": Unmap leaves handles intact (they
// are reused on remap), Destroy releases them.
func TestUnmapThenDestroyReleasesExactlyOnce(t *testing.T) {
	list := wm.NewList()
	w := wm.NewUnmapped(40)
	w.Mapped = true
	w.Context = wm.Context{GLPixmap: 1, Texture: 1, VBO: 1}
	list.Append(w)

	fb := &fakeBackend{}
	d := newTestDispatcher(fb, list)

	d.Dispatch(xproto.UnmapNotifyEvent{Window: 40})
	if w.Mapped {
		t.Fatal("window still marked mapped after UnmapNotify")
	}
	if len(fb.released) != 0 {
		t.Fatalf("ReleaseWindow called on unmap: %v", fb.released)
	}

	d.Dispatch(xproto.DestroyNotifyEvent{Window: 40})
	if diff := cmp.Diff([]xproto.Window{40}, fb.released); diff != "" {
		t.Fatalf("release mismatch (-want +got):\n%s", diff)
	}
	if list.Lookup(40) != nil {
		t.Fatal("window still tracked after DestroyNotify")
	}
}

// TestExposeCoalescesNonzeroCount covers spec.md §4.3 EXPOSE: events
// with nonzero count are coalesced (ignored); only count==0 triggers a
// redraw.
func TestExposeCoalescesNonzeroCount(t *testing.T) {
	list := wm.NewList()
	fb := &fakeBackend{}
	d := newTestDispatcher(fb, list)

	d.Dispatch(xproto.ExposeEvent{Count: 3})
	d.Dispatch(xproto.ExposeEvent{Count: 2})
	d.Dispatch(xproto.ExposeEvent{Count: 0})

	if fb.rendered != 1 {
		t.Fatalf("rendered = %d, want 1 after coalesced expose burst", fb.rendered)
	}
}

// TestDispatchRecoversFromPanic ensures a handler panic does not
// propagate out of Dispatch (spec.md §5 cleanup-on-every-exit-path).
func TestDispatchRecoversFromPanic(t *testing.T) {
	list := wm.NewList()
	fb := &fakeBackend{}
	d := newTestDispatcher(fb, list)

	// MapNotify for an untracked window logs and returns; exercise the
	// panic path directly instead via a nil list substitution.
	d.list = nil
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic escaped Dispatch: %v", r)
		}
	}()
	d.Dispatch(xproto.MapNotifyEvent{Window: 50})
}

// TestReparentAwayRemovesRecord exercises the remove branch of spec.md
// §4.3's REPARENT_NOTIFY contract on a pre-seeded list entry; the
// create branch requires a live connection for its Create query, so no
// test here covers it.
func TestReparentAwayRemovesRecord(t *testing.T) {
	list := wm.NewList()
	w := wm.NewUnmapped(60)
	w.Context = wm.Context{GLPixmap: 1, Texture: 1, VBO: 1}
	list.Append(w)

	fb := &fakeBackend{}
	d := newTestDispatcher(fb, list)

	d.Dispatch(xproto.ReparentNotifyEvent{Window: 60, Parent: 12345})

	if list.Lookup(60) != nil {
		t.Fatal("window still tracked after reparent away from root")
	}
	if diff := cmp.Diff([]xproto.Window{60}, fb.released); diff != "" {
		t.Fatalf("release mismatch (-want +got):\n%s", diff)
	}
}

// TestCirculateNotify covers spec.md §4.3 CIRCULATE_NOTIFY raise/lower.
func TestCirculateNotify(t *testing.T) {
	list := wm.NewList()
	a, b, c := wm.NewUnmapped(1), wm.NewUnmapped(2), wm.NewUnmapped(3)
	list.Append(a)
	list.Append(b)
	list.Append(c)

	fb := &fakeBackend{}
	d := newTestDispatcher(fb, list)

	d.Dispatch(xproto.CirculateNotifyEvent{Window: 1, Place: xproto.PlaceOnTop})
	got := make([]xproto.Window, 0, 3)
	for _, w := range list.Windows() {
		got = append(got, w.ID)
	}
	if diff := cmp.Diff([]xproto.Window{2, 3, 1}, got); diff != "" {
		t.Fatalf("raise-to-top mismatch (-want +got):\n%s", diff)
	}
}
