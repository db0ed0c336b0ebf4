// Package events is the Event Dispatcher (spec.md §4.3): it translates
// the server's asynchronous event stream into Window Model mutations,
// Backend invocations, and rate-limited frame emissions.
package events

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/damage"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/rottencandy/rcomp/internal/rlog"
	"github.com/rottencandy/rcomp/internal/wm"
	"github.com/rottencandy/rcomp/internal/xserver"
)

// RootAtoms are the well-known atoms the dispatcher watches on
// PropertyNotify (SPEC_FULL.md §4, resolving spec.md §9's root-pixmap
// and window-opacity open questions).
type RootAtoms struct {
	RootPixmap [3]xproto.Atom // ESETROOT_PMAP_ID, _XROOTPMAP_ID, _XSETROOT_ID, in lookup order
	Opacity    xproto.Atom    // _NET_WM_WINDOW_OPACITY
}

// Backend is the subset of internal/compositor.Backend's method set the
// dispatcher drives. It exists as a seam so dispatcher tests can run
// against a fake, event-source-only Backend with no real GLX/X
// connection (SPEC_FULL.md §2 test tooling).
type Backend interface {
	InitWindow(w *wm.Window)
	UpdatePos(w *wm.Window)
	UpdatePixmap(w *wm.Window) error
	UpdateTexture(w *wm.Window) error
	UpdateRootTexture(pixmap xproto.Pixmap, visual xproto.Visualid) error
	DrawWindow(w *wm.Window)
	Render()
	ReleaseWindow(w *wm.Window)
	SubtractDamage(w *wm.Window)
}

// Dispatcher is the core's state machine (spec.md §4.3).
type Dispatcher struct {
	xc      *xgb.Conn
	list    *wm.List
	backend Backend
	av      *wm.AlphaVisuals
	root    xproto.Window
	atoms   RootAtoms
	rootVis xproto.Visualid
	clock   *FrameClock
}

// NewDispatcher constructs a Dispatcher over an already-populated
// window list (the result of wm.FetchInitialSet).
func NewDispatcher(xc *xgb.Conn, list *wm.List, backend Backend, av *wm.AlphaVisuals, root xproto.Window, rootVisual xproto.Visualid, atoms RootAtoms, clock *FrameClock) *Dispatcher {
	return &Dispatcher{
		xc:      xc,
		list:    list,
		backend: backend,
		av:      av,
		root:    root,
		atoms:   atoms,
		rootVis: rootVisual,
		clock:   clock,
	}
}

// Dispatch routes one server event to its handler. A handler panic is
// recovered and logged rather than propagated, so that one malformed
// event cannot take down the process mid-loop (spec.md §5: GL/handle
// release must happen "on every exit path, including panic/abort
// unwinding" — recovering here is the dispatcher-level half of that
// guarantee; GL primitive Release methods are the other half).
func (d *Dispatcher) Dispatch(ev xgb.Event) {
	defer func() {
		if r := recover(); r != nil {
			rlog.L.Error().Interface("panic", r).Msg("event handler panicked; continuing")
		}
	}()

	switch e := ev.(type) {
	case xproto.CreateNotifyEvent:
		d.onCreateNotify(e)
	case xproto.DestroyNotifyEvent:
		d.onDestroyNotify(e)
	case xproto.ConfigureNotifyEvent:
		d.onConfigureNotify(e)
	case xproto.MapNotifyEvent:
		d.onMapNotify(e)
	case xproto.UnmapNotifyEvent:
		d.onUnmapNotify(e)
	case xproto.ReparentNotifyEvent:
		d.onReparentNotify(e)
	case xproto.CirculateNotifyEvent:
		d.onCirculateNotify(e)
	case xproto.ExposeEvent:
		d.onExpose(e)
	case xproto.PropertyNotifyEvent:
		d.onPropertyNotify(e)
	case damage.NotifyEvent:
		d.onDamageNotify(e)
	}
}

func (d *Dispatcher) redrawAndRender() {
	for _, w := range d.list.Mapped() {
		d.backend.DrawWindow(w)
	}
	d.backend.Render()
}

func (d *Dispatcher) initWindowGPU(w *wm.Window) {
	d.backend.InitWindow(w)
	if err := d.backend.UpdatePixmap(w); err != nil {
		rlog.L.Warn().Uint32("window", uint32(w.ID)).Err(err).Msg("update_pixmap")
		return
	}
	if err := d.backend.UpdateTexture(w); err != nil {
		rlog.L.Warn().Uint32("window", uint32(w.ID)).Err(err).Msg("update_texture")
	}
}

// onCreateNotify implements spec.md §4.3 CREATE_NOTIFY.
func (d *Dispatcher) onCreateNotify(e xproto.CreateNotifyEvent) {
	w, err := wm.Create(d.xc, e.Window, d.av)
	if err != nil {
		rlog.L.Warn().Uint32("window", uint32(e.Window)).Err(err).Msg("create_notify: query failed")
		return
	}
	if w.Mapped {
		d.initWindowGPU(w)
	}
	d.list.Append(w)
	d.redrawAndRender()
}

// onDestroyNotify implements spec.md §4.3 DESTROY_NOTIFY.
func (d *Dispatcher) onDestroyNotify(e xproto.DestroyNotifyEvent) {
	w, ok := d.list.Remove(e.Window)
	if !ok {
		return
	}
	d.backend.ReleaseWindow(w)
	d.redrawAndRender()
}

// onConfigureNotify implements spec.md §4.3 CONFIGURE_NOTIFY.
// "Configure events for the root are currently ignored."
func (d *Dispatcher) onConfigureNotify(e xproto.ConfigureNotifyEvent) {
	if e.Window == d.root {
		return
	}
	w := d.list.Lookup(e.Window)
	if w == nil {
		rlog.L.Warn().Uint32("window", uint32(e.Window)).Msg("configure_notify: unknown window")
		return
	}

	if w.Mapped && w.GeometryChanged(e.Width, e.Height, e.BorderWidth, e.OverrideRedirect) {
		if err := d.backend.UpdatePixmap(w); err != nil {
			rlog.L.Warn().Uint32("window", uint32(w.ID)).Err(err).Msg("update_pixmap")
		} else if err := d.backend.UpdateTexture(w); err != nil {
			rlog.L.Warn().Uint32("window", uint32(w.ID)).Err(err).Msg("update_texture")
		}
	}

	w.ApplyConfigure(e.X, e.Y, e.Width, e.Height, e.BorderWidth, e.OverrideRedirect)
	d.backend.UpdatePos(w)
	if !d.list.Restack(e.Window, e.AboveSibling) {
		rlog.L.Warn().Uint32("window", uint32(e.Window)).Uint32("above_sibling", uint32(e.AboveSibling)).Msg("configure_notify: above sibling not tracked; placed at top")
	}

	d.redrawAndRender()
}

// onMapNotify implements spec.md §4.3 MAP_NOTIFY.
func (d *Dispatcher) onMapNotify(e xproto.MapNotifyEvent) {
	w := d.list.Lookup(e.Window)
	if w == nil {
		rlog.L.Warn().Uint32("window", uint32(e.Window)).Msg("map_notify: unknown window")
		return
	}
	w.Mapped = true
	d.initWindowGPU(w)
	d.redrawAndRender()
}

// onUnmapNotify implements spec.md §4.3 UNMAP_NOTIFY.
func (d *Dispatcher) onUnmapNotify(e xproto.UnmapNotifyEvent) {
	w := d.list.Lookup(e.Window)
	if w == nil {
		return
	}
	w.Mapped = false
	d.redrawAndRender()
}

// onReparentNotify implements spec.md §4.3 REPARENT_NOTIFY: "if the
// new parent is root and no record exists, create one (with GPU init
// if mapped) and append; else remove any existing record for that
// id." Implemented literally: the only case that creates a record is
// parent==root with no existing entry; every other combination (a
// reparent away from root, or a duplicate reparent-to-root notice for
// an id already tracked) removes whatever record is present.
func (d *Dispatcher) onReparentNotify(e xproto.ReparentNotifyEvent) {
	existing := d.list.Lookup(e.Window)

	if e.Parent == d.root && existing == nil {
		w, err := wm.Create(d.xc, e.Window, d.av)
		if err != nil {
			rlog.L.Warn().Uint32("window", uint32(e.Window)).Err(err).Msg("reparent_notify: query failed")
			return
		}
		if w.Mapped {
			d.initWindowGPU(w)
		}
		d.list.Append(w)
		d.redrawAndRender()
		return
	}

	if existing != nil {
		w, _ := d.list.Remove(e.Window)
		d.backend.ReleaseWindow(w)
		d.redrawAndRender()
	}
}

// onCirculateNotify implements spec.md §4.3 CIRCULATE_NOTIFY.
func (d *Dispatcher) onCirculateNotify(e xproto.CirculateNotifyEvent) {
	if d.list.Lookup(e.Window) == nil {
		return
	}
	if e.Place == xproto.PlaceOnTop {
		d.list.RaiseToTop(e.Window)
	} else {
		d.list.LowerToBottom(e.Window)
	}
	d.redrawAndRender()
}

// onExpose implements spec.md §4.3 EXPOSE: "ignore events with
// nonzero count (coalesce); on count==0, redraw; render."
func (d *Dispatcher) onExpose(e xproto.ExposeEvent) {
	if e.Count != 0 {
		return
	}
	d.redrawAndRender()
}

// onPropertyNotify implements SPEC_FULL.md §4's resolution of spec.md
// §9's open questions: root-pixmap-atom tracking and window-opacity
// consumption. All other property changes remain a no-op, per spec.md
// §4.3 ("no-op in the core").
func (d *Dispatcher) onPropertyNotify(e xproto.PropertyNotifyEvent) {
	if e.Window == d.root {
		for _, a := range d.atoms.RootPixmap {
			if a != 0 && e.Atom == a {
				d.refreshRootPixmap()
				return
			}
		}
		return
	}

	if d.atoms.Opacity != 0 && e.Atom == d.atoms.Opacity {
		w := d.list.Lookup(e.Window)
		if w == nil {
			return
		}
		d.refreshOpacity(w)
		d.redrawAndRender()
	}
}

// refreshRootPixmap re-resolves the root background pixmap (spec.md
// §6 "Root pixmap atoms") and rebuilds the root texture. Atom matching
// is xserver.RootPixmap's job, the same lookup Init uses to build the
// first root texture, so it isn't duplicated here.
func (d *Dispatcher) refreshRootPixmap() {
	pixmap := xserver.RootPixmap(d.xc, d.root, d.atoms.RootPixmap)
	if pixmap == 0 {
		return
	}
	if err := d.backend.UpdateRootTexture(pixmap, d.rootVis); err != nil {
		rlog.L.Warn().Err(err).Msg("update_root_texture")
		return
	}
	d.redrawAndRender()
}

// refreshOpacity reads _NET_WM_WINDOW_OPACITY (a CARDINAL in
// [0, 0xffffffff], opaque when absent) into w.Opacity.
func (d *Dispatcher) refreshOpacity(w *wm.Window) {
	reply, err := xproto.GetProperty(d.xc, false, w.ID, d.atoms.Opacity, xproto.AtomCardinal, 0, 1).Reply()
	if err != nil || reply == nil || len(reply.Value) < 4 {
		w.Opacity = 1.0
		return
	}
	v := uint32(reply.Value[0]) | uint32(reply.Value[1])<<8 |
		uint32(reply.Value[2])<<16 | uint32(reply.Value[3])<<24
	w.Opacity = float32(v) / float32(0xffffffff)
}

// onDamageNotify implements spec.md §4.3 DAMAGE_NOTIFY.
func (d *Dispatcher) onDamageNotify(e damage.NotifyEvent) {
	w := d.list.Lookup(xproto.Window(e.Drawable))
	if w == nil {
		return
	}
	d.backend.SubtractDamage(w)
	if err := d.backend.UpdateTexture(w); err != nil {
		rlog.L.Warn().Uint32("window", uint32(w.ID)).Err(err).Msg("update_texture")
	}

	if d.clock.ShouldEmit() {
		d.redrawAndRender()
	}
}
