// Package wm is the authoritative local mirror of the X server's
// top-level window tree (spec.md §4.1). It holds one Window record per
// tracked top-level child of the root, in bottom-to-top stacking order.
package wm

import (
	"github.com/BurntSushi/xgb/damage"
	"github.com/BurntSushi/xgb/xproto"
)

// Context is the per-window GPU-side triple described in spec.md §3:
// the GL pixmap binding, the texture sampled while compositing, and
// the vertex buffer holding the window's quad. It is deliberately a
// plain struct of opaque handles — internal/compositor owns their
// creation and release; wm only carries them alongside the window
// they belong to.
type Context struct {
	GLPixmap uintptr // GLXPixmap handle, 0 when unbound
	Texture  uint32  // GL texture name, 0 when unbound
	VBO      uint32  // GL buffer name, 0 when unbound
}

// Valid reports whether all three GPU handles are live.
func (c Context) Valid() bool {
	return c.GLPixmap != 0 && c.Texture != 0 && c.VBO != 0
}

// Window is one record in the Window Model (spec.md §3).
type Window struct {
	ID xproto.Window

	X, Y                 int16
	Width, Height        uint16
	BorderWidth          uint16
	Mapped               bool
	OverrideRedirect     bool
	Alpha                bool
	Opacity              float32 // §SPEC_FULL.4: _NET_WM_WINDOW_OPACITY, default 1.0 (opaque)

	Pixmap xproto.Pixmap
	Damage damage.Damage

	Context Context
}

// NewUnmapped constructs a bare record with no GPU-side state. Callers
// allocate Pixmap/Damage/Context lazily per the lifecycle in spec.md §3.
func NewUnmapped(id xproto.Window) *Window {
	return &Window{ID: id, Opacity: 1.0}
}

// GeometryChanged reports whether the fields that affect the named
// window pixmap's validity differ from event-reported values, per the
// CONFIGURE_NOTIFY handler contract in spec.md §4.3 ("If mapped and
// any of width, height, override_redirect, or border_width differ
// from the event, the backing pixmap is considered invalidated").
func (w *Window) GeometryChanged(width, height, borderWidth uint16, overrideRedirect bool) bool {
	return w.Width != width || w.Height != height ||
		w.BorderWidth != borderWidth || w.OverrideRedirect != overrideRedirect
}

// ApplyConfigure overwrites geometry, border width and override-redirect
// from a ConfigureNotify event payload (spec.md §4.1
// update_from_configure). It does not touch GPU state; callers decide
// whether the pixmap needs refreshing first by calling GeometryChanged.
func (w *Window) ApplyConfigure(x, y int16, width, height, borderWidth uint16, overrideRedirect bool) {
	w.X, w.Y = x, y
	w.Width, w.Height = width, height
	w.BorderWidth = borderWidth
	w.OverrideRedirect = overrideRedirect
}
