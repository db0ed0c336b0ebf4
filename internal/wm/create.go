package wm

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"golang.org/x/xerrors"

	"github.com/rottencandy/rcomp/internal/rlog"
)

// FetchInitialSet queries root's children and constructs a record for
// each, in bottom-to-top stacking order (spec.md §4.1 "fetch initial
// set"). QueryTree already returns children in that order per the X11
// protocol, so no extra sort is needed. Windows whose geometry or
// attribute query fails are logged and skipped, per spec.md §7
// "per-window soft" errors.
func FetchInitialSet(c *xgb.Conn, root xproto.Window, av *AlphaVisuals) (*List, error) {
	tree, err := xproto.QueryTree(c, root).Reply()
	if err != nil {
		return nil, xerrors.Errorf("wm: QueryTree: %w", err)
	}

	list := NewList()
	for _, id := range tree.Children {
		w, err := Create(c, id, av)
		if err != nil {
			rlog.L.Warn().Uint32("window", uint32(id)).Err(err).Msg("fetch initial set: skipping window")
			continue
		}
		list.Append(w)
	}
	return list, nil
}

// Create produces a new record by querying geometry and attributes
// (spec.md §4.1 "create(id)"). alpha is derived from the window's
// visual's picture format (see AlphaVisuals); pixmap is allocated by
// the caller, not here — Create only builds the local record.
func Create(c *xgb.Conn, id xproto.Window, av *AlphaVisuals) (*Window, error) {
	geom, err := xproto.GetGeometry(c, xproto.Drawable(id)).Reply()
	if err != nil {
		return nil, xerrors.Errorf("wm: GetGeometry(%d): %w", id, err)
	}
	attrs, err := xproto.GetWindowAttributes(c, id).Reply()
	if err != nil {
		return nil, xerrors.Errorf("wm: GetWindowAttributes(%d): %w", id, err)
	}

	w := NewUnmapped(id)
	w.X, w.Y = geom.X, geom.Y
	w.Width, w.Height = geom.Width, geom.Height
	w.BorderWidth = geom.BorderWidth
	w.Mapped = attrs.MapState == xproto.MapStateViewable
	w.OverrideRedirect = attrs.OverrideRedirect
	if av != nil {
		w.Alpha = av.HasAlpha(attrs.Visual)
	}
	return w, nil
}
