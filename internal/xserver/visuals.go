package xserver

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// findVisuals locates the screen's depth-24 (RGB) and depth-32 (ARGB)
// TrueColor visuals (spec.md §4.1 create(id): "alpha is derived from
// the window's visual"; §6 GLX texture-from-pixmap attribute set picks
// the matching visual per window). Grounded in the
// screenImpl.initPictformats/findVisual pattern of walking
// AllowedDepths for the first TrueColor visual at each depth.
func findVisuals(xc *xgb.Conn, screenIdx int) (visual24, visual32 xproto.Visualid, err error) {
	screen := xc.Setup.Roots[screenIdx]

	for _, depth := range screen.AllowedDepths {
		for _, v := range depth.Visuals {
			if v.Class != xproto.VisualClassTrueColor {
				continue
			}
			switch depth.Depth {
			case 24:
				if visual24 == 0 {
					visual24 = v.VisualId
				}
			case 32:
				if visual32 == 0 {
					visual32 = v.VisualId
				}
			}
		}
	}
	if visual24 == 0 {
		visual24 = screen.RootVisual
	}
	if visual32 == 0 {
		// No 32-bit TrueColor visual advertised: alpha windows fall
		// back to the depth-24 visual and are treated as opaque by
		// AlphaVisuals regardless (spec.md §4.1 "alpha is derived from
		// the window's visual").
		visual32 = visual24
	}

	return visual24, visual32, nil
}
