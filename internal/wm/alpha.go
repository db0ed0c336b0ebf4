package wm

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/render"
	"github.com/BurntSushi/xgb/xproto"
	"golang.org/x/xerrors"
)

// AlphaVisuals answers whether a given visual's picture format carries
// a nonzero alpha mask (spec.md §4.1 create(id): "alpha is derived
// from the window's colormap by matching it against the server's
// picture formats and checking the direct-format alpha mask"). It is
// built once at startup from render.QueryPictFormats, the same RENDER
// extension query the teacher's x11driver uses to find the depth-24
// and depth-32 Pictformats (shiny/driver/x11driver screenImpl.initPictformats).
type AlphaVisuals struct {
	hasAlpha map[xproto.Visualid]bool
}

// NewAlphaVisuals queries the server's supported picture formats and
// indexes, per visual, whether its associated direct format has a
// nonzero alpha mask.
func NewAlphaVisuals(c *xgb.Conn) (*AlphaVisuals, error) {
	reply, err := render.QueryPictFormats(c).Reply()
	if err != nil {
		return nil, xerrors.Errorf("wm: render.QueryPictFormats: %w", err)
	}

	formatAlpha := map[render.Pictformat]bool{}
	for _, f := range reply.Formats {
		if f.Type == render.PictTypeDirect {
			formatAlpha[f.Id] = f.Direct.AlphaMask != 0
		}
	}

	av := &AlphaVisuals{hasAlpha: map[xproto.Visualid]bool{}}
	for _, screen := range reply.Screens {
		for _, depth := range screen.Depths {
			for _, v := range depth.Visuals {
				av.hasAlpha[v.Visual] = formatAlpha[v.Format]
			}
		}
	}
	return av, nil
}

// HasAlpha reports whether visual's format carries a nonzero alpha
// mask. Unknown visuals report false (treated as opaque).
func (a *AlphaVisuals) HasAlpha(visual xproto.Visualid) bool {
	return a.hasAlpha[visual]
}
