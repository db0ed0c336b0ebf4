// Package xserver is the Startup/Environment component of spec.md §6:
// it establishes the server connection, verifies required extensions,
// claims compositor-selection ownership, redirects subwindows, and
// resolves the overlay drawable and root background pixmap the
// Backend needs at Init time.
package xserver

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/composite"
	"github.com/BurntSushi/xgb/damage"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	"golang.org/x/xerrors"

	"github.com/rottencandy/rcomp/internal/rlog"
)

// rootPixmapAtomNames are the well-known property names checked, in
// order, to locate the root background pixmap (spec.md §6 "Root
// pixmap atoms").
var rootPixmapAtomNames = [3]string{"ESETROOT_PMAP_ID", "_XROOTPMAP_ID", "_XSETROOT_ID"}

const opacityAtomName = "_NET_WM_WINDOW_OPACITY"

// Screen holds everything Init resolves for one X screen: the root
// window, its overlay drawable, the depth-24/32 visuals the Backend
// needs for named-pixmap creation, and the atom set the dispatcher
// watches.
type Screen struct {
	Root            xproto.Window
	Overlay         xproto.Window // composite overlay window, used as the GLX drawable
	Width, Height   uint16
	Visual24        xproto.Visualid
	Visual32        xproto.Visualid
	RootPixmapAtoms [3]xproto.Atom
	OpacityAtom     xproto.Atom
}

// Environment is the result of Init: a live connection plus the
// resolved per-screen state (spec.md §6 only requires screen 0 to be
// composited in the single-screen-assumption scope of spec.md's
// Non-goals around multi-screen support, but selection ownership, the
// root event mask and subwindow redirection are, per spec, set up for
// every screen; extension checks run once per connection).
type Environment struct {
	Conn    *xgb.Conn
	Screens []Screen
}

// requiredExtensions is spec.md §6's list, checked in this order so
// the first missing one is reported deterministically.
var requiredExtensions = []string{"Composite", "RandR", "SHAPE", "DAMAGE"}

// Init performs the full startup contract of spec.md §6. Any failure
// here is startup-fatal: callers log it via rlog and exit(1) (spec.md
// §7 "Startup-fatal").
func Init(displayName string) (*Environment, error) {
	xc, err := xgb.NewConnDisplay(displayName)
	if err != nil {
		return nil, xerrors.Errorf("xserver: connect: %w", err)
	}

	if err := verifyExtensions(xc); err != nil {
		xc.Close()
		return nil, err
	}
	if err := composite.Init(xc); err != nil {
		xc.Close()
		return nil, xerrors.Errorf("xserver: composite.Init: %w", err)
	}
	if err := damage.Init(xc); err != nil {
		xc.Close()
		return nil, xerrors.Errorf("xserver: damage.Init: %w", err)
	}
	if err := shape.Init(xc); err != nil {
		xc.Close()
		return nil, xerrors.Errorf("xserver: shape.Init: %w", err)
	}
	if err := randr.Init(xc); err != nil {
		xc.Close()
		return nil, xerrors.Errorf("xserver: randr.Init: %w", err)
	}

	env := &Environment{Conn: xc}
	for s := range xc.Setup.Roots {
		screen, err := initScreen(xc, s)
		if err != nil {
			xc.Close()
			return nil, err
		}
		env.Screens = append(env.Screens, *screen)
	}
	return env, nil
}

// verifyExtensions implements spec.md §6 "Required server extensions":
// on the first missing extension, return an error naming it so main
// can print a one-line stderr message and exit 1.
func verifyExtensions(xc *xgb.Conn) error {
	for _, name := range requiredExtensions {
		reply, err := xproto.QueryExtension(xc, uint16(len(name)), name).Reply()
		if err != nil {
			return xerrors.Errorf("xserver: QueryExtension(%s): %w", name, err)
		}
		if !reply.Present {
			return xerrors.Errorf("xserver: required extension not present: %s", name)
		}
	}
	return nil
}

func initScreen(xc *xgb.Conn, idx int) (*Screen, error) {
	root := xc.Setup.Roots[idx].Root
	screen := &Screen{
		Root:   root,
		Width:  xc.Setup.Roots[idx].WidthInPixels,
		Height: xc.Setup.Roots[idx].HeightInPixels,
	}

	if err := claimSelectionOwnership(xc, idx, root); err != nil {
		return nil, err
	}

	if err := xproto.ChangeWindowAttributesChecked(xc, root, xproto.CwEventMask, []uint32{
		uint32(xproto.EventMaskSubstructureNotify | xproto.EventMaskExposure |
			xproto.EventMaskStructureNotify | xproto.EventMaskPropertyChange),
	}).Check(); err != nil {
		return nil, xerrors.Errorf("xserver: set root event mask: %w", err)
	}

	overlay, err := redirectAndAcquireOverlay(xc, root)
	if err != nil {
		return nil, err
	}
	screen.Overlay = overlay

	v24, v32, err := findVisuals(xc, idx)
	if err != nil {
		return nil, err
	}
	screen.Visual24, screen.Visual32 = v24, v32

	atoms, err := internAtoms(xc)
	if err != nil {
		return nil, err
	}
	screen.RootPixmapAtoms = atoms.rootPixmap
	screen.OpacityAtom = atoms.opacity

	return screen, nil
}

// claimSelectionOwnership implements spec.md §6 "Compositor selection
// ownership": intern `_NET_WM_CM_S<s>`, create a hidden 1x1
// input-output window, and claim the selection. If already owned by a
// live window, that is startup-fatal.
func claimSelectionOwnership(xc *xgb.Conn, screenIdx int, root xproto.Window) error {
	name := cmSelectionName(screenIdx)
	atomReply, err := xproto.InternAtom(xc, false, uint16(len(name)), name).Reply()
	if err != nil {
		return xerrors.Errorf("xserver: InternAtom(%s): %w", name, err)
	}

	owner, err := xproto.GetSelectionOwner(xc, atomReply.Atom).Reply()
	if err != nil {
		return xerrors.Errorf("xserver: GetSelectionOwner: %w", err)
	}
	if owner.Owner != 0 {
		return xerrors.New("xserver: another compositor is already running")
	}

	win, err := xproto.NewWindowId(xc)
	if err != nil {
		return xerrors.Errorf("xserver: NewWindowId: %w", err)
	}
	if err := xproto.CreateWindowChecked(xc, 0, win, root,
		-1, -1, 1, 1, 0, xproto.WindowClassInputOutput, 0, 0, nil).Check(); err != nil {
		return xerrors.Errorf("xserver: create selection window: %w", err)
	}

	if err := xproto.SetSelectionOwnerChecked(xc, win, atomReply.Atom, xproto.TimeCurrentTime).Check(); err != nil {
		return xerrors.Errorf("xserver: SetSelectionOwner: %w", err)
	}
	return nil
}

func cmSelectionName(screenIdx int) string {
	digits := "0123456789"
	if screenIdx < 10 {
		return "_NET_WM_CM_S" + string(digits[screenIdx])
	}
	// spec.md doesn't bound the screen count; fall back to a decimal
	// expansion for the (practically unreachable) >=10 screen case.
	var buf []byte
	n := screenIdx
	for n > 0 {
		buf = append([]byte{digits[n%10]}, buf...)
		n /= 10
	}
	return "_NET_WM_CM_S" + string(buf)
}

// redirectAndAcquireOverlay implements spec.md §6 "Subwindow
// redirection": grab the server, redirect subwindows in MANUAL mode,
// ungrab, query the composite overlay window, then make the overlay
// pass through input by setting an empty input shape region.
func redirectAndAcquireOverlay(xc *xgb.Conn, root xproto.Window) (xproto.Window, error) {
	if err := xproto.GrabServerChecked(xc).Check(); err != nil {
		return 0, xerrors.Errorf("xserver: GrabServer: %w", err)
	}
	redirErr := composite.RedirectSubwindowsChecked(xc, root, composite.RedirectManual).Check()
	if err := xproto.UngrabServerChecked(xc).Check(); err != nil {
		rlog.L.Warn().Err(err).Msg("xserver: UngrabServer failed")
	}
	if redirErr != nil {
		return 0, xerrors.Errorf("xserver: redirect_subwindows: %w", redirErr)
	}

	overlayReply, err := composite.GetOverlayWindow(xc, root).Reply()
	if err != nil {
		return 0, xerrors.Errorf("xserver: GetOverlayWindow: %w", err)
	}
	overlay := overlayReply.OverlayWin

	if err := shape.RectanglesChecked(xc, shape.SoSet, shape.SkInput, 0, overlay, 0, 0, nil).Check(); err != nil {
		return 0, xerrors.Errorf("xserver: set empty input shape on overlay: %w", err)
	}
	return overlay, nil
}

type screenAtoms struct {
	rootPixmap [3]xproto.Atom
	opacity    xproto.Atom
}

func internAtoms(xc *xgb.Conn) (screenAtoms, error) {
	var out screenAtoms
	for i, name := range rootPixmapAtomNames {
		reply, err := xproto.InternAtom(xc, false, uint16(len(name)), name).Reply()
		if err != nil {
			return out, xerrors.Errorf("xserver: InternAtom(%s): %w", name, err)
		}
		out.rootPixmap[i] = reply.Atom
	}
	reply, err := xproto.InternAtom(xc, false, uint16(len(opacityAtomName)), opacityAtomName).Reply()
	if err != nil {
		return out, xerrors.Errorf("xserver: InternAtom(%s): %w", opacityAtomName, err)
	}
	out.opacity = reply.Atom
	return out, nil
}

// RootPixmap implements spec.md §6 "Root pixmap atoms": query the root
// window for the first of the three well-known atoms that returns type
// PIXMAP, format 32, length 1.
func RootPixmap(xc *xgb.Conn, root xproto.Window, atoms [3]xproto.Atom) xproto.Pixmap {
	for _, atom := range atoms {
		if atom == 0 {
			continue
		}
		reply, err := xproto.GetProperty(xc, false, root, atom, xproto.AtomPixmap, 0, 1).Reply()
		if err != nil || reply == nil || reply.Format != 32 || len(reply.Value) < 4 {
			continue
		}
		v := uint32(reply.Value[0]) | uint32(reply.Value[1])<<8 |
			uint32(reply.Value[2])<<16 | uint32(reply.Value[3])<<24
		return xproto.Pixmap(v)
	}
	return 0
}
