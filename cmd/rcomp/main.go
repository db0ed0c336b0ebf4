// Command rcomp is the compositing engine's entry point: it wires
// Startup/Environment, the Window Model, the Backend, and the Event
// Dispatcher together and runs the blocking event loop (spec.md §6).
package main

import (
	"os"

	"github.com/BurntSushi/xgb"
	"golang.org/x/xerrors"

	"github.com/rottencandy/rcomp/internal/compositor"
	"github.com/rottencandy/rcomp/internal/events"
	"github.com/rottencandy/rcomp/internal/rlog"
	"github.com/rottencandy/rcomp/internal/wm"
	"github.com/rottencandy/rcomp/internal/xserver"
)

// screenIndex is the single screen the core composites, per spec.md
// §1's Non-goal on multi-screen support ("the core targets a single
// screen's overlay").
const screenIndex = 0

func main() {
	rlog.L = rlog.New(os.Stderr)

	env, err := xserver.Init("")
	if err != nil {
		rlog.Fatalf("startup failed", err)
	}
	if len(env.Screens) <= screenIndex {
		rlog.Fatalf("startup failed", xerrors.New("no screens reported by server"))
	}
	screen := env.Screens[screenIndex]

	av, err := wm.NewAlphaVisuals(env.Conn)
	if err != nil {
		rlog.Fatalf("startup failed", err)
	}

	list, err := wm.FetchInitialSet(env.Conn, screen.Root, av)
	if err != nil {
		rlog.Fatalf("startup failed", err)
	}

	rootPixmap := xserver.RootPixmap(env.Conn, screen.Root, screen.RootPixmapAtoms)

	backend, err := compositor.Init("", screenIndex, compositor.Config{
		Conn:            env.Conn,
		OverlayDrawable: uintptr(screen.Overlay),
		ScreenW:         screen.Width,
		ScreenH:         screen.Height,
		Visual32:        screen.Visual32,
		Visual24:        screen.Visual24,
		RootPixmap:      rootPixmap,
		RootVisual:      screen.Visual24,
	})
	if err != nil {
		rlog.Fatalf("startup failed", err)
	}
	defer backend.Release()

	for _, w := range list.Mapped() {
		backend.InitWindow(w)
		if err := backend.UpdatePixmap(w); err != nil {
			rlog.L.Warn().Uint32("window", uint32(w.ID)).Err(err).Msg("update_pixmap")
			continue
		}
		if err := backend.UpdateTexture(w); err != nil {
			rlog.L.Warn().Uint32("window", uint32(w.ID)).Err(err).Msg("update_texture")
		}
	}

	atoms := events.RootAtoms{
		RootPixmap: screen.RootPixmapAtoms,
		Opacity:    screen.OpacityAtom,
	}
	clock := events.NewFrameClock(events.DefaultRefreshInterval)
	dispatcher := events.NewDispatcher(env.Conn, list, backend, av, screen.Root, screen.Visual24, atoms, clock)

	for _, w := range list.Mapped() {
		backend.DrawWindow(w)
	}
	backend.Render()

	runEventLoop(env.Conn, dispatcher)
}

// runEventLoop blocks on the server's event stream and dispatches each
// event in turn (spec.md §5: single goroutine, blocking WaitForEvent,
// strict arrival-order processing). An X protocol error is logged and
// the loop goes on. It returns, and the process exits with code 0, on
// a clean connection shutdown, which xgb reports as neither an event
// nor an error (spec.md §6 "Process surface").
func runEventLoop(xc *xgb.Conn, d *events.Dispatcher) {
	for {
		ev, err := xc.WaitForEvent()
		if err != nil {
			rlog.L.Warn().Err(err).Msg("x error")
			continue
		}
		if ev == nil {
			rlog.L.Info().Msg("connection closed")
			return
		}
		d.Dispatch(ev)
	}
}

