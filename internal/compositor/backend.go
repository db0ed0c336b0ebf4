// Package compositor is the Backend (GL Compositor) component of
// spec.md §4.2: it owns the GL context bound to the overlay drawable
// and exposes the operations the Event Dispatcher uses to keep
// per-window render contexts coherent and to emit frames.
package compositor

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/composite"
	"github.com/BurntSushi/xgb/damage"
	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	gl "github.com/go-gl/gl/v3.3-core/gl"
	"golang.org/x/xerrors"

	"github.com/rottencandy/rcomp/internal/glx"
	"github.com/rottencandy/rcomp/internal/rlog"
	"github.com/rottencandy/rcomp/internal/wm"
)

// Backend owns the GL context bound to the overlay drawable (spec.md
// §4.2).
type Backend struct {
	xc  *xgb.Conn
	gl  *glx.Context
	drw uintptr // overlay drawable, the GLX drawable made current

	screenW, screenH uint16
	visual32         xproto.Visualid // depth-32 (ARGB) visual, for alpha windows
	visual24         xproto.Visualid // depth-24 (RGB) visual

	program      *glx.Program
	vao          *glx.VertexArray
	ebo          *glx.Buffer
	screenDimLoc int32
	opacityLoc   int32
	texLoc       int32

	rootTexture   *glx.Texture
	rootVBO       *glx.Buffer
	rootGLXPixmap uintptr
}

// Config carries the environment-provided values the Backend needs at
// Init time (spec.md §6 — everything here is produced by
// internal/xserver, which is out of the core's scope per spec.md §1).
type Config struct {
	Conn          *xgb.Conn
	OverlayDrawable uintptr
	ScreenW, ScreenH uint16
	Visual32      xproto.Visualid
	Visual24      xproto.Visualid
	RootPixmap    xproto.Pixmap
	RootVisual    xproto.Visualid
}

// Init performs the initialization contract of spec.md §4.2: opens the
// GLX context on the overlay drawable, enables premultiplied-alpha
// blending, compiles the window program, builds the shared VAO/EBO,
// and builds the initial root texture.
func Init(displayName string, screen int, cfg Config) (*Backend, error) {
	gctx, err := glx.Open(displayName, screen, cfg.OverlayDrawable)
	if err != nil {
		return nil, xerrors.Errorf("compositor: glx.Open: %w", err)
	}
	if err := gl.Init(); err != nil {
		gctx.Release()
		return nil, xerrors.Errorf("compositor: gl.Init: %w", err)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	program, err := glx.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		gctx.Release()
		return nil, xerrors.Errorf("compositor: CompileProgram: %w", err)
	}

	b := &Backend{
		xc:       cfg.Conn,
		gl:       gctx,
		drw:      cfg.OverlayDrawable,
		screenW:  cfg.ScreenW,
		screenH:  cfg.ScreenH,
		visual32: cfg.Visual32,
		visual24: cfg.Visual24,
		program:  program,
	}

	program.Use()
	b.screenDimLoc = program.UniformLocation("screenDim")
	b.opacityLoc = program.UniformLocation("opacity")
	b.texLoc = program.UniformLocation("tex")
	gl.Uniform2f(b.screenDimLoc, float32(cfg.ScreenW), float32(cfg.ScreenH))

	b.vao = glx.NewVertexArray()
	b.vao.Bind()
	b.ebo = glx.NewBuffer(gl.ELEMENT_ARRAY_BUFFER)
	b.ebo.DataU32(quadIndices[:], gl.STATIC_DRAW)
	configureAttribs()

	if err := b.UpdateRootTexture(cfg.RootPixmap, cfg.RootVisual); err != nil {
		// A missing root pixmap is not startup-fatal (spec.md §6: "the
		// root texture is left undefined"); log and continue with an
		// unset root texture.
		rlog.L.Warn().Err(err).Msg("initial root texture unavailable")
	}

	return b, nil
}

// configureAttribs enables vertex attribute 0 (position, two floats)
// and attribute 1 (texture coordinate, two floats) on whichever buffer
// is bound to gl.ARRAY_BUFFER at call time (spec.md §4.2).
func configureAttribs() {
	const stride = 4 * 4 // 4 floats per vertex
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)
}

// InitWindow creates w's vertex buffer and loads the quad for its
// current geometry (spec.md §4.2 init_window). Idempotent: calling it
// again for a window that already has a VBO just re-uploads the quad.
func (b *Backend) InitWindow(w *wm.Window) {
	if w.Context.VBO == 0 {
		vbo := glx.NewBuffer(gl.ARRAY_BUFFER)
		w.Context.VBO = vbo.Handle()
	}
	b.UpdatePos(w)
}

// UpdatePos recomputes the quad vertices from w's current geometry and
// uploads them into w.Context.VBO with stream-draw semantics (spec.md
// §4.2 update_pos).
func (b *Backend) UpdatePos(w *wm.Window) {
	verts := quadVertices(w.X, w.Y, w.Width, w.Height, w.BorderWidth)
	buf := glx.WrapBuffer(w.Context.VBO, gl.ARRAY_BUFFER)
	buf.Data(verts[:], gl.STREAM_DRAW)
}

// UpdatePixmap allocates a fresh named window pixmap and damage
// tracker for w, and rebinds its GLX pixmap (spec.md §4.2
// update_pixmap). Failure is returned for the caller to log, and w
// keeps its previous, possibly stale, pixmap handle (spec.md §5
// "Failure interaction with resources"); a failure of the final GLX
// pixmap creation leaves w with no GL pixmap binding, since the old
// one has already been released by then.
func (b *Backend) UpdatePixmap(w *wm.Window) error {
	xm, err := xproto.NewPixmapId(b.xc)
	if err != nil {
		return xerrors.Errorf("update_pixmap: NewPixmapId: %w", err)
	}
	if err := composite.NameWindowPixmapChecked(b.xc, w.ID, xm).Check(); err != nil {
		return xerrors.Errorf("update_pixmap: NameWindowPixmap: %w", err)
	}

	if w.Damage != 0 {
		damage.Destroy(b.xc, w.Damage)
	}
	dm, err := damage.NewDamageId(b.xc)
	if err != nil {
		return xerrors.Errorf("update_pixmap: NewDamageId: %w", err)
	}
	if err := damage.CreateChecked(b.xc, dm, xproto.Drawable(w.ID), damage.ReportLevelNonEmpty).Check(); err != nil {
		return xerrors.Errorf("update_pixmap: damage.Create: %w", err)
	}
	shape.SelectInput(b.xc, w.ID, true)

	if w.Context.GLPixmap != 0 {
		b.gl.ReleaseTexImage(w.Context.GLPixmap)
		b.gl.DestroyGLXPixmap(w.Context.GLPixmap)
		w.Context.GLPixmap = 0
	}
	visual := b.visual24
	if w.Alpha {
		visual = b.visual32
	}
	glxPixmap, err := b.gl.CreateGLXPixmap(uintptr(xm), uintptr(visual))
	if err != nil {
		return xerrors.Errorf("update_pixmap: CreateGLXPixmap: %w", err)
	}

	w.Pixmap = xm
	w.Damage = dm
	w.Context.GLPixmap = glxPixmap
	return nil
}

// UpdateTexture binds a freshly created texture and binds the GL
// pixmap's front-left buffer into it, with nearest-neighbor filtering
// (spec.md §4.2 update_texture).
func (b *Backend) UpdateTexture(w *wm.Window) error {
	if w.Context.GLPixmap == 0 {
		return fmt.Errorf("update_texture: no GL pixmap bound for window %d", w.ID)
	}
	if w.Context.Texture != 0 {
		old := w.Context.Texture
		gl.DeleteTextures(1, &old)
		w.Context.Texture = 0
	}
	tex := glx.NewTexture()
	tex.Bind()
	b.gl.BindTexImage(w.Context.GLPixmap)
	w.Context.Texture = tex.Handle()
	return nil
}

// UpdateRootTexture rebuilds the root texture from the root window's
// current backing pixmap (spec.md §3 invariant: "The root window's
// texture is refreshed only when the root pixmap atom changes";
// SPEC_FULL.md §4 wires this into PropertyNotify handling).
func (b *Backend) UpdateRootTexture(pixmap xproto.Pixmap, visual xproto.Visualid) error {
	if pixmap == 0 {
		return fmt.Errorf("update_root_texture: no root pixmap")
	}
	if b.rootGLXPixmap != 0 {
		b.gl.ReleaseTexImage(b.rootGLXPixmap)
		b.gl.DestroyGLXPixmap(b.rootGLXPixmap)
	}
	glxPixmap, err := b.gl.CreateGLXPixmap(uintptr(pixmap), uintptr(visual))
	if err != nil {
		return xerrors.Errorf("update_root_texture: CreateGLXPixmap: %w", err)
	}
	b.rootGLXPixmap = glxPixmap

	if b.rootTexture == nil {
		b.rootTexture = glx.NewTexture()
	}
	b.rootTexture.Bind()
	b.gl.BindTexImage(glxPixmap)

	verts := quadVertices(0, 0, b.screenW, b.screenH, 0)
	if b.rootVBO == nil {
		b.rootVBO = glx.NewBuffer(gl.ARRAY_BUFFER)
	}
	b.rootVBO.Data(verts[:], gl.STATIC_DRAW)
	return nil
}

// DrawWindow binds w's VBO and texture, sets the vertex-attribute
// pointers, and draws the quad's six indices as two triangles (spec.md
// §4.2 draw_window). It does not swap buffers.
func (b *Backend) DrawWindow(w *wm.Window) {
	b.program.Use()
	b.vao.Bind()
	buf := glx.WrapBuffer(w.Context.VBO, gl.ARRAY_BUFFER)
	buf.Bind()
	configureAttribs()

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.Context.Texture)
	gl.Uniform1i(b.texLoc, 0)
	gl.Uniform1f(b.opacityLoc, w.Opacity)

	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// Render swaps buffers on the overlay drawable, clears the color
// buffer, then draws the root quad + root texture as the background
// (spec.md §4.2 render()). The dispatcher must call DrawWindow on
// every mapped window, in stacking order, before calling Render.
func (b *Backend) Render() {
	b.gl.SwapBuffers(b.drw)

	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if b.rootTexture != nil && b.rootVBO != nil {
		b.program.Use()
		b.vao.Bind()
		b.rootVBO.Bind()
		configureAttribs()
		gl.ActiveTexture(gl.TEXTURE0)
		b.rootTexture.Bind()
		gl.Uniform1i(b.texLoc, 0)
		gl.Uniform1f(b.opacityLoc, 1.0)
		gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
	}

	for _, e := range glx.DrainErrors() {
		rlog.L.Warn().Uint32("gl_error", e).Msg("render")
	}
}

// ReleaseWindow releases every GPU/server-side resource owned by w:
// the GLX pixmap binding, GL texture, VBO, damage tracker and named
// pixmap (spec.md §3 "Lifecycle": "all handles are released on
// DestroyNotify or reparent-away-from-root"). Safe to call more than
// once; subsequent calls are no-ops (spec.md §8: "GPU handles
// released exactly once").
func (b *Backend) ReleaseWindow(w *wm.Window) {
	if w.Context.GLPixmap != 0 {
		b.gl.ReleaseTexImage(w.Context.GLPixmap)
		b.gl.DestroyGLXPixmap(w.Context.GLPixmap)
		w.Context.GLPixmap = 0
	}
	if w.Context.Texture != 0 {
		t := w.Context.Texture
		gl.DeleteTextures(1, &t)
		w.Context.Texture = 0
	}
	if w.Context.VBO != 0 {
		v := w.Context.VBO
		gl.DeleteBuffers(1, &v)
		w.Context.VBO = 0
	}
	if w.Damage != 0 {
		damage.Destroy(b.xc, w.Damage)
		w.Damage = 0
	}
	if w.Pixmap != 0 {
		xproto.FreePixmap(b.xc, w.Pixmap)
		w.Pixmap = 0
	}
}

// SubtractDamage tells the server to resume notifying future damage
// for w (spec.md §4.3 DAMAGE_NOTIFY: "subtract the reported damage
// region so the server resumes notifying future damage").
func (b *Backend) SubtractDamage(w *wm.Window) {
	if w.Damage == 0 {
		return
	}
	damage.Subtract(b.xc, w.Damage, 0, 0)
}

// Release destroys the GL context and flushes the connection (spec.md
// §4.2 "Drop contract").
func (b *Backend) Release() {
	b.vao.Release()
	b.ebo.Release()
	b.program.Release()
	b.rootTexture.Release()
	b.rootVBO.Release()
	if b.rootGLXPixmap != 0 {
		b.gl.ReleaseTexImage(b.rootGLXPixmap)
		b.gl.DestroyGLXPixmap(b.rootGLXPixmap)
	}
	b.gl.Release()
	b.xc.Sync()
}
