//go:build linux

// GLX context creation. This is the one place rcomp reaches for cgo:
// GLX rides the X11 wire protocol but XGB, a pure-Go reimplementation
// of the client library, does not speak it, so context creation,
// framebuffer-config selection and buffer swaps go through libGL/libX11
// directly. The shape of this file — a small C preamble plus thin Go
// wrappers — mirrors the teacher's own gldriver/x11.go (which does the
// equivalent for EGL) and gldriver/cocoa.go (Objective-C instead of
// GLX); only the target API differs.
package glx

/*
#cgo LDFLAGS: -lGL -lX11

#include <X11/Xlib.h>
#include <GL/glx.h>
#include <stdlib.h>

// glXCreateContextAttribsARB is not in the static GLX headers on most
// distros; resolve it through glXGetProcAddress like every other GLX
// extension function.
typedef GLXContext (*glXCreateContextAttribsARBProc)(Display*, GLXFBConfig, GLXContext, Bool, const int*);

static GLXContext rcomp_create_context(Display *dpy, GLXFBConfig cfg, const int *attribs) {
	glXCreateContextAttribsARBProc create =
		(glXCreateContextAttribsARBProc)glXGetProcAddressARB((const GLubyte*)"glXCreateContextAttribsARB");
	if (!create) {
		return NULL;
	}
	return create(dpy, cfg, NULL, True, attribs);
}

static int rcomp_has_extension(Display *dpy, int screen, const char *name) {
	const char *exts = glXQueryExtensionsString(dpy, screen);
	if (!exts) {
		return 0;
	}
	return strstr(exts, name) != NULL;
}

// Transient X error handler, installed only for the duration of context
// creation so a server abort (e.g. BadMatch from an unsupported FB
// config/context combination) surfaces as a soft failure instead of
// killing the process, per spec.md §4.2/§9 "Extension error handler
// scope". Kept entirely on the C side since Xlib's handler type
// (int(*)(Display*, XErrorEvent*)) isn't safely nameable as a cgo
// //export target, and install/restore must bracket exactly the
// rcomp_create_context call.
static int rcomp_error_flag = 0;
static int (*rcomp_prev_handler)(Display*, XErrorEvent*) = NULL;

static int rcomp_error_handler(Display *dpy, XErrorEvent *ev) {
	rcomp_error_flag = 1;
	return 0;
}

static void rcomp_install_error_handler() {
	rcomp_error_flag = 0;
	rcomp_prev_handler = XSetErrorHandler(rcomp_error_handler);
}

static void rcomp_restore_error_handler() {
	XSetErrorHandler(rcomp_prev_handler);
	rcomp_prev_handler = NULL;
}

static int rcomp_error_occurred() {
	return rcomp_error_flag;
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Context owns the GLX context bound to a drawable for the lifetime of
// the Backend (spec.md §5 "the GL context is current on the overlay
// drawable for the entire lifetime of the Backend").
type Context struct {
	dpy    *C.Display
	screen C.int
	ctx    C.GLXContext
	cfg    C.GLXFBConfig
}

// GLX attribute constants not worth round-tripping through cgo
// constant folding at every call site.
const (
	glxContextMajorVersionARB = 0x2091
	glxContextMinorVersionARB = 0x2092
	glxContextProfileMaskARB  = 0x9126
	glxContextCoreProfileBit  = 0x00000001
)

// Open connects to the X display via Xlib (distinct from the xgb
// protocol connection rcomp also holds — spec.md §9 "Dual screen
// indices": the display-server "screen number" used by GLX calls is
// not the same integer namespace as the protocol-level roots count),
// verifies GLX >= 1.3 and the two required extensions, chooses a
// framebuffer config, creates a direct GL 3.3 core context via
// glXCreateContextAttribsARB, and makes it current on drawable.
func Open(displayName string, screen int, drawable uintptr) (*Context, error) {
	var cname *C.char
	if displayName != "" {
		cname = C.CString(displayName)
		defer C.free(unsafe.Pointer(cname))
	}
	dpy := C.XOpenDisplay(cname)
	if dpy == nil {
		return nil, fmt.Errorf("glx: XOpenDisplay failed")
	}

	var major, minor C.int
	if C.glXQueryVersion(dpy, &major, &minor) == 0 || major < 1 || (major == 1 && minor < 3) {
		C.XCloseDisplay(dpy)
		return nil, fmt.Errorf("glx: GLX >= 1.3 required")
	}
	if C.rcomp_has_extension(dpy, C.int(screen), C.CString("GLX_ARB_create_context")) == 0 {
		C.XCloseDisplay(dpy)
		return nil, fmt.Errorf("glx: missing GLX_ARB_create_context")
	}
	if C.rcomp_has_extension(dpy, C.int(screen), C.CString("GLX_EXT_texture_from_pixmap")) == 0 {
		C.XCloseDisplay(dpy)
		return nil, fmt.Errorf("glx: missing GLX_EXT_texture_from_pixmap")
	}

	cfg, err := chooseFBConfig(dpy, C.int(screen))
	if err != nil {
		C.XCloseDisplay(dpy)
		return nil, err
	}

	attribs := [...]C.int{
		glxContextMajorVersionARB, 3,
		glxContextMinorVersionARB, 3,
		glxContextProfileMaskARB, glxContextCoreProfileBit,
		0,
	}

	C.rcomp_install_error_handler()
	ctx := C.rcomp_create_context(dpy, cfg, &attribs[0])
	C.XSync(dpy, C.False)
	failed := C.rcomp_error_occurred() != 0
	C.rcomp_restore_error_handler()
	if ctx == nil || failed {
		C.XCloseDisplay(dpy)
		return nil, fmt.Errorf("glx: context creation failed")
	}
	if C.glXIsDirect(dpy, ctx) == 0 {
		C.glXDestroyContext(dpy, ctx)
		C.XCloseDisplay(dpy)
		return nil, fmt.Errorf("glx: refusing an indirect context")
	}

	c := &Context{dpy: dpy, screen: C.int(screen), ctx: ctx, cfg: cfg}
	if err := c.MakeCurrent(drawable); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

// chooseFBConfig picks the first framebuffer config matching spec.md
// §4.2: RGBA 8/8/8/8, 24-bit depth, 8-bit stencil, double buffered,
// window drawable, true-color visual.
func chooseFBConfig(dpy *C.Display, screen C.int) (C.GLXFBConfig, error) {
	attribs := [...]C.int{
		C.GLX_X_RENDERABLE, C.True,
		C.GLX_DRAWABLE_TYPE, C.GLX_WINDOW_BIT,
		C.GLX_RENDER_TYPE, C.GLX_RGBA_BIT,
		C.GLX_X_VISUAL_TYPE, C.GLX_TRUE_COLOR,
		C.GLX_RED_SIZE, 8,
		C.GLX_GREEN_SIZE, 8,
		C.GLX_BLUE_SIZE, 8,
		C.GLX_ALPHA_SIZE, 8,
		C.GLX_DEPTH_SIZE, 24,
		C.GLX_STENCIL_SIZE, 8,
		C.GLX_DOUBLEBUFFER, C.True,
		0,
	}
	var n C.int
	configs := C.glXChooseFBConfig(dpy, screen, &attribs[0], &n)
	if configs == nil || n == 0 {
		return nil, fmt.Errorf("glx: no matching framebuffer config")
	}
	defer C.XFree(unsafe.Pointer(configs))
	first := (*[1 << 16]C.GLXFBConfig)(unsafe.Pointer(configs))[:n:n][0]
	return first, nil
}

// MakeCurrent binds the context to drawable. No other drawable is
// ever made current for the lifetime of this Context (spec.md §5).
func (c *Context) MakeCurrent(drawable uintptr) error {
	if C.glXMakeCurrent(c.dpy, C.GLXDrawable(drawable), c.ctx) == 0 {
		return fmt.Errorf("glx: glXMakeCurrent failed")
	}
	return nil
}

// SwapBuffers presents the back buffer of drawable (spec.md §4.2
// render()).
func (c *Context) SwapBuffers(drawable uintptr) {
	C.glXSwapBuffers(c.dpy, C.GLXDrawable(drawable))
}

// CreateGLXPixmap binds an X pixmap as a texture-from-pixmap drawable
// (spec.md §6 "GLX texture-from-pixmap attribute set").
func (c *Context) CreateGLXPixmap(pixmap uintptr, visual uintptr) (uintptr, error) {
	const (
		textureTargetEXT = 0x20D6
		texture2DEXT     = 0x20DC
		textureFormatEXT = 0x20D5
		textureFormatRGBA = 0x20DA
	)
	attribs := [...]C.int{
		textureTargetEXT, texture2DEXT,
		textureFormatEXT, textureFormatRGBA,
		0,
	}
	glxPixmap := C.glXCreatePixmap(c.dpy, c.cfg, C.Pixmap(pixmap), &attribs[0])
	if glxPixmap == 0 {
		return 0, fmt.Errorf("glx: glXCreatePixmap failed")
	}
	return uintptr(glxPixmap), nil
}

// BindTexImage binds glxPixmap's FRONT_LEFT buffer into the currently
// bound GL texture (spec.md §4.2 update_texture).
func (c *Context) BindTexImage(glxPixmap uintptr) {
	const frontLeftEXT = 0x20DE
	C.glXBindTexImageEXT(c.dpy, C.GLXDrawable(glxPixmap), frontLeftEXT, nil)
}

// ReleaseTexImage releases a prior BindTexImage (spec.md §4.2
// update_pixmap: "Release any prior GL-pixmap binding... before
// creating a new one").
func (c *Context) ReleaseTexImage(glxPixmap uintptr) {
	const frontLeftEXT = 0x20DE
	C.glXReleaseTexImageEXT(c.dpy, C.GLXDrawable(glxPixmap), frontLeftEXT)
}

// DestroyGLXPixmap releases a GLX pixmap binding.
func (c *Context) DestroyGLXPixmap(glxPixmap uintptr) {
	C.glXDestroyPixmap(c.dpy, C.GLXDrawable(glxPixmap))
}

// Release tears down the GL context and the dedicated Xlib connection
// (spec.md §4.2 "Drop contract").
func (c *Context) Release() {
	if c == nil || c.ctx == nil {
		return
	}
	C.glXMakeCurrent(c.dpy, 0, nil)
	C.glXDestroyContext(c.dpy, c.ctx)
	C.XCloseDisplay(c.dpy)
	c.ctx = nil
}
