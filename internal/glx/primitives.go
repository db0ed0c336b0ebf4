// Package glx wraps the handful of GL objects the compositor needs —
// buffer, vertex array, texture, shader and program — as value types
// whose Release method issues the matching glDelete* call on every
// exit path (spec.md §5 "Shared-resource policy" and §9 "Handle
// ownership vs. FFI"). The calling convention mirrors the teacher's
// gldriver/util.go compileProgram/loadShader pair, generalized from
// GLES (golang.org/x/mobile/gl) to desktop GL 3.3 core
// (github.com/go-gl/gl/v3.3-core/gl), since spec.md §4.2 requires a
// core-profile context, not an ES one.
package glx

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// Buffer is a GL buffer object (VBO or EBO).
type Buffer struct {
	handle uint32
	target uint32
}

// NewBuffer allocates a buffer object bound to target (gl.ARRAY_BUFFER
// or gl.ELEMENT_ARRAY_BUFFER).
func NewBuffer(target uint32) *Buffer {
	var handle uint32
	gl.GenBuffers(1, &handle)
	return &Buffer{handle: handle, target: target}
}

// WrapBuffer wraps an already-allocated buffer object name. Used when
// the owning GL handle is stored outside glx (internal/wm.Context
// deliberately holds bare uint32 handles, not *glx.Buffer, so that wm
// doesn't import an OpenGL binding — see internal/wm/window.go).
func WrapBuffer(handle, target uint32) *Buffer {
	return &Buffer{handle: handle, target: target}
}

// Handle returns the underlying GL object name.
func (b *Buffer) Handle() uint32 { return b.handle }

// Bind makes this the current buffer for its target.
func (b *Buffer) Bind() { gl.BindBuffer(b.target, b.handle) }

// Data uploads data with the given usage hint (e.g. gl.STATIC_DRAW for
// the shared element buffer, gl.STREAM_DRAW for a per-window quad
// whose vertices change on every move/resize — spec.md §4.2
// update_pos).
func (b *Buffer) Data(data []float32, usage uint32) {
	b.Bind()
	gl.BufferData(b.target, len(data)*4, unsafe.Pointer(&data[0]), usage)
}

// DataU32 is Data for index buffers.
func (b *Buffer) DataU32(data []uint32, usage uint32) {
	b.Bind()
	gl.BufferData(b.target, len(data)*4, unsafe.Pointer(&data[0]), usage)
}

// Release deletes the buffer object. Safe to call on the zero value.
func (b *Buffer) Release() {
	if b == nil || b.handle == 0 {
		return
	}
	gl.DeleteBuffers(1, &b.handle)
	b.handle = 0
}

// VertexArray is a GL vertex array object.
type VertexArray struct {
	handle uint32
}

// NewVertexArray allocates a vertex array object.
func NewVertexArray() *VertexArray {
	var handle uint32
	gl.GenVertexArrays(1, &handle)
	return &VertexArray{handle: handle}
}

func (v *VertexArray) Handle() uint32 { return v.handle }
func (v *VertexArray) Bind()          { gl.BindVertexArray(v.handle) }

func (v *VertexArray) Release() {
	if v == nil || v.handle == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &v.handle)
	v.handle = 0
}

// Texture is a GL 2D texture object.
type Texture struct {
	handle uint32
}

// NewTexture allocates a texture object and applies the
// nearest-neighbor min/mag filtering spec.md §4.2 requires for both
// update_texture (per-window) and the root texture.
func NewTexture() *Texture {
	var handle uint32
	gl.GenTextures(1, &handle)
	t := &Texture{handle: handle}
	t.Bind()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return t
}

func (t *Texture) Handle() uint32 { return t.handle }
func (t *Texture) Bind()          { gl.BindTexture(gl.TEXTURE_2D, t.handle) }

func (t *Texture) Release() {
	if t == nil || t.handle == 0 {
		return
	}
	gl.DeleteTextures(1, &t.handle)
	t.handle = 0
}

// Program is a linked GL shader program.
type Program struct {
	handle uint32
}

func (p *Program) Handle() uint32 { return p.handle }
func (p *Program) Use()           { gl.UseProgram(p.handle) }

func (p *Program) Release() {
	if p == nil || p.handle == 0 {
		return
	}
	gl.DeleteProgram(p.handle)
	p.handle = 0
}

// UniformLocation returns the location of uniform name, or -1 if the
// linker optimized it away or the name doesn't exist.
func (p *Program) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
}

// CompileProgram compiles and links the window vertex+fragment program
// (spec.md §4.2 Initialization contract), deleting intermediate shader
// objects and the program itself on any failure path — the same
// cleanup discipline as gldriver.compileProgram/loadShader.
func CompileProgram(vSrc, fSrc string) (*Program, error) {
	program := gl.CreateProgram()
	if program == 0 {
		return nil, fmt.Errorf("glx: no programs available")
	}

	vs, err := loadShader(gl.VERTEX_SHADER, vSrc)
	if err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}
	fs, err := loadShader(gl.FRAGMENT_SHADER, fSrc)
	if err != nil {
		gl.DeleteShader(vs)
		gl.DeleteProgram(program)
		return nil, err
	}

	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	// Flag shaders for deletion once unlinked from the program.
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteProgram(program)
		return nil, fmt.Errorf("glx: link program: %s", programInfoLog(program))
	}
	return &Program{handle: program}, nil
}

func loadShader(shaderType uint32, src string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	if shader == 0 {
		return 0, fmt.Errorf("glx: could not create shader (type %v)", shaderType)
	}
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteShader(shader)
		return 0, fmt.Errorf("glx: shader compile: %s", shaderInfoLog(shader))
	}
	return shader, nil
}

func shaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	log := strings.Repeat("\x00", int(length+1))
	gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
	return log
}

func programInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	log := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
	return log
}

// DrainErrors logs (via the caller's logging of the returned slice)
// every pending GL error, matching spec.md §7's "GL runtime: sampled
// via glGetError. Logged; never fatal." It never treats a non-zero
// result as fatal — callers decide what, if anything, to do with it.
func DrainErrors() []uint32 {
	var errs []uint32
	for {
		e := gl.GetError()
		if e == gl.NO_ERROR {
			return errs
		}
		errs = append(errs, e)
	}
}
