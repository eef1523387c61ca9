//go:build !android

// Package gfx is the OpenGL side of the scene renderer: it uploads the
// per-frame vertex list and draws it with a colour-texture program and a
// solid white texture.
package gfx

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"haircut/internal/game"
)

// Vertex must stay packed; the attribute offsets below depend on it.
var _ [game.VertexSize]byte = [unsafe.Sizeof(game.Vertex{})]byte{}

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer implements game.VertexSink. It owns its GL objects from
// NewRenderer until Destroy and must only be used on the GL thread.
type Renderer struct {
	prog     uint32
	vao      uint32
	vbo      uint32
	whiteTex uint32

	uObjectToClip int32
	uTex          int32

	count    int32
	fbW, fbH int32
}

var _ game.VertexSink = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(colorTextureVertSrc, colorTextureFragSrc)
	if err != nil {
		return nil, fmt.Errorf("color texture program: %w", err)
	}
	r := &Renderer{prog: prog}

	gl.UseProgram(prog)
	r.uObjectToClip = gl.GetUniformLocation(prog, gl.Str("OBJECT_TO_CLIP\x00"))
	r.uTex = gl.GetUniformLocation(prog, gl.Str("TEX\x00"))
	gl.Uniform1i(r.uTex, 0)
	gl.UseProgram(0)

	// Streaming vertex buffer; filled every frame by Upload.
	gl.GenBuffers(1, &r.vbo)

	// VAO mapping the buffer onto the program's attributes.
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(game.VertexSize)
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointer(attribPosition, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(attribColor)
	gl.VertexAttribPointer(attribColor, 4, gl.UNSIGNED_BYTE, true, stride, glOffset(4*3))
	gl.EnableVertexAttribArray(attribTexCoord)
	gl.VertexAttribPointer(attribTexCoord, 2, gl.FLOAT, false, stride, glOffset(4*3+4*1))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	// 1x1 solid white texture so vertex colours come through unchanged.
	white := [4]uint8{0xff, 0xff, 0xff, 0xff}
	gl.GenTextures(1, &r.whiteTex)
	gl.BindTexture(gl.TEXTURE_2D, r.whiteTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&white[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		r.Destroy()
		return nil, fmt.Errorf("renderer setup: gl error 0x%x", code)
	}
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.whiteTex != 0 {
		gl.DeleteTextures(1, &r.whiteTex)
		r.whiteTex = 0
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
		r.prog = 0
	}
}

// SetViewport records the drawable size used by the next Draw.
func (r *Renderer) SetViewport(fbW, fbH int) {
	r.fbW, r.fbH = int32(fbW), int32(fbH)
}

// Upload replaces the vertex buffer contents with this frame's triangles.
func (r *Renderer) Upload(vertices []game.Vertex) {
	r.count = int32(len(vertices))
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(vertices) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STREAM_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*game.VertexSize, gl.Ptr(vertices), gl.STREAM_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw clears to bg and draws the uploaded triangles through courtToClip.
func (r *Renderer) Draw(bg game.RGBA, courtToClip mgl32.Mat4) {
	if r.fbW > 0 && r.fbH > 0 {
		gl.Viewport(0, 0, r.fbW, r.fbH)
	}
	cr, cg, cb, ca := bg.Floats()
	gl.ClearColor(cr, cg, cb, ca)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	if r.count == 0 {
		return
	}

	gl.UseProgram(r.prog)
	gl.UniformMatrix4fv(r.uObjectToClip, 1, false, &courtToClip[0])
	gl.BindVertexArray(r.vao)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.whiteTex)

	gl.DrawArrays(gl.TRIANGLES, 0, r.count)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}
