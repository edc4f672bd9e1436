// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/gogpu/provebilde/fx"
)

// glslVersion is prepended to every shader. The embedded sources are
// written for GL ES 2.0, which GLSL 1.20 accepts once the precision
// qualifiers are hidden behind GL_ES.
const glslVersion = "#version 120\n"

// Device is an fx.Device drawing into a region of the default framebuffer
// of the current context. Clears and draws are scissored to the region.
type Device struct {
	x, y          int
	width, height int
}

var _ fx.Device = (*Device)(nil)

// New loads the GL entry points and returns a device whose drawing buffer
// is width x height pixels.
func New(width, height int) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.Enable(gl.SCISSOR_TEST)
	d := &Device{}
	d.SetDrawingBuffer(0, 0, width, height)
	return d, nil
}

// Version returns the GL_VERSION string of the current context.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// SetDrawingBuffer places the drawing buffer at (x, y) in the framebuffer,
// measured from the bottom-left corner.
func (d *Device) SetDrawingBuffer(x, y, width, height int) {
	d.x, d.y = x, y
	d.width, d.height = width, height
	gl.Scissor(int32(x), int32(y), int32(width), int32(height))
}

// ClearFramebuffer clears the whole framebuffer, outside the drawing
// buffer too.
func (d *Device) ClearFramebuffer(r, g, b, a float32) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.SCISSOR_TEST)
}

func (d *Device) DrawingBufferSize() (width, height int) {
	return d.width, d.height
}

func (d *Device) CreateShader(kind fx.ShaderKind) fx.Shader {
	t := uint32(gl.FRAGMENT_SHADER)
	if kind == fx.VertexShader {
		t = gl.VERTEX_SHADER
	}
	return fx.Shader(gl.CreateShader(t))
}

func (d *Device) ShaderSource(s fx.Shader, source string) {
	csources, free := gl.Strs(glslVersion + source + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (d *Device) CompileShader(s fx.Shader) {
	gl.CompileShader(uint32(s))
}

func (d *Device) ShaderCompiled(s fx.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(s fx.Shader) string {
	var n int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n+1)
	gl.GetShaderInfoLog(uint32(s), n, nil, &buf[0])
	return string(buf)
}

func (d *Device) DeleteShader(s fx.Shader) {
	gl.DeleteShader(uint32(s))
}

func (d *Device) CreateProgram() fx.Program {
	return fx.Program(gl.CreateProgram())
}

func (d *Device) AttachShader(p fx.Program, s fx.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (d *Device) LinkProgram(p fx.Program) {
	gl.LinkProgram(uint32(p))
}

func (d *Device) ProgramLinked(p fx.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(p fx.Program) string {
	var n int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n+1)
	gl.GetProgramInfoLog(uint32(p), n, nil, &buf[0])
	return string(buf)
}

func (d *Device) UseProgram(p fx.Program) {
	gl.UseProgram(uint32(p))
}

func (d *Device) DeleteProgram(p fx.Program) {
	gl.DeleteProgram(uint32(p))
}

func (d *Device) ActiveUniformCount(p fx.Program) int {
	var n int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_UNIFORMS, &n)
	return int(n)
}

func (d *Device) ActiveUniform(p fx.Program, index int) (fx.ActiveUniform, bool) {
	var maxLen int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if maxLen <= 0 {
		return fx.ActiveUniform{}, false
	}
	name := make([]uint8, maxLen)
	var length, size int32
	var xtype uint32
	gl.GetActiveUniform(uint32(p), uint32(index), maxLen, &length, &size, &xtype, &name[0])
	if length <= 0 {
		return fx.ActiveUniform{}, false
	}
	return fx.ActiveUniform{
		Name: string(name[:length]),
		Size: int(size),
		Type: fx.GLenum(xtype),
	}, true
}

func (d *Device) UniformLocation(p fx.Program, name string) (fx.UniformLocation, bool) {
	loc := gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
	return fx.UniformLocation(loc), loc >= 0
}

func (d *Device) Uniform1fv(loc fx.UniformLocation, v []float32) {
	gl.Uniform1fv(int32(loc), 1, &v[0])
}

func (d *Device) Uniform2fv(loc fx.UniformLocation, v []float32) {
	gl.Uniform2fv(int32(loc), 1, &v[0])
}

func (d *Device) Uniform3fv(loc fx.UniformLocation, v []float32) {
	gl.Uniform3fv(int32(loc), 1, &v[0])
}

func (d *Device) Uniform4fv(loc fx.UniformLocation, v []float32) {
	gl.Uniform4fv(int32(loc), 1, &v[0])
}

func (d *Device) Uniform1iv(loc fx.UniformLocation, v []int32) {
	gl.Uniform1iv(int32(loc), 1, &v[0])
}

func (d *Device) Uniform2iv(loc fx.UniformLocation, v []int32) {
	gl.Uniform2iv(int32(loc), 1, &v[0])
}

func (d *Device) Uniform3iv(loc fx.UniformLocation, v []int32) {
	gl.Uniform3iv(int32(loc), 1, &v[0])
}

func (d *Device) Uniform4iv(loc fx.UniformLocation, v []int32) {
	gl.Uniform4iv(int32(loc), 1, &v[0])
}

func (d *Device) CreateBuffer() fx.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return fx.Buffer(b)
}

func (d *Device) BindArrayBuffer(b fx.Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

func (d *Device) BufferData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) AttribLocation(p fx.Program, name string) (uint32, bool) {
	loc := gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}

func (d *Device) VertexAttribPointer(index uint32, size int) {
	gl.VertexAttribPointer(index, int32(size), gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Device) DeleteBuffer(b fx.Buffer) {
	v := uint32(b)
	gl.DeleteBuffers(1, &v)
}

func (d *Device) CreateTexture() fx.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	gl.BindTexture(gl.TEXTURE_2D, t)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	return fx.Texture(t)
}

func (d *Device) BindTexture(t fx.Texture) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
}

// TexImage2D uploads img as straight RGBA, first row at t = 0.
func (d *Device) TexImage2D(img image.Image) {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) || nrgba.Stride != 4*b.Dx() {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Rect, img, b.Min, draw.Src)
	}
	if len(nrgba.Pix) == 0 {
		return
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(nrgba.Pix))
}

func (d *Device) DeleteTexture(t fx.Texture) {
	v := uint32(t)
	gl.DeleteTextures(1, &v)
}

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(d.x+x), int32(d.y+y), int32(width), int32(height))
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) DrawArrays(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

// ReadPixels reads the drawing buffer, converting from bottom-up straight
// RGBA to a top-down premultiplied image.
func (d *Device) ReadPixels() *image.RGBA {
	w, h := d.width, d.height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	raw := make([]uint8, w*h*4)
	gl.ReadPixels(int32(d.x), int32(d.y), int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(raw))

	stride := w * 4
	for y := 0; y < h; y++ {
		src := raw[(h-1-y)*stride : (h-y)*stride]
		dst := img.Pix[y*img.Stride : y*img.Stride+stride]
		for i := 0; i < stride; i += 4 {
			a := uint32(src[i+3])
			dst[i+0] = uint8((uint32(src[i+0])*a + 127) / 255)
			dst[i+1] = uint8((uint32(src[i+1])*a + 127) / 255)
			dst[i+2] = uint8((uint32(src[i+2])*a + 127) / 255)
			dst[i+3] = uint8(a)
		}
	}
	return img
}
