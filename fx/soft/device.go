// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"fmt"
	"image"
	"math"
	"regexp"

	"github.com/gogpu/provebilde/fx"
)

var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*;`)

type decl struct {
	name   string
	glType fx.GLenum
}

type shader struct {
	kind     fx.ShaderKind
	source   string
	compiled bool
	log      string
	kernel   Kernel
	uniforms []decl
}

type program struct {
	attached []*shader
	linked   bool
	log      string
	kernel   Kernel
	uniforms []decl
	values   map[string][]float64
}

// Device is a software fx.Device.
type Device struct {
	width, height int
	pixels        []float64 // straight RGBA drawing buffer, rows top first

	next     uint32
	shaders  map[fx.Shader]*shader
	programs map[fx.Program]*program
	buffers  map[fx.Buffer][]float32
	textures map[fx.Texture]*Sampler

	current     *program
	arrayBuffer fx.Buffer
	texture     fx.Texture
	attribSize  int
	attribOn    bool
	viewport    image.Rectangle
	clearColor  [4]float64
	drawCalls   int
}

var _ fx.Device = (*Device)(nil)

// New returns a device with a width x height drawing buffer.
func New(width, height int) *Device {
	d := &Device{
		shaders:  make(map[fx.Shader]*shader),
		programs: make(map[fx.Program]*program),
		buffers:  make(map[fx.Buffer][]float32),
		textures: make(map[fx.Texture]*Sampler),
	}
	d.SetSize(width, height)
	return d
}

// SetSize resizes the drawing buffer, discarding its contents.
func (d *Device) SetSize(width, height int) {
	d.width, d.height = width, height
	d.pixels = make([]float64, width*height*4)
	d.viewport = image.Rect(0, 0, width, height)
}

// DrawCalls returns the number of DrawArrays calls that produced pixels.
func (d *Device) DrawCalls() int {
	return d.drawCalls
}

// Objects returns the number of live shaders, programs, buffers and
// textures.
func (d *Device) Objects() int {
	return len(d.shaders) + len(d.programs) + len(d.buffers) + len(d.textures)
}

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

func (d *Device) CreateShader(kind fx.ShaderKind) fx.Shader {
	h := fx.Shader(d.handle())
	d.shaders[h] = &shader{kind: kind}
	return h
}

func (d *Device) ShaderSource(s fx.Shader, source string) {
	if sh := d.shaders[s]; sh != nil {
		sh.source = source
	}
}

func (d *Device) CompileShader(s fx.Shader) {
	sh := d.shaders[s]
	if sh == nil {
		return
	}
	sh.compiled, sh.log, sh.kernel = false, "", nil
	switch sh.kind {
	case fx.VertexShader:
		if sh.source != fx.BaseVertexShader {
			sh.log = "ERROR: 0:1: unsupported vertex shader\n"
			return
		}
	default:
		k, ok := lookupKernel(sh.source)
		if !ok {
			sh.log = "ERROR: 0:1: no kernel registered for fragment shader\n"
			return
		}
		sh.kernel = k
	}
	sh.uniforms = parseUniforms(sh.source)
	sh.compiled = true
}

func parseUniforms(source string) []decl {
	var out []decl
	for _, m := range uniformDecl.FindAllStringSubmatch(source, -1) {
		t, ok := glslTypes[m[1]]
		if !ok {
			continue
		}
		out = append(out, decl{name: m[2], glType: t})
	}
	return out
}

func (d *Device) ShaderCompiled(s fx.Shader) bool {
	sh := d.shaders[s]
	return sh != nil && sh.compiled
}

func (d *Device) ShaderInfoLog(s fx.Shader) string {
	if sh := d.shaders[s]; sh != nil {
		return sh.log
	}
	return ""
}

func (d *Device) DeleteShader(s fx.Shader) {
	delete(d.shaders, s)
}

func (d *Device) CreateProgram() fx.Program {
	h := fx.Program(d.handle())
	d.programs[h] = &program{}
	return h
}

func (d *Device) AttachShader(p fx.Program, s fx.Shader) {
	prog, sh := d.programs[p], d.shaders[s]
	if prog != nil && sh != nil {
		prog.attached = append(prog.attached, sh)
	}
}

func (d *Device) LinkProgram(p fx.Program) {
	prog := d.programs[p]
	if prog == nil {
		return
	}
	prog.linked, prog.log = false, ""
	var vertex, fragment *shader
	for _, sh := range prog.attached {
		if !sh.compiled {
			prog.log = "ERROR: attached shader is not compiled\n"
			return
		}
		if sh.kind == fx.VertexShader {
			vertex = sh
		} else {
			fragment = sh
		}
	}
	if vertex == nil || fragment == nil {
		prog.log = "ERROR: missing vertex or fragment shader\n"
		return
	}

	seen := make(map[string]bool)
	prog.uniforms = nil
	for _, sh := range []*shader{vertex, fragment} {
		for _, u := range sh.uniforms {
			if !seen[u.name] {
				seen[u.name] = true
				prog.uniforms = append(prog.uniforms, u)
			}
		}
	}
	prog.kernel = fragment.kernel
	prog.values = make(map[string][]float64)
	prog.linked = true
}

func (d *Device) ProgramLinked(p fx.Program) bool {
	prog := d.programs[p]
	return prog != nil && prog.linked
}

func (d *Device) ProgramInfoLog(p fx.Program) string {
	if prog := d.programs[p]; prog != nil {
		return prog.log
	}
	return ""
}

func (d *Device) UseProgram(p fx.Program) {
	d.current = d.programs[p]
}

func (d *Device) DeleteProgram(p fx.Program) {
	if d.current == d.programs[p] {
		d.current = nil
	}
	delete(d.programs, p)
}

func (d *Device) ActiveUniformCount(p fx.Program) int {
	if prog := d.programs[p]; prog != nil && prog.linked {
		return len(prog.uniforms)
	}
	return 0
}

func (d *Device) ActiveUniform(p fx.Program, index int) (fx.ActiveUniform, bool) {
	prog := d.programs[p]
	if prog == nil || index < 0 || index >= len(prog.uniforms) {
		return fx.ActiveUniform{}, false
	}
	u := prog.uniforms[index]
	return fx.ActiveUniform{Name: u.name, Size: 1, Type: u.glType}, true
}

// UniformLocation returns index+1 of the uniform in the program's
// declaration order.
func (d *Device) UniformLocation(p fx.Program, name string) (fx.UniformLocation, bool) {
	prog := d.programs[p]
	if prog == nil {
		return 0, false
	}
	for i, u := range prog.uniforms {
		if u.name == name {
			return fx.UniformLocation(i + 1), true
		}
	}
	return 0, false
}

func (d *Device) setUniform(loc fx.UniformLocation, v []float64) {
	prog := d.current
	if prog == nil || loc < 1 || int(loc) > len(prog.uniforms) {
		return
	}
	prog.values[prog.uniforms[loc-1].name] = v
}

func floats(v []float32, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n && i < len(v); i++ {
		out[i] = float64(v[i])
	}
	return out
}

func ints(v []int32, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n && i < len(v); i++ {
		out[i] = float64(v[i])
	}
	return out
}

func (d *Device) Uniform1fv(loc fx.UniformLocation, v []float32) { d.setUniform(loc, floats(v, 1)) }
func (d *Device) Uniform2fv(loc fx.UniformLocation, v []float32) { d.setUniform(loc, floats(v, 2)) }
func (d *Device) Uniform3fv(loc fx.UniformLocation, v []float32) { d.setUniform(loc, floats(v, 3)) }
func (d *Device) Uniform4fv(loc fx.UniformLocation, v []float32) { d.setUniform(loc, floats(v, 4)) }
func (d *Device) Uniform1iv(loc fx.UniformLocation, v []int32)   { d.setUniform(loc, ints(v, 1)) }
func (d *Device) Uniform2iv(loc fx.UniformLocation, v []int32)   { d.setUniform(loc, ints(v, 2)) }
func (d *Device) Uniform3iv(loc fx.UniformLocation, v []int32)   { d.setUniform(loc, ints(v, 3)) }
func (d *Device) Uniform4iv(loc fx.UniformLocation, v []int32)   { d.setUniform(loc, ints(v, 4)) }

func (d *Device) CreateBuffer() fx.Buffer {
	h := fx.Buffer(d.handle())
	d.buffers[h] = nil
	return h
}

func (d *Device) BindArrayBuffer(b fx.Buffer) {
	d.arrayBuffer = b
}

func (d *Device) BufferData(data []float32) {
	if _, ok := d.buffers[d.arrayBuffer]; ok {
		d.buffers[d.arrayBuffer] = append([]float32(nil), data...)
	}
}

// AttribLocation reports location 0 for the single "position" attribute of
// the base vertex shader.
func (d *Device) AttribLocation(p fx.Program, name string) (uint32, bool) {
	prog := d.programs[p]
	return 0, prog != nil && prog.linked && name == "position"
}

func (d *Device) VertexAttribPointer(index uint32, size int) {
	d.attribSize = size
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	d.attribOn = true
}

func (d *Device) DeleteBuffer(b fx.Buffer) {
	delete(d.buffers, b)
}

func (d *Device) CreateTexture() fx.Texture {
	h := fx.Texture(d.handle())
	d.textures[h] = nil
	return h
}

func (d *Device) BindTexture(t fx.Texture) {
	d.texture = t
}

func (d *Device) TexImage2D(img image.Image) {
	if _, ok := d.textures[d.texture]; ok {
		d.textures[d.texture] = newSampler(img)
	}
}

func (d *Device) DeleteTexture(t fx.Texture) {
	delete(d.textures, t)
}

func (d *Device) DrawingBufferSize() (width, height int) {
	return d.width, d.height
}

func (d *Device) Viewport(x, y, width, height int) {
	// GL viewports are measured from the bottom row.
	top := d.height - (y + height)
	d.viewport = image.Rect(x, top, x+width, top+height)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.clearColor = [4]float64{float64(r), float64(g), float64(b), float64(a)}
}

func (d *Device) Clear() {
	for i := 0; i < len(d.pixels); i += 4 {
		copy(d.pixels[i:i+4], d.clearColor[:])
	}
}

// DrawArrays fills the bounding box of the triangles in the bound buffer.
// The pipeline only draws axis-aligned quads, for which this is exact.
func (d *Device) DrawArrays(first, count int) {
	prog := d.current
	data := d.buffers[d.arrayBuffer]
	if prog == nil || !prog.linked || !d.attribOn || d.attribSize != 2 || count < 3 {
		return
	}
	if (first+count)*2 > len(data) {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := first; i < first+count; i++ {
		x, y := float64(data[2*i]), float64(data[2*i+1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	vp := d.viewport
	vw, vh := float64(vp.Dx()), float64(vp.Dy())
	// clip space to viewport pixels, y pointing down
	area := image.Rect(
		vp.Min.X+int(math.Round((minX+1)/2*vw)),
		vp.Min.Y+int(math.Round((1-maxY)/2*vh)),
		vp.Min.X+int(math.Round((maxX+1)/2*vw)),
		vp.Min.Y+int(math.Round((1-minY)/2*vh)),
	).Intersect(vp).Intersect(image.Rect(0, 0, d.width, d.height))
	if area.Empty() {
		return
	}

	tex := d.textures[d.texture]
	u := &Uniforms{values: prog.values}
	for py := area.Min.Y; py < area.Max.Y; py++ {
		for px := area.Min.X; px < area.Max.X; px++ {
			tc := Vec2{
				(float64(px-vp.Min.X) + 0.5) / vw,
				(float64(py-vp.Min.Y) + 0.5) / vh,
			}
			c := prog.kernel(tex, u, tc)
			i := (py*d.width + px) * 4
			for k := 0; k < 4; k++ {
				d.pixels[i+k] = clamp(c[k], 0, 1)
			}
		}
	}
	d.drawCalls++
}

// ReadPixels returns the drawing buffer, premultiplied, top row first.
func (d *Device) ReadPixels() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	for i := 0; i < len(d.pixels); i += 4 {
		a := d.pixels[i+3]
		img.Pix[i+0] = to8(d.pixels[i+0] * a)
		img.Pix[i+1] = to8(d.pixels[i+1] * a)
		img.Pix[i+2] = to8(d.pixels[i+2] * a)
		img.Pix[i+3] = to8(a)
	}
	return img
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}

func (d *Device) String() string {
	return fmt.Sprintf("soft.Device(%dx%d)", d.width, d.height)
}
