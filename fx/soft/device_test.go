// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/provebilde/fx"
)

func compile(t *testing.T, d *Device, kind fx.ShaderKind, src string) fx.Shader {
	t.Helper()
	s := d.CreateShader(kind)
	d.ShaderSource(s, src)
	d.CompileShader(s)
	if !d.ShaderCompiled(s) {
		t.Fatalf("compile %v: %s", kind, d.ShaderInfoLog(s))
	}
	return s
}

func TestCompileUnknownSource(t *testing.T) {
	d := New(4, 4)
	s := d.CreateShader(fx.FragmentShader)
	d.ShaderSource(s, "void main() { gl_FragColor = vec4(1.0); }")
	d.CompileShader(s)
	if d.ShaderCompiled(s) {
		t.Fatal("unknown fragment shader compiled")
	}
	if !strings.Contains(d.ShaderInfoLog(s), "no kernel registered") {
		t.Errorf("log = %q", d.ShaderInfoLog(s))
	}

	v := d.CreateShader(fx.VertexShader)
	d.ShaderSource(v, "void main() {}")
	d.CompileShader(v)
	if d.ShaderCompiled(v) {
		t.Error("unknown vertex shader compiled")
	}
}

func TestLinkRequiresBothStages(t *testing.T) {
	d := New(4, 4)
	fs := compile(t, d, fx.FragmentShader, fx.BaseFragmentShader)
	p := d.CreateProgram()
	d.AttachShader(p, fs)
	d.LinkProgram(p)
	if d.ProgramLinked(p) {
		t.Fatal("program without vertex shader linked")
	}
	if d.ProgramInfoLog(p) == "" {
		t.Error("empty link log")
	}
}

func TestActiveUniforms(t *testing.T) {
	d := New(4, 4)
	vs := compile(t, d, fx.VertexShader, fx.BaseVertexShader)
	fs := compile(t, d, fx.FragmentShader, fx.BulgePinchFragmentShader)
	p := d.CreateProgram()
	d.AttachShader(p, vs)
	d.AttachShader(p, fs)
	d.LinkProgram(p)
	if !d.ProgramLinked(p) {
		t.Fatalf("link: %s", d.ProgramInfoLog(p))
	}

	want := map[string]fx.GLenum{
		"textureSampler": fx.GLSampler2D,
		"texSize":        fx.GLFloatVec2,
		"radius":         fx.GLFloat,
		"strength":       fx.GLFloat,
		"center":         fx.GLFloatVec2,
	}
	if n := d.ActiveUniformCount(p); n != len(want) {
		t.Fatalf("ActiveUniformCount = %d, want %d", n, len(want))
	}
	for i := range len(want) {
		u, ok := d.ActiveUniform(p, i)
		if !ok {
			t.Fatalf("ActiveUniform(%d) missing", i)
		}
		if want[u.Name] != u.Type {
			t.Errorf("%s: type %v, want %v", u.Name, u.Type, want[u.Name])
		}
		loc, ok := d.UniformLocation(p, u.Name)
		if !ok || int(loc) != i+1 {
			t.Errorf("UniformLocation(%s) = %d, %v", u.Name, loc, ok)
		}
	}
	if _, ok := d.UniformLocation(p, "missing"); ok {
		t.Error("location for undeclared uniform")
	}
}

func TestViewportIsBottomUp(t *testing.T) {
	d := New(10, 8)
	d.Viewport(0, 0, 10, 2)
	if got := d.viewport; got != image.Rect(0, 6, 10, 8) {
		t.Errorf("viewport = %v", got)
	}
}

func TestReadPixelsPremultiplies(t *testing.T) {
	d := New(2, 1)
	d.ClearColor(1, 0, 0, 0.5)
	d.Clear()
	got := d.ReadPixels().RGBAAt(1, 0)
	if got != (color.RGBA{128, 0, 0, 128}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestSamplerClampsToEdge(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 255})
	s := newSampler(img)

	if c := s.Sample(Vec2{-1, 0.5}); c[0] != 1 || c[2] != 0 {
		t.Errorf("left of texture = %v", c)
	}
	if c := s.Sample(Vec2{2, 0.5}); c[0] != 0 || c[2] != 1 {
		t.Errorf("right of texture = %v", c)
	}
	if c := s.Sample(Vec2{0.5, 0.5}); c[0] != 0.5 || c[2] != 0.5 {
		t.Errorf("between texels = %v", c)
	}
}

func TestBSCKernel(t *testing.T) {
	tex := newSampler(solid(1, 1, color.NRGBA{102, 102, 102, 255}))
	u := &Uniforms{values: map[string][]float64{"brightness": {0.2}}}
	c := bscKernel(tex, u, Vec2{0.5, 0.5})
	if d := c[0] - 0.6; d > 1e-9 || d < -1e-9 {
		t.Errorf("brightness: r = %v, want 0.6", c[0])
	}

	u = &Uniforms{values: map[string][]float64{"saturation": {-1}}}
	tex = newSampler(solid(1, 1, color.NRGBA{255, 0, 0, 255}))
	c = bscKernel(tex, u, Vec2{0.5, 0.5})
	if c[0] != c[1] || c[1] != c[2] {
		t.Errorf("saturation -1 left color %v", c)
	}

	u = &Uniforms{values: map[string][]float64{"contrast": {-1}}}
	c = bscKernel(tex, u, Vec2{0.5, 0.5})
	if c[0] != 0.5 || c[1] != 0.5 {
		t.Errorf("contrast -1 = %v, want flat gray", c)
	}
}

func TestVignetteKernel(t *testing.T) {
	tex := newSampler(solid(1, 1, color.NRGBA{255, 255, 255, 255}))
	u := &Uniforms{values: map[string][]float64{"size": {0.25}, "amount": {0.58}}}

	center := vignetteKernel(tex, u, Vec2{0.5, 0.5})
	corner := vignetteKernel(tex, u, Vec2{0, 0})
	if center[0] != 1 {
		t.Errorf("center = %v, want unchanged", center[0])
	}
	if corner[0] >= 0.5 {
		t.Errorf("corner = %v, want darkened", corner[0])
	}
	if corner[3] != 1 {
		t.Errorf("alpha changed: %v", corner[3])
	}
}

func TestBulgePinchKernelZeroStrength(t *testing.T) {
	img := checker(8, 8)
	tex := newSampler(img)
	u := &Uniforms{values: map[string][]float64{
		"texSize":  {8, 8},
		"center":   {4, 4},
		"radius":   {6},
		"strength": {0},
	}}
	for y := range 8 {
		for x := range 8 {
			tc := Vec2{(float64(x) + 0.5) / 8, (float64(y) + 0.5) / 8}
			got := bulgePinchKernel(tex, u, tc)
			want := tex.texel(x, y)
			for i := range got {
				if d := got[i] - want[i]; d > 1e-6 || d < -1e-6 {
					t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
				}
			}
		}
	}
}

func TestBulgePinchKernelStrength(t *testing.T) {
	tex := newSampler(checker(16, 16))
	u := &Uniforms{values: map[string][]float64{
		"texSize":  {16, 16},
		"center":   {8, 8},
		"radius":   {12},
		"strength": {1},
	}}
	tc := Vec2{11.5 / 16, 8.5 / 16}
	got := bulgePinchKernel(tex, u, tc)
	plain := tex.Sample(tc)
	if got == plain {
		t.Error("bulge did not move the sample")
	}
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := color.NRGBA{0, 0, 0, 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
