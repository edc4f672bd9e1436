// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/provebilde/fx"
)

// Sampler reads a texture with bilinear filtering and clamp-to-edge
// wrapping, like a GL_LINEAR / GL_CLAMP_TO_EDGE texture unit.
type Sampler struct {
	width, height int
	texels        []float64 // straight RGBA, 4 per texel
}

func newSampler(img image.Image) *Sampler {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Rect, img, b.Min, draw.Src)

	s := &Sampler{width: b.Dx(), height: b.Dy(), texels: make([]float64, len(nrgba.Pix))}
	for i, v := range nrgba.Pix {
		s.texels[i] = float64(v) / 255
	}
	return s
}

// Size returns the texture size in texels.
func (s *Sampler) Size() (width, height int) {
	return s.width, s.height
}

func (s *Sampler) texel(x, y int) Color {
	x = min(max(x, 0), s.width-1)
	y = min(max(y, 0), s.height-1)
	i := (y*s.width + x) * 4
	return Color{s.texels[i], s.texels[i+1], s.texels[i+2], s.texels[i+3]}
}

// Sample returns the filtered color at texture coordinates tc.
func (s *Sampler) Sample(tc Vec2) Color {
	if s == nil || s.width == 0 || s.height == 0 {
		return Color{0, 0, 0, 1}
	}
	u := tc[0]*float64(s.width) - 0.5
	v := tc[1]*float64(s.height) - 0.5
	x0, y0 := math.Floor(u), math.Floor(v)
	tx, ty := u-x0, v-y0
	ix, iy := int(x0), int(y0)

	c00, c10 := s.texel(ix, iy), s.texel(ix+1, iy)
	c01, c11 := s.texel(ix, iy+1), s.texel(ix+1, iy+1)
	var c Color
	for i := range c {
		c[i] = mix(mix(c00[i], c10[i], tx), mix(c01[i], c11[i], tx), ty)
	}
	return c
}

// Uniforms gives kernels read access to the values bound on the current
// program.
type Uniforms struct {
	values map[string][]float64
}

// Float returns the first component of the named uniform, or 0.
func (u *Uniforms) Float(name string) float64 {
	v := u.values[name]
	if len(v) == 0 {
		return 0
	}
	return v[0]
}

// Vec2 returns the named uniform as a vec2.
func (u *Uniforms) Vec2(name string) Vec2 {
	v := u.values[name]
	var out Vec2
	copy(out[:], v)
	return out
}

// glslTypes maps GLSL type names to driver type constants.
var glslTypes = map[string]fx.GLenum{
	"float":     fx.GLFloat,
	"vec2":      fx.GLFloatVec2,
	"vec3":      fx.GLFloatVec3,
	"vec4":      fx.GLFloatVec4,
	"int":       fx.GLInt,
	"ivec2":     fx.GLIntVec2,
	"ivec3":     fx.GLIntVec3,
	"ivec4":     fx.GLIntVec4,
	"bool":      fx.GLBool,
	"bvec2":     fx.GLBoolVec2,
	"bvec3":     fx.GLBoolVec3,
	"bvec4":     fx.GLBoolVec4,
	"mat4":      fx.GLFloatMat4,
	"sampler2D": fx.GLSampler2D,
}
