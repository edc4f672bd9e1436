// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"math"
	"sync"

	"github.com/gogpu/provebilde/fx"
)

// Vec2 is a GLSL vec2.
type Vec2 [2]float64

// Color is a straight RGBA fragment color.
type Color [4]float64

// Kernel computes one fragment. tc are the interpolated texture
// coordinates, with (0, 0) at the top-left texel of the bound texture.
type Kernel func(tex *Sampler, u *Uniforms, tc Vec2) Color

var (
	kernelsMu sync.RWMutex
	kernels   = map[string]Kernel{}
)

// RegisterKernel makes source compilable on soft devices, running k for
// every fragment. Registering the same source again replaces the kernel.
func RegisterKernel(source string, k Kernel) {
	kernelsMu.Lock()
	kernels[source] = k
	kernelsMu.Unlock()
}

func lookupKernel(source string) (Kernel, bool) {
	kernelsMu.RLock()
	defer kernelsMu.RUnlock()
	k, ok := kernels[source]
	return k, ok
}

func init() {
	RegisterKernel(fx.BaseFragmentShader, baseKernel)
	RegisterKernel(fx.BrightnessSaturationContrastFragmentShader, bscKernel)
	RegisterKernel(fx.BulgePinchFragmentShader, bulgePinchKernel)
	RegisterKernel(fx.VignetteFragmentShader, vignetteKernel)
}

func baseKernel(tex *Sampler, _ *Uniforms, tc Vec2) Color {
	return tex.Sample(tc)
}

// WCAG 2.1 relative luminance weights.
var luminanceWeighting = [3]float64{0.2126, 0.7152, 0.0722}

func bscKernel(tex *Sampler, u *Uniforms, tc Vec2) Color {
	c := tex.Sample(tc)
	brightness := u.Float("brightness")
	contrast := u.Float("contrast")
	saturation := u.Float("saturation")

	for i := 0; i < 3; i++ {
		c[i] += brightness
	}
	gray := c[0]*luminanceWeighting[0] + c[1]*luminanceWeighting[1] + c[2]*luminanceWeighting[2]
	for i := 0; i < 3; i++ {
		c[i] = mix(gray, c[i], 1+saturation)
		c[i] = 0.5 + (contrast+1)*(c[i]-0.5)
	}
	return c
}

func bulgePinchKernel(tex *Sampler, u *Uniforms, tc Vec2) Color {
	texSize := u.Vec2("texSize")
	center := u.Vec2("center")
	radius := u.Float("radius")
	strength := u.Float("strength")

	x := tc[0]*texSize[0] - center[0]
	y := tc[1]*texSize[1] - center[1]
	distance := math.Hypot(x, y)
	if distance < radius && distance > 0 {
		percent := distance / radius
		var f float64
		if strength > 0 {
			f = mix(1, smoothstep(0, radius/distance, percent), strength*0.75)
		} else {
			f = mix(1, math.Pow(percent, 1+strength*0.75)*radius/distance, 1-percent)
		}
		x *= f
		y *= f
	}
	x += center[0]
	y += center[1]

	c := tex.Sample(Vec2{x / texSize[0], y / texSize[1]})
	cx := clamp(x, 0, texSize[0])
	cy := clamp(y, 0, texSize[1])
	if cx != x || cy != y {
		c[3] *= math.Max(0, 1-math.Hypot(x-cx, y-cy))
	}
	return c
}

func vignetteKernel(tex *Sampler, u *Uniforms, tc Vec2) Color {
	c := tex.Sample(tc)
	size := u.Float("size")
	amount := u.Float("amount")
	dist := math.Hypot(tc[0]-0.5, tc[1]-0.5)
	v := smoothstep(0.8, size*0.799, dist*(amount+size))
	for i := 0; i < 3; i++ {
		c[i] *= v
	}
	return c
}

func mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// smoothstep follows the GLSL formula, including edge0 > edge1.
func smoothstep(edge0, edge1, x float64) float64 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
