package fx

import _ "embed"

// GLSL sources. They compile as GLSL ES 1.00 and as desktop GLSL 1.20.

// BaseVertexShader maps the fullscreen quad to texture coordinates with the
// Y axis flipped, so textures uploaded top row first come out upright.
//
//go:embed shaders/base_flipped.vert
var BaseVertexShader string

// BaseFragmentShader copies the input texture unchanged.
//
//go:embed shaders/base.frag
var BaseFragmentShader string

// BrightnessSaturationContrastFragmentShader applies brightness, then
// saturation around WCAG luma, then contrast around mid gray.
//
//go:embed shaders/brightness_saturation_contrast.frag
var BrightnessSaturationContrastFragmentShader string

// BulgePinchFragmentShader warps texture coordinates inside a radius around
// a center.
//
//go:embed shaders/bulge_pinch.frag
var BulgePinchFragmentShader string

// VignetteFragmentShader darkens pixels by their distance from the center.
//
//go:embed shaders/vignette.frag
var VignetteFragmentShader string
