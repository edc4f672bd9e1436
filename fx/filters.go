package fx

// BSCParams are the brightness, saturation and contrast offsets, each in
// [-1, 1].
type BSCParams struct {
	Brightness float64
	Contrast   float64
	Saturation float64
}

// BulgePinchParams configure the lens warp. Strength is in [-1, 1]:
// positive bulges, negative pinches. The geometry fields are filled in from
// the surface size by NewBulgePinchFilter.
type BulgePinchParams struct {
	Strength float64
	TexSize  [2]float64
	Center   [2]float64
	Radius   float64
}

// VignetteParams configure the vignette falloff.
type VignetteParams struct {
	Size   float64
	Amount float64
}

// NewBrightnessSaturationContrastFilter returns a filter reading p on every
// pass.
func NewBrightnessSaturationContrastFilter(p *BSCParams) *Filter {
	return NewFilter("brightness-saturation-contrast", BrightnessSaturationContrastFragmentShader, func() Params {
		return Params{
			"brightness": p.Brightness,
			"contrast":   p.Contrast,
			"saturation": p.Saturation,
		}
	})
}

// NewBulgePinchFilter returns a lens warp centered on a width x height
// surface with a radius of three quarters of the width.
func NewBulgePinchFilter(p *BulgePinchParams, width, height int) *Filter {
	w, h := float64(width), float64(height)
	p.TexSize = [2]float64{w, h}
	p.Center = [2]float64{w / 2, h / 2}
	p.Radius = w * 0.75
	return NewFilter("bulge-pinch", BulgePinchFragmentShader, func() Params {
		return Params{
			"texSize":  p.TexSize,
			"center":   p.Center,
			"radius":   p.Radius,
			"strength": p.Strength,
		}
	})
}

// NewVignetteFilter returns a filter reading p on every pass.
func NewVignetteFilter(p *VignetteParams) *Filter {
	return NewFilter("vignette", VignetteFragmentShader, func() Params {
		return Params{
			"size":   p.Size,
			"amount": p.Amount,
		}
	})
}
