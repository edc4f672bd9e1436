package canvas

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Draw a 768x576 scene onto a surface twice as large.
//	dc := canvas.NewContext(1536, 1152, canvas.WithTransform(canvas.Scale(2, 2)))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	pixmap    *Pixmap
	transform Matrix
	smoothing bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		transform: Identity(),
		smoothing: true,
	}
}

// WithPixmap sets a custom pixmap for the Context.
// The pixmap dimensions should match the Context dimensions.
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// WithTransform sets the base transform every drawing starts from.
// Hosts use it to map the logical frame onto a larger or smaller surface.
func WithTransform(m Matrix) ContextOption {
	return func(o *contextOptions) {
		o.transform = m
	}
}

// WithImageSmoothing sets the initial image smoothing flag.
func WithImageSmoothing(enabled bool) ContextOption {
	return func(o *contextOptions) {
		o.smoothing = enabled
	}
}
