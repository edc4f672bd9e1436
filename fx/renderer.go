package fx

import (
	"fmt"
	"image"
	"maps"
	"slices"
)

// quadVertices are two triangles covering clip space.
var quadVertices = []float32{-1, -1, -1, 1, 1, 1, -1, -1, 1, 1, 1, -1}

// Renderer chains filters over a source image. Every pass draws the shared
// quad with the previous pass's output as its only texture.
//
// The renderer owns the vertex shader, the quad buffer, the texture and the
// filters' programs until Close.
type Renderer struct {
	dev     Device
	filters []*Filter

	vertexShader Shader
	quad         Buffer
	texture      Texture

	current  Program
	uniforms map[string]uniformInfo

	output *image.RGBA
	closed bool
}

// NewRenderer creates a renderer for dev. Without filters it runs the
// pass-through filter.
func NewRenderer(dev Device, filters ...*Filter) (*Renderer, error) {
	if dev == nil {
		return nil, ErrNoDevice
	}
	if len(filters) == 0 {
		filters = []*Filter{NewBaseFilter()}
	}
	return &Renderer{dev: dev, filters: filters}, nil
}

// Filters returns the passes in pipeline order.
func (r *Renderer) Filters() []*Filter {
	return r.filters
}

// Prepare compiles and links every program so shader errors surface before
// the first frame.
func (r *Renderer) Prepare() error {
	if r.closed {
		return ErrClosed
	}
	vs, err := r.getVertexShader()
	if err != nil {
		return err
	}
	for _, f := range r.filters {
		if _, err := f.Program(r.dev, vs); err != nil {
			return fmt.Errorf("fx: prepare %s: %w", f.Name(), err)
		}
	}
	return nil
}

func (r *Renderer) getVertexShader() (Shader, error) {
	if r.vertexShader != 0 {
		return r.vertexShader, nil
	}
	vs, err := compileShader(r.dev, VertexShader, BaseVertexShader)
	if err != nil {
		return 0, err
	}
	r.vertexShader = vs
	return vs, nil
}

func (r *Renderer) useProgram(p Program) {
	r.dev.UseProgram(p)
	if p != r.current || r.uniforms == nil {
		r.current = p
		r.uniforms = introspect(r.dev, p)
	}
}

// bindParameter uploads one uniform of the active program.
func (r *Renderer) bindParameter(name string, value any) bool {
	return bindUniform(r.dev, r.uniforms, name, value)
}

func (r *Renderer) setBufferAndPositionAttribute(p Program) {
	if r.quad == 0 {
		r.quad = r.dev.CreateBuffer()
		r.dev.BindArrayBuffer(r.quad)
		r.dev.BufferData(quadVertices)
	}
	r.dev.BindArrayBuffer(r.quad)
	if loc, ok := r.dev.AttribLocation(p, "position"); ok {
		r.dev.VertexAttribPointer(loc, 2)
		r.dev.EnableVertexAttribArray(loc)
	}
}

func (r *Renderer) setImageTexture(img image.Image) {
	if r.texture == 0 {
		r.texture = r.dev.CreateTexture()
	}
	r.dev.BindTexture(r.texture)
	r.dev.TexImage2D(img)
}

// RenderImage runs every pass over src. The result is available from
// Output. Uniform mismatches are logged and skipped; only program errors
// are returned.
func (r *Renderer) RenderImage(src image.Image) error {
	if r.closed {
		return ErrClosed
	}
	w, h := r.dev.DrawingBufferSize()
	r.dev.Viewport(0, 0, w, h)

	vs, err := r.getVertexShader()
	if err != nil {
		return err
	}

	img := src
	for _, f := range r.filters {
		p, err := f.Program(r.dev, vs)
		if err != nil {
			return fmt.Errorf("fx: %s: %w", f.Name(), err)
		}
		r.useProgram(p)
		r.setBufferAndPositionAttribute(p)
		r.setImageTexture(img)

		params := f.Params()
		for _, name := range slices.Sorted(maps.Keys(params)) {
			r.bindParameter(name, params[name])
		}

		r.dev.ClearColor(1, 1, 1, 1)
		r.dev.Clear()
		r.dev.DrawArrays(0, 6)

		out := r.dev.ReadPixels()
		r.output = out
		img = out
	}
	return nil
}

// Output returns the result of the last RenderImage, or nil.
func (r *Renderer) Output() *image.RGBA {
	return r.output
}

// Close releases every GL object owned by the renderer. It is safe to call
// more than once.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	for _, f := range r.filters {
		f.release(r.dev)
	}
	if r.vertexShader != 0 {
		r.dev.DeleteShader(r.vertexShader)
		r.vertexShader = 0
	}
	if r.quad != 0 {
		r.dev.DeleteBuffer(r.quad)
		r.quad = 0
	}
	if r.texture != 0 {
		r.dev.DeleteTexture(r.texture)
		r.texture = 0
	}
	r.current = 0
	r.uniforms = nil
	slogger().Debug("fx: renderer closed", "filters", len(r.filters))
	return nil
}
