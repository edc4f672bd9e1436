package fx

// Filter is one pass of the pipeline: a fragment shader and a live source
// of uniform values. It owns at most one program, linked on first use.
type Filter struct {
	name   string
	source string
	params func() Params

	fragment Shader
	program  Program
}

// NewFilter creates a filter from fragment shader source. params is called
// on every pass to read the current uniform values and may be nil.
func NewFilter(name, source string, params func() Params) *Filter {
	return &Filter{name: name, source: source, params: params}
}

// NewBaseFilter returns the pass-through filter.
func NewBaseFilter() *Filter {
	return NewFilter("base", BaseFragmentShader, nil)
}

// Name returns the filter name used in logs.
func (f *Filter) Name() string {
	return f.name
}

// Source returns the fragment shader source.
func (f *Filter) Source() string {
	return f.source
}

// Params returns the current uniform values.
func (f *Filter) Params() Params {
	if f.params == nil {
		return nil
	}
	return f.params()
}

// Program returns the filter's program, compiling the fragment shader and
// linking it with vertexShader on the first call.
func (f *Filter) Program(dev Device, vertexShader Shader) (Program, error) {
	if f.program != 0 {
		return f.program, nil
	}
	if f.fragment == 0 {
		fs, err := compileShader(dev, FragmentShader, f.source)
		if err != nil {
			return 0, err
		}
		f.fragment = fs
	}
	p, err := linkProgram(dev, vertexShader, f.fragment)
	if err != nil {
		return 0, err
	}
	f.program = p
	slogger().Debug("fx: program linked", "filter", f.name)
	return p, nil
}

// release deletes the filter's GL objects.
func (f *Filter) release(dev Device) {
	if f.program != 0 {
		dev.DeleteProgram(f.program)
		f.program = 0
	}
	if f.fragment != 0 {
		dev.DeleteShader(f.fragment)
		f.fragment = 0
	}
}

func compileShader(dev Device, kind ShaderKind, source string) (Shader, error) {
	s := dev.CreateShader(kind)
	dev.ShaderSource(s, source)
	dev.CompileShader(s)
	if !dev.ShaderCompiled(s) {
		log := dev.ShaderInfoLog(s)
		dev.DeleteShader(s)
		return 0, &CompileError{Kind: kind, Message: lastLogLine(log), Log: log}
	}
	return s, nil
}

func linkProgram(dev Device, shaders ...Shader) (Program, error) {
	p := dev.CreateProgram()
	for _, s := range shaders {
		dev.AttachShader(p, s)
	}
	dev.LinkProgram(p)
	if !dev.ProgramLinked(p) {
		log := dev.ProgramInfoLog(p)
		dev.DeleteProgram(p)
		return 0, &LinkError{Message: lastLogLine(log), Log: log}
	}
	return p, nil
}
