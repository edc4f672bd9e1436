package fx

import "image"

// Handles returned by a Device. Zero is never a valid handle.
type (
	Shader          uint32
	Program         uint32
	Buffer          uint32
	Texture         uint32
	UniformLocation int32
)

// ShaderKind selects the pipeline stage of a shader.
type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	if k == VertexShader {
		return "vertex"
	}
	return "fragment"
}

// ActiveUniform describes one active uniform of a linked program, as
// reported by the driver.
type ActiveUniform struct {
	Name string
	Size int
	Type GLenum
}

// Device is the subset of a GL ES 2.0 style context the renderer needs.
// Implementations live in fx/opengl (hardware) and fx/soft (software).
//
// A Device is owned by one goroutine.
type Device interface {
	CreateShader(kind ShaderKind) Shader
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	ActiveUniformCount(p Program) int
	ActiveUniform(p Program, index int) (ActiveUniform, bool)
	UniformLocation(p Program, name string) (UniformLocation, bool)
	Uniform1fv(loc UniformLocation, v []float32)
	Uniform2fv(loc UniformLocation, v []float32)
	Uniform3fv(loc UniformLocation, v []float32)
	Uniform4fv(loc UniformLocation, v []float32)
	Uniform1iv(loc UniformLocation, v []int32)
	Uniform2iv(loc UniformLocation, v []int32)
	Uniform3iv(loc UniformLocation, v []int32)
	Uniform4iv(loc UniformLocation, v []int32)

	CreateBuffer() Buffer
	BindArrayBuffer(b Buffer)
	BufferData(data []float32)
	AttribLocation(p Program, name string) (uint32, bool)
	VertexAttribPointer(index uint32, size int)
	EnableVertexAttribArray(index uint32)
	DeleteBuffer(b Buffer)

	CreateTexture() Texture
	BindTexture(t Texture)
	TexImage2D(img image.Image)
	DeleteTexture(t Texture)

	DrawingBufferSize() (width, height int)
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear()
	DrawArrays(first, count int)
	ReadPixels() *image.RGBA
}
