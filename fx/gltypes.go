package fx

import "fmt"

// GLenum is a GL type constant as reported for active uniforms.
type GLenum uint32

// Uniform type constants shared by GL ES 2.0 and desktop GL.
const (
	GLInt       GLenum = 0x1404
	GLFloat     GLenum = 0x1406
	GLFloatVec2 GLenum = 0x8B50
	GLFloatVec3 GLenum = 0x8B51
	GLFloatVec4 GLenum = 0x8B52
	GLIntVec2   GLenum = 0x8B53
	GLIntVec3   GLenum = 0x8B54
	GLIntVec4   GLenum = 0x8B55
	GLBool      GLenum = 0x8B56
	GLBoolVec2  GLenum = 0x8B57
	GLBoolVec3  GLenum = 0x8B58
	GLBoolVec4  GLenum = 0x8B59
	GLFloatMat4 GLenum = 0x8B5C
	GLSampler2D GLenum = 0x8B5E
)

var glEnumNames = map[GLenum]string{
	GLInt:       "INT",
	GLFloat:     "FLOAT",
	GLFloatVec2: "FLOAT_VEC2",
	GLFloatVec3: "FLOAT_VEC3",
	GLFloatVec4: "FLOAT_VEC4",
	GLIntVec2:   "INT_VEC2",
	GLIntVec3:   "INT_VEC3",
	GLIntVec4:   "INT_VEC4",
	GLBool:      "BOOL",
	GLBoolVec2:  "BOOL_VEC2",
	GLBoolVec3:  "BOOL_VEC3",
	GLBoolVec4:  "BOOL_VEC4",
	GLFloatMat4: "FLOAT_MAT4",
	GLSampler2D: "SAMPLER_2D",
}

func (e GLenum) String() string {
	if name, ok := glEnumNames[e]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint32(e))
}

// UniformKind is the binding shape of a uniform.
type UniformKind int

const (
	KindUnsupported UniformKind = iota
	KindFloat
	KindVec2
	KindVec3
	KindVec4
	KindInt
	KindIVec2
	KindIVec3
	KindIVec4
)

// KindOf maps a driver type constant to its binding shape. Booleans bind
// through the integer calls.
func KindOf(t GLenum) UniformKind {
	switch t {
	case GLFloat:
		return KindFloat
	case GLFloatVec2:
		return KindVec2
	case GLFloatVec3:
		return KindVec3
	case GLFloatVec4:
		return KindVec4
	case GLInt, GLBool:
		return KindInt
	case GLIntVec2, GLBoolVec2:
		return KindIVec2
	case GLIntVec3, GLBoolVec3:
		return KindIVec3
	case GLIntVec4, GLBoolVec4:
		return KindIVec4
	}
	return KindUnsupported
}

// components returns the vector length of k and whether it is float.
func (k UniformKind) components() (n int, float bool) {
	switch k {
	case KindFloat:
		return 1, true
	case KindVec2:
		return 2, true
	case KindVec3:
		return 3, true
	case KindVec4:
		return 4, true
	case KindInt:
		return 1, false
	case KindIVec2:
		return 2, false
	case KindIVec3:
		return 3, false
	case KindIVec4:
		return 4, false
	}
	return 0, false
}
