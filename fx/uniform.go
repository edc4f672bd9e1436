package fx

import (
	"fmt"
	"reflect"
	"strings"
)

// Params is the parameter bag of a filter, keyed by uniform name.
//
// Scalars may be float64, float32, int, int32 or bool. Vectors may be plain
// Go arrays ([]float64, []int, [N]float64), which are converted on every
// bind, or the GL element types []float32 and []int32, which pass through.
type Params map[string]any

// uniformInfo is one entry of the uniform location map.
type uniformInfo struct {
	kind   UniformKind
	glType GLenum
	loc    UniformLocation
}

// introspect enumerates the active uniforms of p. Array uniforms are keyed
// by their base name.
func introspect(dev Device, p Program) map[string]uniformInfo {
	n := dev.ActiveUniformCount(p)
	uniforms := make(map[string]uniformInfo, n)
	for i := 0; i < n; i++ {
		u, ok := dev.ActiveUniform(p, i)
		if !ok {
			slogger().Warn("fx: missing active uniform", "index", i)
			continue
		}
		name := strings.TrimSuffix(u.Name, "[0]")
		loc, ok := dev.UniformLocation(p, name)
		if !ok {
			continue
		}
		uniforms[name] = uniformInfo{kind: KindOf(u.Type), glType: u.Type, loc: loc}
	}
	return uniforms
}

// bindUniform uploads value to the named uniform. Mismatches are logged and
// skipped. It reports whether the value was uploaded.
func bindUniform(dev Device, uniforms map[string]uniformInfo, name string, value any) bool {
	info, ok := uniforms[name]
	if !ok {
		slogger().Warn("fx: unknown uniform name", "uniform", name)
		return false
	}

	n, isFloat := info.kind.components()
	switch {
	case info.kind == KindUnsupported:
		slogger().Warn("fx: unknown uniform type", "uniform", name, "type", info.glType.String())
		return false

	case n == 1 && isFloat:
		f, ok := scalarFloat(value)
		if !ok {
			wrongType(name, info.glType, "number", value)
			return false
		}
		dev.Uniform1fv(info.loc, []float32{f})

	case n == 1:
		i, ok := scalarInt(value)
		if !ok {
			wrongType(name, info.glType, "number", value)
			return false
		}
		dev.Uniform1iv(info.loc, []int32{i})

	case isFloat:
		v, ok := floatVector(value)
		if !ok || len(v) != n {
			wrongType(name, info.glType, fmt.Sprintf("[]float32[%d]", n), value)
			return false
		}
		switch n {
		case 2:
			dev.Uniform2fv(info.loc, v)
		case 3:
			dev.Uniform3fv(info.loc, v)
		default:
			dev.Uniform4fv(info.loc, v)
		}

	default:
		v, ok := intVector(value)
		if !ok || len(v) != n {
			wrongType(name, info.glType, fmt.Sprintf("[]int32[%d]", n), value)
			return false
		}
		switch n {
		case 2:
			dev.Uniform2iv(info.loc, v)
		case 3:
			dev.Uniform3iv(info.loc, v)
		default:
			dev.Uniform4iv(info.loc, v)
		}
	}
	return true
}

func wrongType(name string, t GLenum, expected string, value any) {
	slogger().Warn("fx: wrong type for uniform",
		"uniform", name,
		"type", t.String(),
		"expected", expected,
		"actual", describe(value))
}

// describe renders a value's type, with the length for slices and arrays.
func describe(value any) string {
	if value == nil {
		return "nil"
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("%s[%d]", rv.Type(), rv.Len())
	}
	return rv.Type().String()
}

func scalarFloat(value any) (float32, bool) {
	switch v := value.(type) {
	case float64:
		return float32(v), true
	case float32:
		return v, true
	case int:
		return float32(v), true
	case int32:
		return float32(v), true
	}
	return 0, false
}

func scalarInt(value any) (int32, bool) {
	switch v := value.(type) {
	case int:
		return int32(v), true
	case int32:
		return v, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case float64:
		return int32(v), true
	case float32:
		return int32(v), true
	}
	return 0, false
}

func floatVector(value any) ([]float32, bool) {
	switch v := value.(type) {
	case []float32:
		return v, true
	case []float64:
		return toFloat32(v), true
	case []int:
		out := make([]float32, len(v))
		for i, x := range v {
			out[i] = float32(x)
		}
		return out, true
	case [2]float64:
		return toFloat32(v[:]), true
	case [3]float64:
		return toFloat32(v[:]), true
	case [4]float64:
		return toFloat32(v[:]), true
	}
	return nil, false
}

func intVector(value any) ([]int32, bool) {
	switch v := value.(type) {
	case []int32:
		return v, true
	case []int:
		out := make([]int32, len(v))
		for i, x := range v {
			out[i] = int32(x)
		}
		return out, true
	case []bool:
		out := make([]int32, len(v))
		for i, x := range v {
			if x {
				out[i] = 1
			}
		}
		return out, true
	case []float64:
		out := make([]int32, len(v))
		for i, x := range v {
			out[i] = int32(x)
		}
		return out, true
	}
	return nil, false
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}
