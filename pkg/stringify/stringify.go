// Package stringify renders nested values (sequences, insertion-ordered
// mappings and primitives) as JSON-like text.
//
// It differs from encoding/json on purpose:
//
//   - mapping keys keep insertion order (see [Map]);
//   - a value that refers back to one of the values currently being
//     rendered is printed as "[CIRCULAR]" instead of recursing;
//   - values implementing [Renderer] are printed verbatim through their
//     Render method;
//   - [Undefined] is printed as the bare token undefined inside sequences
//     but its key is dropped inside mappings;
//   - strings are wrapped in double quotes without escaping, unless
//     [Serializer.EscapeQuotes] is set;
//   - any other value (structs, channels, maps with non-string keys) is
//     printed as its quoted type name in brackets, e.g. "[main.T]", and is
//     never walked.
//
// With an indent of 0 the output is a single line, e.g.
//
//	{ "Artboard 1": [ "a", "b" ] }
//
// and with an indent of 2:
//
//	{
//	  "Artboard 1": [
//	    "a",
//	    "b"
//	  ]
//	}
package stringify

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Circular is the placeholder printed at the point a cycle recurs.
const Circular = "[CIRCULAR]"

// Renderer is implemented by values that want a one-line summary instead
// of a structural expansion.
type Renderer interface {
	Render() string
}

type undefined struct{}

// Undefined marks an absent value.
var Undefined any = undefined{}

// Serializer renders values. The zero value renders on a single line.
type Serializer struct {
	Indent       int  // spaces per nesting level; 0 means single line
	EscapeQuotes bool // escape embedded double quotes as \"
}

// Serialize renders v with the given indent width.
func Serialize(v any, indent int) string {
	return Serializer{Indent: indent}.Serialize(v)
}

// Serialize renders v.
func (s Serializer) Serialize(v any) string {
	return s.stringify(v, 0, nil)
}

// ref identifies a container by address, kind and length.
type ref struct {
	kind reflect.Kind
	ptr  uintptr
	n    int
}

func identity(rv reflect.Value) (ref, bool) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return ref{}, false
		}
		return ref{kind: rv.Kind(), ptr: rv.Pointer()}, true
	case reflect.Slice:
		if rv.Len() == 0 {
			return ref{}, false
		}
		return ref{kind: reflect.Slice, ptr: rv.Pointer(), n: rv.Len()}, true
	}
	return ref{}, false
}

func (s Serializer) stringify(v any, lv int, path []ref) string {
	if v == nil {
		return "null"
	}
	if _, ok := v.(undefined); ok {
		return "undefined"
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "null"
	}

	id, hasID := identity(rv)
	if hasID && slices.Contains(path, id) {
		return s.quote(Circular)
	}

	if r, ok := v.(Renderer); ok {
		return r.Render()
	}

	var next []ref
	if hasID {
		next = append(path[:len(path):len(path)], id)
	}

	if m, ok := v.(*Map); ok {
		tokens := make([]string, 0, len(m.keys))
		for _, k := range m.keys {
			val := m.values[k]
			if _, skip := val.(undefined); skip {
				continue
			}
			tokens = append(tokens, s.quote(k)+": "+s.stringify(val, lv+1, next))
		}
		return s.printObj("{", tokens, "}", lv)
	}

	switch rv.Kind() {
	case reflect.String:
		return s.quote(rv.String())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatNumber(rv.Float(), 32)
	case reflect.Float64:
		return formatNumber(rv.Float(), 64)
	case reflect.Pointer:
		return s.stringify(rv.Elem().Interface(), lv, next)
	case reflect.Slice, reflect.Array:
		tokens := make([]string, rv.Len())
		for i := range tokens {
			tokens[i] = s.stringify(rv.Index(i).Interface(), lv+1, next)
		}
		return s.printObj("[", tokens, "]", lv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		byName := make(map[string]reflect.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			keys = append(keys, k)
			byName[k] = iter.Value()
		}
		slices.Sort(keys)
		tokens := make([]string, 0, len(keys))
		for _, k := range keys {
			val := byName[k].Interface()
			if _, skip := val.(undefined); skip {
				continue
			}
			tokens = append(tokens, s.quote(k)+": "+s.stringify(val, lv+1, next))
		}
		return s.printObj("{", tokens, "}", lv)
	}

	return s.quote(fmt.Sprintf("[%T]", v))
}

func (s Serializer) quote(str string) string {
	if s.EscapeQuotes {
		str = strings.ReplaceAll(str, `"`, `\"`)
	}
	return `"` + str + `"`
}

// sp returns the separator that precedes an element at level lv.
func (s Serializer) sp(lv int) string {
	if s.Indent <= 0 {
		return " "
	}
	return "\n" + strings.Repeat(" ", lv*s.Indent)
}

func (s Serializer) printObj(lp string, tokens []string, rp string, lv int) string {
	if len(tokens) == 0 {
		return lp + rp
	}
	inner := s.sp(lv + 1)
	return lp + inner + strings.Join(tokens, ","+inner) + s.sp(lv) + rp
}

// formatNumber prints f the way a JavaScript engine converts a number to
// a string: no trailing zeros, exponent form outside [1e-6, 1e21).
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		str := strconv.FormatFloat(f, 'e', -1, bitSize)
		str = strings.Replace(str, "e-0", "e-", 1)
		return strings.Replace(str, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
