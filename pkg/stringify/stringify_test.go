package stringify

import (
	"math"
	"strings"
	"testing"
)

type summary struct{ name string }

func (s summary) Render() string { return "<" + s.name + ">" }

func TestSerializePrimitives(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"undefined", Undefined, "undefined"},
		{"string", "abc", `"abc"`},
		{"empty string", "", `""`},
		{"embedded quotes are not escaped", `say "hi"`, `"say "hi""`},
		{"escaped line break kept verbatim", `a\nb`, `"a\nb"`},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 42, "42"},
		{"negative int", int64(-7), "-7"},
		{"uint", uint8(255), "255"},
		{"integral float", 3.0, "3"},
		{"fraction", 1.5, "1.5"},
		{"float32", float32(0.1), "0.1"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"large", 1e21, "1e+21"},
		{"small", 1e-7, "1e-7"},
		{"nan", math.NaN(), "NaN"},
		{"inf", math.Inf(1), "Infinity"},
		{"-inf", math.Inf(-1), "-Infinity"},
		{"nil map pointer", (*Map)(nil), "null"},
		{"int keyed map", map[int]string{1: "a"}, `"[map[int]string]"`},
		{"channel", make(chan int), `"[chan int]"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Serialize(tt.in, 2); got != tt.want {
				t.Errorf("Serialize() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSerializeEscapeQuotes(t *testing.T) {
	s := Serializer{EscapeQuotes: true}
	if got, want := s.Serialize(`say "hi"`), `"say \"hi\""`; got != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
	if got, want := s.Serialize(NewMap().Set(`k"`, "v")), `{ "k\"": "v" }`; got != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
}

func TestSerializeEmptyContainers(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		indent int
		want   string
	}{
		{"empty slice", []any{}, 0, "[]"},
		{"empty slice indented", []any{}, 2, "[]"},
		{"nil string slice", []string(nil), 2, "[]"},
		{"empty map", NewMap(), 0, "{}"},
		{"empty map indented", NewMap(), 4, "{}"},
		{"only undefined values", NewMap().Set("a", Undefined), 2, "{}"},
		{"empty go map", map[string]int{}, 2, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Serialize(tt.in, tt.indent); got != tt.want {
				t.Errorf("Serialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSerializeRegionResult(t *testing.T) {
	m := NewMap().Set("Artboard 1", []string{"a", "b"})

	want := strings.Join([]string{
		"{",
		`  "Artboard 1": [`,
		`    "a",`,
		`    "b"`,
		"  ]",
		"}",
	}, "\n")

	if got := Serialize(m, 2); got != want {
		t.Errorf("Serialize() =\n%s\nwant\n%s", got, want)
	}
}

func TestSerializeSingleLine(t *testing.T) {
	m := NewMap().
		Set("b", []any{1, "x", nil, true}).
		Set("a", NewMap().Set("n", 1.25))

	want := `{ "b": [ 1, "x", null, true ], "a": { "n": 1.25 } }`
	if got := Serialize(m, 0); got != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
}

func TestSerializeIndentWidth(t *testing.T) {
	got := Serialize([]any{[]any{1}}, 4)
	want := "[\n    [\n        1\n    ]\n]"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeUndefinedAsymmetry(t *testing.T) {
	seq := []any{"a", Undefined, "b"}
	if got, want := Serialize(seq, 0), `[ "a", undefined, "b" ]`; got != want {
		t.Errorf("sequence: Serialize() = %s, want %s", got, want)
	}

	m := NewMap().Set("a", 1).Set("gone", Undefined).Set("b", nil)
	if got, want := Serialize(m, 0), `{ "a": 1, "b": null }`; got != want {
		t.Errorf("mapping: Serialize() = %s, want %s", got, want)
	}

	gm := map[string]any{"x": Undefined, "y": 2}
	if got, want := Serialize(gm, 0), `{ "y": 2 }`; got != want {
		t.Errorf("go map: Serialize() = %s, want %s", got, want)
	}
}

func TestSerializeKeepsInsertionOrder(t *testing.T) {
	m := NewMap().Set("zeta", 1).Set("alpha", 2).Set("mid", 3)
	m.Set("zeta", 4)

	want := `{ "zeta": 4, "alpha": 2, "mid": 3 }`
	if got := Serialize(m, 0); got != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
}

func TestSerializeGoMapSortsKeys(t *testing.T) {
	m := map[string][]string{"b": {"2"}, "a": {"1"}}
	if got, want := Serialize(m, 0), `{ "a": [ "1" ], "b": [ "2" ] }`; got != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
}

func TestSerializeRenderer(t *testing.T) {
	v := NewMap().Set("items", []any{summary{"one"}, &summary{"two"}})

	want := `{ "items": [ <one>, <two> ] }`
	if got := Serialize(v, 0); got != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
}

func TestSerializeCycles(t *testing.T) {
	t.Run("mapping nested one level", func(t *testing.T) {
		root := NewMap()
		child := NewMap().Set("parent", root)
		root.Set("name", "root").Set("child", child)

		want := strings.Join([]string{
			"{",
			`  "name": "root",`,
			`  "child": {`,
			`    "parent": "[CIRCULAR]"`,
			"  }",
			"}",
		}, "\n")
		if got := Serialize(root, 2); got != want {
			t.Errorf("Serialize() =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("direct self reference", func(t *testing.T) {
		m := NewMap()
		m.Set("self", m)
		if got, want := Serialize(m, 0), `{ "self": "[CIRCULAR]" }`; got != want {
			t.Errorf("Serialize() = %s, want %s", got, want)
		}
	})

	t.Run("slice containing itself", func(t *testing.T) {
		s := []any{1, nil}
		s[1] = s
		if got, want := Serialize(s, 0), `[ 1, "[CIRCULAR]" ]`; got != want {
			t.Errorf("Serialize() = %s, want %s", got, want)
		}
	})

	t.Run("indirect through mapping and sequence", func(t *testing.T) {
		a := NewMap()
		b := NewMap()
		c := []any{a}
		a.Set("b", b)
		b.Set("c", c)

		want := `{ "b": { "c": [ "[CIRCULAR]" ] } }`
		if got := Serialize(a, 0); got != want {
			t.Errorf("Serialize() = %s, want %s", got, want)
		}
	})

	t.Run("pointer cycle", func(t *testing.T) {
		s := make([]any, 1)
		p := &s
		s[0] = p
		if got, want := Serialize(p, 0), `[ "[CIRCULAR]" ]`; got != want {
			t.Errorf("Serialize() = %s, want %s", got, want)
		}
	})

	t.Run("through an unsupported value", func(t *testing.T) {
		type holder struct{ M *Map }
		root := NewMap()
		root.Set("h", holder{M: root}).Set("p", &holder{M: root})

		want := `{ "h": "[stringify.holder]", "p": "[stringify.holder]" }`
		if got := Serialize(root, 0); got != want {
			t.Errorf("Serialize() = %s, want %s", got, want)
		}
	})

	t.Run("shared sibling is not circular", func(t *testing.T) {
		shared := NewMap().Set("v", 1)
		root := NewMap().Set("a", shared).Set("b", shared)

		want := `{ "a": { "v": 1 }, "b": { "v": 1 } }`
		if got := Serialize(root, 0); got != want {
			t.Errorf("Serialize() = %s, want %s", got, want)
		}
	})
}

func TestMap(t *testing.T) {
	m := NewMap().Set("a", 1).Set("b", 2).Set("c", 3)
	m.Delete("b")
	m.Delete("missing")

	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Errorf("Keys() = %v, want [a c]", keys)
	}
	if v, ok := m.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) = %v, %v, want 3, true", v, ok)
	}
	if _, ok := m.Get("b"); ok {
		t.Error("Get(b) ok = true after Delete")
	}

	var zero Map
	zero.Set("x", 1)
	if zero.Len() != 1 {
		t.Errorf("zero Map Len() = %d, want 1", zero.Len())
	}
}
