package formatter

import (
	"strings"
	"testing"

	"github.com/kataras/textframes/pkg/extract"
)

func sampleResult() *extract.Result {
	res := extract.NewResult()
	res.Set("Artboard 1", []string{"a", "b"})
	res.Set("Artboard 2", []string{})
	res.Set("Cover_Page", []string{`line\nbreak`, "say `hi`"})
	return res
}

func TestRenderStructured(t *testing.T) {
	res := extract.NewResult()
	res.Set("Artboard 1", []string{"a", "b"})

	want := "{\n  \"Artboard 1\": [\n    \"a\",\n    \"b\"\n  ]\n}"
	if got := Render(res, Structured, Options{}); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}

	if got, want := Render(res, Structured, Options{Compact: true}), `{ "Artboard 1": [ "a", "b" ] }`; got != want {
		t.Errorf("Render(compact) = %s, want %s", got, want)
	}
}

func TestRenderStructuredQuotes(t *testing.T) {
	res := extract.NewResult()
	res.Set("A", []string{`"q"`})

	if got, want := Render(res, Structured, Options{Compact: true}), `{ "A": [ ""q"" ] }`; got != want {
		t.Errorf("Render() = %s, want %s", got, want)
	}
	if got, want := Render(res, Structured, Options{Compact: true, EscapeQuotes: true}), `{ "A": [ "\"q\"" ] }`; got != want {
		t.Errorf("Render(escape) = %s, want %s", got, want)
	}
}

func TestRenderLines(t *testing.T) {
	want := "a\nb\nline\\nbreak\nsay `hi`"
	if got := Render(sampleResult(), Lines, Options{}); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if got := Render(extract.NewResult(), Lines, Options{}); got != "" {
		t.Errorf("Render(empty) = %q, want empty", got)
	}

	dup := extract.NewResult()
	dup.Set("A", []string{"a"})
	dup.Set("A", []string{"b"})
	if got, want := Render(dup, Lines, Options{}), "a\nb"; got != want {
		t.Errorf("Render(same name) = %q, want %q", got, want)
	}
	if got, want := Render(dup, Structured, Options{Compact: true}), `{ "A": [ "b" ] }`; got != want {
		t.Errorf("Render(same name, structured) = %s, want %s", got, want)
	}
}

func TestRenderMarkdown(t *testing.T) {
	got := Render(sampleResult(), Markdown, Options{DocName: "Landing"})

	for _, want := range []string{
		"# Text Contents - Landing\n\n",
		"3 region(s), 4 text item(s).",
		"| [Artboard 1](#artboard-1) | 2 |",
		"| [Cover_Page](#cover-page) | 2 |",
		"## Artboard 1\n\n1. `a`\n2. `b`\n",
		"## Artboard 2\n\n_No text found._",
		"1. `line\\nbreak`",
		"2. `` say `hi` ``",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown missing %q in:\n%s", want, got)
		}
	}
}

func TestToMarkdownEmpty(t *testing.T) {
	got := ToMarkdown(extract.NewResult(), "")
	want := "# Text Contents\n\n0 region(s), 0 text item(s).\n\n"
	if got != want {
		t.Errorf("ToMarkdown() = %q, want %q", got, want)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", Structured, false},
		{"json", Structured, false},
		{"LINES", Lines, false},
		{"legacy", Lines, false},
		{"md", Markdown, false},
		{"xml", Structured, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Artboard 1", "artboard-1"},
		{"Cover_Page", "cover-page"},
		{"Hero / Mobile!", "hero--mobile"},
	}
	for _, tt := range tests {
		if got := toKebabCase(tt.in); got != tt.want {
			t.Errorf("toKebabCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
