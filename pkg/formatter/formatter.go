// Package formatter turns an extraction result into the text written to
// the output file.
package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/textframes/pkg/extract"
	"github.com/kataras/textframes/pkg/stringify"
)

// Mode selects the output format.
type Mode int

const (
	// Structured writes a JSON-like mapping from region name to labels.
	Structured Mode = iota
	// Lines writes every label on its own line, region after region.
	Lines
	// Markdown writes a report with one section per region.
	Markdown
)

var modeNames = map[Mode]string{
	Structured: "json",
	Lines:      "lines",
	Markdown:   "markdown",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Ext returns the conventional file extension of the mode.
func (m Mode) Ext() string {
	switch m {
	case Lines:
		return ".txt"
	case Markdown:
		return ".md"
	default:
		return ".json"
	}
}

// ParseMode accepts json (or structured), lines (or text, legacy) and
// markdown (or md).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json", "structured":
		return Structured, nil
	case "lines", "text", "legacy":
		return Lines, nil
	case "markdown", "md":
		return Markdown, nil
	}
	return Structured, fmt.Errorf("unknown output mode %q (must be json, lines or markdown)", s)
}

// Options tune Render.
type Options struct {
	Indent       int    // Structured only; 2 when zero and Compact is false
	Compact      bool   // Structured only; single-line output
	EscapeQuotes bool   // Structured only
	DocName      string // Markdown title
}

// Render formats res in the given mode.
func Render(res *extract.Result, mode Mode, opts Options) string {
	switch mode {
	case Lines:
		return strings.Join(res.Flatten(), "\n")
	case Markdown:
		return ToMarkdown(res, opts.DocName)
	default:
		indent := opts.Indent
		if opts.Compact {
			indent = 0
		} else if indent == 0 {
			indent = 2
		}
		s := stringify.Serializer{Indent: indent, EscapeQuotes: opts.EscapeQuotes}
		return s.Serialize(res.Value())
	}
}
