package prompt

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/kataras/textframes/pkg/extract"
)

// DefaultBarWidth is the bar width used when none is configured.
const DefaultBarWidth = 40

// maxMessage bounds the message printed next to the bar.
const maxMessage = 60

// Palette is a single-line progress indicator redrawn in place on w.
type Palette struct {
	mu     sync.Mutex
	w      io.Writer
	title  string
	width  int
	line   string
	drawn  bool
	closed bool
}

var _ extract.Progress = (*Palette)(nil)

// NewPalette returns a palette titled title. A width below one selects
// DefaultBarWidth.
func NewPalette(w io.Writer, title string, width int) *Palette {
	if width < 1 {
		width = DefaultBarWidth
	}
	return &Palette{w: w, title: title, width: width}
}

// Set redraws the bar at ratio, clamped to [0, 1], followed by message.
// Calls after Close are ignored.
func (p *Palette) Set(ratio float64, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	ratio = max(0, min(ratio, 1))
	full := int(ratio * float64(p.width))
	bar := styleBarFull.Render(strings.Repeat("█", full)) +
		styleBarEmpty.Render(strings.Repeat("░", p.width-full))

	if utf8.RuneCountInString(message) > maxMessage {
		message = string([]rune(message)[:maxMessage-1]) + "…"
	}

	p.line = fmt.Sprintf("%s %s %3.0f%% %s", styleTitle.Render(p.title), bar, ratio*100, styleDim.Render(message))
	fmt.Fprint(p.w, clearLine+p.line)
	p.drawn = true
}

const clearLine = "\r\033[K"

// Writer returns a writer for output that shares the terminal with the bar,
// such as a logger. Each write clears the bar line first and redraws the bar
// after it, until Close.
func (p *Palette) Writer(w io.Writer) io.Writer {
	return &paletteWriter{p: p, w: w}
}

type paletteWriter struct {
	p *Palette
	w io.Writer
}

func (pw *paletteWriter) Write(b []byte) (int, error) {
	p := pw.p
	p.mu.Lock()
	defer p.mu.Unlock()

	active := p.drawn && !p.closed
	if active {
		fmt.Fprint(p.w, clearLine)
	}
	n, err := pw.w.Write(b)
	if active {
		fmt.Fprint(p.w, clearLine+p.line)
	}
	return n, err
}

// Close ends the progress line. It is safe to call more than once.
func (p *Palette) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	if p.drawn {
		_, err := fmt.Fprint(p.w, "\n")
		return err
	}
	return nil
}
