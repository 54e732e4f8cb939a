// Package export writes the rendered output to the file the user picks.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultFileName is suggested by the save dialog.
	DefaultFileName = "~/Desktop/text-contents.json"
	// DefaultPrompt is shown by the save dialog.
	DefaultPrompt = "Export TextFrames As"
)

// FileHost presents a save dialog. A nil Handle with a nil error means the
// user canceled.
type FileHost interface {
	SaveDialog(defaultName, prompt string) (Handle, error)
}

// Handle is a writable file chosen by the user.
type Handle interface {
	Path() string
	Open(mode string) error
	Write(text string) error
	Close() error
}

// Options tune Write.
type Options struct {
	DefaultFileName string
	Prompt          string
	Logger          Logger
}

// Logger is the subset of the application logger used by Write.
type Logger interface {
	Infof(format string, args ...any)
}

// Outcome describes a finished Write.
type Outcome struct {
	Path     string
	Canceled bool
	Bytes    int
}

// Write asks host for a destination and writes text to it. Cancellation is
// not an error. The handle is closed on every path once opened.
func Write(host FileHost, text string, opts Options) (out Outcome, err error) {
	if opts.DefaultFileName == "" {
		opts.DefaultFileName = DefaultFileName
	}
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}

	h, err := host.SaveDialog(ExpandHome(opts.DefaultFileName), opts.Prompt)
	if err != nil {
		return out, fmt.Errorf("save dialog: %w", err)
	}
	if h == nil {
		if opts.Logger != nil {
			opts.Logger.Infof("Saving canceled")
		}
		return Outcome{Canceled: true}, nil
	}

	if opts.Logger != nil {
		opts.Logger.Infof("Export data as: %s", h.Path())
	}

	if err := h.Open("w"); err != nil {
		return out, fmt.Errorf("open %s: %w", h.Path(), err)
	}
	defer func() {
		if cerr := h.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", h.Path(), cerr)
		}
	}()

	if err := h.Write(text); err != nil {
		return out, fmt.Errorf("write %s: %w", h.Path(), err)
	}

	return Outcome{Path: h.Path(), Bytes: len(text)}, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Static is a FileHost without a dialog: it always picks Path, or the
// suggested default name when Path is empty.
type Static struct {
	Path string
}

// SaveDialog implements FileHost.
func (s Static) SaveDialog(defaultName, _ string) (Handle, error) {
	path := s.Path
	if path == "" {
		path = defaultName
	}
	return NewFile(ExpandHome(path)), nil
}
