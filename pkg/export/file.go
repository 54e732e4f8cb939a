package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var errNotOpen = errors.New("file not open")

var unixLineFeeds = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// File is a Handle backed by the local file system. Text is written as
// UTF-8 with Unix line feeds.
type File struct {
	path string
	f    *os.File
}

// NewFile returns an unopened File for path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path implements Handle.
func (f *File) Path() string { return f.path }

// Open opens the file in mode "w" (truncate) or "a" (append), creating
// missing parent directories.
func (f *File) Open(mode string) error {
	if f.f != nil {
		return fmt.Errorf("%s already open", f.path)
	}

	flags := os.O_WRONLY | os.O_CREATE
	switch mode {
	case "w":
		flags |= os.O_TRUNC
	case "a":
		flags |= os.O_APPEND
	default:
		return fmt.Errorf("unsupported open mode %q", mode)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", f.path, err)
	}

	file, err := os.OpenFile(f.path, flags, 0644)
	if err != nil {
		return err
	}
	f.f = file
	return nil
}

// Write implements Handle.
func (f *File) Write(text string) error {
	if f.f == nil {
		return errNotOpen
	}
	_, err := io.WriteString(f.f, unixLineFeeds.Replace(text))
	return err
}

// Close implements Handle. Closing twice is a no-op.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}
