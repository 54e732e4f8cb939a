// Package document is an extraction host over a document snapshot stored
// as YAML or JSON. It stands in for a live design application in tests
// and offline runs.
package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kataras/textframes/pkg/extract"
	"github.com/kataras/textframes/pkg/item"
)

// Snapshot is the stored form of a document.
type Snapshot struct {
	Name    string   `yaml:"name" json:"name"`
	Regions []Region `yaml:"regions" json:"regions"`
}

// Region is one artboard of a snapshot.
type Region struct {
	Name    string   `yaml:"name" json:"name"`
	Objects []Object `yaml:"objects" json:"objects"`
}

// Object is one page item of a region.
type Object struct {
	Kind     string  `yaml:"kind" json:"kind"`
	Name     string  `yaml:"name,omitempty" json:"name,omitempty"`
	Contents string  `yaml:"contents,omitempty" json:"contents,omitempty"`
	Symbol   string  `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Left     float64 `yaml:"left" json:"left"`
	Top      float64 `yaml:"top" json:"top"`
	Z        float64 `yaml:"z" json:"z"`
}

// Parse decodes a snapshot. JSON input is accepted as a YAML subset.
func Parse(b []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &s, nil
}

// Load reads and parses the snapshot at path.
func Load(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Host serves a Snapshot through extract.Document. It keeps an explicit
// selection so callers can observe that it is cleared between regions.
type Host struct {
	snap      *Snapshot
	active    int
	selection []item.Object
}

var _ extract.Document = (*Host)(nil)

// NewHost returns a host over s with no active region.
func NewHost(s *Snapshot) *Host {
	return &Host{snap: s, active: -1}
}

// Name returns the document name.
func (h *Host) Name() string { return h.snap.Name }

// Regions implements extract.Document.
func (h *Host) Regions() ([]extract.Region, error) {
	out := make([]extract.Region, len(h.snap.Regions))
	for i, r := range h.snap.Regions {
		out[i] = extract.Region{Name: r.Name}
	}
	return out, nil
}

// SetActiveRegion implements extract.Document.
func (h *Host) SetActiveRegion(index int) error {
	if index < 0 || index >= len(h.snap.Regions) {
		return fmt.Errorf("region index %d out of range [0, %d)", index, len(h.snap.Regions))
	}
	h.active = index
	return nil
}

// ClearSelection implements extract.Document.
func (h *Host) ClearSelection() error {
	h.selection = nil
	return nil
}

// SelectAllInActiveRegion implements extract.Document. Selecting adds to
// the current selection, like a design application does.
func (h *Host) SelectAllInActiveRegion() error {
	if h.active < 0 {
		return fmt.Errorf("no active region")
	}
	for _, o := range h.snap.Regions[h.active].Objects {
		h.selection = append(h.selection, item.Object{
			Kind:      o.Kind,
			Name:      o.Name,
			Contents:  o.Contents,
			Reference: o.Symbol,
			Left:      o.Left,
			Top:       o.Top,
			ZOrder:    o.Z,
		})
	}
	return nil
}

// Selection implements extract.Document.
func (h *Host) Selection() ([]item.Object, error) {
	return h.selection, nil
}
