package figma

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kataras/textframes/pkg/extract"
	"github.com/kataras/textframes/pkg/item"
)

// regionTypes are the top-level page children exported as regions.
var regionTypes = map[string]bool{
	"FRAME":         true,
	"COMPONENT":     true,
	"COMPONENT_SET": true,
	"SECTION":       true,
}

// HostOptions configure a Document.
type HostOptions struct {
	// Deep selects every visible descendant of a region instead of its
	// direct children only. Instances are never descended into.
	Deep bool
}

// Document exposes a Figma file as an extraction host. Regions are the
// top-level frames of every page, in page order.
type Document struct {
	name       string
	regions    []*Node
	components map[string]Component
	opts       HostOptions

	active    int
	selection []item.Object
}

var _ extract.Document = (*Document)(nil)

// NewDocument returns a host over the pages of file.
func NewDocument(file *FileResponse, opts HostOptions) *Document {
	d := &Document{
		name:       file.Name,
		components: file.Components,
		opts:       opts,
		active:     -1,
	}

	for i := range file.Document.Children {
		page := &file.Document.Children[i]
		if page.Type != "CANVAS" {
			continue
		}
		for j := range page.Children {
			if n := &page.Children[j]; regionTypes[n.Type] {
				d.regions = append(d.regions, n)
			}
		}
	}

	return d
}

// NewNodesDocument returns a host whose regions are the requested nodes, in
// the order of ids. IDs missing from resp, or resolved to null, are skipped.
func NewNodesDocument(resp *NodesResponse, ids []string, opts HostOptions) *Document {
	d := &Document{
		name:       resp.Name,
		components: make(map[string]Component),
		opts:       opts,
		active:     -1,
	}

	for _, id := range ids {
		data := resp.Nodes[id]
		if data == nil {
			continue
		}
		for k, c := range data.Components {
			d.components[k] = c
		}
		doc := data.Document
		d.regions = append(d.regions, &doc)
	}

	return d
}

// LoadFile decodes a Figma file JSON saved from the REST API.
func LoadFile(path string) (*FileResponse, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file FileResponse
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &file, nil
}

// Name returns the file name.
func (d *Document) Name() string { return d.name }

// Regions implements extract.Document.
func (d *Document) Regions() ([]extract.Region, error) {
	regions := make([]extract.Region, len(d.regions))
	for i, n := range d.regions {
		regions[i] = extract.Region{Name: n.Name}
	}
	return regions, nil
}

// SetActiveRegion implements extract.Document.
func (d *Document) SetActiveRegion(index int) error {
	if index < 0 || index >= len(d.regions) {
		return fmt.Errorf("region index %d out of range [0, %d)", index, len(d.regions))
	}
	d.active = index
	return nil
}

// ClearSelection implements extract.Document.
func (d *Document) ClearSelection() error {
	d.selection = nil
	return nil
}

// SelectAllInActiveRegion implements extract.Document. Z-order is the
// paint index: later siblings, and children after their parent, are in
// front.
func (d *Document) SelectAllInActiveRegion() error {
	if d.active < 0 {
		return fmt.Errorf("no active region")
	}

	var (
		z   float64
		sel []item.Object
	)
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for i := range nodes {
			n := &nodes[i]
			if !n.IsVisible() {
				continue
			}
			z++
			sel = append(sel, d.object(n, z))
			if d.opts.Deep && n.Type != "INSTANCE" {
				walk(n.Children)
			}
		}
	}
	walk(d.regions[d.active].Children)

	d.selection = sel
	return nil
}

// Selection implements extract.Document.
func (d *Document) Selection() ([]item.Object, error) {
	return d.selection, nil
}

func (d *Document) object(n *Node, z float64) item.Object {
	obj := item.Object{
		Kind:     n.Type,
		Name:     n.Name,
		Contents: n.Characters,
		ZOrder:   z,
	}
	if n.AbsoluteBoundingBox != nil {
		obj.Left = n.AbsoluteBoundingBox.X
		obj.Top = n.AbsoluteBoundingBox.Y
	}
	if n.Type == "INSTANCE" {
		obj.Reference = n.Name
		if c, ok := d.components[n.ComponentID]; ok && c.Name != "" {
			obj.Reference = c.Name
		}
	}
	return obj
}
