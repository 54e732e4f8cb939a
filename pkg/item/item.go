// Package item classifies host selection entries into the two object
// kinds whose text can be exported: labeled items that carry their own
// text and referenced items that point at a named definition.
package item

import (
	"fmt"
	"math"
	"strconv"
)

// Object is a single entry of a host selection, already lifted out of the
// host's own object model. Kind uses the host vocabulary ("TextFrame",
// "TEXT", "SymbolItem", "INSTANCE", "GroupItem", ...).
type Object struct {
	Kind      string
	Name      string
	Contents  string // text content, labeled kinds only
	Reference string // name of the referenced definition, referenced kinds only
	Left      float64
	Top       float64
	ZOrder    float64
}

// Variant tags the two supported item kinds.
type Variant uint8

const (
	// Labeled items own their text (Illustrator TextFrame, Figma TEXT).
	Labeled Variant = iota + 1
	// Referenced items point at a definition (Illustrator SymbolItem, Figma INSTANCE).
	Referenced
)

// String returns the host-facing class name of the variant.
func (v Variant) String() string {
	switch v {
	case Labeled:
		return "TextFrame"
	case Referenced:
		return "SymbolItem"
	default:
		return "Variant(" + strconv.Itoa(int(v)) + ")"
	}
}

// kinds is the closed classification table.
var kinds = map[string]Variant{
	"TextFrame":  Labeled,
	"TEXT":       Labeled,
	"SymbolItem": Referenced,
	"INSTANCE":   Referenced,
}

// Item is a supported selection entry.
type Item struct {
	Variant Variant
	Text    string // Labeled
	Ref     string // Referenced
	Left    float64
	Top     float64
	ZOrder  float64
}

// Classify reports whether obj is one of the supported kinds and returns
// it as an Item.
func Classify(obj Object) (Item, bool) {
	v, ok := kinds[obj.Kind]
	if !ok {
		return Item{}, false
	}

	it := Item{
		Variant: v,
		Left:    obj.Left,
		Top:     obj.Top,
		ZOrder:  obj.ZOrder,
	}
	switch v {
	case Labeled:
		it.Text = obj.Contents
	case Referenced:
		it.Ref = obj.Reference
	}
	return it, true
}

// Filter classifies every entry of a selection and keeps the supported
// ones in their original order.
func Filter(objs []Object) []Item {
	items := make([]Item, 0, len(objs))
	for _, obj := range objs {
		if it, ok := Classify(obj); ok {
			items = append(items, it)
		}
	}
	return items
}

// Label returns the exported string of the item: its own text for labeled
// items, the definition name for referenced ones.
func (it Item) Label() string {
	switch it.Variant {
	case Labeled:
		return it.Text
	case Referenced:
		return it.Ref
	}
	panic(fmt.Sprintf("item: invalid variant %d", it.Variant))
}

// Render is the one-line summary used when an item is serialized, e.g.
// "[TextFrame Hello: (x:10, y:-20.5, z:3)]".
func (it Item) Render() string {
	return fmt.Sprintf("[%s %s: (x:%s, y:%s, z:%s)]",
		it.Variant, it.Label(), round2(it.Left), round2(it.Top), round2(it.ZOrder))
}

func round2(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
