// Package order holds the closed set of ordering policies applied to the
// supported items of a region before they are formatted.
package order

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kataras/textframes/pkg/item"
)

// Key selects an ordering policy.
type Key int

const (
	// Stacking orders by z-order (paint order inside the region).
	Stacking Key = iota
	// PositionX orders by horizontal position.
	PositionX
	// PositionY orders by vertical position.
	PositionY

	numKeys
)

// Direction of a comparator.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Definition describes one ordering policy.
type Definition struct {
	Key     Key
	Name    string // flag and config value
	Label   string // dialog label
	Extract func(item.Item) float64
}

var definitions = [numKeys]Definition{
	Stacking: {
		Key:     Stacking,
		Name:    "stacking",
		Label:   "Stacking order",
		Extract: func(it item.Item) float64 { return it.ZOrder },
	},
	PositionX: {
		Key:     PositionX,
		Name:    "positionX",
		Label:   "Position-X (horizontal order)",
		Extract: func(it item.Item) float64 { return it.Left },
	},
	PositionY: {
		Key:     PositionY,
		Name:    "positionY",
		Label:   "Position-Y (vertical order)",
		Extract: func(it item.Item) float64 { return it.Top },
	},
}

// aliases maps extra accepted names onto keys.
var aliases = map[string]Key{
	"layer": Stacking,
}

// Keys returns every key in dialog order.
func Keys() []Key {
	return []Key{Stacking, PositionX, PositionY}
}

// Lookup returns the definition of k. An unknown key is a programming
// error and panics.
func Lookup(k Key) Definition {
	if k < 0 || k >= numKeys {
		panic(fmt.Sprintf("order: unknown key %d", int(k)))
	}
	return definitions[k]
}

// String returns the key name.
func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return definitions[k].Name
}

// ParseKey converts user input into a Key, case-insensitively.
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	for _, d := range definitions {
		if strings.EqualFold(d.Name, s) {
			return d.Key, nil
		}
	}
	for name, k := range aliases {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown order %q (must be stacking, layer, positionX or positionY)", s)
}

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection accepts asc/ascending and desc/descending. The empty
// string means Ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown direction %q (must be asc or desc)", s)
}

// Compare returns the comparator of k in direction d. It yields -1, 0 or 1.
func Compare(k Key, d Direction) func(a, b item.Item) int {
	extract := Lookup(k).Extract
	if d == Descending {
		return func(a, b item.Item) int { return compareDesc(extract(a), extract(b)) }
	}
	return func(a, b item.Item) int { return compareAsc(extract(a), extract(b)) }
}

func compareAsc(a, b float64) int {
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

func compareDesc(a, b float64) int {
	switch {
	case a == b:
		return 0
	case a > b:
		return -1
	default:
		return 1
	}
}

// Sort returns a stably sorted copy of items; items itself is untouched.
func Sort(items []item.Item, k Key, d Direction) []item.Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, Compare(k, d))
	return sorted
}
