// Package target holds the closed set of policies that reduce an ordered
// list of items to the strings exported for a region.
package target

import (
	"fmt"
	"strings"

	"github.com/kataras/textframes/pkg/item"
)

// Key selects a target policy.
type Key int

const (
	// AllItems exports the label of every item.
	AllItems Key = iota
	// FirstItemPriorTextFrame exports one label per region, preferring the
	// first labeled item and falling back to the last item.
	FirstItemPriorTextFrame

	numKeys
)

// Definition describes one target policy.
type Definition struct {
	Key    Key
	Name   string
	Label  string
	Format func(items []item.Item) []string
}

var definitions = [numKeys]Definition{
	AllItems: {
		Key:    AllItems,
		Name:   "allItems",
		Label:  "All items",
		Format: formatAll,
	},
	FirstItemPriorTextFrame: {
		Key:    FirstItemPriorTextFrame,
		Name:   "firstItemPriorTextFrame",
		Label:  "First items (prior TextFrame than SymbolItem)",
		Format: formatFirstPriorLabeled,
	},
}

var aliases = map[string]Key{
	"firstItemPriorLabeled": FirstItemPriorTextFrame,
}

// Keys returns every key in dialog order.
func Keys() []Key {
	return []Key{AllItems, FirstItemPriorTextFrame}
}

// Lookup returns the definition of k and panics on an unknown key.
func Lookup(k Key) Definition {
	if k < 0 || k >= numKeys {
		panic(fmt.Sprintf("target: unknown key %d", int(k)))
	}
	return definitions[k]
}

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
	return 0, fmt.Errorf("unknown target %q (must be allItems or firstItemPriorTextFrame)", s)
}

// Format reduces items with the policy selected by k.
func Format(k Key, items []item.Item) []string {
	return Lookup(k).Format(items)
}

func formatAll(items []item.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label()
	}
	return out
}

// formatFirstPriorLabeled scans from the front for a labeled item but
// falls back to the last item, not the first.
func formatFirstPriorLabeled(items []item.Item) []string {
	if len(items) == 0 {
		return []string{}
	}
	for _, it := range items {
		if it.Variant == item.Labeled {
			return []string{it.Text}
		}
	}
	return []string{items[len(items)-1].Label()}
}
