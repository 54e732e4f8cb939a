package extract

import (
	"slices"

	"github.com/kataras/textframes/pkg/stringify"
)

// Result maps region names to their exported labels, in region order.
// Every recorded region is also kept in record order, so regions sharing a
// name stay visible to [Result.Flatten].
type Result struct {
	names    []string
	regions  map[string][]string
	recorded [][]string
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{regions: make(map[string][]string)}
}

// Set records labels under name. A name seen before keeps its position and
// its labels are replaced in the mapping.
func (r *Result) Set(name string, labels []string) {
	if _, ok := r.regions[name]; !ok {
		r.names = append(r.names, name)
	}
	r.regions[name] = labels
	r.recorded = append(r.recorded, labels)
}

// Has reports whether name was recorded.
func (r *Result) Has(name string) bool {
	_, ok := r.regions[name]
	return ok
}

// Names returns the region names in order.
func (r *Result) Names() []string { return slices.Clone(r.names) }

// Labels returns the labels of one region.
func (r *Result) Labels(name string) []string { return r.regions[name] }

// Len returns the number of regions.
func (r *Result) Len() int { return len(r.names) }

// Count returns the total number of labels in the mapping.
func (r *Result) Count() int {
	n := 0
	for _, labels := range r.regions {
		n += len(labels)
	}
	return n
}

// Flatten returns the labels of every recorded region, in record order,
// including regions whose name was later recorded again.
func (r *Result) Flatten() []string {
	var n int
	for _, labels := range r.recorded {
		n += len(labels)
	}
	out := make([]string, 0, n)
	for _, labels := range r.recorded {
		out = append(out, labels...)
	}
	return out
}

// Value returns the result as an insertion-ordered mapping ready for
// [stringify.Serialize].
func (r *Result) Value() *stringify.Map {
	m := stringify.NewMap()
	for _, name := range r.names {
		m.Set(name, r.regions[name])
	}
	return m
}
