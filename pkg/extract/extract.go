// Package extract runs the per-region extraction loop: for every region of
// a document it selects all objects, keeps the supported items, orders
// them, reduces them to strings and records the strings under the region
// name.
package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/kataras/textframes/pkg/item"
	"github.com/kataras/textframes/pkg/order"
	"github.com/kataras/textframes/pkg/stringify"
	"github.com/kataras/textframes/pkg/target"
)

// previewLen is the number of runes shown in a progress message.
const previewLen = 100

// Region is one independently selectable canvas of a document.
type Region struct {
	Name string
}

// Document is the host that owns the regions and the active selection.
// The extraction loop owns the selection for the duration of a run.
type Document interface {
	Regions() ([]Region, error)
	SetActiveRegion(index int) error
	ClearSelection() error
	SelectAllInActiveRegion() error
	Selection() ([]item.Object, error)
}

// Progress receives a ratio in [0, 1] and a short message after every
// region. Implementations must not block.
type Progress interface {
	Set(ratio float64, message string)
}

// Logger is the subset of the application logger used by the loop.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Policy selects how items are ordered and formatted.
type Policy struct {
	Target    target.Key
	Order     order.Key
	Direction order.Direction
	// Normalize converts labels to Unicode NFC before escaping.
	Normalize bool
}

// Option configures Run.
type Option func(*runner)

type runner struct {
	progress Progress
	logger   Logger
}

// WithProgress reports progress to p.
func WithProgress(p Progress) Option { return func(r *runner) { r.progress = p } }

// WithLogger logs every region to l.
func WithLogger(l Logger) Option { return func(r *runner) { r.logger = l } }

// Run extracts the labels of every region of doc, strictly in region order.
// Any host error aborts the run and is returned wrapped.
func Run(doc Document, policy Policy, opts ...Option) (*Result, error) {
	r := &runner{}
	for _, opt := range opts {
		opt(r)
	}

	regions, err := doc.Regions()
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}

	res := NewResult()
	for i, region := range regions {
		labels, err := r.region(doc, policy, i, region)
		if err != nil {
			return nil, err
		}

		if res.Has(region.Name) {
			r.warnf("Duplicate region name %q, later region overwrites earlier one", region.Name)
		}
		res.Set(region.Name, labels)

		r.infof("Region %d %s", i, stringify.Serialize(labels, 0))
		if r.progress != nil {
			r.progress.Set(float64(i)/float64(len(regions)), fmt.Sprintf("%s: %s", region.Name, Preview(labels)))
		}
	}

	if len(regions) > 0 {
		if err := doc.ClearSelection(); err != nil {
			return nil, fmt.Errorf("clear selection: %w", err)
		}
	}

	return res, nil
}

func (r *runner) region(doc Document, policy Policy, i int, region Region) ([]string, error) {
	if err := doc.ClearSelection(); err != nil {
		return nil, fmt.Errorf("region %d (%s): clear selection: %w", i, region.Name, err)
	}
	if err := doc.SetActiveRegion(i); err != nil {
		return nil, fmt.Errorf("region %d (%s): activate: %w", i, region.Name, err)
	}
	if err := doc.SelectAllInActiveRegion(); err != nil {
		return nil, fmt.Errorf("region %d (%s): select all: %w", i, region.Name, err)
	}
	selection, err := doc.Selection()
	if err != nil {
		return nil, fmt.Errorf("region %d (%s): read selection: %w", i, region.Name, err)
	}

	items := order.Sort(item.Filter(selection), policy.Order, policy.Direction)
	if r.logger != nil {
		r.logger.Debugf("Region %d sorted %s", i, stringify.Serialize(items, 0))
	}

	labels := target.Format(policy.Target, items)
	out := make([]string, len(labels))
	for j, label := range labels {
		if policy.Normalize {
			label = norm.NFC.String(label)
		}
		out[j] = EscapeLineBreaks(label)
	}
	return out, nil
}

func (r *runner) infof(format string, args ...any) {
	if r.logger != nil {
		r.logger.Infof(format, args...)
	}
}

func (r *runner) warnf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Warnf(format, args...)
	}
}

var lineBreaks = strings.NewReplacer("\r\n", `\n`, "\r", `\n`, "\n", `\n`)

// EscapeLineBreaks replaces every CRLF, CR and LF with the two characters
// backslash and n.
func EscapeLineBreaks(s string) string {
	return lineBreaks.Replace(s)
}

// Preview joins labels with ", " and cuts the result to its first 100 runes.
func Preview(labels []string) string {
	joined := strings.Join(labels, ", ")
	if utf8.RuneCountInString(joined) <= previewLen {
		return joined
	}
	return string([]rune(joined)[:previewLen])
}
