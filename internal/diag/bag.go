package diag

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// Bag holds a bounded collection of diagnostics, typically one per source
// file or per compilation unit, pending sort/dedup and hand-off to an
// emitter. It implements Emitter itself so a DiagCtxt can be pointed
// directly at one (see BagEmitter).
type Bag struct {
	items   []Diagnostic
	maximum uint16
}

// NewBag creates a Bag with a capacity limit.
func NewBag(maximum int) *Bag {
	result, err := safecast.Conv[uint16](maximum)
	if err != nil {
		panic(fmt.Errorf("bag maximum overflow: %w", err))
	}
	return &Bag{
		items:   make([]Diagnostic, 0, result),
		maximum: result,
	}
}

// Add appends d, returning false if the bag is already at capacity.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.maximum) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap returns the maximum capacity of the bag.
func (b *Bag) Cap() uint16 { return b.maximum }

// HasErrors reports whether any diagnostic is Error/Fatal/FailureNote.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity.IsError() {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic is at least Warning severity.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Len returns the number of diagnostics in the bag.
func (b *Bag) Len() int { return len(b.items) }

// Items returns the bag's diagnostics. The slice aliases Bag's internal
// storage and must not be mutated by the caller.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge appends other's diagnostics, growing the capacity if needed.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	cap16, err := safecast.Conv[uint16](newTotal)
	if err != nil {
		panic(fmt.Errorf("bag merge overflow: %w", err))
	}
	if cap16 > b.maximum {
		b.maximum = cap16
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by primary span start, then end, then severity
// (descending), then code (ascending) for deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		pi, pj := di.Spans.Primary, dj.Spans.Primary
		if pi.Lo != pj.Lo {
			return pi.Lo < pj.Lo
		}
		if pi.Hi != pj.Hi {
			return pi.Hi < pj.Hi
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup removes diagnostics identical in code and primary span, keeping the
// first occurrence.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	out := b.items[:0:0]
	for _, d := range b.items {
		key := fmt.Sprintf("%d:%s", d.Code, d.Spans.Primary.String())
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	b.items = out
}

// Filter keeps only diagnostics for which predicate returns true.
func (b *Bag) Filter(predicate func(Diagnostic) bool) {
	out := b.items[:0:0]
	for _, d := range b.items {
		if predicate(d) {
			out = append(out, d)
		}
	}
	b.items = out
}

// Emit implements Emitter by appending to the bag, silently dropping
// diagnostics once capacity is exhausted.
func (b *Bag) Emit(d Diagnostic) { b.Add(d) }
