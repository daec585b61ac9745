package semver

import (
	"strings"

	"github.com/sol-lang/solc/internal/source"
)

// ComponentKind is one term in a requirement: either "op version" (with op
// defaulting to OpExact when absent) or a "lo - hi" inclusive range.
type ComponentKind struct {
	HasOp bool
	Op    Op
	Lo    Version
	Hi    Version // only set when this is a range component
	Range bool
}

func (k ComponentKind) String() string {
	if k.Range {
		return k.Lo.String() + " - " + k.Hi.String()
	}
	if k.HasOp {
		return k.Op.String() + k.Lo.String()
	}
	return k.Lo.String()
}

func (k ComponentKind) matches(version Version) bool {
	if k.Range {
		return OpGreaterEq.matches(version, k.Lo) && OpLessEq.matches(version, k.Hi)
	}
	op := OpExact
	if k.HasOp {
		op = k.Op
	}
	return op.matches(version, k.Lo)
}

// Component is a single ComponentKind with its source span.
type Component struct {
	Span source.Span
	Kind ComponentKind
}

// Con ("conjunction") is a whitespace-separated, and-ed list of Components:
// every one of them must match. A bare Con never contains zero components.
type Con struct {
	Span       source.Span
	Components []Component
}

func (c Con) String() string {
	parts := make([]string, len(c.Components))
	for i, comp := range c.Components {
		parts[i] = comp.Kind.String()
	}
	return strings.Join(parts, " ")
}

func (c Con) matches(version Version) bool {
	for _, comp := range c.Components {
		if !comp.Kind.matches(version) {
			return false
		}
	}
	return true
}

// Req is a full version pragma requirement: an "||"-separated, or-ed list of
// Cons. A version satisfies Req if it satisfies any one Con. Req is never
// empty; Parse rejects empty requirement strings.
type Req struct {
	Dis []Con
}

func (r Req) String() string {
	parts := make([]string, len(r.Dis))
	for i, con := range r.Dis {
		parts[i] = con.String()
	}
	return strings.Join(parts, " || ")
}

// Matches reports whether version satisfies this requirement.
func (r Req) Matches(version Version) bool {
	for _, con := range r.Dis {
		if con.matches(version) {
			return true
		}
	}
	return false
}
