// Package semver implements solc's version pragma matching: a small, hand
// rolled requirement grammar ("^0.8.0", ">=0.7.0 <0.9.0", "0.8.0 - 0.8.4 ||
// 0.5.x") over three-component versions where any component may be a
// wildcard ("*", "x", "X"). It intentionally does not reuse a general
// purpose semver library: solc's tilde/caret matching and its wildcard
// component semantics diverge from the semver.org spec that such libraries
// implement (see matchTilde/matchCaret in match.go).
package semver

import (
	"fmt"
	"math"

	"github.com/sol-lang/solc/internal/source"
)

// Number is one component (major/minor/patch) of a Version. Wildcard
// components compare equal to anything, mirroring solc's treatment of "*",
// "x", and "X" version components as unsigned max.
type Number uint32

// Wildcard is the sentinel Number produced by "*", "x", or "X".
const Wildcard Number = math.MaxUint32

func (n Number) String() string {
	if n == Wildcard {
		return "*"
	}
	return fmt.Sprintf("%d", n)
}

func (n Number) eq(other Number) bool {
	if n == Wildcard || other == Wildcard {
		return true
	}
	return n == other
}

func (n Number) less(other Number) bool {
	if n == Wildcard || other == Wildcard {
		return false
	}
	return n < other
}

// Version is a solc-style version number: a mandatory major component plus
// optional minor and patch components. Pre-release and build metadata are
// not supported, matching upstream solc.
type Version struct {
	Span     source.Span
	Major    Number
	Minor    Number // valid only if HasMinor
	Patch    Number // valid only if HasPatch
	HasMinor bool
	HasPatch bool
}

func (v Version) String() string {
	s := v.Major.String()
	if v.HasMinor {
		s += "." + v.Minor.String()
	}
	if v.HasPatch {
		if !v.HasMinor {
			s += ".*"
		}
		s += "." + v.Patch.String()
	}
	return s
}

// Compare orders two versions component by component, treating a missing
// component on either side as equal (so "1" compares equal to "1.2" in the
// minor/patch positions it doesn't specify).
func (v Version) Compare(other Version) int {
	if c := compareNumber(v.Major, other.Major); c != 0 {
		return c
	}
	if v.HasMinor && other.HasMinor {
		if c := compareNumber(v.Minor, other.Minor); c != 0 {
			return c
		}
	}
	if v.HasPatch && other.HasPatch {
		if c := compareNumber(v.Patch, other.Patch); c != 0 {
			return c
		}
	}
	return 0
}

func compareNumber(a, b Number) int {
	if a.eq(b) {
		return 0
	}
	if a.less(b) {
		return -1
	}
	return 1
}

// Equal reports whether v and other compare equal under Compare.
func (v Version) Equal(other Version) bool { return v.Compare(other) == 0 }

// withoutPatch returns a copy of v with the patch component cleared, used by
// the tilde/caret matching rules which widen the allowed range by dropping
// the least significant component they pin.
func (v Version) withoutPatch() Version {
	v.HasPatch = false
	v.Patch = 0
	return v
}

// withoutMinor returns a copy of v with the minor (and patch) component
// cleared.
func (v Version) withoutMinor() Version {
	v.HasMinor = false
	v.Minor = 0
	return v.withoutPatch()
}
