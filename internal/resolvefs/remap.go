package resolvefs

import (
	"fmt"
	"strings"
)

// Remapping rewrites an import path prefix to a filesystem path, following
// solc's `[context:]prefix=target` remapping syntax (e.g.
// `@openzeppelin/=lib/openzeppelin-contracts/`).
type Remapping struct {
	// Context restricts the remapping to imports made from a source file
	// whose logical path starts with Context. Empty means "any file".
	Context string
	Prefix  string
	Target  string
}

// ParseRemapping parses one `[context:]prefix=target` remapping entry, the
// shape accepted by the CLI's `--import-map` flag.
func ParseRemapping(spec string) (Remapping, error) {
	eq := strings.IndexByte(spec, '=')
	if eq < 0 {
		return Remapping{}, fmt.Errorf("remapping %q: missing '='", spec)
	}
	left, target := spec[:eq], spec[eq+1:]
	if target == "" {
		return Remapping{}, fmt.Errorf("remapping %q: empty target", spec)
	}
	context, prefix := "", left
	if colon := strings.IndexByte(left, ':'); colon >= 0 {
		context, prefix = left[:colon], left[colon+1:]
	}
	if prefix == "" {
		return Remapping{}, fmt.Errorf("remapping %q: empty prefix", spec)
	}
	return Remapping{Context: context, Prefix: prefix, Target: target}, nil
}

// matches reports whether r applies to an import of importPath made from a
// file whose logical path is contextPath.
func (r Remapping) matches(importPath, contextPath string) bool {
	if !strings.HasPrefix(importPath, r.Prefix) {
		return false
	}
	return r.Context == "" || strings.HasPrefix(contextPath, r.Context)
}

// apply rewrites importPath's Prefix to Target.
func (r Remapping) apply(importPath string) string {
	return r.Target + strings.TrimPrefix(importPath, r.Prefix)
}

// bestRemapping picks the most specific remapping matching importPath from
// contextPath, per solc's precedence: longest context match wins first
// (a remapping scoped to a particular importer beats a global one), then
// longest prefix match (the most specific rewrite rule wins).
func bestRemapping(remappings []Remapping, importPath, contextPath string) (Remapping, bool) {
	best, found := Remapping{}, false
	for _, rm := range remappings {
		if !rm.matches(importPath, contextPath) {
			continue
		}
		if !found {
			best, found = rm, true
			continue
		}
		if len(rm.Context) != len(best.Context) {
			if len(rm.Context) > len(best.Context) {
				best = rm
			}
			continue
		}
		if len(rm.Prefix) > len(best.Prefix) {
			best = rm
		}
	}
	return best, found
}
