package semver

// matchTilde implements solc's "~v" operator: accept any version >= v whose
// major.minor matches v's, i.e. patch is free to vary but minor is pinned.
// See liblangutil/SemVerHandler.cpp's tilde handling in upstream solc.
func matchTilde(version, other Version) bool {
	if !OpGreaterEq.matches(version, other) {
		return false
	}
	return OpLessEq.matches(version.withoutPatch(), other)
}

// matchCaret implements solc's "^v" operator: accept any version >= v that
// does not change the leftmost non-zero component of v (major if major != 0,
// otherwise minor stays pinned while patch is free).
func matchCaret(version, other Version) bool {
	if !OpGreaterEq.matches(version, other) {
		return false
	}
	relaxed := version
	if version.Major != 0 {
		relaxed = relaxed.withoutMinor()
	} else {
		relaxed = relaxed.withoutPatch()
	}
	return OpLessEq.matches(relaxed, other)
}
