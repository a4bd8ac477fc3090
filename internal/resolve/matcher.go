package resolve

import "strings"

// Pick selects the first version whose text starts with the constraint.
//
// A constraint ending in ".x" is rewritten to the prefix up to and including
// that dot, so "1.6.x" filters as "1.6." and "1.x" as "1.". Matching is plain
// textual prefix comparison with no numeric interpretation, which means "1.9"
// also matches "1.90.0". The empty constraint matches everything.
//
// Because versions arrive in the backend's newest-first order, selection is
// filter-then-take-first; the input is never reordered. The second return
// value reports whether any version matched.
func Pick(versions []string, constraint string) (string, bool) {
	if strings.HasSuffix(constraint, ".x") {
		// Strip only the trailing x, keeping the dot as part of the prefix.
		constraint = strings.TrimSuffix(constraint, "x")
	}

	for _, version := range versions {
		if strings.HasPrefix(version, constraint) {
			return version, true
		}
	}
	return "", false
}
