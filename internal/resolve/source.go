package resolve

// VersionSource queries a backend for all known versions of a package.
//
// Implementations issue exactly one backend query per call and return the
// versions in the backend's own order, newest/most relevant first. The
// resolver trusts that order and never re-sorts it. A package unknown to the
// backend yields an empty list and a nil error; only a failure of the query
// mechanism itself is an error.
type VersionSource interface {
	Versions(packageName string) ([]string, error)
}

// MemorySource serves a fixed version list for every package. It is the
// canned-response implementation used by the self-test and by tests, so that
// backend substitution happens through injection rather than patching.
type MemorySource struct {
	List []string
}

func (s *MemorySource) Versions(packageName string) ([]string, error) {
	return s.List, nil
}
