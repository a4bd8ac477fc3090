package resolve

// Query names a package and the backend it should be resolved against. The
// backend name only feeds error messages here; picking the VersionSource
// implementation is the caller's job.
type Query struct {
	Backend string
	Package string
}

// Resolve asks the source for the package's versions and picks the first one
// matching the constraint.
//
// Failure kinds are distinct: a source error propagates unchanged, an empty
// version list becomes a *NoVersionsError, and a non-empty list with no match
// becomes a *NoCompatibleVersionError. Each invocation is an independent
// pipeline with no retries and no state.
func Resolve(source VersionSource, query Query, constraint string) (string, error) {
	versions, err := source.Versions(query.Package)
	if err != nil {
		return "", err
	}

	if len(versions) == 0 {
		return "", &NoVersionsError{Backend: query.Backend, Package: query.Package}
	}

	version, ok := Pick(versions, constraint)
	if !ok {
		return "", &NoCompatibleVersionError{
			Backend:    query.Backend,
			Package:    query.Package,
			Constraint: constraint,
		}
	}

	return version, nil
}
