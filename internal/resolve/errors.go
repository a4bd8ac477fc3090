package resolve

import "fmt"

// BackendError reports that the backend query mechanism itself failed, as
// opposed to the backend answering "no such package". It carries the invoked
// command line, the underlying failure (typically an exit status), and the
// raw combined output for diagnostics.
type BackendError struct {
	Command string
	Err     error
	Output  string
}

func (e *BackendError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("backend command %q failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("backend command %q failed: %v\noutput:\n%s", e.Command, e.Err, e.Output)
}

func (e *BackendError) Unwrap() error { return e.Err }

// NoVersionsError means the backend answered successfully but knows no
// versions at all for the package.
type NoVersionsError struct {
	Backend string
	Package string
}

func (e *NoVersionsError) Error() string {
	return fmt.Sprintf("backend %s has no versions for package %q", e.Backend, e.Package)
}

// NoCompatibleVersionError means versions exist but none survived the
// constraint filter. It is deliberately distinct from NoVersionsError so the
// two conditions stay distinguishable in user-facing messages.
type NoCompatibleVersionError struct {
	Backend    string
	Package    string
	Constraint string
}

func (e *NoCompatibleVersionError) Error() string {
	return fmt.Sprintf("backend %s has versions for package %q, but none match constraint %q", e.Backend, e.Package, e.Constraint)
}
