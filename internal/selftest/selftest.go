// Package selftest checks the resolution pipeline against a reference
// version table. It exists for pipeline diagnostics: a quick way to verify a
// deployed pinver binary still makes the selections it is trusted to make,
// without touching any real backend.
package selftest

import (
	"errors"
	"fmt"
	"io"

	"github.com/tonur/pinver/internal/resolve"
)

// referenceVersions is a frozen newest-first listing for the fpm gem. The
// scenarios below encode the selection policy against it.
var referenceVersions = []string{
	"1.8.1", "1.8.0", "1.7.0", "1.6.3", "1.6.2", "1.6.1", "1.6.0",
	"1.5.0", "1.4.0", "1.3.3", "1.2.0", "1.1.0", "1.0.2",
	"0.4.42", "0.4.41", "0.4.40", "0.3.11", "0.3.10", "0.2.5", "0.1.0",
}

// scenario pairs a constraint with the version it must select. An empty want
// means resolution must fail with "no compatible version".
type scenario struct {
	constraint string
	want       string
}

var scenarios = []scenario{
	{constraint: "", want: "1.8.1"},
	{constraint: "1", want: "1.8.1"},
	{constraint: "1.x", want: "1.8.1"},
	{constraint: "1.8.x", want: "1.8.1"},
	{constraint: "1.8.0", want: "1.8.0"},
	{constraint: "1.6", want: "1.6.3"},
	{constraint: "0.x", want: "0.4.42"},
	{constraint: "0.3.x", want: "0.3.11"},
	{constraint: "0.3.12", want: ""},
	{constraint: "2.x", want: ""},
}

// Run executes every scenario against an in-memory source and reports
// failures on w. Under verbose it also prints one line per passing case. The
// returned error summarizes how many scenarios misbehaved.
func Run(w io.Writer, verbose bool) error {
	source := &resolve.MemorySource{List: referenceVersions}
	query := resolve.Query{Backend: "selftest", Package: "fpm"}

	failed := 0
	for _, s := range scenarios {
		got, err := resolve.Resolve(source, query, s.constraint)

		if s.want == "" {
			var noMatch *resolve.NoCompatibleVersionError
			if !errors.As(err, &noMatch) {
				failed++
				fmt.Fprintf(w, "pinver: selftest: FAIL constraint=%q want no compatible version, got version=%q err=%v\n", s.constraint, got, err)
				continue
			}
			if verbose {
				fmt.Fprintf(w, "pinver: selftest: ok constraint=%q no compatible version\n", s.constraint)
			}
			continue
		}

		if err != nil {
			failed++
			fmt.Fprintf(w, "pinver: selftest: FAIL constraint=%q want %q, got error: %v\n", s.constraint, s.want, err)
			continue
		}
		if got != s.want {
			failed++
			fmt.Fprintf(w, "pinver: selftest: FAIL constraint=%q want %q, got %q\n", s.constraint, s.want, got)
			continue
		}
		if verbose {
			fmt.Fprintf(w, "pinver: selftest: ok constraint=%q version=%q\n", s.constraint, got)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d self-test scenarios failed", failed, len(scenarios))
	}
	return nil
}
