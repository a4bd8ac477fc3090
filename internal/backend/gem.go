package backend

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/tonur/pinver/internal/resolve"
)

// GemSource lists remote gem versions by running the gem CLI.
type GemSource struct {
	GemBin  string
	Verbose bool
}

// gemListCommand is a variable to allow tests to stub the gem list
// invocation.
var gemListCommand = func(gemBin, packageName string) *exec.Cmd {
	return exec.Command(gemBin, "list", "--remote", "--all", packageName)
}

// Versions runs one `gem list --remote --all <package>` per call and parses
// the combined output. An unknown gem yields an empty list; only a failing
// gem invocation is an error.
func (s *GemSource) Versions(packageName string) ([]string, error) {
	gem := s.GemBin
	if gem == "" {
		gem = "gem"
	}

	command := gemListCommand(gem, packageName)
	command.Env = os.Environ()

	if s.Verbose {
		fmt.Fprintf(logWriter, "pinver: gem: running %q\n", strings.Join(command.Args, " "))
	}

	// stderr is folded into the response on purpose: the raw text is both
	// the thing we parse and the diagnostic we report on failure.
	output, err := command.CombinedOutput()
	if err != nil {
		return nil, &resolve.BackendError{
			Command: strings.Join(command.Args, " "),
			Err:     err,
			Output:  string(output),
		}
	}

	versions := parseGemList(string(output), packageName)
	if s.Verbose {
		fmt.Fprintf(logWriter, "pinver: gem: package=%q versions=%d\n", packageName, len(versions))
	}
	return versions, nil
}

// parseGemList extracts the version list for packageName from gem list
// output. The listing format is one line per gem:
//
//	fpm (1.8.1, 1.8.0, 1.7.0)
//
// The matching line is found by a prefix scan so lines for gems that merely
// contain the name ("fpm-cookery (...)") are skipped. No matching line, or a
// matching line with nothing between the parentheses, means the backend
// knows no versions.
func parseGemList(output, packageName string) []string {
	prefix := packageName + " ("
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, prefix) {
			continue
		}

		rest := strings.TrimPrefix(line, prefix)
		closing := strings.Index(rest, ")")
		if closing == -1 {
			continue
		}

		list := rest[:closing]
		if strings.TrimSpace(list) == "" {
			return nil
		}
		return strings.Split(list, ", ")
	}
	return nil
}
