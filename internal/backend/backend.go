// Package backend holds one VersionSource implementation per external
// package-listing tool, each owning the parser for that tool's output.
package backend

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/tonur/pinver/internal/resolve"
)

var logWriter io.Writer = os.Stderr

// Options controls a backend invocation.
type Options struct {
	// GemBin is the gem executable used by the gem backend. Empty means
	// "gem" from PATH.
	GemBin  string
	Verbose bool
}

var constructors = map[string]func(Options) resolve.VersionSource{
	"gem": func(options Options) resolve.VersionSource {
		return &GemSource{GemBin: options.GemBin, Verbose: options.Verbose}
	},
}

// New returns the VersionSource registered under name, or an error naming
// the known backends. Adding a backend means adding a constructor here and a
// parser next to it; the matcher and resolver stay untouched.
func New(name string, options Options) (resolve.VersionSource, error) {
	constructor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (known backends: %v)", name, Names())
	}
	return constructor(options), nil
}

// Names lists the registered backend names in stable order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
