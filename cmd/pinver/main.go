package main

import (
	"fmt"
	"os"

	"github.com/tonur/pinver/internal/cli"
)

// Version is the application version. It is set at build time via ldflags.
var Version = "dev"

// isVersionArgument reports whether the invocation asks for the tool
// version. Only the first argument is inspected, since later positions are
// package names and constraints that may themselves be called "version".
func isVersionArgument(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "--version", "-version", "version":
		return true
	}
	return false
}

// run handles version reporting before Cobra so it works regardless of
// subcommand or arg validation.
func run(args []string) int {
	if isVersionArgument(args) {
		fmt.Println(Version)
		return 0
	}

	cli.Execute()
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
