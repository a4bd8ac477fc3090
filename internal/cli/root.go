package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tonur/pinver/internal/backend"
	"github.com/tonur/pinver/internal/resolve"
	"github.com/tonur/pinver/internal/selftest"
)

// exitFunction and executeCommand are variables to allow tests to stub
// process exit and command execution.
var exitFunction = os.Exit

var executeCommand = func(command *cobra.Command) error {
	return command.Execute()
}

// resolveFunc and selftestFunc are variables to allow tests to stub the
// underlying pipeline.
var resolveFunc = resolve.Resolve

var selftestFunc = selftest.Run

// usageError marks a malformed invocation: wrong arity, unknown backend,
// unknown flag or output format. It carries the usage text so Execute can
// print it alongside the message.
type usageError struct {
	message string
	usage   string
}

func (e *usageError) Error() string { return e.message }

// selfTestError marks a failed diagnostic run so Execute can map it to its
// own exit code.
type selfTestError struct {
	err error
}

func (e *selfTestError) Error() string { return e.err.Error() }

func (e *selfTestError) Unwrap() error { return e.err }

// resolution is the document emitted under --output=yaml.
type resolution struct {
	Backend    string `yaml:"backend"`
	Package    string `yaml:"package"`
	Constraint string `yaml:"constraint,omitempty"`
	Version    string `yaml:"version"`
}

// Execute is the entry point for the pinver CLI.
//
// Exit codes: 0 success; 1 resolution or backend failure; 2 usage error
// (message plus full usage text on stderr); 3 self-test failure.
func Execute() {
	err := executeCommand(newRootCommand())
	if err == nil {
		return
	}

	var usageErr *usageError
	var selfErr *selfTestError
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintln(os.Stderr, "error:", usageErr.message)
		fmt.Fprint(os.Stderr, usageErr.usage)
		exitFunction(2)
	case errors.As(err, &selfErr):
		fmt.Fprintln(os.Stderr, "error:", err)
		exitFunction(3)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		exitFunction(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "pinver <backend> <package> [<constraint>]",
		Short:         "Pin the newest package version matching a constraint",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		// Unmatched first arguments fall through to the root command, so
		// this is where a bad or missing backend name surfaces.
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &usageError{message: "missing backend name", usage: cmd.UsageString()}
			}
			return &usageError{
				message: fmt.Sprintf("unknown backend %q (known backends: %v)", args[0], backend.Names()),
				usage:   cmd.UsageString(),
			}
		},
	}

	rootCommand.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{message: err.Error(), usage: cmd.UsageString()}
	})

	rootCommand.AddCommand(newGemCommand())
	rootCommand.AddCommand(newSelftestCommand())
	return rootCommand
}

func newGemCommand() *cobra.Command {
	gemCommand := &cobra.Command{
		Use:   "gem <package> [<constraint>]",
		Short: "Resolve a gem version from the remote RubyGems index",
		Args:  usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			packageName := args[0]

			// A missing constraint argument is the empty constraint: it
			// matches everything and selects the backend's newest entry.
			constraint := ""
			if len(args) == 2 {
				constraint = args[1]
			}

			gemBin, _ := cmd.Flags().GetString("gem-bin")
			verbose, _ := cmd.Flags().GetBool("verbose")
			outputFormat, _ := cmd.Flags().GetString("output")

			source, err := backend.New("gem", backend.Options{GemBin: gemBin, Verbose: verbose})
			if err != nil {
				return &usageError{message: err.Error(), usage: cmd.UsageString()}
			}

			version, err := resolveFunc(source, resolve.Query{Backend: "gem", Package: packageName}, constraint)
			if err != nil {
				return err
			}

			result := resolution{
				Backend:    "gem",
				Package:    packageName,
				Constraint: constraint,
				Version:    version,
			}
			return writeResolution(cmd, cmd.OutOrStdout(), result, outputFormat)
		},
	}

	gemCommand.Flags().String("gem-bin", "gem", "gem executable used to query the remote index")
	gemCommand.Flags().BoolP("verbose", "v", false, "enable verbose logging")
	gemCommand.Flags().StringP("output", "o", "plain", "output format (plain|yaml)")
	return gemCommand
}

func newSelftestCommand() *cobra.Command {
	selftestCommand := &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in resolution self-checks",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if err := selftestFunc(cmd.ErrOrStderr(), verbose); err != nil {
				return &selfTestError{err: err}
			}
			return nil
		},
	}

	selftestCommand.Flags().BoolP("verbose", "v", false, "print one line per scenario")
	return selftestCommand
}

// usageArgs wraps a Cobra positional-args validator so its failures carry
// the usage text and map to the usage exit code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{message: err.Error(), usage: cmd.UsageString()}
		}
		return nil
	}
}

func writeResolution(cmd *cobra.Command, w io.Writer, result resolution, format string) error {
	switch format {
	case "plain":
		// Success contract: the chosen version, newline-terminated,
		// nothing else.
		fmt.Fprintln(w, result.Version)
		return nil
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	default:
		return &usageError{
			message: fmt.Sprintf("unknown output format %q (expected plain or yaml)", format),
			usage:   cmd.UsageString(),
		}
	}
}
