// Package cli provides command-line interface functionality for mdreport.
package cli

import (
	"fmt"
	"strings"

	"github.com/hackebrot/mdreport/internal/errors"
	"github.com/hackebrot/mdreport/internal/output"
)

// Version is set at build time.
var Version = "dev"

// out is the shared output writer for CLI commands.
var out = output.New()

// Help text alignment widths for consistent formatting.
const (
	helpCommandWidth = 10 // Width for commands like "generate"
	helpFlagWidth    = 18 // Width for flags like "--symbols <file>"
)

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 0
	}

	cmd := args[0]

	switch cmd {
	case "-h", "--help", "help":
		printUsage()
		return 0
	case "--version", "version":
		fmt.Printf("mdreport %s\n", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	// Re-extract command after flag parsing
	if len(remaining) == 0 {
		printUsage()
		return 0
	}
	cmd = remaining[0]
	cmdArgs := remaining[1:]

	// Route to command handler
	switch cmd {
	case "generate":
		return cmdGenerate(cmdArgs, opts)
	case "symbols":
		return cmdSymbols(cmdArgs)
	case "formats":
		return cmdFormats(cmdArgs)
	case "completion":
		return cmdCompletion(cmdArgs)
	default:
		out.ErrorPrefix("unknown command: %s", cmd)
		out.Hint("run 'mdreport help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet   bool
	Verbose bool
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of stdlib flag package because:
// - Flags can appear anywhere in the argument list, not just before the command
// - Custom error messages with usage hints are needed
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	for _, arg := range args {
		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
		default:
			remaining = append(remaining, arg)
		}
	}

	if err := validateGlobalOptions(opts); err != nil {
		return nil, nil, err
	}

	// Apply verbosity settings to the global output writer so all
	// commands use consistent verbosity.
	out.SetQuiet(opts.Quiet)
	out.SetVerbose(opts.Verbose)

	return opts, remaining, nil
}

// validateGlobalOptions checks that global options are valid.
func validateGlobalOptions(opts *GlobalOptions) error {
	if opts.Quiet && opts.Verbose {
		return fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}
	return nil
}

func printUsage() {
	w := output.New()

	w.HelpTitle("mdreport - Markdown reports from test runner output")

	w.HelpSection("Usage:")
	w.HelpUsage("mdreport <command> [options]")

	w.HelpSection("Commands:")
	w.HelpCommand("generate", "Generate a Markdown report from test output", helpCommandWidth)
	w.HelpCommand("symbols", "Print the effective symbol table", helpCommandWidth)
	w.HelpCommand("formats", "List supported test output formats", helpCommandWidth)
	w.HelpCommand("completion", "Generate shell completion scripts", helpCommandWidth)
	w.HelpCommand("version", "Show version information", helpCommandWidth)
	w.HelpCommand("help", "Show this help", helpCommandWidth)

	w.HelpSection("Global Options:")
	w.HelpFlag("-q, --quiet", "Suppress informational output", helpFlagWidth)
	w.HelpFlag("-v, --verbose", "Include per-test results in the report", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)
	w.HelpFlag("--version", "Show version information", helpFlagWidth)

	w.HelpSection("Examples:")
	w.HelpExample("go test -json ./... | mdreport generate --md report.md",
		"Report for a Go test run")
	w.HelpExample("pytest | mdreport generate --format pytest --md report.md --emoji",
		"Decorated report for a pytest run")
	w.Println("")
}

// wantsHelp returns true if args contain -h or --help.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// trimArg strips an inline value from a --flag=value argument.
func trimArg(arg, flag string) (string, bool) {
	if strings.HasPrefix(arg, flag+"=") {
		return strings.TrimPrefix(arg, flag+"="), true
	}
	return "", false
}
