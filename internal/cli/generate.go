package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hackebrot/mdreport/internal/config"
	"github.com/hackebrot/mdreport/internal/errors"
	"github.com/hackebrot/mdreport/internal/report"
	"github.com/hackebrot/mdreport/internal/symbols"
	"github.com/hackebrot/mdreport/internal/testparser"
)

// generateOptions holds parsed generate command options.
type generateOptions struct {
	mdPath      string
	format      string
	emoji       bool
	symbolsPath string
	input       string // positional input file; "" or "-" means stdin
}

// cmdGenerate handles the 'mdreport generate' command.
func cmdGenerate(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printGenerateUsage()
		return 0
	}

	cfg, err := config.Discover(".")
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}
	if _, statErr := os.Stat(config.FileName); statErr == nil {
		out.Info("using defaults from %s", config.FileName)
	}

	genOpts, err := parseGenerateArgs(args, cfg)
	if err != nil {
		out.ErrorPrefix("%v", err)
		printGenerateUsage()
		return errors.ExitConfigError
	}

	if genOpts.symbolsPath != "" && genOpts.emoji {
		out.Warning("--emoji is ignored when --symbols is given")
	}

	// Resolve the symbol table before reading any input so that
	// configuration errors surface immediately.
	symbolTable, err := resolveSymbolTable(genOpts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	registry := testparser.NewRegistry()
	parser := registry.GetParser(genOpts.format)
	if parser == nil {
		out.ErrorPrefix("unsupported format: %s", genOpts.format)
		out.Hint("supported formats: %s", strings.Join(registry.Formats(), ", "))
		return errors.ExitConfigError
	}

	input, err := readInput(genOpts.input)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitRuntimeError
	}

	session := parser.Parse(input)
	if !session.Parsed {
		out.ErrorPrefix("no test results found in input")
		out.Hint("hint: pipe the output of your test runner, e.g. 'go test -json ./...'")
		return errors.ExitRuntimeError
	}

	collector := report.NewCollector()
	session.Feed(collector)

	summary := report.NewSessionSummary(collector.Snapshot(), session.Duration, time.Now())
	out.Debug("collected %d test results from %s input", summary.Total, parser.Name())

	var doc string
	if opts.Verbose || cfg.Verbose {
		doc = report.RenderWithResults(summary, collector.AllDetails(), symbolTable)
	} else {
		doc = report.Render(summary, symbolTable)
	}

	path, err := resolveReportPath(genOpts.mdPath)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitRuntimeError
	}
	out.Debug("writing report to %s", path)

	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		sinkErr := errors.Sink(path, err)
		out.ErrorPrefix("%v", sinkErr)
		return errors.GetExitCode(sinkErr)
	}

	if !opts.Quiet {
		printSessionSummary(summary)
		out.Println("")
		out.Success("generated Markdown report: %s", path)
	}

	// Mirror the test run's exit status
	if summary.Counts.Of(report.Failed) > 0 || summary.Counts.Of(report.Error) > 0 {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

// parseGenerateArgs parses the generate command's arguments. The
// configuration file supplies defaults; flags override them.
func parseGenerateArgs(args []string, cfg *config.Config) (*generateOptions, error) {
	opts := &generateOptions{
		mdPath:      cfg.MD,
		format:      cfg.Format,
		emoji:       cfg.Emoji,
		symbolsPath: cfg.Symbols,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--md":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--md requires a value")
			}
			opts.mdPath = args[i+1]
			i++
		case arg == "--format" || arg == "-f":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--format requires a value")
			}
			opts.format = args[i+1]
			i++
		case arg == "--symbols":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--symbols requires a value")
			}
			opts.symbolsPath = args[i+1]
			i++
		case arg == "--emoji":
			opts.emoji = true
		case arg == "-":
			opts.input = "-"
		case strings.HasPrefix(arg, "-"):
			if value, ok := trimArg(arg, "--md"); ok {
				opts.mdPath = value
				continue
			}
			if value, ok := trimArg(arg, "--format"); ok {
				opts.format = value
				continue
			}
			if value, ok := trimArg(arg, "--symbols"); ok {
				opts.symbolsPath = value
				continue
			}
			return nil, fmt.Errorf("unknown flag: %s", arg)
		default:
			if opts.input != "" {
				return nil, fmt.Errorf("unexpected argument: %s", arg)
			}
			opts.input = arg
		}
	}

	if opts.mdPath == "" {
		return nil, fmt.Errorf("--md is required")
	}

	return opts, nil
}

// resolveSymbolTable picks the symbol table for this run: an explicit
// --symbols file wins, --emoji alone selects the built-in set, and
// neither means no decoration.
func resolveSymbolTable(opts *generateOptions) (report.SymbolTable, error) {
	if opts.symbolsPath != "" {
		table, err := symbols.Load(opts.symbolsPath)
		if err != nil {
			return nil, errors.Configf("%v", err)
		}
		return table, nil
	}
	if opts.emoji {
		return symbols.Default(), nil
	}
	return nil, nil
}

// readInput reads the test output from a file, or from stdin when the
// argument is empty or "-".
func readInput(input string) (string, error) {
	if input == "" || input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// resolveReportPath expands a leading ~ and makes the report path
// absolute.
func resolveReportPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// printSessionSummary prints a console table of the collected outcomes.
func printSessionSummary(summary report.SessionSummary) {
	titleCase := cases.Title(language.English)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("Test Summary (%.2fs)", summary.Duration.Seconds()))
	t.AppendHeader(table.Row{"Outcome", "Count"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Count", Align: text.AlignRight},
	})

	for _, o := range report.Outcomes {
		if n := summary.Counts.Of(o); n > 0 {
			t.AppendRow(table.Row{titleCase.String(o.String()), n})
		}
	}
	t.AppendFooter(table.Row{"Total", summary.Total})

	t.Render()
}

// printGenerateUsage prints the help text for the generate command.
func printGenerateUsage() {
	w := out

	w.HelpTitle("mdreport generate - generate a Markdown report from test output")

	w.HelpSection("Usage:")
	w.HelpUsage("mdreport generate --md <path> [options] [file]")

	w.HelpSection("Arguments:")
	w.HelpFlag("[file]", "Test output file (defaults to stdin)", helpFlagWidth)

	w.HelpSection("Options:")
	w.HelpFlag("--md <path>", "Write the Markdown report to this path", helpFlagWidth)
	w.HelpFlag("--format <id>", "Test output format (default: go-json)", helpFlagWidth)
	w.HelpFlag("--emoji", "Decorate the report with the built-in symbols", helpFlagWidth)
	w.HelpFlag("--symbols <file>", "Load a custom symbol table (YAML or JSON)", helpFlagWidth)
	w.HelpFlag("-v, --verbose", "Include per-test results in the report", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)

	w.HelpSection("Configuration:")
	w.Println("  Defaults for these options can be set in %s", config.FileName)

	w.HelpSection("Examples:")
	w.HelpExample("go test -json ./... | mdreport generate --md report.md",
		"Report for a Go test run")
	w.HelpExample("mdreport generate --format pytest --md report.md pytest.log",
		"Report from a saved pytest log")
	w.HelpExample("mdreport generate --md report.md --symbols emoji.yml -",
		"Custom decoration, input from stdin")
	w.Println("")
}
