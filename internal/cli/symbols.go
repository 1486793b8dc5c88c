package cli

import (
	"strings"

	"github.com/hackebrot/mdreport/internal/errors"
	"github.com/hackebrot/mdreport/internal/report"
	"github.com/hackebrot/mdreport/internal/symbols"
	"github.com/hackebrot/mdreport/internal/testparser"
)

// cmdSymbols handles the 'mdreport symbols' command: it prints the
// symbol table a generate run with the same flags would use.
func cmdSymbols(args []string) int {
	if wantsHelp(args) {
		printSymbolsUsage()
		return 0
	}

	symbolsPath := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--symbols":
			if i+1 >= len(args) {
				out.ErrorPrefix("--symbols requires a value")
				return errors.ExitConfigError
			}
			symbolsPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "-"):
			if value, ok := trimArg(arg, "--symbols"); ok {
				symbolsPath = value
				continue
			}
			out.ErrorPrefix("symbols: unknown flag: %s", arg)
			return errors.ExitConfigError
		default:
			out.ErrorPrefix("symbols: unexpected argument: %s", arg)
			return errors.ExitConfigError
		}
	}

	symbolTable := symbols.Default()
	if symbolsPath != "" {
		loaded, err := symbols.Load(symbolsPath)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.ExitConfigError
		}
		symbolTable = loaded
	}

	for _, o := range report.Outcomes {
		printSymbolSlot(o.String(), symbolTable)
	}
	printSymbolSlot(report.SlotDuration, symbolTable)
	printSymbolSlot(report.SlotReport, symbolTable)

	return errors.ExitSuccess
}

func printSymbolSlot(slot string, symbolTable report.SymbolTable) {
	if sym := symbolTable.Symbol(slot); sym != "" {
		out.Println("%-10s %s", slot, sym)
	} else {
		out.Println("%-10s -", slot)
	}
}

// cmdFormats handles the 'mdreport formats' command.
func cmdFormats(args []string) int {
	if wantsHelp(args) {
		printFormatsUsage()
		return 0
	}
	if len(args) > 0 {
		out.ErrorPrefix("formats: unexpected argument: %s", args[0])
		return errors.ExitConfigError
	}

	registry := testparser.NewRegistry()
	for _, format := range registry.Formats() {
		out.Println("%-10s %s", format, registry.GetParser(format).Name())
	}

	return errors.ExitSuccess
}

func printSymbolsUsage() {
	w := out

	w.HelpTitle("mdreport symbols - print the effective symbol table")

	w.HelpSection("Usage:")
	w.HelpUsage("mdreport symbols [--symbols <file>]")

	w.HelpSection("Options:")
	w.HelpFlag("--symbols <file>", "Load a custom symbol table (YAML or JSON)", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)
	w.Println("")
}

func printFormatsUsage() {
	w := out

	w.HelpTitle("mdreport formats - list supported test output formats")

	w.HelpSection("Usage:")
	w.HelpUsage("mdreport formats")
	w.Println("")
}
