package cli

import (
	"fmt"
	"strings"

	"github.com/hackebrot/mdreport/internal/errors"
	"github.com/hackebrot/mdreport/internal/testparser"
)

// cmdCompletion generates shell completion scripts.
func cmdCompletion(args []string) int {
	shell := ""

	// Parse arguments
	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			printCompletionUsage()
			return 0
		case strings.HasPrefix(arg, "-"):
			out.ErrorPrefix("completion: unknown flag: %s", arg)
			printCompletionUsage()
			return errors.ExitConfigError
		default:
			if shell != "" {
				out.ErrorPrefix("completion: unexpected argument: %s", arg)
				return errors.ExitConfigError
			}
			shell = arg
		}
	}

	if shell == "" {
		out.ErrorPrefix("completion: shell required (bash, zsh, fish)")
		printCompletionUsage()
		return errors.ExitConfigError
	}

	switch shell {
	case "bash":
		fmt.Print(generateBashCompletion())
	case "zsh":
		fmt.Print(generateZshCompletion())
	case "fish":
		fmt.Print(generateFishCompletion())
	default:
		out.ErrorPrefix("completion: unsupported shell %q (use bash, zsh, or fish)", shell)
		return errors.ExitConfigError
	}

	return 0
}

// printCompletionUsage prints the help text for the completion command.
func printCompletionUsage() {
	w := out

	w.HelpTitle("mdreport completion - generate shell completion scripts")

	w.HelpSection("Usage:")
	w.HelpUsage("mdreport completion <shell>")

	w.HelpSection("Arguments:")
	w.HelpFlag("<shell>", "Shell type: bash, zsh, or fish", helpFlagWidth)

	w.HelpSection("Installation:")
	w.Println("  Bash:  eval \"$(mdreport completion bash)\"")
	w.Println("  Zsh:   eval \"$(mdreport completion zsh)\"")
	w.Println("  Fish:  mdreport completion fish | source")
	w.Println("")
}

// builtinCommands returns the list of built-in CLI commands.
func builtinCommands() []string {
	return []string{
		"generate",
		"symbols",
		"formats",
		"completion",
		"version",
		"help",
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []string {
	return []string{
		"--quiet",
		"--verbose",
		"--help",
		"--version",
	}
}

func generateBashCompletion() string {
	commands := builtinCommands()
	flags := globalFlags()
	formats := testparser.NewRegistry().Formats()

	return fmt.Sprintf(`# mdreport bash completion
# Add to ~/.bashrc: eval "$(mdreport completion bash)"

_mdreport_completions() {
    local cur prev words cword
    _init_completion || return

    local commands="%s"
    local flags="%s --md --format --emoji --symbols"
    local formats="%s"
    local completion_shells="bash zsh fish"

    case "${prev}" in
        mdreport)
            COMPREPLY=($(compgen -W "${commands} ${flags}" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "${completion_shells}" -- "${cur}"))
            return
            ;;
        --format|-f)
            COMPREPLY=($(compgen -W "${formats}" -- "${cur}"))
            return
            ;;
        --md|--symbols)
            _filedir
            return
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=($(compgen -W "${flags}" -- "${cur}"))
        return
    fi

    COMPREPLY=($(compgen -W "${commands} ${flags}" -- "${cur}"))
}

complete -F _mdreport_completions mdreport
`, strings.Join(commands, " "), strings.Join(flags, " "), strings.Join(formats, " "))
}

func generateZshCompletion() string {
	formats := testparser.NewRegistry().Formats()

	return fmt.Sprintf(`#compdef mdreport
# mdreport zsh completion
# Add to ~/.zshrc: eval "$(mdreport completion zsh)"

_mdreport() {
    local -a commands flags completion_shells

    commands=(
        'generate:Generate a Markdown report from test output'
        'symbols:Print the effective symbol table'
        'formats:List supported test output formats'
        'completion:Generate shell completion'
        'version:Show version information'
        'help:Show help'
    )

    flags=(
        '--md=[Write the Markdown report to this path]:path:_files'
        '--format=[Test output format]:format:(%s)'
        '--emoji[Decorate the report with the built-in symbols]'
        '--symbols=[Load a custom symbol table]:file:_files'
        '--quiet[Suppress informational output]'
        '--verbose[Include per-test results in the report]'
        '--help[Show help]'
        '--version[Show version]'
    )

    completion_shells=(
        'bash:Generate bash completion'
        'zsh:Generate zsh completion'
        'fish:Generate fish completion'
    )

    if (( CURRENT == 2 )); then
        _describe -t commands 'command' commands
        _arguments -s $flags[@]
        return
    fi

    case "${words[2]}" in
        completion)
            _describe -t shells 'shell' completion_shells
            ;;
        *)
            _arguments -s $flags[@]
            ;;
    esac
}

compdef _mdreport mdreport
`, strings.Join(formats, " "))
}

func generateFishCompletion() string {
	var sb strings.Builder

	sb.WriteString(`# mdreport fish completion
# Add to config: mdreport completion fish | source

# Disable file completion by default
complete -c mdreport -f

`)

	commandDescs := []struct {
		name string
		desc string
	}{
		{"generate", "Generate a Markdown report from test output"},
		{"symbols", "Print the effective symbol table"},
		{"formats", "List supported test output formats"},
		{"completion", "Generate shell completion"},
		{"version", "Show version information"},
		{"help", "Show help"},
	}

	for _, cmd := range commandDescs {
		sb.WriteString(fmt.Sprintf("complete -c mdreport -n '__fish_use_subcommand' -a '%s' -d '%s'\n", cmd.name, cmd.desc))
	}

	formats := strings.Join(testparser.NewRegistry().Formats(), " ")

	sb.WriteString("\n# Flags\n")
	sb.WriteString("complete -c mdreport -l md -d 'Write the Markdown report to this path' -r\n")
	sb.WriteString(fmt.Sprintf("complete -c mdreport -l format -d 'Test output format' -xa '%s'\n", formats))
	sb.WriteString("complete -c mdreport -l emoji -d 'Decorate the report with the built-in symbols'\n")
	sb.WriteString("complete -c mdreport -l symbols -d 'Load a custom symbol table' -r\n")
	sb.WriteString("complete -c mdreport -l quiet -d 'Suppress informational output'\n")
	sb.WriteString("complete -c mdreport -l verbose -d 'Include per-test results in the report'\n")
	sb.WriteString("complete -c mdreport -l help -d 'Show help'\n")
	sb.WriteString("complete -c mdreport -l version -d 'Show version'\n")

	sb.WriteString("\n# completion subcommands\n")
	sb.WriteString("complete -c mdreport -n '__fish_seen_subcommand_from completion' -a 'bash' -d 'Generate bash completion'\n")
	sb.WriteString("complete -c mdreport -n '__fish_seen_subcommand_from completion' -a 'zsh' -d 'Generate zsh completion'\n")
	sb.WriteString("complete -c mdreport -n '__fish_seen_subcommand_from completion' -a 'fish' -d 'Generate fish completion'\n")

	return sb.String()
}
