package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/sprintline/internal/cli/formatter"
	prompt "github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
)

const shellPrompt = "sprintline ❯ "

// shellSession holds the state shared by every line of one shell run.
type shellSession struct {
	app         *App
	out         io.Writer
	interactive bool
	wantExit    bool
}

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands line by line against one in-memory store",
		Long: `Start a shell that reads one command per line, e.g. "task show TK-1".
Changes persist for the rest of the session. On a terminal the shell offers
autocomplete and history. Type "exit" to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runShell(app *App, in io.Reader, out io.Writer) error {
	sess := &shellSession{app: app, out: out, interactive: app.interactive()}
	if sess.interactive {
		return sess.runPrompt()
	}
	return sess.runScript(in)
}

func (s *shellSession) runPrompt() error {
	fmt.Fprintln(s.out, formatter.Header("sprintline shell"))
	fmt.Fprintln(s.out, formatter.Dim(`Commands as on the command line, e.g. "timeline list". Tab completes, "exit" quits.`))

	completions := NewRootCmd(s.app)
	p := prompt.New(
		s.executor,
		func(d prompt.Document) []prompt.Suggest {
			return shellSuggestions(completions, d.TextBeforeCursor())
		},
		prompt.OptionPrefix(shellPrompt),
		prompt.OptionHistory(loadHistoryFromPath(shellHistoryPath())),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return s.wantExit && breakline
		}),
		prompt.OptionTitle("sprintline shell"),
		prompt.OptionPrefixTextColor(prompt.Purple),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionSuggestionTextColor(prompt.White),
		prompt.OptionSelectedSuggestionBGColor(prompt.Purple),
		prompt.OptionSelectedSuggestionTextColor(prompt.White),
		prompt.OptionDescriptionBGColor(prompt.DarkGray),
		prompt.OptionDescriptionTextColor(prompt.LightGray),
		prompt.OptionMaxSuggestion(10),
	)
	p.Run()
	return nil
}

// runScript reads piped input without line editing.
func (s *shellSession) runScript(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for !s.wantExit && scanner.Scan() {
		s.executor(scanner.Text())
	}
	return scanner.Err()
}

func (s *shellSession) executor(input string) {
	line := strings.TrimSpace(input)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	if s.interactive {
		appendShellHistory(line)
	}
	switch line {
	case "exit", "quit":
		if s.interactive {
			fmt.Fprintln(s.out, formatter.Dim("Goodbye."))
		}
		s.wantExit = true
		return
	case "history":
		for i, h := range loadHistoryFromPath(shellHistoryPath()) {
			fmt.Fprintf(s.out, "%s %s\n", formatter.Dim(fmt.Sprintf("%4d", i+1)), h)
		}
		return
	}
	execShellLine(s.app, line, s.out)
}

// execShellLine runs one line through a fresh command tree. Errors are
// printed and never end the session.
func execShellLine(app *App, line string, out io.Writer) {
	args, err := splitShellArgs(line)
	if err != nil {
		fmt.Fprintln(out, formatter.Failure(err.Error()))
		return
	}
	if args[0] == "shell" {
		fmt.Fprintln(out, formatter.Failure("already in a shell"))
		return
	}
	if args[0] == "help" {
		args = append(args[1:], "--help")
	}

	root := NewRootCmd(app)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(out, formatter.Failure(err.Error()))
	}
}

// splitShellArgs splits a line into arguments, honoring single and double
// quotes and backslash escapes.
func splitShellArgs(input string) ([]string, error) {
	var parts []string
	var cur strings.Builder
	inSingle, inDouble, escaped, started := false, false, false, false

	flush := func() {
		parts = append(parts, cur.String())
		cur.Reset()
		started = false
	}

	for _, r := range input {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case inSingle:
			if r == '\'' {
				inSingle = false
			} else {
				cur.WriteRune(r)
			}
		case inDouble:
			switch r {
			case '"':
				inDouble = false
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped = true
		case r == '\'':
			inSingle = true
		case r == '"':
			inDouble = true
		case r == ' ' || r == '\t':
			if started {
				flush()
			}
			continue
		default:
			cur.WriteRune(r)
		}
		started = true
	}

	if escaped {
		return nil, errors.New("unterminated escape sequence")
	}
	if inSingle || inDouble {
		return nil, errors.New("unterminated quoted string")
	}
	if started {
		flush()
	}
	if len(parts) == 0 {
		return nil, errors.New("empty command")
	}
	return parts, nil
}
