package cli

import (
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// shellBuiltins are handled by the shell itself rather than the command tree.
var shellBuiltins = []prompt.Suggest{
	{Text: "help", Description: "Show help for a command"},
	{Text: "history", Description: "List previous shell commands"},
	{Text: "exit", Description: "Leave the shell"},
	{Text: "quit", Description: "Leave the shell"},
}

// shellSuggestions completes the word before the cursor against the command
// tree under root: subcommand names, or flags once the word starts with "-".
func shellSuggestions(root *cobra.Command, textBefore string) []prompt.Suggest {
	words := strings.Fields(textBefore)
	current := ""
	if len(words) > 0 && !strings.HasSuffix(textBefore, " ") && !strings.HasSuffix(textBefore, "\t") {
		current = words[len(words)-1]
		words = words[:len(words)-1]
	}

	cmd := root
	for _, w := range words {
		if strings.HasPrefix(w, "-") {
			continue
		}
		if sub := findSubcommand(cmd, w); sub != nil {
			cmd = sub
		}
	}

	if strings.HasPrefix(current, "-") {
		return prompt.FilterHasPrefix(flagSuggestions(cmd), current, true)
	}

	var suggestions []prompt.Suggest
	for _, sub := range cmd.Commands() {
		if sub.Hidden || sub.Name() == "shell" || sub.Name() == "help" || sub.Name() == "completion" {
			continue
		}
		suggestions = append(suggestions, prompt.Suggest{Text: sub.Name(), Description: sub.Short})
	}
	if cmd == root {
		suggestions = append(suggestions, shellBuiltins...)
	}
	return prompt.FilterHasPrefix(suggestions, current, true)
}

func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return sub
		}
	}
	return nil
}

func flagSuggestions(cmd *cobra.Command) []prompt.Suggest {
	var suggestions []prompt.Suggest
	add := func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		suggestions = append(suggestions, prompt.Suggest{Text: "--" + f.Name, Description: f.Usage})
	}
	cmd.NonInheritedFlags().VisitAll(add)
	cmd.InheritedFlags().VisitAll(add)
	return suggestions
}
