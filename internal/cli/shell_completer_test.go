package cli

import (
	"testing"

	prompt "github.com/c-bata/go-prompt"
	"github.com/stretchr/testify/assert"
)

func suggestionTexts(suggestions []prompt.Suggest) []string {
	texts := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		texts = append(texts, s.Text)
	}
	return texts
}

func TestShellSuggestions_TopLevel(t *testing.T) {
	root := NewRootCmd(testApp(t))

	got := suggestionTexts(shellSuggestions(root, ""))
	assert.Contains(t, got, "timeline")
	assert.Contains(t, got, "task")
	assert.Contains(t, got, "exit")
	assert.NotContains(t, got, "shell")
}

func TestShellSuggestions_FiltersByPrefix(t *testing.T) {
	root := NewRootCmd(testApp(t))

	assert.Equal(t, []string{"task", "timeline"}, suggestionTexts(shellSuggestions(root, "T")))
}

func TestShellSuggestions_Subcommands(t *testing.T) {
	root := NewRootCmd(testApp(t))

	got := shellSuggestions(root, "task de")
	assert.ElementsMatch(t, []string{"delete", "depend", "deps"}, suggestionTexts(got))

	all := suggestionTexts(shellSuggestions(root, "task "))
	assert.Contains(t, all, "move")
	assert.NotContains(t, all, "exit", "builtins only complete at the top level")
}

func TestShellSuggestions_Flags(t *testing.T) {
	root := NewRootCmd(testApp(t))

	got := suggestionTexts(shellSuggestions(root, "task create SP-1 --na"))
	assert.Equal(t, []string{"--name"}, got)

	inherited := suggestionTexts(shellSuggestions(root, "task show TK-1 --log"))
	assert.ElementsMatch(t, []string{"--log-level", "--log-file"}, inherited)
}
