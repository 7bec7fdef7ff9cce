package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/sprintline/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func sprintlineHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorRed).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	return t
}

func huhConfirm(title string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description("Everything under it is removed as well.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&ok),
		),
	).WithTheme(sprintlineHuhTheme()).WithShowHelp(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

// confirmDelete asks before a destructive command unless --yes was given or
// nobody is at the terminal to answer.
func confirmDelete(cmd *cobra.Command, app *App, ref string) (bool, error) {
	if yes, _ := cmd.Flags().GetBool("yes"); yes || !app.interactive() {
		return true, nil
	}
	confirm := app.Confirm
	if confirm == nil {
		confirm = huhConfirm
	}
	ok, err := confirm(fmt.Sprintf("Delete %s?", ref))
	if err != nil {
		return false, fmt.Errorf("confirming delete: %w", err)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
	}
	return ok, nil
}

func addYesFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
