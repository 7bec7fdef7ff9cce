package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusPill returns a colored indicator such as "● in progress".
func StatusPill(status domain.WorkStatus) string {
	label := strings.ReplaceAll(string(status), "_", " ")
	switch status {
	case domain.WorkStatusTodo:
		return StyleBlue.Render("○ " + label)
	case domain.WorkStatusInProgress:
		return StyleYellow.Render("● " + label)
	case domain.WorkStatusReview:
		return StylePurple.Render("◐ " + label)
	case domain.WorkStatusDone:
		return StyleGreen.Render("✔ " + label)
	case domain.WorkStatusBlocked:
		return StyleRed.Render("✖ " + label)
	default:
		return StyleDim.Render(label)
	}
}

// PriorityBadge colors a priority label by urgency.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return StyleRed.Render(string(p))
	case domain.PriorityHigh:
		return StyleYellow.Render(string(p))
	case domain.PriorityLow:
		return StyleDim.Render(string(p))
	default:
		return StyleFg.Render(string(p))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success and Failure prefix one-line command results.
func Success(text string) string {
	return StyleGreen.Render("✔ ") + text
}

func Failure(text string) string {
	return StyleRed.Render("Error: " + text)
}
