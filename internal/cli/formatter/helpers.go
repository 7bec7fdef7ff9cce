package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1)
	if title != "" {
		return box.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return box.Render(content)
}

// FormatDate renders a calendar date, or a dimmed placeholder for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Dim("--")
	}
	return t.Format(domain.DateLayout)
}

// FormatRange renders "start → end (Nd)".
func FormatRange(start, end time.Time, days int) string {
	return fmt.Sprintf("%s → %s %s", FormatDate(start), FormatDate(end), Dim(fmt.Sprintf("(%dd)", days)))
}

// FormatHours renders hours with at most one decimal, e.g. "4h" or "2.5h".
func FormatHours(h float64) string {
	if h == float64(int64(h)) {
		return fmt.Sprintf("%dh", int64(h))
	}
	return fmt.Sprintf("%.1fh", h)
}

// OptionalRef renders a nullable foreign key as a display id or a placeholder.
func OptionalRef(kind string, id *int) string {
	if id == nil {
		return Dim("--")
	}
	return fmt.Sprintf("%s %d", kind, *id)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	return s
}

// renderFields renders aligned "label  value" lines.
func renderFields(fields [][2]string) string {
	width := 0
	for _, f := range fields {
		width = max(width, lipgloss.Width(f[0]))
	}
	var b strings.Builder
	for _, f := range fields {
		pad := strings.Repeat(" ", width-lipgloss.Width(f[0]))
		b.WriteString(Dim(f[0]) + pad + "  " + f[1] + "\n")
	}
	return b.String()
}

func joinInts(ids []int, kind domain.EntityKind) string {
	if len(ids) == 0 {
		return Dim("none")
	}
	refs := make([]string, len(ids))
	for i, id := range ids {
		refs[i] = domain.TreeID(kind, id)
	}
	return strings.Join(refs, ", ")
}
