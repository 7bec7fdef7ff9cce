package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a hierarchy display.
type TreeItem struct {
	Ref    string // display id such as "SP-3"; empty hides it
	Title  string
	Level  int
	IsLast bool
	Status domain.WorkStatus
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders items as an indented tree with box-drawing connectors.
// Done items get a green ✔, in-progress items an amber ▶, and detail badges
// are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type line struct {
		content string
		badge   string
	}
	lines := make([]line, len(items))
	maxWidth := 0

	// open[l] is true while the ancestor at level l still has siblings below.
	open := map[int]bool{}
	for idx, item := range items {
		var prefix strings.Builder
		if item.Level > 0 {
			for l := 1; l < item.Level; l++ {
				if open[l] {
					prefix.WriteString(treePipe)
				} else {
					prefix.WriteString(treeBlank)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
			open[item.Level] = !item.IsLast
		}

		title := item.Title
		if item.Ref != "" {
			title = StyleDim.Render(item.Ref+" ") + title
		}
		marker := ""
		switch item.Status {
		case domain.WorkStatusDone:
			marker = StyleGreen.Render("✔ ")
			title = Dim(title)
		case domain.WorkStatusInProgress:
			marker = StyleYellowBold.Render("▶ ")
			title = StyleYellowBold.Render(title)
		case domain.WorkStatusBlocked:
			marker = StyleRed.Render("✖ ")
		}

		content := prefix.String() + marker + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}
		maxWidth = max(maxWidth, lipgloss.Width(content))
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := max(maxWidth-lipgloss.Width(li.content), 0)
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}
	return b.String()
}
